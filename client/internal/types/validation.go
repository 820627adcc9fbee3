package types

import (
	"errors"
	"fmt"
)

// ErrInvalidID is returned before any request is sent when an item id is not
// a positive integer. The backend's ids are auto-increment primary keys.
var ErrInvalidID = errors.New("invalid id")

// ValidateID guards path construction; the server validates everything else.
func ValidateID(id int, name string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer, got %d", ErrInvalidID, name, id)
	}
	return nil
}
