package client

import "github.com/aidelivery/delivery-manager/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Result wraps a successful response: Value when the body decoded as
	// JSON, Text() otherwise.
	Result[T any] = types.Result[T]

	// Workboard entities
	Ticket       = types.Ticket
	TicketStatus = types.TicketStatus
	Member       = types.Member
	PullRequest  = types.PullRequest
	Team         = types.Team
	Dependency   = types.Dependency
	Blocker      = types.Blocker
	Aggregate    = types.Aggregate

	// Requests
	TicketFilter            = types.TicketFilter
	CreateTicketRequest     = types.CreateTicketRequest
	PatchTicketRequest      = types.PatchTicketRequest
	CreateMemberRequest     = types.CreateMemberRequest
	CreatePRRequest         = types.CreatePRRequest
	CreateTeamRequest       = types.CreateTeamRequest
	CreateDependencyRequest = types.CreateDependencyRequest
	Tone                    = types.Tone

	// Reports
	StandupReport  = types.StandupReport
	StandupSummary = types.StandupSummary
	StandupDetails = types.StandupDetails
	StandupItem    = types.StandupItem
	WeeklyReport   = types.WeeklyReport
	RewriteResult  = types.RewriteResult
	ToneRewrite    = types.ToneRewrite
	RiskReport     = types.RiskReport
	RiskSummary    = types.RiskSummary
	Risk           = types.Risk
	DashboardStats = types.DashboardStats
	Activity       = types.Activity
	TopRisk        = types.TopRisk
)

const (
	StatusTodo       = types.StatusTodo
	StatusInProgress = types.StatusInProgress
	StatusInReview   = types.StatusInReview
	StatusDone       = types.StatusDone
	StatusBlocked    = types.StatusBlocked

	ToneClient    = types.ToneClient
	ToneTechnical = types.ToneTechnical
	ToneExecutive = types.ToneExecutive
	ToneAll       = types.ToneAll
)

var errNotJSON = types.ErrNotJSON

func newResult[T any](body []byte) *Result[T] { return types.NewResult[T](body) }

// Ptr returns a pointer to v, for optional request fields.
func Ptr[T any](v T) *T { return &v }
