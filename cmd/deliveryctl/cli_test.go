package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Method string
	URI    string
	Body   string
}

type recorder struct {
	mu   sync.Mutex
	reqs []request
}

func (rec *recorder) all() []request {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]request(nil), rec.reqs...)
}

// stubBackend serves both API namespaces from one mux and records requests.
func stubBackend(t *testing.T) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	mux := http.NewServeMux()
	record := func(r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.reqs = append(rec.reqs, request{Method: r.Method, URI: r.URL.RequestURI(), Body: string(b)})
		rec.mu.Unlock()
	}

	mux.HandleFunc("/api/reports/daily-standup/", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = io.WriteString(w, `{"summary":{"yesterday":"shipped login","today":"review","blockers":"None"}}`)
	})
	mux.HandleFunc("/api/reports/weekly-client/", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = io.WriteString(w, `{"overview":"steady","progress":"40%"}`)
	})
	mux.HandleFunc("/api/reports/risk-analysis/", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = io.WriteString(w, "risk engine warming up")
	})
	mux.HandleFunc("/api/reports/rewrite/", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = io.WriteString(w, `{"tone":"executive","rewritten_summary":"On track."}`)
	})
	mux.HandleFunc("/api/workboard/tickets", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = io.WriteString(w, `[]`)
	})
	mux.HandleFunc("/api/workboard/tickets/5/", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"status":["Invalid status"]}`)
	})
	mux.HandleFunc("/api/workboard/tickets/7/", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/workboard/members/", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":1,"name":"Ada Lovelace","email":"ada@x.com","role":"Engineer"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, rec
}

func execute(t *testing.T, srv *httptest.Server, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{
		"--reports-url", srv.URL + "/api/reports",
		"--workboard-url", srv.URL + "/api/workboard",
	}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestCLI_Standup(t *testing.T) {
	srv, seen := stubBackend(t)
	out, _, err := execute(t, srv, "standup")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "shipped login", got["summary"].(map[string]any)["yesterday"])
	require.Len(t, seen.all(), 1)
	assert.Equal(t, request{Method: http.MethodPost, URI: "/api/reports/daily-standup/", Body: "{}"}, seen.all()[0])
}

func TestCLI_Rewrite(t *testing.T) {
	srv, seen := stubBackend(t)
	out, _, err := execute(t, srv, "rewrite", "--tone", "all", "--text", "status update")
	require.NoError(t, err)
	assert.Contains(t, out, `"rewritten_summary": "On track."`)
	assert.JSONEq(t, `{"tone":"all","text":"status update"}`, seen.all()[0].Body)
}

func TestCLI_GenerateAll_MixesJSONAndText(t *testing.T) {
	srv, seen := stubBackend(t)
	out, _, err := execute(t, srv, "generate-all")
	require.NoError(t, err)
	assert.Len(t, seen.all(), 3)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "risk engine warming up", got["risk_analysis"])
	assert.Equal(t, "40%", got["weekly_client"].(map[string]any)["progress"])
}

func TestCLI_TicketsListFilters(t *testing.T) {
	srv, seen := stubBackend(t)
	out, _, err := execute(t, srv, "tickets", "list", "--assignee", "42")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
	assert.Equal(t, "/api/workboard/tickets?assignee_id=42", seen.all()[0].URI)
}

func TestCLI_TicketsUpdate_FieldErrors(t *testing.T) {
	srv, seen := stubBackend(t)
	_, stderr, err := execute(t, srv, "tickets", "update", "5", "--status", "DONE")
	require.Error(t, err)
	assert.Equal(t, `{"status":["Invalid status"]}`, err.Error())
	assert.Contains(t, stderr, "status: Invalid status")
	assert.Equal(t, 1, strings.Count(stderr, "Error:"))
	assert.True(t, alreadyReported(err))
	assert.Equal(t, http.MethodPatch, seen.all()[0].Method)
	assert.JSONEq(t, `{"status":"DONE"}`, seen.all()[0].Body)
}

func TestCLI_TicketsUpdate_RequiresAField(t *testing.T) {
	srv, seen := stubBackend(t)
	_, _, err := execute(t, srv, "tickets", "update", "5")
	assert.ErrorIs(t, err, errNoChanges)
	assert.False(t, alreadyReported(err))
	assert.Empty(t, seen.all())
}

func TestCLI_TicketsDelete(t *testing.T) {
	srv, seen := stubBackend(t)
	out, _, err := execute(t, srv, "tickets", "delete", "7")
	require.NoError(t, err)
	assert.Equal(t, "Ticket 7 deleted\n", out)
	assert.Equal(t, request{Method: http.MethodDelete, URI: "/api/workboard/tickets/7/"}, seen.all()[0])

	_, _, err = execute(t, srv, "tickets", "delete", "abc")
	assert.Error(t, err)
}

func TestCLI_MembersCreate(t *testing.T) {
	srv, seen := stubBackend(t)
	out, _, err := execute(t, srv, "members", "create", "--name", "Ada Lovelace", "--email", "ada@x.com", "--role", "Engineer")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Ada Lovelace","email":"ada@x.com","role":"Engineer"}`, out)
	assert.JSONEq(t, `{"name":"Ada Lovelace","email":"ada@x.com","role":"Engineer"}`, seen.all()[0].Body)
}

func TestCLI_ShapeMismatchPrintsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"count":1,"results":[]}`)
	}))
	t.Cleanup(srv.Close)

	out, _, err := execute(t, srv, "snapshot")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"count": float64(1), "results": []any{}}, got["tickets"])
}

func TestCLI_BadBaseURL(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--reports-url", "not-a-url", "dashboard"})
	assert.Error(t, root.Execute())
}
