package githubapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points the REST half of a Client at a local test server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), nil, "test-token", "octo", "widgets", time.Second)
	require.NoError(t, err)

	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.rest.BaseURL = base

	return client
}

func TestNewClientValidatesInputs(t *testing.T) {
	_, err := NewClient(context.Background(), nil, "tok", "", "repo", time.Second)
	assert.Error(t, err)

	_, err = NewClient(context.Background(), nil, "tok", "owner", " ", time.Second)
	assert.Error(t, err)

	_, err = NewClient(context.Background(), nil, "  ", "owner", "repo", time.Second)
	assert.Error(t, err)
}

func TestIssueCommentNodeID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/widgets/issues/comments/42", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      42,
			"node_id": "IC_kwDOabc123",
		})
	})

	client := newTestClient(t, mux)

	nodeID, err := client.IssueCommentNodeID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "IC_kwDOabc123", nodeID)
}

func TestIssueCommentNodeIDMissingComment(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/widgets/issues/comments/42", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	client := newTestClient(t, mux)

	_, err := client.IssueCommentNodeID(context.Background(), 42)
	assert.Error(t, err)
}

func TestIssueCommentNodeIDEmptyNodeID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/widgets/issues/comments/42", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 42})
	})

	client := newTestClient(t, mux)

	_, err := client.IssueCommentNodeID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestReplyToReviewComment(t *testing.T) {
	var gotBody struct {
		Body      string `json:"body"`
		InReplyTo int64  `json:"in_reply_to"`
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/widgets/pulls/7/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1})
	})

	client := newTestClient(t, mux)

	err := client.ReplyToReviewComment(context.Background(), 7, 42, "Addressed in abc1234.")
	require.NoError(t, err)
	assert.Equal(t, "Addressed in abc1234.", gotBody.Body)
	assert.Equal(t, int64(42), gotBody.InReplyTo)
}

func TestReplyToReviewCommentFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/widgets/pulls/7/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		http.Error(w, `{"message": "Validation Failed"}`, http.StatusUnprocessableEntity)
	})

	client := newTestClient(t, mux)

	err := client.ReplyToReviewComment(context.Background(), 7, 42, "reply")
	assert.Error(t, err)
}
