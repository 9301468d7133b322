package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestClosedPull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/repo/pulls", r.URL.Path)
		assert.Equal(t, "closed", r.URL.Query().Get("state"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"html_url":"https://github.com/owner/repo/pull/9","title":"Fix boars","body":"long body","merged_at":"2026-08-01T10:00:00Z"}
		]`))
	}))
	defer srv.Close()

	c := New("tok", WithBaseURL(srv.URL))
	pull, err := c.LatestClosedPull(context.Background(), "owner", "repo")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/owner/repo/pull/9", pull.HTMLURL)
	assert.Equal(t, "Fix boars", pull.Title)
	require.NotNil(t, pull.MergedAt)
}

func TestLatestClosedPullEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New("", WithBaseURL(srv.URL)).LatestClosedPull(context.Background(), "o", "r")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAPIErrorSurfacesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	_, err := New("", WithBaseURL(srv.URL)).LatestClosedPull(context.Background(), "o", "r")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "rate limited", apiErr.Body)
}
