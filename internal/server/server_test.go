// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/typeahead/internal/history"
	"github.com/pdiddy/typeahead/internal/suggest"
	"github.com/pdiddy/typeahead/pkg/types"
)

type staticSource struct{ candidates []string }

func (s *staticSource) Name() string { return "static" }

func (s *staticSource) Fetch(_ context.Context) ([]string, error) {
	return s.candidates, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	catalog := suggest.NewCatalog(
		&staticSource{candidates: []string{"Santos", "São Paulo", "Sorocaba"}},
		types.MatchConfig{},
	)
	store, err := history.NewStore(types.HistoryConfig{
		Path: filepath.Join(t.TempDir(), "history.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := New(catalog, store, types.MatchConfig{MaxResults: 10})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestSuggestEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var got suggestResponse
	resp := getJSON(t, ts.URL+"/suggest?q=sa&limit=10", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sa", got.Query)
	assert.Equal(t, 2, got.Count)
	require.Len(t, got.Suggestions, 2)
	assert.Equal(t, "Santos", got.Suggestions[0].Text)
	assert.Equal(t, "São Paulo", got.Suggestions[1].Text)
}

func TestSuggestEndpointNoMatch(t *testing.T) {
	ts := newTestServer(t)

	var got suggestResponse
	getJSON(t, ts.URL+"/suggest?q=xyz", &got)
	assert.Equal(t, 0, got.Count)
	assert.NotNil(t, got.Suggestions)
}

func TestSuggestEndpointMalformedLimit(t *testing.T) {
	ts := newTestServer(t)

	// A malformed limit clamps to zero instead of failing.
	var got suggestResponse
	resp := getJSON(t, ts.URL+"/suggest?q=sa&limit=banana", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, got.Count)
}

func TestSubmitAndRecent(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/submit", submitRequest{Query: "santos"})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var got recentResponse
	getJSON(t, ts.URL+"/recent?limit=10", &got)
	require.Equal(t, 1, got.Count)
	assert.Equal(t, "santos", got.Recent[0].Term)
}

func TestSelectEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/select", selectRequest{ID: 1, Text: "São Paulo", Query: "sa"})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/select", selectRequest{ID: 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	var got map[string]any
	resp := getJSON(t, ts.URL+"/healthz", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, float64(3), got["candidates"])
}
