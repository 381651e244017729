package chroma

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Client, *int) {
	t.Helper()
	queries := 0

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/collections/partselect_parts", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": "col-123", "name": "partselect_parts"}`))
	})
	mux.HandleFunc("POST /api/v1/collections/col-123/query", func(w http.ResponseWriter, r *http.Request) {
		queries++
		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 5, req.NResults)
		require.Len(t, req.QueryTexts, 1)

		_, _ = w.Write([]byte(`{"documents": [["Title: A", "Title: B", "Title: C"]]}`))
	})
	mux.HandleFunc("GET /api/v1/heartbeat", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"nanosecond heartbeat": 1}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewClient(Config{URL: server.URL, Collection: "partselect_parts"}), &queries
}

func TestQueryReturnsRankedDocuments(t *testing.T) {
	client, _ := newTestServer(t)

	docs, err := client.Query(context.Background(), "Whirlpool refrigerator leaking", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Title: A", "Title: B", "Title: C"}, docs)
}

func TestQueryCachesCollectionID(t *testing.T) {
	client, queries := newTestServer(t)

	_, err := client.Query(context.Background(), "one", 5)
	require.NoError(t, err)
	_, err = client.Query(context.Background(), "two", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, *queries)
	assert.Equal(t, "col-123", client.collectionID)
}

func TestQueryDefaultsK(t *testing.T) {
	client, _ := newTestServer(t)
	_, err := client.Query(context.Background(), "anything", 0)
	assert.NoError(t, err)
}

func TestQueryUnknownCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{URL: server.URL, Collection: "missing"})
	_, err := client.Query(context.Background(), "anything", 5)
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	client, _ := newTestServer(t)
	assert.NoError(t, client.Ping(context.Background()))
}
