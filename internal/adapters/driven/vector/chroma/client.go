// Package chroma is a minimal REST client for a Chroma
// nearest-neighbour index. The index is built offline by the ingestion
// pipeline with server-side embeddings; the core only queries it by
// text.
package chroma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/reparo-labs/partassist/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.VectorSearch = (*Client)(nil)

// DefaultTimeout bounds each index request.
const DefaultTimeout = 15 * time.Second

// Config contains connection details for the Chroma index.
type Config struct {
	// URL is the server base URL, e.g. http://localhost:8000.
	URL string

	// Collection is the collection name holding the parts corpus.
	Collection string

	// Timeout bounds each request (default: 15s).
	Timeout time.Duration
}

// Client queries one Chroma collection. The collection ID is resolved
// from the name on first use and cached for the process lifetime.
type Client struct {
	url        string
	collection string
	client     *http.Client

	mu           sync.Mutex
	collectionID string
}

// NewClient creates a Chroma client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        cfg.URL,
		collection: cfg.Collection,
		client:     &http.Client{Timeout: timeout},
	}
}

// queryRequest is the Chroma collection query body.
type queryRequest struct {
	QueryTexts []string `json:"query_texts"`
	NResults   int      `json:"n_results"`
	Include    []string `json:"include"`
}

// queryResponse carries one document list per query text.
type queryResponse struct {
	Documents [][]string `json:"documents"`
}

// Query returns the raw stored documents most similar to text, in the
// server's ranked order.
func (c *Client) Query(ctx context.Context, text string, k int) ([]string, error) {
	if k <= 0 {
		k = 5
	}

	id, err := c.resolveCollection(ctx)
	if err != nil {
		return nil, err
	}

	req := queryRequest{
		QueryTexts: []string{text},
		NResults:   k,
		Include:    []string{"documents"},
	}
	var resp queryResponse
	url := fmt.Sprintf("%s/api/v1/collections/%s/query", c.url, id)
	if err := c.postJSON(ctx, url, req, &resp); err != nil {
		return nil, fmt.Errorf("chroma query: %w", err)
	}

	if len(resp.Documents) == 0 {
		return nil, nil
	}
	return resp.Documents[0], nil
}

// Ping validates the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/api/v1/heartbeat", http.NoBody)
	if err != nil {
		return fmt.Errorf("chroma ping: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("chroma ping: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chroma ping: unexpected status %s", resp.Status)
	}
	return nil
}

// Close releases resources.
func (c *Client) Close() error {
	return nil
}

// resolveCollection maps the configured collection name to its ID.
func (c *Client) resolveCollection(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.collectionID != "" {
		return c.collectionID, nil
	}

	url := fmt.Sprintf("%s/api/v1/collections/%s", c.url, c.collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("chroma collection lookup: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chroma collection lookup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("chroma collection lookup: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chroma collection %q: status %s", c.collection, resp.Status)
	}

	var collection struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &collection); err != nil {
		return "", fmt.Errorf("chroma collection lookup: %w", err)
	}
	if collection.ID == "" {
		return "", fmt.Errorf("chroma collection %q: no id in response", c.collection)
	}

	c.collectionID = collection.ID
	return c.collectionID, nil
}

func (c *Client) postJSON(ctx context.Context, url string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("POST %s: %s", url, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
