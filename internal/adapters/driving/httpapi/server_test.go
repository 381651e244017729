package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reparo-labs/partassist/internal/core/domain"
)

// mockAskService is a test double for driving.AskService.
type mockAskService struct {
	answer string
	err    error
	query  string
}

func (m *mockAskService) Ask(_ context.Context, query string) (string, error) {
	m.query = query
	return m.answer, m.err
}

func doAsk(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestAskSuccess(t *testing.T) {
	mock := &mockAskService{answer: "The PS11752778 door shelf bin installs without tools."}
	srv := NewServer(":0", mock, 0)

	rec := doAsk(t, srv, `{"query": "How do I install PS11752778?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp askResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, mock.answer, resp.Response)
	assert.Equal(t, "How do I install PS11752778?", mock.query)
}

func TestAskMalformedBody(t *testing.T) {
	srv := NewServer(":0", &mockAskService{}, 0)

	rec := doAsk(t, srv, `{"query": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid request body", resp.Error)
}

func TestAskEmptyQuery(t *testing.T) {
	srv := NewServer(":0", &mockAskService{}, 0)

	rec := doAsk(t, srv, `{"query": "   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskPipelineFailure(t *testing.T) {
	mock := &mockAskService{err: domain.ErrLLMUnavailable}
	srv := NewServer(":0", mock, 0)

	rec := doAsk(t, srv, `{"query": "is my fridge haunted"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed to answer query", resp.Error)
	assert.NotEmpty(t, resp.Trace)
}

func TestAskInvalidInput(t *testing.T) {
	mock := &mockAskService{err: domain.ErrInvalidInput}
	srv := NewServer(":0", mock, 0)

	rec := doAsk(t, srv, `{"query": "x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	srv := NewServer(":0", &mockAskService{}, 0)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
