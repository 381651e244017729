package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

// setupAskService installs a mock ask service and returns a cleanup func.
func setupAskService(mock *mockAskService) func() {
	old := askService
	askService = mock
	return func() {
		askService = old
	}
}

func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresArgs(t *testing.T) {
	_, err := execute("ask")
	assert.Error(t, err)
}

func TestAskCmd_PrintsAnswer(t *testing.T) {
	mock := &mockAskService{answer: "Installation usually takes under 30 minutes."}
	defer setupAskService(mock)()

	out, err := execute("ask", "how do I install PS11752778")

	require.NoError(t, err)
	assert.Contains(t, out, "under 30 minutes")
	assert.Equal(t, "how do I install PS11752778", mock.query)
}

func TestAskCmd_JoinsMultipleArgs(t *testing.T) {
	mock := &mockAskService{answer: "ok"}
	defer setupAskService(mock)()

	_, err := execute("ask", "is", "it", "compatible")

	require.NoError(t, err)
	assert.Equal(t, "is it compatible", mock.query)
}

func TestAskCmd_JSONOutput(t *testing.T) {
	mock := &mockAskService{answer: "Part not found."}
	defer setupAskService(mock)()
	defer func() { askJSON = false }()

	out, err := execute("ask", "--json", "what is PS0000000")

	require.NoError(t, err)
	assert.Contains(t, out, `"response"`)
	assert.Contains(t, out, "Part not found.")
}

func TestAskCmd_ServiceError(t *testing.T) {
	mock := &mockAskService{err: errors.New("llm unreachable")}
	defer setupAskService(mock)()

	_, err := execute("ask", "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm unreachable")
}

func TestAskCmd_NoServiceConfigured(t *testing.T) {
	old := askService
	askService = nil
	defer func() { askService = old }()

	_, err := execute("ask", "anything")

	assert.Error(t, err)
}
