package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Use(t *testing.T) {
	assert.Equal(t, "serve", serveCmd.Use)
}

func TestServeCmd_HasAddrFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, flag, "addr flag should exist")
	assert.Equal(t, "", flag.DefValue)
}

func TestServeCmd_NoServiceConfigured(t *testing.T) {
	old := askService
	askService = nil
	defer func() { askService = old }()

	_, err := execute("serve")
	assert.Error(t, err)
}
