package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reparo-labs/partassist/internal/core/ports/driven"
)

func TestPromptStoreLoadDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(filepath.Join(dir, "prompts"))
	require.NoError(t, err)
	defer store.Close()

	prompt, err := store.Load(driven.PromptClassify)
	require.NoError(t, err)
	assert.Contains(t, prompt, "classify")
	assert.Contains(t, prompt, "%s")

	// Default files should have been created on first load
	_, err = os.Stat(filepath.Join(dir, "prompts", driven.PromptClassify+".txt"))
	assert.NoError(t, err)
}

func TestPromptStoreLoadUserOverride(t *testing.T) {
	dir := t.TempDir()
	promptDir := filepath.Join(dir, "prompts")
	require.NoError(t, os.MkdirAll(promptDir, 0700))

	custom := "Classify this like a pirate: %s"
	path := filepath.Join(promptDir, driven.PromptClassify+".txt")
	require.NoError(t, os.WriteFile(path, []byte(custom+"\n"), 0600))

	store, err := NewPromptStore(promptDir)
	require.NoError(t, err)
	defer store.Close()

	prompt, err := store.Load(driven.PromptClassify)
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStoreUnknownName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(filepath.Join(dir, "prompts"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load("no_such_prompt")
	assert.Error(t, err)
}

func TestPromptStoreReload(t *testing.T) {
	dir := t.TempDir()
	promptDir := filepath.Join(dir, "prompts")
	store, err := NewPromptStore(promptDir)
	require.NoError(t, err)
	defer store.Close()

	first, err := store.Load(driven.PromptSynthesizeSystem)
	require.NoError(t, err)

	// Overwrite the file and force a reload
	path := filepath.Join(promptDir, driven.PromptSynthesizeSystem+".txt")
	edited := "Answer tersely."
	require.NoError(t, os.WriteFile(path, []byte(edited), 0600))
	store.Reload()

	second, err := store.Load(driven.PromptSynthesizeSystem)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, edited, second)
}

func TestPromptStoreWatcherInvalidatesCache(t *testing.T) {
	dir := t.TempDir()
	promptDir := filepath.Join(dir, "prompts")
	store, err := NewPromptStore(promptDir)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(driven.PromptClassify)
	require.NoError(t, err)

	path := filepath.Join(promptDir, driven.PromptClassify+".txt")
	edited := "Edited classification prompt: %s"
	require.NoError(t, os.WriteFile(path, []byte(edited), 0600))

	// The watcher delivers events asynchronously, poll for the change
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		prompt, err := store.Load(driven.PromptClassify)
		require.NoError(t, err)
		if strings.HasPrefix(prompt, "Edited") {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("watcher did not pick up prompt edit")
}
