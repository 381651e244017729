package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/reparo-labs/partassist/internal/adapters/driven/config/file"
)

func setupConfigStore(t *testing.T) func() {
	t.Helper()
	store, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	old := configStore
	configStore = store
	return func() {
		configStore = old
	}
}

func TestConfigSetAndShow(t *testing.T) {
	defer setupConfigStore(t)()

	out, err := execute("config", "set", "llm.model", "deepseek-chat")
	require.NoError(t, err)
	assert.Contains(t, out, "Set llm.model = deepseek-chat")

	out, err = execute("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "llm.model")
	assert.Contains(t, out, "deepseek-chat")
	assert.Contains(t, out, "(unset)")
}

func TestConfigSetCoercesTypes(t *testing.T) {
	defer setupConfigStore(t)()

	_, err := execute("config", "set", "search.top_k", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, configStore.GetInt("search.top_k"))

	_, err = execute("config", "set", "llm.retry_transient", "true")
	require.NoError(t, err)
	assert.True(t, configStore.GetBool("llm.retry_transient"))

	_, err = execute("config", "set", "llm.rate_limit_rps", "2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, configStore.GetFloat("llm.rate_limit_rps"))
}

func TestConfigSetRequiresTwoArgs(t *testing.T) {
	defer setupConfigStore(t)()

	_, err := execute("config", "set", "only-key")
	assert.Error(t, err)
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, false, coerceValue("FALSE"))
	assert.Equal(t, int64(42), coerceValue("42"))
	assert.Equal(t, 1.5, coerceValue("1.5"))
	assert.Equal(t, ":8080", coerceValue(":8080"))
}
