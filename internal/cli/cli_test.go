package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/erg0nix/callcoach/internal/character"
	"github.com/erg0nix/callcoach/internal/persona"
	"github.com/erg0nix/callcoach/internal/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	configPath string
	dataDir    string
	envFile    string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	dir := t.TempDir()
	te := testEnv{
		configPath: filepath.Join(dir, "config.toml"),
		dataDir:    filepath.Join(dir, "data"),
		envFile:    filepath.Join(dir, ".env"),
	}

	cfg := fmt.Sprintf("data_dir = %q\nenv_file = %q\n", te.dataDir, te.envFile)
	require.NoError(t, os.WriteFile(te.configPath, []byte(cfg), 0o644))

	names := append(plugin.Flags(),
		"CALLCOACH_BIND", "CALLCOACH_DATA_DIR", "CALLCOACH_PERSONA", "CALLCOACH_LOG_LEVEL", "CALLCOACH_DEBUG")
	for _, name := range names {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	return te
}

func (te testEnv) writeEnv(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(te.envFile, []byte(content), 0o644))
}

func (te testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", te.configPath))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPluginsQuiet(t *testing.T) {
	te := newTestEnv(t)
	te.writeEnv(t, "ANTHROPIC_API_KEY=sk-ant\nOPENAI_API_KEY=   \n")

	out, _, err := te.run(t, "plugins", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "@elizaos/plugin-sql\n@elizaos/plugin-anthropic\n@elizaos/plugin-bootstrap\n", out)
}

func TestPluginsProcessEnvOverridesEnvFile(t *testing.T) {
	te := newTestEnv(t)
	te.writeEnv(t, "IGNORE_BOOTSTRAP=\n")
	t.Setenv("IGNORE_BOOTSTRAP", "yes")

	out, _, err := te.run(t, "plugins", "-q")
	require.NoError(t, err)
	assert.Equal(t, "@elizaos/plugin-sql\n", out)
}

func TestPluginsEnvFileFlag(t *testing.T) {
	te := newTestEnv(t)
	other := filepath.Join(t.TempDir(), "other.env")
	require.NoError(t, os.WriteFile(other, []byte("TELEGRAM_BOT_TOKEN=abc\n"), 0o644))

	out, _, err := te.run(t, "plugins", "-q", "--env-file", other)
	require.NoError(t, err)
	assert.Equal(t, "@elizaos/plugin-sql\n@elizaos/plugin-telegram\n@elizaos/plugin-bootstrap\n", out)
}

func TestPluginsTableExplainsPartialTwitter(t *testing.T) {
	te := newTestEnv(t)
	te.writeEnv(t, "TWITTER_API_KEY=a\nTWITTER_API_SECRET_KEY=b\nTWITTER_ACCESS_TOKEN=c\n")

	out, _, err := te.run(t, "plugins")
	require.NoError(t, err)

	assert.Contains(t, out, "PLUGIN")
	assert.Contains(t, out, "@elizaos/plugin-twitter")
	assert.Contains(t, out, "missing TWITTER_ACCESS_TOKEN_SECRET")
	assert.Contains(t, out, "unless IGNORE_BOOTSTRAP")
}

func TestCharacterToFile(t *testing.T) {
	te := newTestEnv(t)
	te.writeEnv(t, "OLLAMA_API_ENDPOINT=http://localhost:11434\n")
	output := filepath.Join(t.TempDir(), "out", "character.json")

	_, stderr, err := te.run(t, "character", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var c character.Character
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, "Eliza", c.Name)
	assert.Equal(t, []string{
		"@elizaos/plugin-sql",
		"@elizaos/plugin-ollama",
		"@elizaos/plugin-bootstrap",
	}, c.Plugins)
	assert.Len(t, c.MessageExamples, 3)
}

func TestCharacterYAML(t *testing.T) {
	te := newTestEnv(t)

	out, _, err := te.run(t, "character", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Eliza\n")
	assert.Contains(t, out, "messageExamples:\n")
	assert.Contains(t, out, "@elizaos/plugin-sql")
}

func TestCharacterRejectsUnknownFormat(t *testing.T) {
	te := newTestEnv(t)

	_, _, err := te.run(t, "character", "--format", "xml")
	var formatErr *character.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestPersonaShow(t *testing.T) {
	te := newTestEnv(t)

	out, _, err := te.run(t, "persona")
	require.NoError(t, err)
	assert.Contains(t, out, "Eliza")
	assert.Contains(t, out, "  - Expert cold calling trainer for real estate")
	assert.Contains(t, out, "  COLD CALLING SCRIPT:")
	assert.Contains(t, out, "(4 messages)")
}

func TestPersonaNotFound(t *testing.T) {
	te := newTestEnv(t)

	_, _, err := te.run(t, "persona", "nobody")
	var notFound *persona.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nobody", notFound.Name)
}

func TestInitThenPersonas(t *testing.T) {
	te := newTestEnv(t)

	out, _, err := te.run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "personas ready")

	_, err = os.Stat(filepath.Join(te.dataDir, "personas", persona.DefaultName, "persona.toml"))
	require.NoError(t, err)

	out, _, err = te.run(t, "personas")
	require.NoError(t, err)
	assert.Contains(t, out, persona.DefaultName)
	assert.NotContains(t, out, "built-in")
}

func TestPsAndStopWhenNotRunning(t *testing.T) {
	te := newTestEnv(t)

	out, _, err := te.run(t, "ps")
	require.NoError(t, err)
	assert.Contains(t, out, "stopped")

	out, _, err = te.run(t, "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "server not running")
}

func TestClientAddr(t *testing.T) {
	tests := map[string]string{
		":3000":          "127.0.0.1:3000",
		"0.0.0.0:3000":   "127.0.0.1:3000",
		"[::]:3000":      "127.0.0.1:3000",
		"10.0.0.5:3000":  "10.0.0.5:3000",
		"localhost:8080": "localhost:8080",
		"garbage":        "garbage",
	}
	for in, want := range tests {
		assert.Equal(t, want, clientAddr(in), in)
	}
}
