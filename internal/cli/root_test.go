package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "numkit", cmd.Use)
	assert.Contains(t, cmd.Long, "IEEE 754")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"encode", "gcd", "words", "test", "history"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	for _, name := range []string{"config", "db", "resume"} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Empty(t, flag.DefValue)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "gcd", "4", "6")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numkit.cue")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestConfig_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
algorithm: "stein"
format:    "json"
`)

	out, _, err := execute(t, "--config", path, "gcd", "12", "18")
	require.NoError(t, err)

	var result GCDResult
	resp := decodeResponse(t, out, &result)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "stein", result.Algorithm)
	assert.Equal(t, "6", result.GCD)
}

func TestConfig_FlagsWin(t *testing.T) {
	path := writeConfig(t, `
algorithm: "stein"
format:    "json"
`)

	out, _, err := execute(t, "--config", path, "--format", "text", "gcd", "--algorithm", "euclid", "12", "18")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestConfig_Database(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	path := writeConfig(t, `db: "`+db+`"`)

	_, _, err := execute(t, "--config", path, "gcd", "4", "6")
	require.NoError(t, err)

	out, _, err := execute(t, "--db", db, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "gcd/euclid(4, 6) = 2")
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown field", `algorithm: "stein"
colour: "red"`},
		{"bad algorithm", `algorithm: "modulo"`},
		{"bad format", `format: "xml"`},
		{"wrong type", `verbose: "yes"`},
		{"syntax", `algorithm: `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.src)
			_, _, err := execute(t, "--config", path, "gcd", "4", "6")
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, err.Error(), "failed to load config")
		})
	}
}

func TestConfig_MissingFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.cue"), "gcd", "4", "6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
algorithm: "binary"
format:    "text"
db:        "numkit.db"
verbose:   true
`), "numkit.cue")
	require.NoError(t, err)
	assert.Equal(t, &Config{Algorithm: "binary", Format: "text", Database: "numkit.db", Verbose: true}, cfg)
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil, "empty.cue")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}
