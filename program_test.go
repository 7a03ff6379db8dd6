package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout string
	stderr string
	code   int
}

func runCli(t *testing.T, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := 0
	execute(args, &stdout,
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(c int) { code = c }),
	)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func withoutConfig(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestSelectCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "One", args: []string{"select", "21", "день", "дня", "дней"}, expected: "день\n"},
		{name: "Teen", args: []string{"select", "112", "день", "дня", "дней"}, expected: "дней\n"},
		{name: "Negative", args: []string{"select", "--", "-22", "день", "дня", "дней"}, expected: "дня\n"},
		{name: "Fraction", args: []string{"select", "1.5", "час", "часа", "часов"}, expected: "часа\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runCli(t, tt.args...)
			assert.Equal(t, 0, result.code, result.stderr)
			assert.Equal(t, tt.expected, result.stdout)
		})
	}
}

func TestSelectCommandFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{name: "Short form set", args: []string{"select", "5", "день", "дня"}, message: "invalid form set"},
		{name: "Malformed number", args: []string{"select", "five", "день", "дня", "дней"}, message: "invalid quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runCli(t, tt.args...)
			assert.Equal(t, 1, result.code)
			assert.Contains(t, result.stderr, tt.message)
			assert.Empty(t, result.stdout)
		})
	}
}

func TestWordCommand(t *testing.T) {
	withoutConfig(t)

	result := runCli(t, "word", "3", "минута")
	assert.Equal(t, 0, result.code, result.stderr)
	assert.Equal(t, "3 минуты\n", result.stdout)

	result = runCli(t, "word", "2.5", "Час")
	assert.Equal(t, 0, result.code, result.stderr)
	assert.Equal(t, "2,5 часа\n", result.stdout)

	result = runCli(t, "word", "3", "котлета")
	assert.Equal(t, 1, result.code)
	assert.Contains(t, result.stderr, "unknown word")
}

func TestWordCommandUsesConfiguredDictionary(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.toml")
	require.NoError(t, os.WriteFile(words, []byte(`[words]
"яблоко" = { one = "яблоко", few = "яблока", many = "яблок" }
`), 0o600))

	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("dictionary:\n  path: "+words+"\n"), 0o600))
	t.Setenv("CONFIG_PATH", config)

	result := runCli(t, "word", "42", "яблоко")
	assert.Equal(t, 0, result.code, result.stderr)
	assert.Equal(t, "42 яблока\n", result.stdout)
}

func TestWordsCommand(t *testing.T) {
	withoutConfig(t)

	result := runCli(t, "words")
	assert.Equal(t, 0, result.code, result.stderr)
	assert.Contains(t, result.stdout, "день\n")
	assert.Contains(t, result.stdout, "рубль\n")
}

func TestRublesCommand(t *testing.T) {
	result := runCli(t, "rubles", "3.99")
	assert.Equal(t, 0, result.code, result.stderr)
	assert.Equal(t, "3,99 рубля\n", result.stdout)

	result = runCli(t, "rubles", "3,99")
	assert.Equal(t, 1, result.code)
	assert.Contains(t, result.stderr, "invalid quantity")
}

func TestAgeCommand(t *testing.T) {
	createdAt := time.Now().Add(-73 * time.Hour).UTC().Format(time.RFC3339)

	result := runCli(t, "age", createdAt)
	assert.Equal(t, 0, result.code, result.stderr)
	assert.Equal(t, "3 дня назад\n", result.stdout)

	result = runCli(t, "age", "--lang=en", createdAt)
	assert.Equal(t, 0, result.code, result.stderr)
	assert.Equal(t, "3 days ago\n", result.stdout)

	result = runCli(t, "age", "yesterday")
	assert.Equal(t, 1, result.code)
	assert.Contains(t, result.stderr, "RFC 3339")
}

func TestUnknownCommand(t *testing.T) {
	result := runCli(t, "decline", "5")
	assert.NotZero(t, result.code)
	assert.Contains(t, result.stderr, "unexpected argument")
}
