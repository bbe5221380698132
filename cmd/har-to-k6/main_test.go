package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../internal/gen/testdata/login.har.json"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestConvert_Stdout(t *testing.T) {
	want, err := os.ReadFile("../../internal/gen/testdata/login.golden.js")
	require.NoError(t, err)

	cfg := writeFile(t, "config.yaml", "options:\n  vus: 1\n  duration: 10s\n")

	stdout, _, err := execute(t, "convert", fixture, "--config", cfg, "--verify")
	require.NoError(t, err)
	assert.Equal(t, string(want), stdout)
}

func TestConvert_OutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "load", "script.js")

	stdout, stderr, err := execute(t, "convert", fixture, "-o", out, "--sleep", "0")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "wrote script")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sleep(")
}

const withInvalid = `{"log": {"entries": [
  {"request": {"method": "GET", "url": "http://example.com/a"}},
  {"request": {"method": "GET", "url": "example.com/b"}}
]}}`

func TestConvert_AbortOnInvalid(t *testing.T) {
	path := writeFile(t, "bad.har", withInvalid)

	_, _, err := execute(t, "convert", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid request url (1): must be absolute or start with variable")
}

func TestConvert_SkipInvalid(t *testing.T) {
	path := writeFile(t, "bad.har", withInvalid)

	stdout, stderr, err := execute(t, "convert", path, "--on-invalid", "skip", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `http.get("http://example.com/a")`)
	assert.NotContains(t, stdout, "example.com/b")
	assert.Contains(t, stderr, `"msg":"skipping invalid entry"`)
}

func TestConvert_BadSettings(t *testing.T) {
	_, _, err := execute(t, "convert", fixture, "--on-invalid", "ignore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "on_invalid")
}

func TestConvert_Dump(t *testing.T) {
	_, stderr, err := execute(t, "convert", fixture, "--dump")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Method: (string) (len=4) \"POST\"")
}

func TestValidate(t *testing.T) {
	stdout, _, err := execute(t, "validate", fixture)
	require.NoError(t, err)
	assert.Equal(t, "3 entries are valid\n", stdout)

	path := writeFile(t, "bad.har", withInvalid)

	stdout, _, err = execute(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, "1 of 2 entries are invalid", err.Error())
	assert.Contains(t, stdout, "entry 1: [InvalidRequestUrl]")
}

func TestValidate_InvalidArchive(t *testing.T) {
	path := writeFile(t, "bad.har", `{"log": {}}`)

	_, _, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid archive")
}

func TestConfig(t *testing.T) {
	stdout, _, err := execute(t, "config", "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "workers: 3\n")
	assert.Contains(t, stdout, "on_invalid: abort\n")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "har-to-k6 dev (none)\n", stdout)
}
