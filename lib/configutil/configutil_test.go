package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string            `json:"name"`
	Retries int               `json:"retries"`
	Headers map[string]string `json:"headers"`
	Hosts   []string          `json:"hosts"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0644)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.json5")

	_, err := ReadConfig[testConfig](path)
	require.ErrorIs(t, err, os.ErrNotExist)

	writeFile(t, path, `{
		// comments and trailing commas are allowed
		name: "base",
		retries: 3,
		headers: {accept: "text/html"},
	}`)
	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, testConfig{Name: "base", Retries: 3, Headers: map[string]string{"accept": "text/html"}}, config)

	writeFile(t, filepath.Join(dir, "app.local.json5"), `{retries: 7, hosts: ["a"]}`)
	config, err = ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "base", config.Name)
	require.Equal(t, 7, config.Retries)
	require.Equal(t, []string{"a"}, config.Hosts)
}

func TestReadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json5")
	writeFile(t, path, `{name: `)
	_, err := ReadConfig[testConfig](path)
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestLoad(t *testing.T) {
	defaults := testConfig{
		Name:    "default",
		Retries: 5,
		Headers: map[string]string{"accept": "*/*", "referer": "https://example.com"},
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "app.json5")

	config, err := Load(path, defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, config)

	writeFile(t, path, `{retries: 1, headers: {accept: "text/html"}}`)
	config, err = Load(path, defaults)
	require.NoError(t, err)
	require.Equal(t, testConfig{
		Name:    "default",
		Retries: 1,
		Headers: map[string]string{"accept": "text/html", "referer": "https://example.com"},
	}, config)
}
