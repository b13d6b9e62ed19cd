package restyutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestDumpExchanges(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("<html>short and stout</html>"))
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "dumps")
	output, err := NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}

	client := resty.New()
	DumpExchanges(client, output)

	_, err = client.R().SetHeader("Referer", "https://example.com/").Get(server.URL + "/page")
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(dir, "0001.http"))
	if err != nil {
		t.Fatal(err)
	}
	dump := string(contents)
	require.Contains(t, dump, "GET "+server.URL+"/page")
	require.Contains(t, dump, "Referer: https://example.com/")
	require.Contains(t, dump, "418 "+server.URL+"/page")
	require.Contains(t, dump, "X-Test: yes")
	require.Contains(t, dump, "<html>short and stout</html>")
}

func TestDumpExchangesError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	dir := t.TempDir()
	output, err := NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}

	client := resty.New()
	DumpExchanges(client, output)
	_, err = client.R().Get(url)
	require.Error(t, err)

	contents, err := os.ReadFile(filepath.Join(dir, "0001.http"))
	if err != nil {
		t.Fatal(err)
	}
	require.Contains(t, string(contents), "---- ERROR ----")
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Add("B", "2")
	headers.Add("A", "1")
	headers.Add("A", "3")
	require.Equal(t, "A: 1\nA: 3\nB: 2", formatHeaders(headers))
	require.Equal(t, "", formatHeaders(http.Header{}))
}

func TestFormatRequestBody(t *testing.T) {
	get, err := http.NewRequest(http.MethodGet, "https://example.com/", nil)
	require.NoError(t, err)
	get.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "", formatRequestBody(get))

	get.Body = http.NoBody
	require.Equal(t, "", formatRequestBody(get))

	post, err := http.NewRequest(http.MethodPost, "https://example.com/", bytes.NewBufferString("fid=1001"))
	require.NoError(t, err)
	require.Equal(t, "fid=1001", formatRequestBody(post))

	post.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "", formatRequestBody(post))

	require.Equal(t, "", formatRequestBody(nil))
}

type memoryOutput struct {
	dumps []string
}

func (m *memoryOutput) Write(contents string) error {
	m.dumps = append(m.dumps, contents)
	return nil
}

type panickingOutput struct{}

func (panickingOutput) Write(string) error {
	panic("disk on fire")
}

func TestDumpExchangesBodylessGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	output := &memoryOutput{}
	client := resty.New()
	DumpExchanges(client, output)

	res, err := client.R().Get(server.URL)
	require.NoError(t, err)
	require.Equal(t, "ok", res.String())
	require.Len(t, output.dumps, 1)
	require.True(t, strings.HasPrefix(output.dumps[0], "---- REQUEST ----"))
	require.Contains(t, output.dumps[0], "200 "+server.URL)
}

func TestDumpExchangesSurvivesFailingOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := resty.New()
	DumpExchanges(client, panickingOutput{})

	res, err := client.R().Get(server.URL)
	require.NoError(t, err)
	require.Equal(t, "ok", res.String())
}
