package example

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getExampleDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename))
}

func TestServer(t *testing.T) {
	s := NewServer(filepath.Join(getExampleDir(), "htdocs"))
	testServer := httptest.NewServer(s)
	defer testServer.Close()

	body, contentType, errCall := call(testServer, "/scenes/basic.json")
	require.NoError(t, errCall)
	assert.Contains(t, string(body), `"Header"`)
	assert.Contains(t, contentType, "json")

	_, contentType, errCall = call(testServer, "/scenes/basic.yaml")
	require.NoError(t, errCall)
	assert.Equal(t, "application/yaml", contentType)

	body, _, errCall = call(testServer, "/robots.txt")
	require.NoError(t, errCall)
	assert.Equal(t, RobotsTxt, string(body))

	_, _, errCall = call(testServer, "/scenes/missing.json")
	assert.Error(t, errCall)
}

func call(testServer *httptest.Server, path string) (body []byte, contentType string, err error) {
	resp, errGet := http.Get(testServer.URL + path)
	if errGet != nil {
		return nil, "", errGet
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.New("unexpected status: " + resp.Status)
	}
	body, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return nil, "", errRead
	}
	return body, resp.Header.Get("Content-Type"), nil
}
