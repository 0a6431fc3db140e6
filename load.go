package motionmodel

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/foomo/motionmodel/config"
)

type source struct {
	data        []byte
	contentType string
	code        int
	path        string
}

func isHTTP(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func (r *Reader) load(ctx context.Context, location string) (src *source, err error) {
	if !isHTTP(location) {
		filename := strings.TrimPrefix(location, "file://")
		data, errRead := os.ReadFile(filename)
		if errRead != nil {
			return nil, errRead
		}
		return &source{data: data, path: filename}, nil
	}
	u, errParse := url.Parse(location)
	if errParse != nil {
		return nil, errParse
	}
	errRobots := r.allowedByRobots(ctx, u)
	if errRobots != nil {
		return nil, errRobots
	}
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if errRequest != nil {
		return nil, errRequest
	}
	req.Header.Set("User-Agent", r.conf.Agent)
	resp, errGet := r.client.Do(req)
	if errGet != nil {
		return nil, errGet
	}
	defer resp.Body.Close()
	src = &source{
		code:        resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		path:        u.Path,
	}
	if resp.StatusCode != http.StatusOK {
		return src, fmt.Errorf("unexpected response code: %d, status: %s", resp.StatusCode, resp.Status)
	}
	data, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return src, errRead
	}
	src.data = data
	return src, nil
}

// detectFormat prefers the content type and falls back to the file extension
func detectFormat(src *source) string {
	switch {
	case strings.Contains(src.contentType, "html"):
		return config.FormatHTML
	case strings.Contains(src.contentType, "yaml"):
		return config.FormatYAML
	}
	switch strings.ToLower(path.Ext(src.path)) {
	case ".json5":
		return config.FormatJSON5
	case ".yaml", ".yml":
		return config.FormatYAML
	case ".html", ".htm":
		return config.FormatHTML
	}
	return config.FormatJSON
}
