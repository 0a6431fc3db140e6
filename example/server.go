package example

import (
	"net/http"
	"path/filepath"
	"strings"
)

// RobotsTxt disallows everything below /private/
const RobotsTxt = `User-agent: *
Disallow: /private/
`

type server struct {
	root string
}

// NewServer serves motion scene fixtures from root
func NewServer(root string) http.Handler {
	return &server{
		root: root,
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/robots.txt" {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(RobotsTxt))
		return
	}
	if strings.Contains(r.URL.Path, "..") {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}
	if strings.HasSuffix(r.URL.Path, ".yaml") {
		w.Header().Set("Content-Type", "application/yaml")
	}
	http.ServeFile(w, r, filepath.Join(s.root, filepath.FromSlash(r.URL.Path)))
}
