package website

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// IndexTemplate is the template rendered for the root page.
const IndexTemplate = "index"

type Website struct {
	logger       *zap.Logger
	templatesDir string
}

func New(logger *zap.Logger, templatesDir string) *Website {
	return &Website{
		logger:       logger,
		templatesDir: templatesDir,
	}
}

// Render parses the named template from disk and executes it with no data.
// The file is read on every call so changes and removals show up immediately.
func (ws *Website) Render(name string) ([]byte, error) {
	path := filepath.Join(ws.templatesDir, name+".html")

	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// Index serves the index page.
func (ws *Website) Index(w http.ResponseWriter, r *http.Request) {
	page, err := ws.Render(IndexTemplate)
	if err != nil {
		ws.logger.Error("failed to render page", zap.String("template", IndexTemplate), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		ws.logger.Error("Error writing response", zap.Error(err))
	}
}

// Static serves files below dir, stripping prefix from the request path.
// Directories and non-canonical paths are treated as not found.
func Static(prefix, dir string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, prefix)
		if name == "" || path.Clean("/"+name) != "/"+name {
			http.NotFound(w, r)
			return
		}

		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		files.ServeHTTP(w, r)
	})
}
