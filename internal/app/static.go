package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// staticHandler serves the built frontend. Paths that do not name a file fall
// back to index.html so client side routes survive a reload. API paths and
// non-GET requests get the JSON 404. It returns nil when no frontend build is
// available.
func (app *Application) staticHandler() http.Handler {
	dir := app.config.StaticDir
	if dir == "" {
		return nil
	}

	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		app.logger.Warn("frontend build not found, static files disabled", "dir", dir)
		return nil
	}

	files := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if (r.Method != http.MethodGet && r.Method != http.MethodHead) ||
			strings.HasPrefix(r.URL.Path, apiBaseURL+"/") {
			app.notFoundResponse(w, r)
			return
		}

		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			http.ServeFile(w, r, index)
			return
		}

		files.ServeHTTP(w, r)
	})
}
