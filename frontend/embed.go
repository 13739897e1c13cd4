package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

// FS embeds the dashboard static assets
//
//go:embed all:static
var FS embed.FS

// GetHTTPFS returns the embedded static filesystem for HTTP serving
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		return nil, err
	}

	// app.css is linked from every page, so its absence means a broken build
	if _, err := fs.Stat(sub, "app.css"); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: "app.css", Err: fs.ErrNotExist}
	}

	return http.FS(sub), nil
}
