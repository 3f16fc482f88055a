// Package static embeds the browser upload page served at the root path.
package static

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed all:public
var publicFS embed.FS

// GetFileSystem returns an http.FileSystem for the embedded public directory.
func GetFileSystem() http.FileSystem {
	fsys, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return http.FS(fsys)
}

// ContentTypeFor picks a content type based on the file extension.
func ContentTypeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".html"):
		return "text/html; charset=utf-8"
	case strings.HasSuffix(path, ".css"):
		return "text/css; charset=utf-8"
	case strings.HasSuffix(path, ".js"):
		return "application/javascript; charset=utf-8"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(path, ".ico"):
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
