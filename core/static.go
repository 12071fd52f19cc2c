package core

import (
	"bytes"
	"compress/gzip"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"
)

// StaticHandler serves embedded assets under /static/. In dev responses are
// never cached; in prod they are immutable and gzipped when accepted.
func StaticHandler(env string, assets *Assets) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		name := req.PathValue("file")
		if assets == nil || name == "" {
			http.NotFound(w, req)
			return
		}

		content, hash, err := assets.Load(name)
		if err != nil {
			http.NotFound(w, req)
			return
		}

		w.Header().Set("Content-Type", detectMimeType(name))
		w.Header().Set("ETag", `"`+hash+`"`)
		if env == "dev" {
			w.Header().Set("Cache-Control", "no-store")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		}

		if env != "dev" && acceptsGzip(req) {
			var buf bytes.Buffer
			gz := gzip.NewWriter(&buf)
			if _, err := gz.Write(content); err == nil && gz.Close() == nil {
				w.Header().Set("Content-Encoding", "gzip")
				w.Header().Set("Vary", "Accept-Encoding")
				content = buf.Bytes()
			}
		}

		http.ServeContent(w, req, name, time.Time{}, bytes.NewReader(content))
	}
}

func detectMimeType(name string) string {
	switch ext := path.Ext(name); ext {
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
