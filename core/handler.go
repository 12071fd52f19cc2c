package core

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
)

const (
	IndexTemplate = "main.html"
	DemoPrefix    = "/demos/"
)

type HandlerOptions struct {
	DebugHeaders bool
}

func IndexValues() map[string]interface{} {
	return map[string]interface{}{
		"demos": Demos(),
	}
}

func DemoValues(demo DemoEntry) map[string]interface{} {
	return map[string]interface{}{
		"demos": Demos(),
		"demo":  demo,
	}
}

// IndexHandler renders main.html with the demo list as "demos".
func IndexHandler(r Renderer, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		html, err := RenderTemplate(r, IndexTemplate, IndexValues())
		if err != nil {
			writeRenderError(w, req, err)
			return
		}
		writeHTML(w, req, IndexTemplate, html, opts)
	}
}

// DemoHandler renders a single demo page. It expects the template name in
// the "template" path value and only serves templates from the demo list.
func DemoHandler(r Renderer, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		demo, ok := FindDemo(req.PathValue("template"))
		if !ok {
			http.NotFound(w, req)
			return
		}

		html, err := RenderTemplate(r, demo.TemplateFile, DemoValues(demo))
		if err != nil {
			writeRenderError(w, req, err)
			return
		}
		writeHTML(w, req, demo.TemplateFile, html, opts)
	}
}

func writeHTML(w http.ResponseWriter, req *http.Request, templateFile string, html []byte, opts HandlerOptions) {
	etag := generateETag(html)
	if opts.DebugHeaders {
		w.Header().Set("X-Demos-Template", templateFile)
	}
	w.Header().Set("ETag", etag)

	if match := req.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}

func writeRenderError(w http.ResponseWriter, req *http.Request, err error) {
	LogError(req, err)

	if IsNotFoundError(err) {
		http.NotFound(w, req)
		return
	}
	http.Error(w, "Template error", http.StatusInternalServerError)
}

func generateETag(content []byte) string {
	sum := sha1.Sum(content)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
