package core

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func silenceErrorLog(t *testing.T) {
	t.Helper()
	orig := errorOutput
	errorOutput = io.Discard
	t.Cleanup(func() { errorOutput = orig })
}

func TestIndexHandler_EchoesEightDemosInOrder(t *testing.T) {
	stub := &stubRenderer{}
	handler := IndexHandler(stub, HandlerOptions{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.name != IndexTemplate {
		t.Errorf("expected %q to be rendered, got %q", IndexTemplate, stub.name)
	}
	if len(stub.values) != 1 {
		t.Errorf("expected only the demos variable, got %v", stub.values)
	}

	want := IndexTemplate + "\n" +
		"Component|component.html\n" +
		"Button|buttons.html\n" +
		"Link|link.html\n" +
		"Container|containers.html\n" +
		"Grid|grid.html\n" +
		"Lightbox|lightbox.html\n" +
		"Tab Container|tabcontainer.html\n" +
		"AJAX|ajax.html\n"
	if body := rec.Body.String(); body != want {
		t.Errorf("unexpected body:\n%s\nwant:\n%s", body, want)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("unexpected content-type: %s", ct)
	}
}

func TestIndexHandler_DebugHeader(t *testing.T) {
	handler := IndexHandler(&stubRenderer{}, HandlerOptions{DebugHeaders: true})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("X-Demos-Template"); got != IndexTemplate {
		t.Errorf("expected debug header %q, got %q", IndexTemplate, got)
	}
}

func TestIndexHandler_NotModifiedOnMatchingETag(t *testing.T) {
	handler := IndexHandler(&stubRenderer{}, HandlerOptions{})

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag header")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)

	if second.Code != http.StatusNotModified {
		t.Errorf("expected 304, got %d", second.Code)
	}
	if second.Body.Len() != 0 {
		t.Errorf("expected empty body on 304, got %q", second.Body.String())
	}
}

func TestIndexHandler_RenderFailureIs500(t *testing.T) {
	silenceErrorLog(t)
	handler := IndexHandler(&stubRenderer{err: errors.New("boom")}, HandlerOptions{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("expected internal error details not to leak into the body")
	}
}

func TestIndexHandler_MissingTemplateIs404(t *testing.T) {
	silenceErrorLog(t)
	handler := IndexHandler(&stubRenderer{err: ErrNotFound}, HandlerOptions{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDemoHandler(t *testing.T) {
	tests := []struct {
		template string
		status   int
	}{
		{"grid.html", http.StatusOK},
		{"tabcontainer.html", http.StatusOK},
		{"main.html", http.StatusNotFound},
		{"unknown.html", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			stub := &stubRenderer{}
			mux := http.NewServeMux()
			mux.Handle("GET "+DemoPrefix+"{template}", DemoHandler(stub, HandlerOptions{}))

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DemoPrefix+tt.template, nil))

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if tt.status != http.StatusOK {
				return
			}
			if stub.name != tt.template {
				t.Errorf("expected %q to be rendered, got %q", tt.template, stub.name)
			}
			demo, ok := stub.values["demo"].(DemoEntry)
			if !ok || demo.TemplateFile != tt.template {
				t.Errorf("expected demo variable for %q, got %v", tt.template, stub.values["demo"])
			}
		})
	}
}

func TestGenerateETag_ConsistentHash(t *testing.T) {
	data := []byte("<html>Hi</html>")
	tag1 := generateETag(data)
	tag2 := generateETag(data)

	if tag1 != tag2 {
		t.Errorf("ETag hash inconsistent: %s vs %s", tag1, tag2)
	}
	if tag1 == generateETag([]byte("<html>Bye</html>")) {
		t.Error("expected different content to produce a different ETag")
	}
}
