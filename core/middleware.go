package core

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/encoding/json"
)

const (
	RequestIDHeader = "X-Request-ID"
	MetricsPath     = "/metrics"
)

type ctxKey int

const requestIDKey ctxKey = iota

var (
	logOutput   io.Writer = os.Stdout
	errorOutput io.Writer = os.Stderr
	logMu       sync.Mutex
)

// RequestID reuses the incoming X-Request-ID or generates one, stores it in
// the request context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(req.Context(), requestIDKey, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Logger writes one JSON object per request once the handler returns.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, req)

		writeLogLine(logOutput, map[string]interface{}{
			"request_id": RequestIDFrom(req.Context()),
			"method":     req.Method,
			"path":       req.URL.Path,
			"status":     rec.Status(),
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000,
		})
	})
}

// LogError records a failed request on the error log.
func LogError(req *http.Request, err error) {
	writeLogLine(errorOutput, map[string]interface{}{
		"level":      "error",
		"request_id": RequestIDFrom(req.Context()),
		"method":     req.Method,
		"path":       req.URL.Path,
		"error":      err.Error(),
	})
}

func writeLogLine(w io.Writer, fields map[string]interface{}) {
	line, err := json.Marshal(fields)
	if err != nil {
		return
	}
	line = append(line, '\n')

	logMu.Lock()
	defer logMu.Unlock()
	w.Write(line)
}

type Metrics struct {
	requestCount *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
	}

	if err := reg.Register(m.requestCount); err != nil {
		return nil, err
	}
	return m, nil
}

// Middleware counts requests by method, matched route pattern and status.
// Requests for MetricsPath are not counted.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == MetricsPath {
			next.ServeHTTP(w, req)
			return
		}

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, req)

		pattern := req.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}
		m.requestCount.WithLabelValues(req.Method, pattern, strconv.Itoa(rec.Status())).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack lets the live reload websocket upgrade through the middleware chain.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("demos: response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
