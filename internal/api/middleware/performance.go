package middleware

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"sync"
)

const minCompressBytes = 512

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		gz, _ := gzip.NewWriterLevel(io.Discard, 5)
		return gz
	},
}

// bufferedResponse holds a handler's output so it can be hashed and
// compressed before anything reaches the client.
type bufferedResponse struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header), statusCode: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) Write(p []byte) (int, error) { return b.body.Write(p) }

func (b *bufferedResponse) WriteHeader(statusCode int) { b.statusCode = statusCode }

func (b *bufferedResponse) copyHeaders(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
}

// Compression gzips response bodies when the client accepts it. Empty and
// small bodies are sent as-is.
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		buf := newBufferedResponse()
		next.ServeHTTP(buf, r)
		buf.copyHeaders(w)
		w.Header().Add("Vary", "Accept-Encoding")

		if buf.body.Len() < minCompressBytes {
			w.WriteHeader(buf.statusCode)
			w.Write(buf.body.Bytes())
			return
		}

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.WriteHeader(buf.statusCode)

		gz := gzipWriterPool.Get().(*gzip.Writer)
		defer gzipWriterPool.Put(gz)
		gz.Reset(w)
		gz.Write(buf.body.Bytes())
		gz.Close()
	})
}

// ETag answers conditional GETs with 304 when the body hash matches
// If-None-Match.
func ETag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		buf := newBufferedResponse()
		next.ServeHTTP(buf, r)
		buf.copyHeaders(w)

		if buf.statusCode != http.StatusOK {
			w.WriteHeader(buf.statusCode)
			w.Write(buf.body.Bytes())
			return
		}

		hash := sha256.Sum256(buf.body.Bytes())
		etag := `"` + hex.EncodeToString(hash[:16]) + `"`
		w.Header().Set("ETag", etag)

		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(buf.body.Bytes())
	})
}

// CacheControl middleware adds cache headers based on path patterns. Per-user
// routes are never publicly cacheable.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case r.Method != http.MethodGet:
			w.Header().Set("Cache-Control", "no-store")
		case path == "/api/interests":
			// The catalog only changes on deploy
			w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
		case path == "/api/events/search":
			w.Header().Set("Cache-Control", "public, max-age=120, must-revalidate")
		case strings.HasPrefix(path, "/api/events"):
			w.Header().Set("Cache-Control", "public, max-age=300, must-revalidate")
		default:
			w.Header().Set("Cache-Control", "private, no-cache, must-revalidate")
		}

		next.ServeHTTP(w, r)
	})
}

// ResponseOptimization combines compression, ETag, and cache control
func ResponseOptimization(next http.Handler) http.Handler {
	return CacheControl(ETag(Compression(next)))
}
