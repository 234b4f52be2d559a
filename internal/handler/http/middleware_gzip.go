package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writers and readers are pooled; gzip state allocation per request is
// not free.
var (
	compressorPool = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	decompressorPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently decompresses gzip request bodies and, when the
// client advertises gzip in Accept-Encoding, compresses the response.
// A body that claims gzip encoding but does not parse is rejected with
// 400 before the handler runs.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			body, err := decompressBody(req.Body)
			if err != nil {
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
			req.Body = body
			req.Header.Del("Content-Encoding")
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		compressor := compressorPool.Get().(*gzip.Writer)
		compressor.Reset(w)

		next.ServeHTTP(&compressedResponseWriter{ResponseWriter: w, compressor: compressor}, req)

		compressor.Close()
		compressorPool.Put(compressor)
	})
}

// decompressBody wraps the request body in a pooled gzip reader. The
// returned closer hands the reader back to the pool.
func decompressBody(body io.ReadCloser) (io.ReadCloser, error) {
	decompressor := decompressorPool.Get().(*gzip.Reader)
	if err := decompressor.Reset(body); err != nil {
		decompressorPool.Put(decompressor)
		return nil, err
	}

	return &pooledBodyReader{decompressor: decompressor}, nil
}

type pooledBodyReader struct {
	decompressor *gzip.Reader
}

func (r *pooledBodyReader) Read(p []byte) (int, error) {
	return r.decompressor.Read(p)
}

func (r *pooledBodyReader) Close() error {
	err := r.decompressor.Close()
	decompressorPool.Put(r.decompressor)
	return err
}

// compressedResponseWriter routes the body through a gzip writer and
// stamps the Content-Encoding header alongside the status.
type compressedResponseWriter struct {
	http.ResponseWriter
	compressor *gzip.Writer
}

func (w *compressedResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressedResponseWriter) Write(data []byte) (int, error) {
	return w.compressor.Write(data)
}
