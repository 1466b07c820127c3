package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	})
}

func gunzip(t *testing.T, body io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(body)
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestAcceptsGzip(t *testing.T) {
	assert.True(t, acceptsGzip("gzip"))
	assert.True(t, acceptsGzip("deflate, GZIP;q=0.5"))
	assert.True(t, acceptsGzip("*"))
	assert.False(t, acceptsGzip(""))
	assert.False(t, acceptsGzip("br, deflate"))
	assert.False(t, acceptsGzip("gzip;q=0"))
}

func TestResponseOptimization_Gzip(t *testing.T) {
	handler := ResponseOptimization(jsonHandler(`{"symptoms":[]}`))

	req := httptest.NewRequest(http.MethodGet, "/api/symptoms", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=900, must-revalidate", rr.Header().Get("Cache-Control"))
	assert.Equal(t, `{"symptoms":[]}`, gunzip(t, rr.Body))
}

func TestResponseOptimization_NoGzipWithoutAcceptEncoding(t *testing.T) {
	handler := ResponseOptimization(jsonHandler(`{"symptoms":[]}`))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/symptoms", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"symptoms":[]}`, rr.Body.String())
}

func TestResponseOptimization_ETagRoundTrip(t *testing.T) {
	handler := ResponseOptimization(jsonHandler(`{"medications":[]}`))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/medications", nil))
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	t.Run("matching tag is not modified", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/medications", nil)
		req.Header.Set("If-None-Match", etag)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotModified, rr.Code)
		assert.Equal(t, etag, rr.Header().Get("ETag"))
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Zero(t, rr.Body.Len())
	})

	t.Run("tag is independent of encoding", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/medications", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, etag, rr.Header().Get("ETag"))
		assert.Equal(t, `{"medications":[]}`, gunzip(t, rr.Body))
	})

	t.Run("weak and listed tags match", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/medications", nil)
		req.Header.Set("If-None-Match", `"other", W/`+etag)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotModified, rr.Code)
	})

	t.Run("stale tag gets the body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/medications", nil)
		req.Header.Set("If-None-Match", `"stale"`)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"medications":[]}`, rr.Body.String())
	})
}

func TestResponseOptimization_ErrorsAndPostsAreNotTagged(t *testing.T) {
	failing := ResponseOptimization(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Medication not found"}`))
	}))

	rr := httptest.NewRecorder()
	failing.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/medications/x", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Header().Get("ETag"))
	assert.JSONEq(t, `{"error":"Medication not found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	ResponseOptimization(jsonHandler(`{}`)).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/favorites", nil))
	assert.Empty(t, rr.Header().Get("ETag"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}
