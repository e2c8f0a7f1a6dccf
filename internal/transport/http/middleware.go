package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/tenisx/catalog-api/internal/domain"
)

type contextKey string

// ContextKeyProduct is the key the validated product travels under.
const ContextKeyProduct contextKey = "product"

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger    hclog.Logger
	Validator *domain.Validation
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(logger hclog.Logger, validator *domain.Validation) *Middleware {
	return &Middleware{
		Logger:    logger,
		Validator: validator,
	}
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		// Add the request ID to the response header
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		duration := time.Since(start)
		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", duration,
		)
	})
}

// ValidationMiddleware validates the product in the request body and adds
// it to the context. Malformed JSON is a 400; a well-formed product that
// fails validation is a 422 with the field errors in the body.
func (m *Middleware) ValidationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		err := json.NewDecoder(r.Body).Decode(&product)
		if err != nil {
			m.Logger.Error("Error decoding product", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid product data")
			return
		}

		errs := m.Validator.Validate(&product)
		if len(errs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errs)
			return
		}

		// Add the validated product to the context
		ctx := context.WithValue(r.Context(), ContextKeyProduct, &product)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GzipMiddleware compresses HTTP responses using gzip if the client supports it
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			// create a gzip-compressed response writer
			wrw := newWrappedResponseWriter(rw)
			wrw.Header().Set("Content-Encoding", "gzip")

			next.ServeHTTP(wrw, r)
			defer wrw.Flush()

			return
		}

		// if client does not accept gzip, proceed normally
		next.ServeHTTP(rw, r)
	})
}

// wrappedResponseWriter wraps the original ResponseWriter and includes a gzip.Writer
type wrappedResponseWriter struct {
	rw http.ResponseWriter
	gw *gzip.Writer
}

func newWrappedResponseWriter(rw http.ResponseWriter) *wrappedResponseWriter {
	return &wrappedResponseWriter{gw: gzip.NewWriter(rw), rw: rw}
}

func (wrw *wrappedResponseWriter) Header() http.Header {
	return wrw.rw.Header()
}

// Write compresses data before writing it to the original ResponseWriter
func (wrw *wrappedResponseWriter) Write(d []byte) (int, error) {
	return wrw.gw.Write(d)
}

func (wrw *wrappedResponseWriter) WriteHeader(statusCode int) {
	wrw.rw.WriteHeader(statusCode)
}

// Flush ensures that all compressed data is sent and the gzip.Writer is closed
func (wrw *wrappedResponseWriter) Flush() {
	wrw.gw.Flush()
	wrw.gw.Close()
}
