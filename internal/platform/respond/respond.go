// Package respond renders RFC 9457 problem documents for failures that happen
// outside huma operations: unknown routes, wrong methods and panics.
package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/cicd-demo-app/internal/platform/logging"
	appmiddleware "github.com/janisto/cicd-demo-app/internal/platform/middleware"
)

const (
	msgNotFound            = "resource not found"
	msgInternalServerError = "internal server error"
)

// NotFoundHandler emits a 404 problem document.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusNotFound, msgNotFound)
	}
}

// MethodNotAllowedHandler emits a 405 problem document and lists the methods
// the matched path does accept in the Allow header.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		WriteProblem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
	}
}

// Recoverer turns panics into 500 problem documents. When the handler already
// started the response the partial output is left alone. http.ErrAbortHandler
// is re-panicked so net/http can abort the connection.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				if errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				applog.LogError(r.Context(), "panic recovered", err, zap.ByteString("stack", debug.Stack()))
				if rw.wroteHeader {
					return
				}
				WriteProblem(rw, r, http.StatusInternalServerError, msgInternalServerError)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// WriteProblem writes a problem document for status, encoded as CBOR when the
// request prefers it and JSON otherwise.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	problem := &huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	contentType := "application/problem+json"
	var body []byte
	var err error
	switch selectFormat(r.Header.Get("Accept")) {
	case formatCBOR:
		contentType = "application/problem+cbor"
		body, err = cbor.Marshal(problem)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		err = enc.Encode(problem)
		body = buf.Bytes()
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode problem", err, zap.Int("status", status))
		http.Error(w, http.StatusText(status), status)
		return
	}

	logProblem(r, status, detail)

	h := w.Header()
	appmiddleware.AddVary(h, "Accept")
	h.Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		applog.LogWarn(r.Context(), "failed to write problem", zap.Error(err))
	}
}

func logProblem(r *http.Request, status int, detail string) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if status >= http.StatusInternalServerError {
		applog.LogError(r.Context(), detail, nil, fields...)
		return
	}
	applog.LogWarn(r.Context(), detail, fields...)
}

// allowedMethods asks chi which methods would have matched the request path.
// HEAD is listed wherever GET is.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	candidates := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	var allowed []string
	getOK := false
	for _, method := range candidates {
		ok := rctx.Routes.Match(chi.NewRouteContext(), method, routePath)
		switch method {
		case http.MethodGet:
			getOK = ok
		case http.MethodHead:
			// chi's GetHead answers HEAD with the GET route.
			ok = ok || getOK
		}
		if ok {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// responseWriter records whether the response has started.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
