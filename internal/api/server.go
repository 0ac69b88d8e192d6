// Package api implements the svgcast HTTP server.
//
// The server exposes a single conversion endpoint plus a health check:
//
//	POST /v1/convert?unit=mm&decimals=10000   JSON scene in, SVG document out
//	GET  /healthz                             liveness probe
//
// Conversion responses carry the image/svg+xml media type. Errors are
// returned as JSON with the machine-readable code from pkg/errors. Rendered
// documents are memoized in the configured cache, keyed on the request body
// and options; determinism of the serializer makes cached responses
// byte-identical to fresh ones.
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/jozzs/svgcast/pkg/cache"
	"github.com/jozzs/svgcast/pkg/errors"
	"github.com/jozzs/svgcast/pkg/sceneio"
	"github.com/jozzs/svgcast/pkg/svg"
)

// maxSceneBytes bounds request bodies so a misbehaving client cannot
// exhaust memory.
const maxSceneBytes = 16 << 20

// cacheTTL for rendered documents in the shared cache.
const cacheTTL = 24 * time.Hour

// Server handles scene conversion requests.
type Server struct {
	logger *log.Logger
	store  cache.Cache
}

// NewServer creates a server backed by the given cache. A nil store
// disables caching.
func NewServer(logger *log.Logger, store cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if store == nil {
		store = cache.NewNullCache()
	}
	return &Server{logger: logger, store: store}
}

// Router builds the HTTP handler with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/convert", s.handleConvert)

	return r
}

// requestLogger assigns each request an ID and logs method, path, status,
// and duration on completion.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleConvert reads a JSON scene from the body and responds with the
// serialized SVG document.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSceneBytes))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidScene, err, "read request body"))
		return
	}

	key := cache.DocumentKey(body, opts.Unit, opts.Decimals)
	if doc, hit, cacheErr := s.store.Get(r.Context(), key); cacheErr == nil && hit {
		s.writeDocument(w, doc, true)
		return
	}

	objects, err := sceneio.ReadScene(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts.Logger = s.logger
	doc, err := svg.Serialize(opts, objects...)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Set(r.Context(), key, doc, cacheTTL); err != nil {
		s.logger.Debug("cache write failed", "err", err)
	}
	s.writeDocument(w, doc, false)
}

// optionsFromQuery builds serializer options from query parameters.
// Defaults apply inside Serialize; only explicit parameters are parsed here.
func optionsFromQuery(r *http.Request) (svg.Options, error) {
	opts := svg.Options{Unit: svg.DefaultUnit, Decimals: svg.DefaultDecimals}

	if unit := r.URL.Query().Get("unit"); unit != "" {
		opts.Unit = unit
	}
	if raw := r.URL.Query().Get("decimals"); raw != "" {
		decimals, err := strconv.Atoi(raw)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidDecimals, err, "decimals %q", raw)
		}
		opts.Decimals = decimals
	}
	return opts, nil
}

func (s *Server) writeDocument(w http.ResponseWriter, doc []byte, cached bool) {
	w.Header().Set("Content-Type", svg.MimeType)
	if cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError maps error codes to HTTP statuses and writes the JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidUnit,
		errors.ErrCodeInvalidDecimals, errors.ErrCodeInvalidScene:
		status = http.StatusBadRequest
	case errors.ErrCodeUnsupportedInput:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	body.Error.Message = errors.UserMessage(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
