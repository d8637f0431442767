// Package server implements the image proxy. It holds the upstream access key
// so that clients only talk to the proxy.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/provider"
)

const (
	defaultCount   = 12
	maxCount       = 30
	requestTimeout = 30 * time.Second
	shutdownGrace  = 10 * time.Second
)

const (
	msgMissingKey   = "Unsplash API key not configured"
	msgFetchFailed  = "Failed to fetch images"
	msgRateLimited  = "rate limit exceeded"
	msgInvalidCount = "count must be a number between 1 and 30"
)

// Server serves reference images fetched from the upstream provider.
type Server struct {
	client  provider.Client
	limiter *RateLimiter
	logger  *slog.Logger
	router  chi.Router
}

// New returns a Server that fetches images with client and limits each
// client address according to cfg.
func New(client provider.Client, cfg config.ServerConfig, logger *slog.Logger) *Server {
	s := &Server{
		client:  client,
		limiter: NewRateLimiter(cfg.RateLimit, cfg.Burst),
		logger:  logger,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)

	r.With(s.rateLimit).Get(provider.ImagesPath, s.handleImages)

	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("image proxy listening", slog.String("addr", addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down image proxy")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleImages answers GET /api/images. Missing parameters default to
// full-body, sfw and 12 images. Unknown body parts and content types are
// passed on so that the provider falls back to its full-body sfw query.
func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	part := config.FullBody
	if v := q.Get("bodyPart"); v != "" {
		part = config.BodyPart(v)
	}

	contentType := config.SFW
	if v := q.Get("contentType"); v != "" {
		contentType = config.ContentType(v)
	}

	count := defaultCount

	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxCount {
			writeError(w, http.StatusBadRequest, msgInvalidCount)
			return
		}

		count = n
	}

	images, err := s.client.FetchReferenceImages(r.Context(), part, contentType, count)
	if err != nil {
		s.logger.Error("fetching images failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("body_part", string(part)),
			slog.Any("error", err),
		)

		msg := msgFetchFailed
		if errors.Is(err, provider.ErrMissingAccessKey) {
			msg = msgMissingKey
		}

		writeError(w, http.StatusInternalServerError, msg)

		return
	}

	writeJSON(w, http.StatusOK, provider.ImagesResponse{Images: images})
}

// logRequests logs every request at debug level once it has been served.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("request served",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// rateLimit rejects clients that exceed their request budget.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, msgRateLimited)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer

	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encoding response failed", slog.Any("error", err))

		buf.Reset()
		buf.WriteString(`{"error":"failed to encode response"}` + "\n")

		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, _ = w.Write(buf.Bytes())
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, provider.ImagesResponse{Error: message})
}
