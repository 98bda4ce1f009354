// Package server exposes the catalog proxy over HTTP and serves the
// static client shell.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"ziktok/catalog"
)

// Server routes catalog proxy requests to a Provider and serves static files.
type Server struct {
	provider  catalog.Provider
	staticDir string
}

// New creates a server around the given provider. staticDir may be empty to
// disable static file serving.
func New(provider catalog.Provider, staticDir string) *Server {
	return &Server{provider: provider, staticDir: staticDir}
}

// Handler returns the full route table wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/channel/{channelId}/shorts", s.handleShorts)
	mux.HandleFunc("GET /api/channel/search/{query}", s.handleSearch)

	if s.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}

	return withRequestLog(mux)
}

// errorResponse is the error envelope shared with the client.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func (s *Server) handleShorts(w http.ResponseWriter, r *http.Request) {
	channelID := r.PathValue("channelId")

	maxResults := int64(0)
	if raw := r.URL.Query().Get("maxResults"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			maxResults = n
		}
	}

	result, err := s.provider.GetShorts(r.Context(), channelID, maxResults)
	if err != nil {
		s.respondCatalogError(w, r, err, "Failed to fetch shorts")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.PathValue("query")

	channels, err := s.provider.SearchChannels(r.Context(), query)
	if err != nil {
		s.respondCatalogError(w, r, err, "Failed to search channels")
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Channels []catalog.ChannelInfo `json:"channels"`
	}{Channels: channels})
}

// respondCatalogError maps the catalog error taxonomy onto HTTP statuses and
// the error envelope: absent channel is 404, a structured upstream error is
// 500 with its message and reason, anything else is 500 with the fallback.
func (s *Server) respondCatalogError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, catalog.ErrChannelNotFound) {
		respondError(w, r, http.StatusNotFound, errorResponse{Error: "Channel not found"})
		return
	}

	var upErr *catalog.UpstreamError
	if errors.As(err, &upErr) {
		respondError(w, r, http.StatusInternalServerError, errorResponse{
			Error:   "YouTube API error",
			Details: upErr.Message,
			Reason:  upErr.Reason,
		})
		return
	}

	respondError(w, r, http.StatusInternalServerError, errorResponse{
		Error:   fallback,
		Details: err.Error(),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("server: encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, resp errorResponse) {
	log.Printf("server: [%s] %s %s -> %d: %s (%s)",
		requestID(r), r.Method, r.URL.Path, status, resp.Error, resp.Details)
	respondJSON(w, status, resp)
}

type ctxKey int

const requestIDKey ctxKey = 0

// withRequestLog tags every request with an ID and logs its route.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		r = r.WithContext(contextWithRequestID(r.Context(), id))
		log.Printf("server: [%s] %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func contextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return "-"
}
