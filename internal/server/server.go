package server

import (
	"context"
	"embed"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"vrcsync/internal/playback"
)

//go:embed client.html
var clientFS embed.FS

// StateResponse is the JSON payload for GET /state. Nullable fields are
// pointers so an unknown duration stays distinguishable from a zero one.
type StateResponse struct {
	Playing              bool     `json:"playing"`
	Source               *string  `json:"source"`
	VideoID              *string  `json:"video_id"`
	WatchURL             *string  `json:"watch_url"`
	Status               string   `json:"status"`
	EstimatedPositionSec *float64 `json:"estimated_position_sec"`
	DurationSec          *float64 `json:"duration_sec"`
	LastEvent            *string  `json:"last_event"`
}

// Server exposes the playback state over local HTTP.
type Server struct {
	store *playback.Store
	http  *http.Server
}

// New builds the server for the given bind address.
func New(addr string, store *playback.Store) *Server {
	s := &Server{store: store}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)
	r.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/client", s.handleClient).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleClient).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	})

	s.http = &http.Server{
		Addr:              addr,
		Handler:           corsHandler.Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the configured HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// handleState renders a snapshot. The optional fudge query parameter
// accepts any non-negative float; anything invalid falls back to the
// default rather than erroring.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	fudge := playback.DefaultFudge
	if raw := r.URL.Query().Get("fudge"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed >= 0 {
			fudge = parsed
		}
	}

	view := s.store.Snapshot(fudge)
	resp := StateResponse{
		Playing:              view.Playing,
		Source:               nullable(view.Source),
		VideoID:              nullable(view.VideoID),
		WatchURL:             nullable(view.WatchURL),
		Status:               view.Status.String(),
		EstimatedPositionSec: view.EstimatedPositionSec,
		DurationSec:          view.DurationSec,
		LastEvent:            nullable(view.LastEvent),
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("server: encode /state response: %v", err)
	}
}

// handleClient serves the embedded browser UI that polls /state.
func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	page, err := clientFS.ReadFile("client.html")
	if err != nil {
		http.Error(w, "client page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// loggingMiddleware logs each request with its status and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		// /state is polled sub-second; logging every hit would drown
		// everything else.
		if r.URL.Path != "/state" {
			log.Printf("server: %s %s %d %v", r.Method, r.URL.Path, wrapped.status, time.Since(start))
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
