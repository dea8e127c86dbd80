package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	feedService "github.com/promodesk/social-publisher/internal/modules/feed/service"
	historyService "github.com/promodesk/social-publisher/internal/modules/history/service"
	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	publishService "github.com/promodesk/social-publisher/internal/modules/publish/service"
	"github.com/promodesk/social-publisher/internal/shared/config"
	"github.com/samber/lo"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes the publish engine over HTTP
type Server struct {
	cfg        *config.Config
	dispatcher *publishService.Service
	history    *historyService.Service
	feed       *feedService.Service
	logger     *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, dispatcher *publishService.Service, history *historyService.Service, feed *feedService.Service) *Server {
	return &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		history:    history,
		feed:       feed,
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/publish", s.handlePublish)
	mux.HandleFunc("POST /api/test-connection", s.handleTestConnection)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("GET /api/history/{businessID}", s.handleHistory)

	// RSS feed of recently published posts
	mux.HandleFunc("GET /feeds/{businessID}", s.handleFeed)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Publish server starting", "addr", addr)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // dispatches can wait on container polling
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

type publishRequest struct {
	BusinessID   string                `json:"business_id"`
	BusinessName string                `json:"business_name"`
	ContentID    string                `json:"content_id"`
	Platforms    []string              `json:"platforms"`
	Content      domain.PublishContent `json:"content"`
	Credentials  domain.Credentials    `json:"credentials"`
}

type connectionRequest struct {
	Platform    string             `json:"platform"`
	Credentials domain.Credentials `json:"credentials"`
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.BusinessID == "" || len(req.Platforms) == 0 || req.Content.Title == "" {
		http.Error(w, "business_id, platforms and content.title are required", http.StatusBadRequest)
		return
	}

	// Unknown names are passed through; the dispatcher answers them with a
	// validation failure so the response still has one result per platform.
	platforms := lo.Map(req.Platforms, func(raw string, _ int) domain.Platform {
		return domain.Platform(strings.ToLower(strings.TrimSpace(raw)))
	})

	results := s.dispatcher.PublishToAll(r.Context(), req.Content, platforms, req.Credentials, req.BusinessName)

	for _, result := range results {
		if _, err := s.history.Record(req.BusinessID, req.ContentID, req.Content.ContentType, result); err != nil {
			s.logger.Error("Failed to record publish result", "business_id", req.BusinessID, "platform", result.Platform, "error", err)
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleTestConnection(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	platform := domain.Platform(strings.ToLower(strings.TrimSpace(req.Platform)))
	status := s.dispatcher.TestConnection(r.Context(), platform, req.Credentials)
	s.writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	platform := domain.Platform(strings.ToLower(strings.TrimSpace(req.Platform)))
	response := map[string]any{"valid": true}
	if err := s.dispatcher.ValidateCredentials(platform, req.Credentials); err != nil {
		response["valid"] = false
		response["error"] = err.Error()
	}
	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	businessID := r.PathValue("businessID")
	if businessID == "" {
		http.Error(w, "Business ID is required", http.StatusBadRequest)
		return
	}

	records, err := s.history.List(businessID, 50)
	if err != nil {
		s.logger.Error("Error listing history", "business_id", businessID, "error", err)
		http.Error(w, "Failed to list history", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	businessID := r.PathValue("businessID")
	if businessID == "" {
		http.Error(w, "Business ID is required", http.StatusBadRequest)
		return
	}

	// Get base URL from request
	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)

	feed, err := s.feed.GenerateFeed(businessID, baseURL)
	if err != nil {
		s.logger.Error("Error generating feed", "business_id", businessID, "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Error encoding response", "error", err)
	}
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
