// Package api provides the HTTP JSON API for the studyhall service.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Server is the HTTP API server.
type Server struct {
	mux        *http.ServeMux
	server     *http.Server
	logger     *slog.Logger
	meetings   *MeetingHandler
	students   *StudentHandler
	organizers *OrganizerHandler
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         "0.0.0.0:8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new API server.
func NewServer(cfg ServerConfig, meetings *MeetingHandler, students *StudentHandler, organizers *OrganizerHandler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	s := &Server{
		mux:        mux,
		logger:     logger,
		meetings:   meetings,
		students:   students,
		organizers: organizers,
	}

	s.registerRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// registerRoutes sets up the API routes.
func (s *Server) registerRoutes() {
	// Health check
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Meetings
	s.mux.HandleFunc("POST /meetings", s.meetings.AddMeeting)
	s.mux.HandleFunc("GET /meetings", s.meetings.ListMeetings)
	s.mux.HandleFunc("GET /meetings/report", s.meetings.AttendanceReport)
	s.mux.HandleFunc("PUT /meetings/{id}", s.meetings.UpdateMeeting)
	s.mux.HandleFunc("DELETE /meetings/{id}", s.meetings.DeleteMeeting)

	// Students
	s.mux.HandleFunc("POST /students", s.students.AddStudent)
	s.mux.HandleFunc("GET /students", s.students.ListStudents)

	// Organizers
	s.mux.HandleFunc("POST /meetings/{id}/organizers", s.organizers.AddOrganizer)
	s.mux.HandleFunc("GET /meetings/{id}/organizers", s.organizers.ListOrganizers)
	s.mux.HandleFunc("DELETE /meetings/{id}/organizers/{studentID}", s.organizers.RemoveOrganizer)
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the API server.
func (s *Server) Start() error {
	s.logger.Info("starting API server",
		"addr", s.server.Addr,
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.server.Shutdown(ctx)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Log error but can't do much at this point
			slog.Error("failed to encode JSON response", "error", err)
		}
	}
}

// writeError writes the {"error", "details"} failure body.
func writeError(w http.ResponseWriter, status int, errorMsg, details string) {
	writeJSON(w, status, map[string]string{
		"error":   errorMsg,
		"details": details,
	})
}

// writeMessage writes the {"message"} body used for not-found and confirmations.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"message": message,
	})
}
