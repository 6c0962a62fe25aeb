// Package api exposes the conversation engine over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/listingone/leadgen/internal/engine"
	"github.com/listingone/leadgen/internal/store"
)

type Server struct {
	router *chi.Mux
	engine *engine.Engine
	logger *slog.Logger
	http   *http.Server
}

func NewServer(port int, eng *engine.Engine, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		engine: eng,
		logger: logger,
		http: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}

	router.Get("/api/health", s.health)
	router.Post("/api/chat", s.chat)
	router.Route("/api/conversation/{sessionID}", func(r chi.Router) {
		r.Get("/", s.getConversation)
		r.Delete("/", s.resetConversation)
	})
	router.Get("/api/user-data/{sessionID}", s.getUserData)
	router.Get("/api/leads", s.listLeads)
	router.Get("/api/analytics", s.analytics)

	return s
}

func (s *Server) Start() error {
	s.logger.Info("API server starting", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.engine.SubmitMessage(r.Context(), req.SessionID, req.Message)
	switch {
	case errors.Is(err, engine.ErrEmptyMessage), errors.Is(err, engine.ErrMessageTooLong):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.logger.Error("chat turn failed", "session_id", req.SessionID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) getConversation(w http.ResponseWriter, r *http.Request) {
	sess, err := s.engine.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load conversation")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) resetConversation(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	preserve := r.URL.Query().Get("preserve") == "true"

	err := s.engine.Reset(r.Context(), sessionID, preserve)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reset conversation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":       sessionID,
		"reset":            true,
		"record_preserved": preserve,
	})
}

func (s *Server) getUserData(w http.ResponseWriter, r *http.Request) {
	sess, err := s.engine.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load conversation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":            sess.ID,
		"record":                sess.Record,
		"completed_fields":      sess.CompletedFields,
		"completion_rate":       sess.CompletionRate,
		"conversation_complete": sess.ConversationComplete,
		"validation":            sess.Validation,
	})
}

func (s *Server) listLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.engine.Leads(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"leads": leads,
		"count": len(leads),
	})
}

func (s *Server) analytics(w http.ResponseWriter, r *http.Request) {
	a, err := s.engine.Analytics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute analytics")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
