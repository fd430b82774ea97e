package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cvchat/internal/config"
	"cvchat/internal/cv"
	"cvchat/internal/llm"
	"cvchat/internal/store"
)

const (
	maxMessageLength = 2000
	historyWindow    = 5  // messages of history sent upstream
	maxHistory       = 10 // messages kept per session
	defaultSession   = "default"

	completionTimeout = 30 * time.Second
)

type Server struct {
	router    *chi.Mux
	store     *store.MemoryStore
	completer llm.Completer
	knowledge *cv.Knowledge
	cfg       config.Config
}

func New(cfg config.Config, completer llm.Completer, knowledge *cv.Knowledge) *Server {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{
		router:    r,
		store:     store.NewMemoryStore(maxHistory),
		completer: completer,
		knowledge: knowledge,
		cfg:       cfg,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/api/chat", s.handleChat)
	s.router.Post("/api/chat/reset", s.handleReset)
	s.router.Get("/api/cv/info", s.handleCVInfo)
}

func (s *Server) Router() http.Handler { return s.router }

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
	QueryType string `json:"query_type"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		s.writeError(w, http.StatusBadRequest, "no message provided")
		return
	}
	// The cap counts characters, not bytes, to match the client's input limit
	if utf8.RuneCountInString(message) > maxMessageLength {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("message too long (max %d characters)", maxMessageLength))
		return
	}

	sid := req.SessionID
	if sid == "" {
		sid = defaultSession
	}

	prompt, queryType := s.knowledge.SystemPrompt(message)

	messages := []llm.Message{{Role: llm.RoleSystem, Content: prompt}}
	messages = append(messages, s.store.Last(sid, historyWindow)...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	ctx, cancel := context.WithTimeout(r.Context(), completionTimeout)
	defer cancel()

	reply, err := s.completer.Complete(ctx, messages)
	if err != nil {
		log.Printf("[chat] completion failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "An error occurred processing your request")
		return
	}

	s.store.Append(sid, llm.Message{Role: llm.RoleUser, Content: message})
	s.store.Append(sid, llm.Message{Role: llm.RoleAssistant, Content: reply})

	s.respondJSON(w, http.StatusOK, chatResponse{
		Response:  reply,
		Status:    "success",
		SessionID: sid,
		QueryType: queryType,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	sid := req.SessionID
	if sid == "" {
		sid = defaultSession
	}
	s.store.Reset(sid)

	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":     "Conversation history reset",
		"session_id": sid,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"api_key_set": s.cfg.Provider != "groq" || s.cfg.GroqAPIKey != "",
		"cv_loaded":   s.knowledge.Loaded(),
		"cv_size":     s.knowledge.Size(),
	})
}

func (s *Server) handleCVInfo(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"cv_loaded": s.knowledge.Loaded(),
		"cv_size":   s.knowledge.Size(),
		"cv_file":   s.knowledge.Path(),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
