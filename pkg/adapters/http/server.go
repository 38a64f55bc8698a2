// Package http exposes onboarding sessions over a JSON API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/jornada"
	"github.com/aretw0/jornada/internal/logging"
	"github.com/aretw0/jornada/internal/presentation/graph"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Server serves the onboarding API over a session manager.
type Server struct {
	Manager  *session.Manager
	Streams  *StreamManager
	validate *validator.Validate
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a Server over the manager.
func NewServer(manager *session.Manager, opts ...Option) *Server {
	s := &Server{
		Manager:  manager,
		Streams:  NewStreamManager(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates a new HTTP handler for the manager.
func NewHandler(manager *session.Manager, opts ...Option) http.Handler {
	return NewServer(manager, opts...).Routes()
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/graph", s.GetGraph)
	r.Get("/graph/mermaid", s.GetMermaid)

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", s.ListSessions)
		r.Post("/", s.CreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetSession)
			r.Delete("/", s.DeleteSession)
			r.Put("/answers/{key}", s.RecordAnswer)
			r.Post("/advance", s.Advance)
			r.Post("/back", s.GoBack)
			r.Post("/jump", s.Jump)
			r.Post("/profile", s.CompleteFlow)
			r.Get("/events", s.SubscribeEvents)
		})
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionView is the API representation of a session.
type SessionView struct {
	ID        string               `json:"id"`
	Node      *domain.QuestionNode `json:"node,omitempty"`
	State     domain.FlowState     `json:"state"`
	Answers   map[string]any       `json:"answers"`
	Profile   *domain.UserProfile  `json:"profile,omitempty"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// AdvanceView is the response of POST /sessions/{id}/advance.
type AdvanceView struct {
	Outcome jornada.Outcome `json:"outcome"`
	From    string          `json:"from"`
	To      string          `json:"to,omitempty"`
	Reason  string          `json:"reason,omitempty"`
	Session SessionView     `json:"session"`
}

// BackView is the response of POST /sessions/{id}/back.
type BackView struct {
	Moved   bool        `json:"moved"`
	Session SessionView `json:"session"`
}

type createSessionRequest struct {
	ID string `json:"id" validate:"omitempty,max=128,excludesall=/\\"`
}

type answerRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

type jumpRequest struct {
	NodeID string `json:"node_id" validate:"required"`
}

// CreateSession handles POST /sessions. The body is optional.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body createSessionRequest
	if r.ContentLength != 0 {
		if !s.decode(w, r, &body) {
			return
		}
	}

	rec, err := s.Manager.Start(r.Context(), body.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("session created", "session_id", rec.State.SessionID)
	s.writeJSON(w, http.StatusCreated, s.view(rec))
}

// ListSessions handles GET /sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Manager.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"sessions": ids})
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Manager.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.view(rec))
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.Manager.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordAnswer handles PUT /sessions/{id}/answers/{key}.
func (s *Server) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	var body answerRequest
	if !s.decode(w, r, &body) {
		return
	}
	var value any
	if err := json.Unmarshal(body.Value, &value); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	key := chi.URLParam(r, "key")
	s.update(w, r, func(ctx context.Context, sess *jornada.Session) error {
		return sess.RecordAnswer(ctx, key, value)
	}, func(v SessionView) any { return v })
}

// Advance handles POST /sessions/{id}/advance. A blocked advance is not an
// error: the response carries the outcome and the reason.
func (s *Server) Advance(w http.ResponseWriter, r *http.Request) {
	var res jornada.AdvanceResult
	s.update(w, r, func(ctx context.Context, sess *jornada.Session) error {
		var err error
		res, err = sess.Advance(ctx)
		return err
	}, func(v SessionView) any {
		out := AdvanceView{Outcome: res.Outcome, From: res.From, To: res.To, Session: v}
		if res.Reason != nil {
			out.Reason = res.Reason.Error()
		}
		return out
	})
}

// GoBack handles POST /sessions/{id}/back.
func (s *Server) GoBack(w http.ResponseWriter, r *http.Request) {
	var moved bool
	s.update(w, r, func(ctx context.Context, sess *jornada.Session) error {
		moved = sess.GoBack(ctx)
		return nil
	}, func(v SessionView) any {
		return BackView{Moved: moved, Session: v}
	})
}

// Jump handles POST /sessions/{id}/jump.
func (s *Server) Jump(w http.ResponseWriter, r *http.Request) {
	var body jumpRequest
	if !s.decode(w, r, &body) {
		return
	}
	s.update(w, r, func(ctx context.Context, sess *jornada.Session) error {
		return sess.Jump(ctx, body.NodeID)
	}, func(v SessionView) any { return v })
}

// CompleteFlow handles POST /sessions/{id}/profile.
func (s *Server) CompleteFlow(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, func(ctx context.Context, sess *jornada.Session) error {
		_, err := sess.CompleteFlow(ctx)
		return err
	}, func(v SessionView) any { return v.Profile })
}

// GetGraph handles GET /graph.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Manager.Engine().Inspect())
}

// GetMermaid handles GET /graph/mermaid. With ?session=<id> the session's
// path is overlaid.
func (s *Server) GetMermaid(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.GraphOverlay
	if id := r.URL.Query().Get("session"); id != "" {
		rec, err := s.Manager.Load(r.Context(), id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		overlay = graph.OverlayFromState(&rec.State)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(s.Manager.Engine().Inspect(), overlay)))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "jornada-http",
		"version": strings.TrimSpace(jornada.Version),
	})
}

// update runs fn under the session lock, broadcasts the new view to event
// subscribers and writes render(view).
func (s *Server) update(w http.ResponseWriter, r *http.Request, fn func(context.Context, *jornada.Session) error, render func(SessionView) any) {
	id := chi.URLParam(r, "id")
	rec, err := s.Manager.Update(r.Context(), id, fn)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	v := s.view(rec)
	if data, err := json.Marshal(v); err == nil {
		s.Streams.Broadcast(id, string(data))
	}
	s.writeJSON(w, http.StatusOK, render(v))
}

func (s *Server) view(rec *domain.SessionRecord) SessionView {
	v := SessionView{
		ID:        rec.State.SessionID,
		State:     rec.State,
		Answers:   rec.Answers,
		Profile:   rec.Profile,
		UpdatedAt: rec.UpdatedAt,
	}
	if node, err := s.Manager.Engine().Graph().Get(rec.State.CurrentNodeID); err == nil {
		v.Node = &node
	}
	return v
}

// decode reads a JSON body and validates it. It writes the error response
// and reports false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidInput, err))
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
