// Package mcp exposes onboarding sessions as Model Context Protocol tools, so
// an assistant can walk a user through the questions.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
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
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	graphURI   = "jornada://graph"
	mermaidURI = "jornada://graph/mermaid"
)

// SessionResponse provides a unified structure across tools.
type SessionResponse struct {
	SessionID string               `json:"session_id" jsonschema_description:"The session the call applied to"`
	Node      *domain.QuestionNode `json:"node,omitempty" jsonschema_description:"The question being shown"`
	State     domain.FlowState     `json:"state" jsonschema_description:"History, projected path and progress"`
	Answers   map[string]any       `json:"answers" jsonschema_description:"Every answer recorded so far"`
	Outcome   string               `json:"outcome,omitempty" jsonschema_description:"advanced, blocked or terminal (advance only)"`
	Reason    string               `json:"reason,omitempty" jsonschema_description:"Why the advance was blocked"`
	Moved     *bool                `json:"moved,omitempty" jsonschema_description:"Whether go_back moved"`
	Profile   *domain.UserProfile  `json:"profile,omitempty" jsonschema_description:"The derived profile, once complete"`
}

// SessionArgs identifies a session.
type SessionArgs struct {
	SessionID string `json:"session_id"`
}

// AnswerArgs are the arguments of record_answer.
type AnswerArgs struct {
	SessionID string `json:"session_id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// JumpArgs are the arguments of jump.
type JumpArgs struct {
	SessionID string `json:"session_id"`
	NodeID    string `json:"node_id"`
}

// Server wraps a session manager and exposes it as an MCP Server.
type Server struct {
	manager   *session.Manager
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(manager *session.Manager, opts ...Option) *Server {
	s := &Server{
		manager:   manager,
		mcpServer: server.NewMCPServer("jornada-mcp", strings.TrimSpace(jornada.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and shuts it down
// when ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	sessionID := mcp.WithString("session_id", mcp.Required(), mcp.Description("The session to act on"))

	s.mcpServer.AddTool(mcp.NewTool("start_onboarding",
		mcp.WithDescription("Start a new onboarding session at the welcome screen."),
		mcp.WithString("session_id", mcp.Description("Optional id; a random one is generated when omitted")),
		mcp.WithOutputSchema[SessionResponse](),
	), mcp.NewStructuredToolHandler(s.handleStart))

	s.mcpServer.AddTool(mcp.NewTool("record_answer",
		mcp.WithDescription("Record the answer to a key of the current question. The value is JSON (e.g. \"high-focus\", [\"health\"], 5000) or a bare string."),
		sessionID,
		mcp.WithString("key", mcp.Required(), mcp.Description("Answer key, as listed in the node fields")),
		mcp.WithString("value", mcp.Required(), mcp.Description("The answer value")),
		mcp.WithOutputSchema[SessionResponse](),
	), mcp.NewStructuredToolHandler(s.handleRecordAnswer))

	s.mcpServer.AddTool(mcp.NewTool("advance",
		mcp.WithDescription("Move to the next question. Returns outcome 'blocked' with a reason when the current one is unanswered."),
		sessionID,
		mcp.WithOutputSchema[SessionResponse](),
	), mcp.NewStructuredToolHandler(s.handleAdvance))

	s.mcpServer.AddTool(mcp.NewTool("go_back",
		mcp.WithDescription("Return to the previous question. Answers are kept."),
		sessionID,
		mcp.WithOutputSchema[SessionResponse](),
	), mcp.NewStructuredToolHandler(s.handleGoBack))

	s.mcpServer.AddTool(mcp.NewTool("jump",
		mcp.WithDescription("Jump directly to a question by node id."),
		sessionID,
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Target node id")),
		mcp.WithOutputSchema[SessionResponse](),
	), mcp.NewStructuredToolHandler(s.handleJump))

	s.mcpServer.AddTool(mcp.NewTool("complete_profile",
		mcp.WithDescription("Derive the user profile. The session must be at the profile screen."),
		sessionID,
		mcp.WithOutputSchema[SessionResponse](),
	), mcp.NewStructuredToolHandler(s.handleCompleteProfile))

	s.mcpServer.AddTool(mcp.NewTool("get_session",
		mcp.WithDescription("Get the current question, answers and progress of a session."),
		sessionID,
		mcp.WithOutputSchema[SessionResponse](),
	), mcp.NewStructuredToolHandler(s.handleGetSession))
}

func (s *Server) handleStart(ctx context.Context, request mcp.CallToolRequest, args SessionArgs) (SessionResponse, error) {
	rec, err := s.manager.Start(ctx, args.SessionID)
	if err != nil {
		return SessionResponse{}, fmt.Errorf("start failed: %w", err)
	}
	return s.response(rec), nil
}

func (s *Server) handleRecordAnswer(ctx context.Context, request mcp.CallToolRequest, args AnswerArgs) (SessionResponse, error) {
	if args.Key == "" {
		return SessionResponse{}, fmt.Errorf("%w: key is required", domain.ErrInvalidInput)
	}
	value := parseValue(args.Value)
	rec, err := s.manager.Update(ctx, args.SessionID, func(ctx context.Context, sess *jornada.Session) error {
		return sess.RecordAnswer(ctx, args.Key, value)
	})
	if err != nil {
		s.logger.Warn("MCP record_answer rejected", "session_id", args.SessionID, "key", args.Key, "error", err)
		return SessionResponse{}, fmt.Errorf("record answer failed: %w", err)
	}
	return s.response(rec), nil
}

func (s *Server) handleAdvance(ctx context.Context, request mcp.CallToolRequest, args SessionArgs) (SessionResponse, error) {
	var res jornada.AdvanceResult
	rec, err := s.manager.Update(ctx, args.SessionID, func(ctx context.Context, sess *jornada.Session) error {
		var err error
		res, err = sess.Advance(ctx)
		return err
	})
	if err != nil {
		return SessionResponse{}, fmt.Errorf("advance failed: %w", err)
	}
	out := s.response(rec)
	out.Outcome = string(res.Outcome)
	if res.Reason != nil {
		out.Reason = res.Reason.Error()
	}
	return out, nil
}

func (s *Server) handleGoBack(ctx context.Context, request mcp.CallToolRequest, args SessionArgs) (SessionResponse, error) {
	var moved bool
	rec, err := s.manager.Update(ctx, args.SessionID, func(ctx context.Context, sess *jornada.Session) error {
		moved = sess.GoBack(ctx)
		return nil
	})
	if err != nil {
		return SessionResponse{}, fmt.Errorf("go back failed: %w", err)
	}
	out := s.response(rec)
	out.Moved = &moved
	return out, nil
}

func (s *Server) handleJump(ctx context.Context, request mcp.CallToolRequest, args JumpArgs) (SessionResponse, error) {
	rec, err := s.manager.Update(ctx, args.SessionID, func(ctx context.Context, sess *jornada.Session) error {
		return sess.Jump(ctx, args.NodeID)
	})
	if err != nil {
		return SessionResponse{}, fmt.Errorf("jump failed: %w", err)
	}
	return s.response(rec), nil
}

func (s *Server) handleCompleteProfile(ctx context.Context, request mcp.CallToolRequest, args SessionArgs) (SessionResponse, error) {
	rec, err := s.manager.Update(ctx, args.SessionID, func(ctx context.Context, sess *jornada.Session) error {
		_, err := sess.CompleteFlow(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrProfileDerivation) {
			s.logger.Error("MCP complete_profile failed", "session_id", args.SessionID, "error", err)
		}
		return SessionResponse{}, fmt.Errorf("complete profile failed: %w", err)
	}
	return s.response(rec), nil
}

func (s *Server) handleGetSession(ctx context.Context, request mcp.CallToolRequest, args SessionArgs) (SessionResponse, error) {
	rec, err := s.manager.Load(ctx, args.SessionID)
	if err != nil {
		return SessionResponse{}, fmt.Errorf("get session failed: %w", err)
	}
	return s.response(rec), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(graphURI, "Question Graph",
		mcp.WithResourceDescription("Every question node of the onboarding, in registration order"),
		mcp.WithMIMEType("application/json"),
	), s.handleGraphResource)

	s.mcpServer.AddResource(mcp.NewResource(mermaidURI, "Question Graph (Mermaid)",
		mcp.WithResourceDescription("The onboarding graph as a Mermaid flowchart"),
		mcp.WithMIMEType("text/plain"),
	), s.handleMermaidResource)
}

func (s *Server) handleGraphResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(s.manager.Engine().Inspect())
	if err != nil {
		return nil, fmt.Errorf("failed to encode graph: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      graphURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleMermaidResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      mermaidURI,
			MIMEType: "text/plain",
			Text:     graph.GenerateMermaid(s.manager.Engine().Inspect(), nil),
		},
	}, nil
}

func (s *Server) response(rec *domain.SessionRecord) SessionResponse {
	out := SessionResponse{
		SessionID: rec.State.SessionID,
		State:     rec.State,
		Answers:   rec.Answers,
		Profile:   rec.Profile,
	}
	if node, err := s.manager.Engine().Graph().Get(rec.State.CurrentNodeID); err == nil {
		out.Node = &node
	}
	return out
}

// parseValue decodes a JSON value, falling back to the raw string so that
// option ids can be passed unquoted.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
