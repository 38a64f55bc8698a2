package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/jornada"
	"github.com/aretw0/jornada/pkg/adapters/memory"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine, err := jornada.New()
	require.NoError(t, err)
	return NewServer(session.NewManager(engine, memory.NewStore()))
}

func TestServer_Tools(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	started, err := s.handleStart(ctx, req, SessionArgs{SessionID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, "m1", started.SessionID)
	require.NotNil(t, started.Node)
	assert.Equal(t, domain.KindWelcome, started.Node.Kind)

	res, err := s.handleAdvance(ctx, req, SessionArgs{SessionID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, string(jornada.OutcomeAdvanced), res.Outcome)
	assert.Equal(t, "personalInterests", res.State.CurrentNodeID)

	res, err = s.handleAdvance(ctx, req, SessionArgs{SessionID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, string(jornada.OutcomeBlocked), res.Outcome)
	assert.NotEmpty(t, res.Reason)

	res, err = s.handleRecordAnswer(ctx, req, AnswerArgs{SessionID: "m1", Key: "personalInterests", Value: `["health","career"]`})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"health", "career"}, res.Answers["personalInterests"])

	res, err = s.handleAdvance(ctx, req, SessionArgs{SessionID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, "concentration", res.State.CurrentNodeID)

	// Bare strings are accepted for option ids.
	res, err = s.handleRecordAnswer(ctx, req, AnswerArgs{SessionID: "m1", Key: "concentration", Value: "high-focus"})
	require.NoError(t, err)
	assert.Equal(t, "high-focus", res.Answers["concentration"])

	back, err := s.handleGoBack(ctx, req, SessionArgs{SessionID: "m1"})
	require.NoError(t, err)
	require.NotNil(t, back.Moved)
	assert.True(t, *back.Moved)
	assert.Equal(t, "personalInterests", back.State.CurrentNodeID)

	got, err := s.handleGetSession(ctx, req, SessionArgs{SessionID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, back.State, got.State)
}

func TestServer_CompleteProfile(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	_, err := s.handleStart(ctx, req, SessionArgs{SessionID: "p1"})
	require.NoError(t, err)

	_, err = s.handleCompleteProfile(ctx, req, SessionArgs{SessionID: "p1"})
	assert.ErrorIs(t, err, domain.ErrNotTerminal)

	res, err := s.handleJump(ctx, req, JumpArgs{SessionID: "p1", NodeID: "profileGeneration"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTerminal, res.State.Status)

	res, err = s.handleCompleteProfile(ctx, req, SessionArgs{SessionID: "p1"})
	require.NoError(t, err)
	require.NotNil(t, res.Profile)
	assert.NotEmpty(t, res.Profile.Weaknesses)
}

func TestServer_Errors(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	_, err := s.handleGetSession(ctx, req, SessionArgs{SessionID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = s.handleStart(ctx, req, SessionArgs{SessionID: "e1"})
	require.NoError(t, err)

	_, err = s.handleRecordAnswer(ctx, req, AnswerArgs{SessionID: "e1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.handleRecordAnswer(ctx, req, AnswerArgs{SessionID: "e1", Key: "energy", Value: "sleepy"})
	assert.Error(t, err)

	_, err = s.handleJump(ctx, req, JumpArgs{SessionID: "e1", NodeID: "nowhere"})
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
}

func TestServer_Resources(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	contents, err := s.handleGraphResource(ctx, mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, graphURI, text.URI)

	var nodes []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &nodes))
	assert.Equal(t, "welcome", nodes[0]["id"])

	contents, err = s.handleMermaidResource(ctx, mcp.ReadResourceRequest{})
	require.NoError(t, err)
	text, ok = contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, text.Text, "graph TD")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{`"high-focus"`, "high-focus"},
		{"high-focus", "high-focus"},
		{"5000", 5000.0},
		{`["a","b"]`, []any{"a", "b"}},
		{"07:00", "07:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseValue(tt.raw), tt.raw)
	}
}
