package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestMCPServer(t *testing.T) *MCPServer {
	t.Helper()
	server, err := NewMCPServer(func() (*Room, error) { return deepMansion(), nil }, zap.NewNop())
	require.NoError(t, err)
	return server
}

func TestNewMCPServer_BuildError(t *testing.T) {
	buildErr := errors.New("no layout")

	server, err := NewMCPServer(func() (*Room, error) { return nil, buildErr }, zap.NewNop())

	assert.Nil(t, server)
	assert.ErrorIs(t, err, buildErr)
}

func TestMCPServer_HandleCommand(t *testing.T) {
	server := newTestMCPServer(t)
	ctx := context.Background()

	_, out, err := server.HandleCommand(ctx, nil, CommandInput{Command: "e"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Você está em: B")
	assert.Contains(t, out.Output, "Você encontrou uma pista: X!")
	assert.Contains(t, out.Output, "(e) Esquerda | (p) Ver pistas | (s) Sair")
	assert.Equal(t, "B", out.State.Room)
	assert.Equal(t, []string{"X"}, out.State.Clues)

	_, out, err = server.HandleCommand(ctx, nil, CommandInput{Command: "z"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Opção inválida!")
	assert.Equal(t, "B", out.State.Room)
	assert.Equal(t, 1, out.State.Steps)

	_, out, err = server.HandleCommand(ctx, nil, CommandInput{Command: "e"})
	require.NoError(t, err)
	assert.False(t, out.State.Active)
	assert.Equal(t, "dead_end", out.State.Outcome)
	assert.NotContains(t, out.Output, "Escolha um caminho")
	assert.Equal(t, []string{"X", "Y"}, out.State.Clues)

	_, clues, err := server.HandleClues(ctx, nil, CluesInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, clues.Clues)
}

func TestMCPServer_BlankCommandDescribesRoom(t *testing.T) {
	server := newTestMCPServer(t)
	ctx := context.Background()
	_, _, err := server.HandleCommand(ctx, nil, CommandInput{Command: "e"})
	require.NoError(t, err)

	_, out, err := server.HandleCommand(ctx, nil, CommandInput{Command: "  "})
	require.NoError(t, err)

	assert.NotContains(t, out.Output, "Opção inválida!")
	assert.Contains(t, out.Output, "Você está em: B")
	assert.Contains(t, out.Output, "Pista desta sala: X")
	assert.Contains(t, out.Output, "(e) Esquerda | (p) Ver pistas | (s) Sair")
	assert.Equal(t, 1, out.State.Steps)
	assert.Equal(t, []string{"X"}, out.State.Clues)

	_, _, err = server.HandleCommand(ctx, nil, CommandInput{Command: "s"})
	require.NoError(t, err)
	_, out, err = server.HandleCommand(ctx, nil, CommandInput{})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Você está em: B")
	assert.Contains(t, out.Output, "A exploração já terminou.")
	assert.NotContains(t, out.Output, "Escolha um caminho")
}

func TestMCPServer_Reset(t *testing.T) {
	server := newTestMCPServer(t)
	ctx := context.Background()
	first := server.session.SessionID

	_, _, err := server.HandleCommand(ctx, nil, CommandInput{Command: "e"})
	require.NoError(t, err)

	_, out, err := server.HandleCommand(ctx, nil, CommandInput{Reset: true})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Você está em: A")
	assert.Equal(t, "A", out.State.Room)
	assert.Empty(t, out.State.Clues)
	assert.NotEqual(t, first, out.State.SessionID)

	_, out, err = server.HandleCommand(ctx, nil, CommandInput{Reset: true, Command: "d"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Você está em: A")
	assert.Contains(t, out.Output, "Você está em: C")
	assert.Equal(t, "C", out.State.Room)

	_, clues, err := server.HandleClues(ctx, nil, CluesInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{}, clues.Clues)
}

func TestMCPToolServer_InMemory(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	server := newTestMCPServer(t)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := newMCPToolServer(server).Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer clientSession.Close()

	tools, err := clientSession.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"command", "clues"}, names)

	res, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "command",
		Arguments: map[string]any{"command": "e"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out CommandOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "B", out.State.Room)
	assert.Equal(t, []string{"X"}, out.State.Clues)
}

func TestGuardHandler(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	origins := map[string]struct{}{"http://localhost": {}}

	tests := []struct {
		name   string
		token  string
		origin string
		auth   string
		status int
	}{
		{"no origin no token", "", "", "", http.StatusOK},
		{"allowed origin", "", "http://localhost", "", http.StatusOK},
		{"forbidden origin", "", "http://evil.example", "", http.StatusForbidden},
		{"missing token", "secret", "", "", http.StatusUnauthorized},
		{"wrong token", "secret", "", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "secret", "http://localhost", "Bearer secret", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()

			guardHandler(ok, origins, tt.token, zap.New(core)).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			rejected := logs.FilterMessage("mcp request rejected").All()
			if tt.status == http.StatusOK {
				assert.Empty(t, rejected)
				return
			}
			require.Len(t, rejected, 1)
			reason := "token"
			if tt.status == http.StatusForbidden {
				reason = "origin"
			}
			assert.Equal(t, reason, rejected[0].ContextMap()["reason"])
		})
	}
}
