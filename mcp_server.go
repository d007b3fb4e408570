package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type CommandInput struct {
	Command string `json:"command,omitempty" jsonschema:"Command key: e (left), d (right), p (show clues) or s (quit)"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Start a new exploration before executing the command"`
}

type CommandOutput struct {
	Output string         `json:"output" jsonschema:"Raw game output"`
	State  SessionSummary `json:"state" jsonschema:"Summary of the exploration session"`
}

type CluesInput struct{}

type CluesOutput struct {
	Clues []string `json:"clues" jsonschema:"Collected clues in alphabetical order"`
}

// MCPServer drives a single exploration session on behalf of MCP clients.
type MCPServer struct {
	mu      sync.Mutex
	session *ExplorationState
	build   func() (*Room, error)
	log     *zap.Logger
}

func NewMCPServer(build func() (*Room, error), logger *zap.Logger) (*MCPServer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MCPServer{build: build, log: logger}
	if _, err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset replaces the session with a fresh one and returns its opening text.
func (s *MCPServer) reset() (string, error) {
	root, err := s.build()
	if err != nil {
		return "", err
	}
	if s.session != nil {
		releaseRooms(s.session.Root)
		releaseClues(s.session.Clues)
	}
	var buf bytes.Buffer
	s.session = NewExploration(root, strings.NewReader(""), &buf, s.log)
	s.session.IsHeadless = true
	if s.session.IsPlaying {
		showMenu(s.session)
	}
	return buf.String(), nil
}

// ExecuteCommand applies cmd to the session and returns everything it printed.
// A blank cmd only describes the current room.
func ExecuteCommand(s *ExplorationState, cmd string) (string, SessionSummary) {
	var buf bytes.Buffer
	prevOut := s.Out
	s.Out = &buf
	defer func() {
		s.Out = prevOut
	}()

	if strings.TrimSpace(cmd) == "" {
		describeRoom(s)
	} else {
		processCommand(s, cmd)
	}
	if s.IsPlaying {
		showMenu(s)
	}
	return buf.String(), SummarizeSession(s)
}

func (s *MCPServer) HandleCommand(_ context.Context, _ *mcp.CallToolRequest, input CommandInput) (*mcp.CallToolResult, CommandOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Reset {
		output, err := s.reset()
		if err != nil {
			return nil, CommandOutput{}, err
		}
		if strings.TrimSpace(input.Command) == "" {
			return nil, CommandOutput{Output: output, State: SummarizeSession(s.session)}, nil
		}
		more, summary := ExecuteCommand(s.session, input.Command)
		return nil, CommandOutput{Output: output + more, State: summary}, nil
	}

	output, summary := ExecuteCommand(s.session, input.Command)
	return nil, CommandOutput{Output: output, State: summary}, nil
}

func (s *MCPServer) HandleClues(_ context.Context, _ *mcp.CallToolRequest, _ CluesInput) (*mcp.CallToolResult, CluesOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clues := listClues(s.session.Clues)
	if clues == nil {
		clues = []string{}
	}
	return nil, CluesOutput{Clues: clues}, nil
}

func newMCPToolServer(server *MCPServer) *mcp.Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "mansao",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "command",
		Description: "Send a command key to the mansion exploration and return output plus session summary.",
	}, server.HandleCommand)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "clues",
		Description: "List the clues collected so far in alphabetical order.",
	}, server.HandleClues)
	return mcpServer
}

func RunMCPHTTP(server *MCPServer, cfg MCPConfig) error {
	mcpServer := newMCPToolServer(server)

	path := cfg.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless:    cfg.Stateless,
		JSONResponse: cfg.JSONResponse,
		Logger:       slog.Default(),
	})

	originSet := map[string]struct{}{}
	for _, origin := range cfg.Origins {
		originSet[origin] = struct{}{}
	}

	mux := http.NewServeMux()
	mux.Handle(path, guardHandler(handler, originSet, cfg.Token, server.log))

	server.log.Info("mcp server listening", zap.String("addr", cfg.Addr), zap.String("path", path))
	serverHTTP := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
	return serverHTTP.ListenAndServe()
}

// guardHandler admits requests from an allowed Origin (or none) that carry
// the bearer token when one is configured.
func guardHandler(next http.Handler, origins map[string]struct{}, token string, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if _, ok := origins[origin]; !ok {
				logger.Warn("mcp request rejected", zap.String("reason", "origin"), zap.String("origin", origin))
				http.Error(w, "Forbidden origin", http.StatusForbidden)
				return
			}
		}
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			logger.Warn("mcp request rejected", zap.String("reason", "token"), zap.String("remote", r.RemoteAddr))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
