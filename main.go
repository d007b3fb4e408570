// Command mansao is a text exploration game: walk the rooms of a mansion and
// collect the clues hidden in them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

type cliFlags struct {
	logLevel     string
	headless     bool
	mcpHTTP      bool
	mcpAddr      string
	mcpPath      string
	mcpToken     string
	mcpJSON      bool
	mcpStateless bool
	origins      stringSlice
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f cliFlags

	cmd := &cobra.Command{
		Use:   "mansao",
		Short: "Explore the mysterious mansion and collect clues",
		Long: `Walk the mansion room by room and collect the clues hidden in them.

At each prompt answer with a single key:
  e  go left        d  go right
  p  show clues     s  quit

Examples:
  # Play in the terminal
  mansao

  # Read commands line by line, e.g. from a script
  printf 'e\np\ns\n' | mansao --headless

  # Serve the exploration as an MCP tool
  mansao --mcp-http --mcp-addr 127.0.0.1:8766`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, &f)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cfg.MCP.Enabled {
				server, err := NewMCPServer(buildMansion, logger)
				if err != nil {
					return fmt.Errorf("build mansion: %w", err)
				}
				return RunMCPHTTP(server, cfg.MCP)
			}
			return runExploration(cmd.InOrStdin(), cmd.OutOrStdout(), logger, cfg.Headless)
		},
	}

	bindFlags(cmd, &f)
	return cmd
}

func bindFlags(cmd *cobra.Command, f *cliFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.logLevel, "log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	flags.BoolVar(&f.headless, "headless", false, "Read commands line by line instead of single keypresses")
	flags.BoolVar(&f.mcpHTTP, "mcp-http", false, "Run MCP Streamable HTTP server")
	flags.StringVar(&f.mcpAddr, "mcp-addr", "127.0.0.1:8766", "MCP listen address")
	flags.StringVar(&f.mcpPath, "mcp-path", "/mcp", "MCP endpoint path")
	flags.StringVar(&f.mcpToken, "mcp-token", "", "Bearer token for MCP requests (optional)")
	flags.BoolVar(&f.mcpJSON, "mcp-json-response", false, "Force JSON responses instead of SSE")
	flags.BoolVar(&f.mcpStateless, "mcp-stateless", false, "Run MCP server in stateless mode (no sessions/SSE)")
	flags.Var(&f.origins, "mcp-origin", "Allowed Origin for MCP requests (repeatable)")
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cmd *cobra.Command, cfg *Config, f *cliFlags) {
	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("headless") {
		cfg.Headless = f.headless
	}
	if changed("mcp-http") {
		cfg.MCP.Enabled = f.mcpHTTP
	}
	if changed("mcp-addr") {
		cfg.MCP.Addr = f.mcpAddr
	}
	if changed("mcp-path") {
		cfg.MCP.Path = f.mcpPath
	}
	if changed("mcp-token") {
		cfg.MCP.Token = f.mcpToken
	}
	if changed("mcp-json-response") {
		cfg.MCP.JSONResponse = f.mcpJSON
	}
	if changed("mcp-stateless") {
		cfg.MCP.Stateless = f.mcpStateless
	}
	if changed("mcp-origin") {
		cfg.MCP.Origins = append([]string(nil), f.origins...)
	}
}

func runExploration(in io.Reader, out io.Writer, logger *zap.Logger, headless bool) error {
	root, err := buildMansion()
	if err != nil {
		return fmt.Errorf("build mansion: %w", err)
	}
	play(root, in, out, logger, headless)
	return nil
}

// play runs one session over root, then reports the clues and releases both
// trees. The returned session no longer references either tree.
func play(root *Room, in io.Reader, out io.Writer, logger *zap.Logger, headless bool) *ExplorationState {
	printBanner(out)
	s := NewExploration(root, in, out, logger)
	s.IsHeadless = headless
	clues := explore(s)

	outPrintln(s)
	outPrintln(s, s.styles.Heading.Render("=== Pistas Coletadas ==="))
	printClues(s, clues)

	releaseRooms(root)
	releaseClues(clues)
	s.Root, s.CurrentRoom, s.Clues = nil, nil, nil

	outPrintln(s)
	outPrintln(s, "Programa encerrado.")
	return s
}
