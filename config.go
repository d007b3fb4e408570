package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "MANSAO_"

type Config struct {
	LogLevel string    `koanf:"log_level"`
	Headless bool      `koanf:"headless"`
	MCP      MCPConfig `koanf:"mcp"`
}

type MCPConfig struct {
	Enabled      bool     `koanf:"enabled"`
	Addr         string   `koanf:"addr"`
	Path         string   `koanf:"path"`
	Token        string   `koanf:"token"`
	JSONResponse bool     `koanf:"json_response"`
	Stateless    bool     `koanf:"stateless"`
	Origins      []string `koanf:"origins"`
}

// loadConfig reads MANSAO_* environment variables over the defaults.
//
//	MANSAO_LOG_LEVEL         -> log_level
//	MANSAO_MCP_JSON_RESPONSE -> mcp.json_response
func loadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if rest, ok := strings.CutPrefix(key, "mcp_"); ok {
			return "mcp." + rest
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.MCP.Origins = splitList(cfg.MCP.Origins)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// splitList flattens comma separated entries, as env values arrive as one string.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.MCP.Addr == "" {
		cfg.MCP.Addr = "127.0.0.1:8766"
	}
	if cfg.MCP.Path == "" {
		cfg.MCP.Path = "/mcp"
	}
	if len(cfg.MCP.Origins) == 0 {
		cfg.MCP.Origins = []string{"http://localhost", "http://127.0.0.1"}
	}
}

func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MCP.Enabled {
		if c.MCP.Addr == "" {
			return errors.New("mcp.addr is required when the MCP server is enabled")
		}
		if strings.Trim(c.MCP.Path, "/") == "" {
			return errors.New("mcp.path must name an endpoint")
		}
	}
	return nil
}
