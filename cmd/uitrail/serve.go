package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/uitrail/uitrail/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing uitrail tools",
	Long: `Start a Model Context Protocol (MCP) server exposing snapshot loading,
path resolution and element listing as tools, plus an optional plain
HTTP API with Prometheus metrics.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Flags fall back to UITRAIL_* environment variables, loaded from .env
when present.

Examples:
  uitrail serve
  uitrail serve --transport streamable-http --port 8080
  uitrail serve --http-port 9090 --cache-ttl 60000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "MCP port for streamable-http transport")
	serveCmd.Flags().Int("http-port", 0, "Plain HTTP API port (0 disables)")
	serveCmd.Flags().Int("cache-ttl", 60000, "Snapshot cache TTL in milliseconds (0 keeps entries forever)")
	serveCmd.Flags().String("sep", "", "Segment separator for resolved paths (default \" | \")")
}

func runServe(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg := server.Config{
		Transport: stringSetting(cmd, "transport", "UITRAIL_TRANSPORT"),
		Port:      intSetting(cmd, "port", "UITRAIL_PORT"),
		HTTPPort:  intSetting(cmd, "http-port", "UITRAIL_HTTP_PORT"),
		CacheTTL:  time.Duration(intSetting(cmd, "cache-ttl", "UITRAIL_CACHE_TTL")) * time.Millisecond,
		Separator: stringSetting(cmd, "sep", "UITRAIL_SEP"),
		Logger:    appLog,
	}

	return server.New(cfg).Serve()
}

// stringSetting reads a flag, falling back to the environment when the
// flag was not set on the command line.
func stringSetting(cmd *cobra.Command, flag, env string) string {
	v, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) {
		if ev := os.Getenv(env); ev != "" {
			return ev
		}
	}
	return v
}

// intSetting is stringSetting for integer flags. Unparseable environment
// values are ignored.
func intSetting(cmd *cobra.Command, flag, env string) int {
	v, _ := cmd.Flags().GetInt(flag)
	if !cmd.Flags().Changed(flag) {
		if ev := os.Getenv(env); ev != "" {
			if n, err := strconv.Atoi(ev); err == nil {
				return n
			}
		}
	}
	return v
}
