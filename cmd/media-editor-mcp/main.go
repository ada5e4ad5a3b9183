package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/media-editor-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("media-editor-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("media-editor-mcp - MCP server for media editing sessions")
			fmt.Println()
			fmt.Println("Usage: media-editor-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MEDIA_EDITOR_LOG_LEVEL=debug      Enable debug logging")
			fmt.Println("  MEDIA_EDITOR_CACHE_BUDGET_MB=256  Decoded-image cache budget")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// A local .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := server.Config{
		LogLevel: os.Getenv("MEDIA_EDITOR_LOG_LEVEL"),
	}
	if raw := os.Getenv("MEDIA_EDITOR_CACHE_BUDGET_MB"); raw != "" {
		mb, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			logrus.WithField("value", raw).Fatal("MEDIA_EDITOR_CACHE_BUDGET_MB must be an integer")
		}
		cfg.CacheBudgetBytes = mb << 20
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
}
