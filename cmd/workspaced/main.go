package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/workspacefs/workspaced/internal/infrastructure/config"
	"github.com/workspacefs/workspaced/internal/infrastructure/logging"
	"github.com/workspacefs/workspaced/internal/infrastructure/server"
	"github.com/workspacefs/workspaced/internal/mcp"
	"github.com/workspacefs/workspaced/internal/providers/filesystem"
	"github.com/workspacefs/workspaced/internal/service"
	"github.com/workspacefs/workspaced/internal/workspace"
)

const version = "0.1.0"

func main() {
	workspaceRoot := flag.String("workspace", "", "Workspace root directory (overrides WORKSPACE_ROOT)")
	port := flag.String("port", "", "Server port (overrides PORT)")
	stdio := flag.Bool("stdio", false, "Serve MCP over stdio instead of HTTP")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *workspaceRoot != "" {
		cfg.Workspace.Root = *workspaceRoot
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	if *stdio {
		runStdio(cfg)
		return
	}
	runHTTP(cfg)
}

func runHTTP(cfg *config.Config) {
	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		if err := srv.Close(); err != nil {
			log.Printf("error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("server error: %v", err)
	}
}

func runStdio(cfg *config.Config) {
	// stdout carries the protocol, so logs must stay off it.
	logger := logging.NewNop()

	ws, err := workspace.New(cfg.Workspace.Root)
	if err != nil {
		log.Fatalf("failed to open workspace: %v", err)
	}

	registry := service.NewRegistry()
	if err := registry.Register(filesystem.NewProvider(ws)); err != nil {
		log.Fatalf("failed to register filesystem provider: %v", err)
	}

	if err := mcp.New(registry, version, logger).ServeStdio(); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
