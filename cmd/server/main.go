package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"notify-lab/auth"
	"notify-lab/internal"
	"notify-lab/runtime"
	"notify-lab/runtime/workers"
	"notify-lab/services"
	"notify-lab/ws"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (registry shutdown, socket
// teardown) executes before the process exits.
func run() (int, error) {
	// Optional .env for local development; deployments set the
	// environment directly.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// The registry owns the sweep loop; Shutdown stops it and closes
	// every live connection.
	registry := runtime.NewRegistry(logger, config.HeartbeatTimeout, config.SweepInterval)
	defer registry.Shutdown()

	verifier := auth.NewVerifier(logger, config.JWTSecret)
	notifier := services.NewNotifierService(logger, registry)
	handler := ws.NewHandler(logger, registry, verifier, config.WriteTimeout, config.ReadLimit)

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := ws.NewServer(logger, addr, handler, registry, notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(
		server,
		workers.NewTelemetryWorker(logger, config.MetricInterval, registry),
	)

	// Blocks until SIGINT/SIGTERM cancels the context and every worker
	// has returned, or until a worker fails beyond repair.
	if err := supervisor.Run(ctx); err != nil {
		return exitRuntime, err
	}

	logger.Info("Shutdown complete")
	return exitOK, nil
}
