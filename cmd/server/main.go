package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"echo-lab/classify"
	"echo-lab/httpapi"
	"echo-lab/internal"
	"echo-lab/providers"
	"echo-lab/runtime"
	"echo-lab/runtime/workers"
	"echo-lab/services"
	"echo-lab/switchboard"
	"echo-lab/synthesis"
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

// run initializes all components, manages the server lifecycle, and centralizes
// error reporting so deferred cleanup always executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Domain building blocks
	personas, err := runtime.LoadPersonaCatalog()
	if err != nil {
		return exitConfig, fmt.Errorf("persona catalog: %w", err)
	}

	classifier, err := classify.New()
	if err != nil {
		return exitRuntime, fmt.Errorf("building classifier: %w", err)
	}

	apiKeys := map[switchboard.ProviderID]string{
		switchboard.ProviderOpenAI:    config.OpenAIAPIKey,
		switchboard.ProviderAnthropic: config.AnthropicAPIKey,
	}

	board := switchboard.New()
	generator := providers.NewClient(logger, config.ProviderTimeout)

	// Each randomized component gets its own source; they lock independently.
	seed := time.Now().UnixNano()
	selector := runtime.NewTurnSelector(rand.New(rand.NewSource(seed)))
	responder := runtime.NewResponder(logger, board, generator,
		func(p switchboard.ProviderID) string { return apiKeys[p] },
		rand.New(rand.NewSource(seed+1)))

	// 3. Supervision & coordination
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	engine := runtime.NewEngine(logger, selector, responder, supervisor,
		rand.New(rand.NewSource(seed+2)))

	synthesizer := synthesis.NewGenerator()
	sessionService := services.NewSessionService(logger, engine, classifier, synthesizer, personas)
	engine.Bind(sessionService)

	// 4. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	engine.Start(ctx)

	heartbeat := workers.NewHeartbeatWorker(logger, engine, config.HeartbeatInterval)

	errChan := make(chan error, 2)

	go func() {
		logger.Info("Starting supervisor and background workers")
		supervisor.Add(heartbeat).Run(ctx)
	}()

	// 5. HTTP server
	api := httpapi.New(logger, sessionService, board, generator, apiKeys)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:    address,
		Handler: api.Routes(),
	}

	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for stop or error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Graceful shutdown: finish in-flight requests, then stop workers.
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	supervisor.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
