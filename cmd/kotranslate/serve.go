package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	browseradapter "github.com/ericfisherdev/kotranslate/internal/adapter/driven/browser"
	"github.com/ericfisherdev/kotranslate/internal/adapter/driven/gemini"
	"github.com/ericfisherdev/kotranslate/internal/adapter/driven/tab"
	httphandler "github.com/ericfisherdev/kotranslate/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/kotranslate/internal/adapter/driving/web"
	"github.com/ericfisherdev/kotranslate/internal/application"
	"github.com/ericfisherdev/kotranslate/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the translation service with the options page and tab API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"credential_backend", cfg.CredentialBackend,
		"gemini_model", cfg.GeminiModel,
	)

	// 2. Open the credential store.
	store, err := openCredentialStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	// 3. Wire adapters.
	logger := slog.Default()
	host := tab.NewHost(logger)
	defer host.Shutdown()

	translator := gemini.NewClient(store, cfg.GeminiBaseURL, cfg.GeminiModel, logger)
	opener := browseradapter.NewOpener(cfg.OptionsURL(), cfg.OpenBrowser, logger)

	// 4. Create application services.
	orchestrator := application.NewOrchestrator(translator, host, host, opener, store, logger)
	credentials := application.NewCredentialService(store, logger)

	// 5. Register API and GUI routes.
	mux := http.NewServeMux()
	httphandler.RegisterRoutes(mux, httphandler.NewHandler(orchestrator, host, logger))
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(credentials, logger))

	srv := &http.Server{
		Handler:           httphandler.Wrap(mux, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr, err)
	}

	go func() {
		slog.Info("http server starting", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	// 6. Lifecycle hook: register the context menu, open options on first run.
	orchestrator.OnInstalled(ctx, store.installReason(ctx))

	slog.Info("kotranslate started",
		"listen_addr", ln.Addr().String(),
		"options_url", cfg.OptionsURL(),
	)

	// 7. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 8. Graceful shutdown. In-flight translations have no deadline of
	// their own, so WriteTimeout stays unset and the drain is bounded here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
