package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/cadastro-respostas/cliparse"
	"github.com/danielhkuo/cadastro-respostas/db"
	"github.com/danielhkuo/cadastro-respostas/logging"
	"github.com/danielhkuo/cadastro-respostas/middleware"
	"github.com/danielhkuo/cadastro-respostas/router"
)

const shutdownTimeout = 5 * time.Second

func main() {
	var err error

	// .env is optional; real environment variables win
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.Environment)
	slog.SetDefault(logger)

	// Open the pool; nothing is dialed yet
	dbConn, err := db.Open(cfg.DatabaseURL, db.PoolConfig{
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	})
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Probe (and optionally create the schema) in the background; the
	// server starts regardless
	var schemaInit db.InitFunc
	if cfg.CreateSchema {
		schemaInit = db.CreateSchema
	}
	ready := db.NewReadiness()
	go ready.Monitor(ctx, dbConn, cfg.ProbeInterval, logger, schemaInit)

	// Create router
	mux := router.NewRouter(dbConn, ready)

	// Create server
	server := &http.Server{
		Handler:      middleware.CORS(mux),
		Addr:         ":" + strconv.Itoa(cfg.Port),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "driver", dbConn.Driver(), "environment", cfg.Environment)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
