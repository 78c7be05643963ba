package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hseconsult/backend/internal/config"
	"github.com/hseconsult/backend/internal/handler"
	"github.com/hseconsult/backend/internal/logging"
	"github.com/hseconsult/backend/internal/repository"
	"github.com/hseconsult/backend/internal/service"
	"github.com/hseconsult/backend/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log)

	contactRepo, closeStore, err := openStore(context.Background(), cfg.Store)
	if err != nil {
		logging.Fatal("failed to open submission store", "driver", cfg.Store.Driver, "error", err)
	}
	defer closeStore()

	contactService := service.NewContactService(contactRepo, validation.New())

	h := handler.New(contactRepo, cfg.Server.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService, handler.ContactConfig{
		SubmitTimeout: cfg.Contact.SubmitTimeout,
		MaxBodyBytes:  cfg.Contact.MaxBodyBytes,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "store", cfg.Store.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// openStore builds the ContactRepository selected by STORE_DRIVER. The
// returned func releases its resources.
func openStore(ctx context.Context, sc config.StoreConfig) (repository.ContactRepository, func(), error) {
	switch sc.Driver {
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		pool, err := repository.NewPool(ctx, sc.DatabaseURL, repository.PoolConfig{
			MaxConns:        sc.MaxConns,
			MinConns:        sc.MinConns,
			MaxConnLifetime: sc.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPgContactRepository(pool), pool.Close, nil

	case config.DriverSQLite:
		repo, err := repository.OpenSQLiteContactRepository(ctx, sc.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				slog.Warn("close sqlite store", "error", err)
			}
		}, nil

	default:
		slog.Warn("using in-memory submission store; submissions are lost on restart")
		return repository.NewMemoryContactRepository(), func() {}, nil
	}
}
