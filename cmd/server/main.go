package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AmanBeast/Sotre-Ledgger/internal/catalog"
	"github.com/AmanBeast/Sotre-Ledgger/internal/config"
	"github.com/AmanBeast/Sotre-Ledgger/internal/events/kafka"
	"github.com/AmanBeast/Sotre-Ledgger/internal/httpapi"
	interfaces "github.com/AmanBeast/Sotre-Ledgger/internal/interfaces"
	"github.com/AmanBeast/Sotre-Ledgger/internal/ledger"
	"github.com/AmanBeast/Sotre-Ledgger/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, err := storage.Open(ctx, cfg)
	if err != nil {
		slog.Error("storage unavailable", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer gw.Close()

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer p.Close()
		publisher = p
		slog.Info("publishing ledger events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	cat, err := catalog.Open(ctx, gw, catalog.WithLogger(logger), catalog.WithPublisher(publisher))
	if cat == nil {
		slog.Error("catalog not loaded", "error", err)
		os.Exit(1)
	}
	if err != nil {
		slog.Warn("catalog seed not persisted", "error", err)
	}

	storeOpts := []ledger.StoreOption{ledger.WithStoreLogger(logger)}
	if cfg.SeedSample {
		storeOpts = append(storeOpts, ledger.WithSeed(ledger.SampleEntries(cat.All(), time.Now())))
	}
	store, err := ledger.OpenStore(ctx, gw, storeOpts...)
	if store == nil {
		slog.Error("entries not loaded", "error", err)
		os.Exit(1)
	}
	if err != nil {
		slog.Warn("entries seed not persisted", "error", err)
	}

	ledgerService := ledger.NewLedger(store, ledger.WithLogger(logger), ledger.WithPublisher(publisher))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpapi.NewRouter(&httpapi.Handler{Catalog: cat, Ledger: ledgerService, Logger: logger}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Starting server", "addr", srv.Addr, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
