package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mbodj/frigo/internal/config"
	"github.com/mbodj/frigo/internal/repository/mongodb"
	"github.com/mbodj/frigo/internal/repository/sheets"
	"github.com/mbodj/frigo/internal/scheduler"
	"github.com/mbodj/frigo/internal/server/handlers"
	"github.com/mbodj/frigo/internal/server/router"
	inventorysvc "github.com/mbodj/frigo/internal/service/inventory"
	reportingsvc "github.com/mbodj/frigo/internal/service/reporting"
	"github.com/mbodj/frigo/pkg/clients/notify"
	"github.com/mbodj/frigo/pkg/clients/openfoodfacts"
	"github.com/mbodj/frigo/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	store := inventorysvc.NewService(mongoRepo, baseLogger.Named("svc.inventory"))
	if items, err := store.Load(context.Background()); err != nil {
		baseLogger.Warn("initial inventory load failed, starting empty", zap.Error(err))
	} else {
		baseLogger.Info("inventory loaded", zap.Int("items", len(items)))
	}

	var sheetRepo sheets.Repository
	if cfg.Sheets.Enabled() {
		sheetRepo, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		baseLogger.Info("sheets snapshot export enabled")
	}

	var notifier notify.Client
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("digest webhook notifier enabled")
	}

	reportingSvc := reportingsvc.NewService(store, sheetRepo, cfg.Sheets.ExportRange, baseLogger.Named("svc.reporting"))

	lookupClient := openfoodfacts.NewClient(cfg.Lookup)
	inventoryHandler := handlers.NewInventoryHandler(store, baseLogger.Named("handlers.inventory"))
	lookupHandler := handlers.NewLookupHandler(lookupClient, baseLogger.Named("handlers.lookup"))
	engine := router.New(inventoryHandler, lookupHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, reportingSvc, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
