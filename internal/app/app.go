package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/afonsob/travelbooker/internal/activity"
	"github.com/afonsob/travelbooker/internal/bank"
	"github.com/afonsob/travelbooker/internal/car"
	"github.com/afonsob/travelbooker/internal/config"
	"github.com/afonsob/travelbooker/internal/handler"
	"github.com/afonsob/travelbooker/internal/hotel"
	"github.com/afonsob/travelbooker/internal/middleware"
	"github.com/afonsob/travelbooker/internal/notification"
	"github.com/afonsob/travelbooker/internal/router"
	"github.com/afonsob/travelbooker/internal/tax"
	"github.com/afonsob/travelbooker/internal/trip"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TravelBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	banks := bank.NewRegistry(a.log)
	hotels := hotel.NewRegistry(a.log)
	rentacars := car.NewRegistry(a.log)
	activities := activity.NewRegistry(a.log)
	taxes := tax.NewRegistry(a.log)

	// trips are invoiced under one configured item type
	if err := taxes.NewItemType(a.cfg.Tax.ItemType, a.cfg.Tax.Rate); err != nil {
		return fmt.Errorf("seed tax item type: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	planner := trip.NewPlanner(activities, hotels, rentacars, banks, taxes, n, a.log)

	h := handler.NewHandler(banks, hotels, rentacars, activities, taxes, planner)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
