package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dawid-walter/basketo-shopper-order/internal/client"
	"github.com/dawid-walter/basketo-shopper-order/internal/config"
	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
	"github.com/dawid-walter/basketo-shopper-order/internal/network/router"
	"github.com/dawid-walter/basketo-shopper-order/internal/services"
	"github.com/dawid-walter/basketo-shopper-order/internal/storage"
	"github.com/dawid-walter/basketo-shopper-order/internal/support"
	"github.com/dawid-walter/basketo-shopper-order/internal/worker"
)

// publisher - канал поддержки, который нужно закрыть при остановке
type publisher interface {
	services.Publisher
	Close() error
}

func newPublisher(ctx context.Context, cfg config.SupportConfig) (publisher, error) {
	if cfg.RabbitURL == "" {
		logger.Info("Support requests: log only")
		return support.LogPublisher{}, nil
	}
	p, err := support.NewRabbitPublisher(ctx, cfg.RabbitURL, cfg.Queue)
	if err != nil {
		return nil, err
	}
	logger.Info("Support requests: rabbitmq", "queue", cfg.Queue)
	return p, nil
}

func Run(config config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions, err := storage.NewStorage(ctx, config.Storage)
	if err != nil {
		return fmt.Errorf("failed to create session storage: %w", err)
	}
	defer sessions.Close()

	supportQueue, err := newPublisher(ctx, config.Support)
	if err != nil {
		return fmt.Errorf("failed to create support publisher: %w", err)
	}
	defer supportQueue.Close()

	commerce := client.NewClient(
		config.Commerce.Addr,
		&http.Client{Timeout: config.Commerce.Timeout},
		client.NewRateLimiter(config.Commerce.RPS, 1),
	)

	router := router.NewRouter(config, sessions,
		services.NewAuth(commerce),
		services.NewOrders(commerce),
		services.NewContact(supportQueue),
	)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// Создание и запуск очистки сессий
	janitor := worker.NewSessionJanitor(sessions, config.Storage.AnonSessionTTL, config.Storage.JanitorInterval)
	janitor.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server",
			"addr", config.Server.ListenAddr,
			"auth_flow", config.Server.AuthFlow,
			"commerce", config.Commerce.Addr,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error listen server", "error", err)
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	janitor.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", "error", err)
	}
	logger.Info("Server stopped")
	return nil
}
