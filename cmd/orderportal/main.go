package main

import (
	"fmt"

	"github.com/dawid-walter/basketo-shopper-order/internal/app"
	"github.com/dawid-walter/basketo-shopper-order/internal/config"
	"github.com/dawid-walter/basketo-shopper-order/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	if err := app.Run(config); err != nil {
		logger.Fatal("Failed to run order portal", "error", err)
	}
}
