package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/gamepay/internal/app"
	"github.com/fsdevblog/gamepay/internal/config"
	"github.com/fsdevblog/gamepay/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env опционален: в проде конфигурация приходит из окружения.
	_ = godotenv.Load()

	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
