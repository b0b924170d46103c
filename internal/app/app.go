package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/gamepay/internal/config"
	"github.com/fsdevblog/gamepay/internal/service"
	"github.com/fsdevblog/gamepay/internal/session"
	"github.com/fsdevblog/gamepay/internal/transport/api"
	"github.com/fsdevblog/gamepay/internal/transport/gateway"
	"github.com/fsdevblog/gamepay/internal/transport/settlement"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisPingTimeout = 5 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s, gateway environment %s", a.Config.RunAddress, a.Config.GatewayEnvironment)

	rdb, rdbErr := connectRedis(notifyCtx, a.Config)
	if rdbErr != nil {
		return fmt.Errorf("app run: %s", rdbErr.Error())
	}
	defer func() {
		_ = rdb.Close()
	}()

	sessions := session.NewStore(rdb, a.Config.SessionTTL)

	gatewayClient := gateway.New(gateway.Config{
		BaseURL:    a.Config.GatewayBaseURL,
		MerchantID: a.Config.GatewayMerchantID,
		PublicKey:  a.Config.GatewayPublicKey,
		PrivateKey: a.Config.GatewayPrivateKey,
		Timeout:    a.Config.GatewayTimeout,
	})

	services := service.Factory(service.FactoryArgs{
		Gateway:  gatewayClient,
		Sessions: sessions,
		Currency: a.Config.Currency,
		Logger:   a.Logger,
	})

	router := api.New(api.RouterArgs{
		Logger:       a.Logger,
		Catalog:      services.Catalog,
		OrderService: services.OrderService,
		SessionTTL:   a.Config.SessionTTL,
		SecureCookie: a.Config.GatewayEnvironment == config.EnvironmentProduction,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	processor := settlement.New(services.OrderService, gatewayClient, a.Logger).
		SetWorkers(5).            //nolint:mnd
		SetLimitPerIteration(100) //nolint:mnd

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// connectRedis открывает соединение и проверяет его доступность пингом.
// Redis здесь — единственное хранилище состояния, без него запускаться нельзя.
func connectRedis(ctx context.Context, conf *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddr,
		Password: conf.RedisPassword,
		DB:       conf.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if pingErr := rdb.Ping(pingCtx).Err(); pingErr != nil {
		return nil, fmt.Errorf("connect redis %s: %s", conf.RedisAddr, pingErr.Error())
	}
	return rdb, nil
}
