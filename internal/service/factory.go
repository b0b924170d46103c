package service

import (
	"github.com/fsdevblog/gamepay/internal/catalog"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	Catalog      *catalog.Catalog
	OrderService *OrderService
}

type FactoryArgs struct {
	Gateway  GatewayClient
	Sessions OrderSessions
	Currency string
	Logger   *logrus.Logger
}

func Factory(args FactoryArgs) *AppServices {
	cat := catalog.New()

	orderService := NewOrderService(
		cat,
		args.Gateway,
		args.Sessions,
		args.Currency,
		args.Logger.WithField("component", "order_service"),
	)

	return &AppServices{
		Catalog:      cat,
		OrderService: orderService,
	}
}
