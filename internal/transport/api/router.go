package api

import (
	"time"

	"github.com/fsdevblog/gamepay/internal/catalog"
	"github.com/fsdevblog/gamepay/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// CheckoutServiceTimeout проведение оплаты включает сетевой вызов шлюза,
	// поэтому таймаут здесь заметно больше обычного.
	CheckoutServiceTimeout = 15 * time.Second
)

const (
	RouteGroup        = "/api"
	GamesRoute        = "/games"
	OrderRoute        = "/order"
	CheckoutRoute     = "/checkout"
	ConfirmationRoute = "/confirmation"
)

type RouterArgs struct {
	Logger       *logrus.Logger
	Catalog      *catalog.Catalog
	OrderService OrderServicer
	SessionTTL   time.Duration
	SecureCookie bool
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	gamesHandler := NewGamesHandler(args.Catalog)
	ordersHandler := NewOrdersHandler(args.OrderService)
	checkoutHandler := NewCheckoutHandler(args.OrderService)
	confirmationHandler := NewConfirmationHandler(args.OrderService)

	api := r.Group(RouteGroup)
	api.Use(middlewares.Session(middlewares.SessionArgs{
		TTL:    args.SessionTTL,
		Secure: args.SecureCookie,
	}))

	api.GET(GamesRoute, gamesHandler.Index)
	api.POST(OrderRoute, ordersHandler.Create)
	api.POST(CheckoutRoute, checkoutHandler.Create)
	api.GET(ConfirmationRoute, confirmationHandler.Show)

	return r
}
