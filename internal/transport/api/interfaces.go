package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/fsdevblog/gamepay/internal/service"
)

// OrderServicer интерфейс воркфлоу заказа для хендлеров (и моков в тестах).
type OrderServicer interface {
	Reserve(ctx context.Context, sessionID string, args service.ReserveArgs) (*service.Reservation, error)
	Settle(ctx context.Context, sessionID string, nonce string) (*domain.TransactionRecord, error)
	Result(ctx context.Context, sessionID string) (*domain.TransactionRecord, error)
}
