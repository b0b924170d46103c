package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/fsdevblog/gamepay/internal/session"
	"github.com/fsdevblog/gamepay/internal/transport/gateway"
)

// GatewayClient операции платежного шлюза, нужные воркфлоу заказа.
type GatewayClient interface {
	GenerateClientToken(ctx context.Context) (string, error)
	Sale(ctx context.Context, saleReq gateway.SaleRequest) (*gateway.SaleResult, error)
	FindTransaction(ctx context.Context, transactionID string) (*gateway.SaleResult, error)
}

// OrderSessions сессионное хранилище заказов. Передается в воркфлоу явно,
// никакого глобального состояния.
type OrderSessions interface {
	PendingOrder(ctx context.Context, sessionID string) (*domain.PendingOrder, error)
	ReplacePendingOrder(ctx context.Context, sessionID string, order *domain.PendingOrder) error
	TransactionRecord(ctx context.Context, sessionID string) (*domain.TransactionRecord, error)
	SetTransactionRecord(ctx context.Context, sessionID string, record *domain.TransactionRecord) error
	Clear(ctx context.Context, sessionID string) error
	AcquireSettleLock(ctx context.Context, sessionID string) (bool, error)
	ReleaseSettleLock(ctx context.Context, sessionID string) error
	SettlingTransactions(ctx context.Context, limit uint) ([]session.KeyedRecord, error)
	UpdateTransactionStatus(
		ctx context.Context,
		sessionID string,
		status domain.TransactionStatusType,
		processorMessage string,
	) error
}
