package settlement

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/gamepay/internal/service"
	"github.com/fsdevblog/gamepay/internal/session"
	"github.com/fsdevblog/gamepay/internal/transport/gateway"
)

type Client interface {
	FindTransaction(ctx context.Context, transactionID string) (*gateway.SaleResult, error)
}

type Servicer interface {
	TransactionsForSettlementMonitoring(ctx context.Context, limit uint) ([]session.KeyedRecord, error)
	UpdateSettlement(ctx context.Context, updates []service.UpdateSettlementArgs) error
}
