package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/fsdevblog/gamepay/internal/session"
)

// UpdateSettlementArgs результат запроса статуса транзакции на шлюзе.
type UpdateSettlementArgs struct {
	Error            error
	SessionID        string
	Status           domain.TransactionStatusType
	ProcessorMessage string
}

// TransactionsForSettlementMonitoring возвращает записи о транзакциях, еще не
// достигших терминального статуса расчетов.
func (o *OrderService) TransactionsForSettlementMonitoring(
	ctx context.Context,
	limit uint,
) ([]session.KeyedRecord, error) {
	records, err := o.sessions.SettlingTransactions(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return records, nil
}

// UpdateSettlement применяет свежие статусы расчетов к записям в сессиях.
// Элементы с ошибкой пропускаются — мониторинг повторит попытку на следующей
// итерации; слот к тому моменту может и истечь, это нормально.
func (o *OrderService) UpdateSettlement(ctx context.Context, updates []UpdateSettlementArgs) error {
	for _, update := range updates {
		if update.Error != nil {
			continue
		}

		updErr := o.sessions.UpdateTransactionStatus(ctx, update.SessionID, update.Status, update.ProcessorMessage)
		if updErr != nil && !errors.Is(updErr, domain.ErrNoTransaction) {
			return fmt.Errorf("updating settlement status: %w", updErr)
		}
	}
	return nil
}
