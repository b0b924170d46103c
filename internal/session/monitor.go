package session

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// KeyedRecord запись о транзакции вместе с идентификатором сессии-владельца.
type KeyedRecord struct {
	SessionID string
	Record    domain.TransactionRecord
}

// SettlingTransactions возвращает до limit записей, еще не достигших
// терминального статуса. Используется фоновым мониторингом расчетов.
func (s *Store) SettlingTransactions(ctx context.Context, limit uint) ([]KeyedRecord, error) {
	var records []KeyedRecord

	iter := s.rdb.Scan(ctx, 0, txnKey("*"), int64(limit)).Iterator() //nolint:gosec
	for iter.Next(ctx) {
		if uint(len(records)) >= limit {
			break
		}

		key := iter.Val()
		payload, getErr := s.rdb.Get(ctx, key).Bytes()
		if getErr != nil {
			// слот мог истечь между SCAN и GET.
			if errors.Is(getErr, redis.Nil) {
				continue
			}
			return nil, errors.Wrap(getErr, "get transaction record")
		}

		var record domain.TransactionRecord
		if jsonErr := json.Unmarshal(payload, &record); jsonErr != nil {
			return nil, errors.Wrap(jsonErr, "unmarshal transaction record")
		}

		if record.Status.Final() {
			continue
		}

		records = append(records, KeyedRecord{
			SessionID: sessionIDFromTxnKey(key),
			Record:    record,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "scan transaction records")
	}

	return records, nil
}

// UpdateTransactionStatus переписывает статус и диагностику записи, сохраняя
// оставшийся TTL слота. Остальные поля записи не меняются.
func (s *Store) UpdateTransactionStatus(
	ctx context.Context,
	sessionID string,
	status domain.TransactionStatusType,
	processorMessage string,
) error {
	record, err := s.TransactionRecord(ctx, sessionID)
	if err != nil {
		return err
	}

	record.Status = status
	if processorMessage != "" {
		record.ProcessorMessage = processorMessage
	}

	payload, marshalErr := json.Marshal(record)
	if marshalErr != nil {
		return errors.Wrap(marshalErr, "marshal transaction record")
	}

	if setErr := s.rdb.Set(ctx, txnKey(sessionID), payload, redis.KeepTTL).Err(); setErr != nil {
		return errors.Wrap(setErr, "update transaction record")
	}
	return nil
}

func sessionIDFromTxnKey(key string) string {
	id := strings.TrimPrefix(key, "session:")
	return strings.TrimSuffix(id, ":txn")
}
