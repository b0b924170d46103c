// Package session хранит состояние оформления заказа между запросами:
// по одному слоту на резервацию и на запись о транзакции для каждой сессии.
// Слоты живут в redis с ограниченным TTL, истечение сессии стирает оба.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	orderKeyFmt = "session:%s:order"
	txnKeyFmt   = "session:%s:txn"
	lockKeyFmt  = "session:%s:settle"

	// settleLockTTL страховка на случай упавшего процесса: зависший маркер
	// проведения оплаты не должен блокировать сессию навсегда.
	settleLockTTL = 30 * time.Second
)

// Store redis-реализация сессионного хранилища заказов.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb: rdb,
		ttl: ttl,
	}
}

// PendingOrder возвращает текущую резервацию сессии или domain.ErrOrderNotFound,
// если резервации нет либо сессия истекла.
func (s *Store) PendingOrder(ctx context.Context, sessionID string) (*domain.PendingOrder, error) {
	payload, err := s.rdb.Get(ctx, orderKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "get pending order")
	}

	var order domain.PendingOrder
	if jsonErr := json.Unmarshal(payload, &order); jsonErr != nil {
		return nil, errors.Wrap(jsonErr, "unmarshal pending order")
	}
	return &order, nil
}

// ReplacePendingOrder записывает резервацию, молча затирая предыдущую.
// В сессии живет не более одной резервации: учитывается только последняя.
func (s *Store) ReplacePendingOrder(ctx context.Context, sessionID string, order *domain.PendingOrder) error {
	payload, marshalErr := json.Marshal(order)
	if marshalErr != nil {
		return errors.Wrap(marshalErr, "marshal pending order")
	}

	if err := s.rdb.Set(ctx, orderKey(sessionID), payload, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "set pending order")
	}
	return nil
}

// TransactionRecord возвращает запись о транзакции или domain.ErrNoTransaction.
func (s *Store) TransactionRecord(ctx context.Context, sessionID string) (*domain.TransactionRecord, error) {
	payload, err := s.rdb.Get(ctx, txnKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoTransaction
		}
		return nil, errors.Wrap(err, "get transaction record")
	}

	var record domain.TransactionRecord
	if jsonErr := json.Unmarshal(payload, &record); jsonErr != nil {
		return nil, errors.Wrap(jsonErr, "unmarshal transaction record")
	}
	return &record, nil
}

// SetTransactionRecord сохраняет запись о транзакции, затирая предыдущую
// (истории нет, слот один).
func (s *Store) SetTransactionRecord(ctx context.Context, sessionID string, record *domain.TransactionRecord) error {
	payload, marshalErr := json.Marshal(record)
	if marshalErr != nil {
		return errors.Wrap(marshalErr, "marshal transaction record")
	}

	if err := s.rdb.Set(ctx, txnKey(sessionID), payload, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "set transaction record")
	}
	return nil
}

// Clear удаляет оба слота сессии.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, orderKey(sessionID), txnKey(sessionID)).Err(); err != nil {
		return errors.Wrap(err, "clear session")
	}
	return nil
}

// AcquireSettleLock выставляет маркер проведения оплаты для сессии. Возвращает
// false если маркер уже стоит — значит параллельный запрос уже ушел на шлюз и
// вторую продажу отправлять нельзя.
func (s *Store) AcquireSettleLock(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, lockKey(sessionID), 1, settleLockTTL).Result()
	if err != nil {
		return false, errors.Wrap(err, "acquire settle lock")
	}
	return ok, nil
}

// ReleaseSettleLock снимает маркер проведения оплаты.
func (s *Store) ReleaseSettleLock(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, lockKey(sessionID)).Err(); err != nil {
		return errors.Wrap(err, "release settle lock")
	}
	return nil
}
