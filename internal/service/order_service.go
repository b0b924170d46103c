package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/gamepay/internal/catalog"
	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/fsdevblog/gamepay/internal/transport/gateway"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// OrderService воркфлоу оформления заказа: резервация, проведение оплаты и
// просмотр результата. Сумма к списанию всегда берется из каталога на сервере —
// присланная клиентом сумма нигде не учитывается.
type OrderService struct {
	catalog  *catalog.Catalog
	gateway  GatewayClient
	sessions OrderSessions
	currency string
	l        *logrus.Entry
}

func NewOrderService(
	cat *catalog.Catalog,
	gw GatewayClient,
	sessions OrderSessions,
	currency string,
	l *logrus.Entry,
) *OrderService {
	return &OrderService{
		catalog:  cat,
		gateway:  gw,
		sessions: sessions,
		currency: currency,
		l:        l,
	}
}

type ReserveArgs struct {
	GameID        string
	PackageID     string
	UserReference string
}

// Reservation результат резервации: клиентский токен для платежного виджета
// и сохраненный в сессии заказ.
type Reservation struct {
	ClientToken string
	Order       domain.PendingOrder
}

// Reserve резервирует заказ: валидирует выбор, берет цену из каталога,
// выпускает клиентский токен и кладет заказ в сессию.
//
// Порядок шагов важен: до записи заказа в сессию побочных эффектов нет,
// поэтому ошибка выпуска токена не оставляет за собой ничего, что нужно
// откатывать. Предыдущая резервация затирается молча — действует только
// последняя.
func (o *OrderService) Reserve(ctx context.Context, sessionID string, args ReserveArgs) (*Reservation, error) {
	if err := validateReserveArgs(args); err != nil {
		return nil, err
	}

	game, pkg, findErr := o.catalog.FindPackage(args.GameID, args.PackageID)
	if findErr != nil {
		return nil, findErr
	}

	token, tokenErr := o.gateway.GenerateClientToken(ctx)
	if tokenErr != nil {
		o.l.WithError(tokenErr).Error("generate client token")
		return nil, fmt.Errorf("%w: client token", domain.ErrGatewayUnavailable)
	}

	order := domain.PendingOrder{
		CreatedAt:     time.Now(),
		GameID:        game.ID,
		GameName:      game.Name,
		GameIcon:      game.Icon,
		PackageID:     pkg.ID,
		Package:       *pkg,
		UserReference: args.UserReference,
		OrderRef:      newOrderRef(),
		// сумма — строго серверная цена пакета.
		Amount: pkg.Price.StringFixed(2),
	}

	if saveErr := o.sessions.ReplacePendingOrder(ctx, sessionID, &order); saveErr != nil {
		return nil, fmt.Errorf("reserve order: %w", saveErr)
	}

	o.l.WithFields(logrus.Fields{
		"orderRef": order.OrderRef,
		"gameID":   order.GameID,
		"amount":   order.Amount,
	}).Info("order reserved")

	return &Reservation{
		ClientToken: token,
		Order:       order,
	}, nil
}

// Settle проводит оплату по резервации из сессии.
//
// Гарантия идемпотентности: перед обращением к шлюзу выставляется сессионный
// маркер. Если маркер уже стоит, параллельный запрос получает
// domain.ErrSettlementInProgress и до шлюза не доходит — двойное списание при
// дублированной отправке формы исключается. Дополнительно OrderRef заказа
// передается шлюзу как ключ идемпотентности, закрывая гонку и на его стороне.
//
// При отказе шлюза (decline) вернется *domain.DeclineError, резервация
// останется в сессии и оплату можно повторить с новым nonce.
func (o *OrderService) Settle(ctx context.Context, sessionID string, nonce string) (*domain.TransactionRecord, error) {
	if nonce == "" {
		return nil, domain.NewValidationError("paymentMethodNonce", "is required")
	}

	locked, lockErr := o.sessions.AcquireSettleLock(ctx, sessionID)
	if lockErr != nil {
		return nil, fmt.Errorf("settle order: %w", lockErr)
	}
	if !locked {
		return nil, domain.ErrSettlementInProgress
	}
	defer func() {
		if releaseErr := o.sessions.ReleaseSettleLock(ctx, sessionID); releaseErr != nil {
			o.l.WithError(releaseErr).Error("release settle lock")
		}
	}()

	order, orderErr := o.sessions.PendingOrder(ctx, sessionID)
	if orderErr != nil {
		return nil, orderErr
	}

	result, saleErr := o.gateway.Sale(ctx, gateway.SaleRequest{
		Amount:        order.Amount,
		Nonce:         nonce,
		OrderRef:      order.OrderRef,
		GameID:        order.GameID,
		PackageID:     order.PackageID,
		UserReference: order.UserReference,
	})
	if saleErr != nil {
		// транспортная ошибка или неожиданный статус. Это не отказ: исход
		// продажи неизвестен, оплату можно повторить позже.
		o.l.WithError(saleErr).WithField("orderRef", order.OrderRef).Error("sale request failed")
		return nil, fmt.Errorf("%w: sale", domain.ErrGatewayUnavailable)
	}

	if !result.Success {
		o.l.WithFields(logrus.Fields{
			"orderRef": order.OrderRef,
			"message":  result.Message,
		}).Warn("sale declined")
		return nil, declineError(result)
	}

	record := o.buildRecord(order, result)

	if saveErr := o.sessions.SetTransactionRecord(ctx, sessionID, &record); saveErr != nil {
		return nil, fmt.Errorf("settle order: %w", saveErr)
	}

	o.l.WithFields(logrus.Fields{
		"transactionID": record.TransactionID,
		"status":        record.Status,
		"amount":        record.Amount,
	}).Info("sale succeeded")

	return &record, nil
}

// Result возвращает запись о проведенной транзакции или domain.ErrNoTransaction.
func (o *OrderService) Result(ctx context.Context, sessionID string) (*domain.TransactionRecord, error) {
	record, err := o.sessions.TransactionRecord(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// buildRecord собирает запись о транзакции из ответа шлюза и снимка заказа.
// Сумма и статус шлюза авторитетны для записи, но сумма сверяется с ожидаемой:
// расхождение — аномалия, она логируется для разбора оператором, финализация
// при этом не прерывается.
func (o *OrderService) buildRecord(order *domain.PendingOrder, result *gateway.SaleResult) domain.TransactionRecord {
	if result.Amount != order.Amount {
		o.l.WithFields(logrus.Fields{
			"anomaly":        "amount_mismatch",
			"orderRef":       order.OrderRef,
			"transactionID":  result.TransactionID,
			"expectedAmount": order.Amount,
			"gatewayAmount":  result.Amount,
		}).Error("gateway amount differs from reserved amount")
	}

	currency := result.CurrencyISOCode
	if currency == "" {
		currency = o.currency
	}

	createdAt := result.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return domain.TransactionRecord{
		CreatedAt:        createdAt,
		TransactionID:    result.TransactionID,
		Status:           result.Status,
		Amount:           result.Amount,
		Currency:         currency,
		ProcessorMessage: result.ProcessorMessage,
		Order:            *order,
	}
}

func declineError(result *gateway.SaleResult) error {
	details := make([]domain.DeclineDetail, len(result.Errors))
	for i, saleErr := range result.Errors {
		details[i] = domain.DeclineDetail{
			Code:    saleErr.Code,
			Message: saleErr.Message,
			Field:   saleErr.Field,
		}
	}

	message := result.Message
	if message == "" {
		message = "transaction failed"
	}
	return domain.NewDeclineError(message, details)
}

func validateReserveArgs(args ReserveArgs) error {
	if args.GameID == "" {
		return domain.NewValidationError("gameId", "is required")
	}
	if args.PackageID == "" {
		return domain.NewValidationError("packageId", "is required")
	}
	if args.UserReference == "" {
		return domain.NewValidationError("userId", "is required")
	}
	return nil
}

func newOrderRef() string {
	return "ORDER-" + uuid.NewString()
}
