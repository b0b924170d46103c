package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/fsdevblog/gamepay/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type ConfirmationHandler struct {
	orderSvs OrderServicer
}

func NewConfirmationHandler(orderSvs OrderServicer) *ConfirmationHandler {
	return &ConfirmationHandler{
		orderSvs: orderSvs,
	}
}

type TransactionResponse struct {
	CreatedAt        time.Time     `json:"createdAt"`
	TransactionID    string        `json:"transactionId"`
	Status           string        `json:"status"`
	Amount           string        `json:"amount"`
	Currency         string        `json:"currency"`
	ProcessorMessage string        `json:"processorMessage,omitempty"`
	Order            OrderResponse `json:"order"`
}

// Show GET RouteGroup + ConfirmationRoute. Отдает запись о последней
// транзакции сессии. Отсутствие транзакции — не сбой, а сигнал клиенту
// начать оформление заново.
func (h *ConfirmationHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	record, err := h.orderSvs.Result(reqCtx, middlewares.SessionID(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(record))
}

func newTransactionResponse(record *domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		CreatedAt:        record.CreatedAt,
		TransactionID:    record.TransactionID,
		Status:           string(record.Status),
		Amount:           record.Amount,
		Currency:         record.Currency,
		ProcessorMessage: record.ProcessorMessage,
		Order:            newOrderResponse(record.Order),
	}
}
