package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/fsdevblog/gamepay/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	orderSvs OrderServicer
}

func NewCheckoutHandler(orderSvs OrderServicer) *CheckoutHandler {
	return &CheckoutHandler{
		orderSvs: orderSvs,
	}
}

type checkoutRequest struct {
	PaymentMethodNonce string `json:"paymentMethodNonce" binding:"required"`
}

type CheckoutResponse struct {
	Success       bool                   `json:"success"`
	TransactionID string                 `json:"transactionId,omitempty"`
	Message       string                 `json:"message"`
	Errors        []domain.DeclineDetail `json:"errors,omitempty"`
}

// Create POST RouteGroup + CheckoutRoute. Проводит оплату по резервации из
// сессии. Отказ шлюза отдается в том же формате, что и успех: success=false
// и список причин как их сообщил шлюз.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req checkoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, CheckoutResponse{
			Success: false,
			Message: "payment method nonce is required",
		})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, CheckoutServiceTimeout)
	defer cancel()

	record, settleErr := h.orderSvs.Settle(reqCtx, middlewares.SessionID(c), req.PaymentMethodNonce)
	if settleErr != nil {
		var declineErr *domain.DeclineError
		if errors.As(settleErr, &declineErr) {
			c.JSON(http.StatusBadRequest, CheckoutResponse{
				Success: false,
				Message: declineErr.Message,
				Errors:  declineErr.Details,
			})
			return
		}
		abortWithDomainError(c, settleErr)
		return
	}

	c.JSON(http.StatusOK, CheckoutResponse{
		Success:       true,
		TransactionID: record.TransactionID,
		Message:       "payment processed successfully",
	})
}
