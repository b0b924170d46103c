package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/fsdevblog/gamepay/internal/service"
	"github.com/fsdevblog/gamepay/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

const (
	// maxUserReferenceBytes идентификатор юзера — непрозрачная строка, мы её не
	// проверяем, но и произвольно длинные значения в сессию класть не хотим.
	maxUserReferenceBytes = 64
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type reserveRequest struct {
	GameID    string `json:"gameId" binding:"required"`
	PackageID string `json:"packageId" binding:"required"`
	UserID    string `json:"userId" binding:"required,max_bytes=64"`
}

type OrderResponse struct {
	CreatedAt   time.Time       `json:"createdAt"`
	GameID      string          `json:"gameId"`
	GameName    string          `json:"gameName"`
	GameIcon    string          `json:"gameIcon"`
	PackageID   string          `json:"packageId"`
	Package     PackageResponse `json:"package"`
	UserID      string          `json:"userId"`
	OrderRef    string          `json:"orderRef"`
	TotalAmount string          `json:"totalAmount"`
}

type ReserveResponse struct {
	ClientToken string        `json:"clientToken"`
	Order       OrderResponse `json:"order"`
}

// Create POST RouteGroup + OrderRoute. Резервирует заказ и возвращает
// клиентский токен для платежного виджета. Сумма в запросе не принимается:
// даже если клиент её пришлет, она игнорируется.
func (o *OrdersHandler) Create(c *gin.Context) {
	var req reserveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest,
			errors.New("please fill in all required fields")).
			SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reservation, reserveErr := o.orderSvs.Reserve(reqCtx, middlewares.SessionID(c), service.ReserveArgs{
		GameID:        req.GameID,
		PackageID:     req.PackageID,
		UserReference: req.UserID,
	})
	if reserveErr != nil {
		abortWithDomainError(c, reserveErr)
		return
	}

	c.JSON(http.StatusOK, ReserveResponse{
		ClientToken: reservation.ClientToken,
		Order:       newOrderResponse(reservation.Order),
	})
}

func newOrderResponse(order domain.PendingOrder) OrderResponse {
	return OrderResponse{
		CreatedAt:   order.CreatedAt,
		GameID:      order.GameID,
		GameName:    order.GameName,
		GameIcon:    order.GameIcon,
		PackageID:   order.PackageID,
		Package:     newPackageResponse(order.Package),
		UserID:      order.UserReference,
		OrderRef:    order.OrderRef,
		TotalAmount: order.Amount,
	}
}
