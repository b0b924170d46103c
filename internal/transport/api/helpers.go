package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/gin-gonic/gin"
)

// abortWithDomainError переводит типизированные ошибки воркфлоу в http статусы.
// Ошибки инфраструктуры помечаются приватными: их текст клиенту не уходит.
func abortWithDomainError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrOrderNotFound):
		// сессия истекла или заказ не резервировался: клиенту нужно начать заново.
		_ = c.AbortWithError(http.StatusBadRequest,
			errors.New("order details not found, please start your order again")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrNoTransaction):
		_ = c.AbortWithError(http.StatusNotFound, errors.New("no transaction found")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrSettlementInProgress):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrGatewayUnavailable):
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
