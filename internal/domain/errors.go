package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("game or package not found")
	ErrOrderNotFound        = errors.New("order details not found")
	ErrNoTransaction        = errors.New("no transaction found")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
	ErrSettlementInProgress = errors.New("settlement already in progress")
	ErrUnknown              = errors.New("unknown error")
)

// ValidationError ошибка валидации входных данных. Всегда восстановима — клиенту
// достаточно повторить запрос с корректными полями.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// DeclineDetail одна причина отказа, полученная от шлюза. Код, сообщение и поле
// передаются клиенту без изменений.
type DeclineDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// DeclineError отказ шлюза провести продажу. Это штатный исход, а не
// инфраструктурная ошибка: заказ остается в сессии и оплату можно повторить.
type DeclineError struct {
	Message string
	Details []DeclineDetail
}

func NewDeclineError(message string, details []DeclineDetail) error {
	return &DeclineError{Message: message, Details: details}
}

func (e *DeclineError) Error() string {
	return fmt.Sprintf("sale declined: %s", e.Message)
}
