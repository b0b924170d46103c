package domain

// TransactionStatusType статус транзакции, сообщаемый платежным шлюзом.
// Система его не вычисляет, а лишь зеркалирует.
type TransactionStatusType string

const (
	TransactionStatusAuthorized             TransactionStatusType = "authorized"
	TransactionStatusSubmittedForSettlement TransactionStatusType = "submitted_for_settlement"
	TransactionStatusSettled                TransactionStatusType = "settled"
	TransactionStatusFailed                 TransactionStatusType = "failed"
)

// Final сообщает, является ли статус терминальным с точки зрения мониторинга расчетов.
func (t TransactionStatusType) Final() bool {
	return t == TransactionStatusSettled || t == TransactionStatusFailed
}
