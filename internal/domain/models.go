package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package пакет пополнения игровой валюты. Цена хранится в decimal и никогда
// не принимается от клиента.
type Package struct {
	ID       string
	Quantity int64
	Unit     string
	Price    decimal.Decimal
	Bonus    int64
}

// Game игра с упорядоченным списком пакетов. Порядок пакетов задает порядок отображения.
type Game struct {
	ID       string
	Name     string
	Icon     string
	Packages []Package
}

// PendingOrder резервация заказа, живущая в сессии между шагами оформления.
// Amount копируется из цены пакета на сервере (строка с двумя знаками после запятой).
// OrderRef генерируется при резервации и передается шлюзу как ключ идемпотентности.
type PendingOrder struct {
	CreatedAt     time.Time
	GameID        string
	GameName      string
	GameIcon      string
	PackageID     string
	Package       Package
	UserReference string
	OrderRef      string
	Amount        string
}

// TransactionRecord результат проведенной продажи. Неизменяем после создания,
// хранит снимок исходного заказа для страницы подтверждения.
type TransactionRecord struct {
	CreatedAt        time.Time
	TransactionID    string
	Status           TransactionStatusType
	Amount           string
	Currency         string
	ProcessorMessage string
	Order            PendingOrder
}
