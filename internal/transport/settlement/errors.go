package settlement

import (
	"errors"
)

var (
	ErrNoTransactions = errors.New("no transactions")
)
