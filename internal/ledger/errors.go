package ledger

import (
	"errors"
)

var (
	ErrWalletNotFound    = errors.New("there is no wallet matching your query")
	ErrEnvelopeNotFound  = errors.New("there is no envelope matching your query")
	ErrSameWallet        = errors.New("the source and destination wallet must be different")
	ErrAmountNotPositive = errors.New("the amount must be positive")
)
