// internal/common/wallet/provider.go

// Package wallet sends scholarship payments. Provider is implemented by an
// Ethereum JSON-RPC client and by a scripted fake used in tests and local runs.
package wallet

import (
	"context"
	"errors"
	"math/big"
)

var (
	// ErrWalletUnavailable means no account could be obtained at all.
	ErrWalletUnavailable = errors.New("wallet unavailable")
	// ErrUserRejected means the account holder declined to sign.
	ErrUserRejected = errors.New("user rejected request")
	// ErrTransactionFailed covers submission errors and reverted transactions.
	ErrTransactionFailed = errors.New("transaction failed")
)

// Signer is a handle on an unlocked account.
type Signer interface {
	Address() string
}

type Receipt struct {
	TransactionHash string
	BlockNumber     uint64
}

// PendingPayment is a submitted transfer that has not been confirmed yet.
type PendingPayment interface {
	Hash() string
	// Wait blocks until one confirmation or until ctx is done.
	Wait(ctx context.Context) (*Receipt, error)
}

type Provider interface {
	Accounts(ctx context.Context) ([]string, error)
	RequestAccountAndSigner(ctx context.Context) (Signer, error)
	SendPayment(ctx context.Context, signer Signer, to string, amountWei *big.Int) (PendingPayment, error)
}
