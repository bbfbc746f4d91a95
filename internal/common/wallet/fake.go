// internal/common/wallet/fake.go
package wallet

import (
	"context"
	"fmt"
	"math/big"
	"sync"
)

// Payment is one transfer recorded by FakeProvider.
type Payment struct {
	From   string
	To     string
	Amount *big.Int
	Hash   string
}

// FakeProvider returns scripted results. Leaving every error nil and Hash
// empty produces successful payments with sequential hashes.
type FakeProvider struct {
	Address    string
	Hash       string
	RequestErr error
	SendErr    error
	WaitErr    error
	// Block makes Wait hang until its context is done.
	Block bool

	mu       sync.Mutex
	payments []Payment
}

func NewFakeProvider() *FakeProvider {
	return &FakeProvider{Address: "0x000000000000000000000000000000000000fa6e"}
}

func (f *FakeProvider) Accounts(_ context.Context) ([]string, error) {
	if f.RequestErr != nil {
		return nil, nil
	}
	return []string{f.Address}, nil
}

func (f *FakeProvider) RequestAccountAndSigner(_ context.Context) (Signer, error) {
	if f.RequestErr != nil {
		return nil, f.RequestErr
	}
	return fakeSigner(f.Address), nil
}

func (f *FakeProvider) SendPayment(_ context.Context, signer Signer, to string, amountWei *big.Int) (PendingPayment, error) {
	if f.SendErr != nil {
		return nil, f.SendErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	hash := f.Hash
	if hash == "" {
		hash = fmt.Sprintf("0x%064x", len(f.payments)+1)
	}
	f.payments = append(f.payments, Payment{
		From:   signer.Address(),
		To:     to,
		Amount: new(big.Int).Set(amountWei),
		Hash:   hash,
	})
	return &fakePayment{hash: hash, err: f.WaitErr, block: f.Block}, nil
}

// Payments returns a copy of what has been sent so far.
func (f *FakeProvider) Payments() []Payment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Payment(nil), f.payments...)
}

type fakeSigner string

func (s fakeSigner) Address() string { return string(s) }

type fakePayment struct {
	hash  string
	err   error
	block bool
}

func (p *fakePayment) Hash() string { return p.hash }

func (p *fakePayment) Wait(ctx context.Context) (*Receipt, error) {
	if p.block {
		<-ctx.Done()
		return nil, fmt.Errorf("waiting for %s: %w", p.hash, ctx.Err())
	}
	if p.err != nil {
		return nil, p.err
	}
	return &Receipt{TransactionHash: p.hash, BlockNumber: 1}, nil
}
