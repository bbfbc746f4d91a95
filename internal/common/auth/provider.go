// internal/common/auth/provider.go
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Provider turns a password into its stored form and checks a login attempt
// against it.
type Provider interface {
	Name() string
	Hash(password string) (string, error)
	Verify(stored, supplied string) bool
}

const (
	ProviderPlaintext = "plaintext"
	ProviderBcrypt    = "bcrypt"
)

// NewProvider returns the provider registered under name. cost only applies to bcrypt.
func NewProvider(name string, cost int) (Provider, error) {
	switch name {
	case "", ProviderPlaintext:
		return PlaintextProvider{}, nil
	case ProviderBcrypt:
		return NewBcryptProvider(cost), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", name)
	}
}

// PlaintextProvider stores passwords as given and compares them exactly.
type PlaintextProvider struct{}

func (PlaintextProvider) Name() string { return ProviderPlaintext }

func (PlaintextProvider) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextProvider) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

type BcryptProvider struct {
	cost int
}

func NewBcryptProvider(cost int) BcryptProvider {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptProvider{cost: cost}
}

func (BcryptProvider) Name() string { return ProviderBcrypt }

func (p BcryptProvider) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (BcryptProvider) Verify(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
