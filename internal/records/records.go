// internal/records/records.go

// Package records holds the typed record components that sit on top of
// the key-value store: accounts, the scholarship catalog and the
// application ledger.
package records

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"acadgrant/internal/common/auth"
	"acadgrant/internal/common/errors"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/common/metrics"
	"acadgrant/internal/store"
)

// Records bundles the three components over one store.
type Records struct {
	Accounts *Accounts
	Catalog  *Catalog
	Ledger   *Ledger
}

type Option func(*base)

// WithClock replaces time.Now for id generation.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// WithAuthProvider sets how passwords are stored and compared.
// The default stores and compares them as given.
func WithAuthProvider(p auth.Provider) Option {
	return func(b *base) { b.auth = p }
}

func New(kv store.KeyValueStore, log logger.Logger, opts ...Option) *Records {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	b := &base{
		kv:     kv,
		logger: log.WithFields(map[string]interface{}{"component": "records"}),
		auth:   auth.PlaintextProvider{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	accounts := &Accounts{base: b}
	return &Records{
		Accounts: accounts,
		Catalog:  &Catalog{base: b, accounts: accounts},
		Ledger:   &Ledger{base: b},
	}
}

type base struct {
	kv     store.KeyValueStore
	logger logger.Logger
	auth   auth.Provider
	now    func() time.Time

	// mu serializes list-valued read-modify-writes within this process.
	mu sync.Mutex
}

// load decodes key into a T. A missing key and a value that does not
// decode both yield the zero T with found=false; only store failures
// are returned as errors.
func load[T any](ctx context.Context, b *base, key string) (T, bool, error) {
	var out T
	raw, found, err := b.kv.Get(ctx, key)
	if err != nil {
		return out, false, errors.NewStorageFailedError("get", key, err)
	}
	if !found {
		return out, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		b.malformed(key, err)
		var zero T
		return zero, false, nil
	}
	return out, true, nil
}

func (b *base) malformed(key string, err error) {
	stdErr := errors.NewMalformedStoredDataError(key, err)
	b.logger.Warn("stored value did not decode, using empty default", map[string]interface{}{
		"key":       key,
		"errorCode": stdErr.Code,
		"error":     err,
	})
	metrics.MalformedRecords.WithLabelValues(keyFamily(key)).Inc()
}

func (b *base) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.NewStorageFailedError("encode", key, err)
	}
	if err := b.kv.Set(ctx, key, string(data)); err != nil {
		return errors.NewStorageFailedError("set", key, err)
	}
	return nil
}

func (b *base) nowMillis() int64 {
	return b.now().UnixMilli()
}
