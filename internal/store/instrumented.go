// internal/store/instrumented.go
package store

import (
	"context"

	"acadgrant/internal/common/metrics"
)

type instrumented struct {
	next    KeyValueStore
	backend string
}

// Instrument counts every operation in records_store_ops_total.
func Instrument(next KeyValueStore, backend string) KeyValueStore {
	return &instrumented{next: next, backend: backend}
}

func (i *instrumented) record(op string, err error, result string) {
	if err != nil {
		result = "error"
	}
	metrics.StoreOperations.WithLabelValues(i.backend, op, result).Inc()
}

func (i *instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	v, found, err := i.next.Get(ctx, key)
	result := "hit"
	if !found {
		result = "miss"
	}
	i.record("get", err, result)
	return v, found, err
}

func (i *instrumented) Set(ctx context.Context, key, value string) error {
	err := i.next.Set(ctx, key, value)
	i.record("set", err, "ok")
	return err
}

func (i *instrumented) Remove(ctx context.Context, key string) error {
	err := i.next.Remove(ctx, key)
	i.record("remove", err, "ok")
	return err
}

func (i *instrumented) Clear(ctx context.Context) error {
	err := i.next.Clear(ctx)
	i.record("clear", err, "ok")
	return err
}

func (i *instrumented) Close() error {
	return i.next.Close()
}
