package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValue is the string-keyed persisted store underneath every log and the
// catalog itself: a handful of JSON-encoded values under stable keys, with a
// hard per-value size limit.
//
// Get returns ErrKeyNotFound when no entry exists. Set returns
// ErrValueTooLarge when the value exceeds the store's limit. Delete is
// idempotent: deleting a missing key is not an error.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
