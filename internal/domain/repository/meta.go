package repository

import "context"

// MetaRepository stores key/value pairs; Put inserts when the key is missing.
type MetaRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}
