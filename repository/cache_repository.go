package repository

import "context"

// CacheRepository is a flat string key-value store. A missing key is reported
// through the boolean, never as an error.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}
