package metadata

import (
	"context"
)

// Repository persists small opaque records by key. The session store keeps
// the signed-in account here as JSON.
//
// Get of a missing key returns (nil, nil). Set overwrites. Delete of a
// missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
