// Package session provides the durable key-value store backing the client
// session: two string keys ("authToken", "userData") written on login,
// replaced on profile update, and erased on logout.
package session

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
