package model

import "context"

// Keys of the portal documents in Storage.
const (
	UsersKey   = "users"
	TokenKey   = "token"
	SessionKey = "user"
)

// Storage is a string key-value store. Get returns ErrNotFound for a
// missing key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
