// Package storage holds Storage helpers shared by every driver.
package storage

import (
	"context"

	"github.com/dtroode/studentportal-server/internal/model"
)

var _ model.Storage = (*Namespaced)(nil)

// Namespaced is a view of a Storage where every key is prefixed.
type Namespaced struct {
	base   model.Storage
	prefix string
}

// WithPrefix returns a view of base whose keys are stored under prefix.
func WithPrefix(base model.Storage, prefix string) *Namespaced {
	return &Namespaced{base: base, prefix: prefix}
}

// DevicePrefix is the namespace holding the session keys of one device.
func DevicePrefix(deviceID string) string {
	return "device/" + deviceID + "/"
}

func (n *Namespaced) Get(ctx context.Context, key string) (string, error) {
	return n.base.Get(ctx, n.prefix+key)
}

func (n *Namespaced) Set(ctx context.Context, key, value string) error {
	return n.base.Set(ctx, n.prefix+key, value)
}

func (n *Namespaced) Remove(ctx context.Context, key string) error {
	return n.base.Remove(ctx, n.prefix+key)
}
