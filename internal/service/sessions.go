package service

import (
	"context"

	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/model"
	"github.com/dtroode/studentportal-server/internal/storage"
)

// Sessions opens the session manager of a device. Each device keeps its
// token and snapshot under its own namespace of the shared storage.
type Sessions struct {
	identity *Identity
	base     model.Storage
	logger   *logger.Logger
}

func NewSessions(identity *Identity, base model.Storage, logger *logger.Logger) *Sessions {
	return &Sessions{identity: identity, base: base, logger: logger}
}

// Open returns a restored manager for deviceID.
func (s *Sessions) Open(ctx context.Context, deviceID string) model.SessionService {
	m := NewSessionManager(
		s.identity,
		storage.WithPrefix(s.base, storage.DevicePrefix(deviceID)),
		s.logger.With("device_id", deviceID),
	)
	m.RestoreSession(ctx)
	return m
}

// Identity exposes the shared account store.
func (s *Sessions) Identity() *Identity {
	return s.identity
}
