package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/studentportal-server/internal/model"
)

type deviceIDKey struct{}

type sessionKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager stores per-request device state in the request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetDeviceIDToContext returns a copy of ctx carrying deviceID.
func (m *Manager) SetDeviceIDToContext(ctx context.Context, deviceID uuid.UUID) context.Context {
	return context.WithValue(ctx, deviceIDKey{}, deviceID)
}

// GetDeviceIDFromContext returns the device ID set by SetDeviceIDToContext.
func (m *Manager) GetDeviceIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	deviceID, ok := ctx.Value(deviceIDKey{}).(uuid.UUID)
	if !ok || deviceID == uuid.Nil {
		return uuid.Nil, false
	}
	return deviceID, true
}

// SetSessionToContext returns a copy of ctx carrying the device's session.
func (m *Manager) SetSessionToContext(ctx context.Context, session model.SessionService) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext returns the session set by SetSessionToContext.
func (m *Manager) GetSessionFromContext(ctx context.Context) (model.SessionService, bool) {
	session, ok := ctx.Value(sessionKey{}).(model.SessionService)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}
