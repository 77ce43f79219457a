package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager carries per-request device state through a context.
type ContextManager interface {
	SetDeviceIDToContext(ctx context.Context, deviceID uuid.UUID) context.Context
	GetDeviceIDFromContext(ctx context.Context) (uuid.UUID, bool)
	SetSessionToContext(ctx context.Context, session SessionService) context.Context
	GetSessionFromContext(ctx context.Context) (SessionService, bool)
}
