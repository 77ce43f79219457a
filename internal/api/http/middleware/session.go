package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/dtroode/studentportal-server/internal/api/http/response"
	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/model"
)

// SessionOpener returns the restored session of a device.
type SessionOpener interface {
	Open(ctx context.Context, deviceID string) model.SessionService
}

// Session restores the device's session once per request and puts it
// in the context. It must run after Device.
type Session struct {
	opener         SessionOpener
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSession creates a new Session middleware.
func NewSession(opener SessionOpener, contextManager model.ContextManager, logger *logger.Logger) *Session {
	return &Session{opener: opener, contextManager: contextManager, logger: logger}
}

func (m *Session) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID, ok := m.contextManager.GetDeviceIDFromContext(r.Context())
		if !ok {
			m.logger.Error("Session middleware: no device in request context")
			response.Error(w, errors.New("missing device"), model.MsgInternal)
			return
		}

		session := m.opener.Open(r.Context(), deviceID.String())
		next.ServeHTTP(w, r.WithContext(m.contextManager.SetSessionToContext(r.Context(), session)))
	})
}

// Guard rejects requests whose session does not meet a role requirement.
// Authorization lives here, not in the identity layer.
type Guard struct {
	contextManager model.ContextManager
}

// NewGuard creates a new Guard middleware.
func NewGuard(contextManager model.ContextManager) *Guard {
	return &Guard{contextManager: contextManager}
}

// RequireSession lets through any authenticated session.
func (g *Guard) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := g.current(r); !ok {
			response.Error(w, model.ErrNotAuthenticated, model.MsgInternal)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin lets through sessions whose derived role is admin.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := g.current(r)
		if !ok {
			response.Error(w, model.ErrNotAuthenticated, model.MsgInternal)
			return
		}
		if !session.Account.IsAdmin() {
			response.Error(w, model.ErrAdminOnly, model.MsgInternal)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Guard) current(r *http.Request) (model.Session, bool) {
	svc, ok := g.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		return model.Session{}, false
	}
	return svc.Current()
}
