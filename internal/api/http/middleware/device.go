package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/studentportal-server/internal/api/http/response"
	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/model"
)

const (
	DeviceCookieName = "portal_device"
	DeviceHeaderName = "X-Device-Token"

	deviceCookieMaxAge = 10 * 365 * 24 * 60 * 60
)

// DeviceService issues and resolves device tokens.
type DeviceService interface {
	Issue() (uuid.UUID, string, error)
	Resolve(tok string) (uuid.UUID, error)
}

// Device identifies the client of every request, registering a new
// device when the request carries no valid token.
type Device struct {
	service        DeviceService
	contextManager model.ContextManager
	secureCookie   bool
	logger         *logger.Logger
}

// NewDevice creates a new Device middleware.
func NewDevice(service DeviceService, contextManager model.ContextManager, secureCookie bool, logger *logger.Logger) *Device {
	return &Device{
		service:        service,
		contextManager: contextManager,
		secureCookie:   secureCookie,
		logger:         logger,
	}
}

func (m *Device) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok := deviceToken(r); tok != "" {
			deviceID, err := m.service.Resolve(tok)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(m.contextManager.SetDeviceIDToContext(r.Context(), deviceID)))
				return
			}
			m.logger.Debug("Device middleware: rejected device token",
				"error", err.Error())
		}

		deviceID, tok, err := m.service.Issue()
		if err != nil {
			m.logger.Error("Device middleware: failed to register device",
				"error", err.Error())
			response.Error(w, err, model.MsgInternal)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     DeviceCookieName,
			Value:    tok,
			Path:     "/",
			MaxAge:   deviceCookieMaxAge,
			HttpOnly: true,
			Secure:   m.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		w.Header().Set(DeviceHeaderName, tok)

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetDeviceIDToContext(r.Context(), deviceID)))
	})
}

// deviceToken prefers the header over the cookie.
func deviceToken(r *http.Request) string {
	if tok := r.Header.Get(DeviceHeaderName); tok != "" {
		return tok
	}
	if c, err := r.Cookie(DeviceCookieName); err == nil {
		return c.Value
	}
	return ""
}
