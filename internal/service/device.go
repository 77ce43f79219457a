package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/model"
)

// Device issues and resolves the tokens naming a client device.
type Device struct {
	manager model.DeviceTokenManager
	logger  *logger.Logger
}

func NewDevice(manager model.DeviceTokenManager, logger *logger.Logger) *Device {
	return &Device{manager: manager, logger: logger}
}

// Issue creates a new device and its token.
func (s *Device) Issue() (uuid.UUID, string, error) {
	deviceID := uuid.New()

	tok, err := s.manager.GenerateDeviceToken(deviceID)
	if err != nil {
		s.logger.Error("Device service: failed to issue token",
			"error", err.Error())
		return uuid.Nil, "", fmt.Errorf("issue device token: %w", err)
	}

	s.logger.Debug("Device service: device registered",
		"device_id", deviceID)

	return deviceID, tok, nil
}

// Resolve returns the device named by tok.
func (s *Device) Resolve(tok string) (uuid.UUID, error) {
	return s.manager.ParseDeviceToken(tok)
}
