package model

import "github.com/google/uuid"

// DeviceTokenManager issues and validates tokens naming an HTTP client device.
type DeviceTokenManager interface {
	GenerateDeviceToken(deviceID uuid.UUID) (string, error)
	ParseDeviceToken(token string) (uuid.UUID, error)
}
