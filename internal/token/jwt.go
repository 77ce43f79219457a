package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/studentportal-server/internal/model"
)

const typeDevice = "device"

// Claims represents JWT claims with token type and device ID.
type Claims struct {
	jwt.RegisteredClaims
	DeviceID  uuid.UUID `json:"device_id"`
	TokenType string    `json:"typ"`
}

// JWT implements DeviceTokenManager backed by symmetric HMAC.
// Device tokens carry no expiry: sessions end only on logout.
type JWT struct {
	secretKey string
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.DeviceTokenManager {
	return &JWT{secretKey: secretKey, now: time.Now}
}

func (j *JWT) GenerateDeviceToken(deviceID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(j.now()),
		},
		DeviceID:  deviceID,
		TokenType: typeDevice,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign device token: %w", err)
	}

	return tokenString, nil
}

// ParseDeviceToken validates and extracts the device ID from a device token.
func (j *JWT) ParseDeviceToken(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse device token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("device token is invalid")
	}
	if claims.TokenType != typeDevice {
		return uuid.Nil, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	if claims.DeviceID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("device token has no device id")
	}
	return claims.DeviceID, nil
}
