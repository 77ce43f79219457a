package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedSessionToken = errors.New("malformed session token")

// MintSession encodes "<accountID>:<unix millis>" in standard base64.
// The token only marks presence; nothing verifies it later.
func MintSession(accountID string, now time.Time) string {
	raw := accountID + ":" + strconv.FormatInt(now.UnixMilli(), 10)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// InspectSession decodes a token made by MintSession. Account ids may
// contain colons, so the timestamp is taken after the last one.
func InspectSession(token string) (string, time.Time, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to decode session token: %w", err)
	}

	s := string(raw)
	i := strings.LastIndexByte(s, ':')
	if i <= 0 {
		return "", time.Time{}, ErrMalformedSessionToken
	}

	millis, err := strconv.ParseInt(s[i+1:], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrMalformedSessionToken, err)
	}

	return s[:i], time.UnixMilli(millis), nil
}
