package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/studentportal-server/internal/model"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]int{"n": 1}, "done")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "done", env.Message)
	assert.JSONEq(t, `{"n":1}`, string(env.Data))
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, model.MsgLoggedOut)

	assert.JSONEq(t, `{"success":true,"message":"Logged out successfully"}`, rec.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "invalid", err: model.ErrRollNoRequired, wantStatus: http.StatusBadRequest, wantMsg: "Please enter a roll number"},
		{name: "unauthorized", err: model.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid email or password"},
		{name: "forbidden", err: model.ErrAdminOnly, wantStatus: http.StatusForbidden, wantMsg: model.ErrAdminOnly.Message},
		{name: "not found", err: model.ErrNoResults, wantStatus: http.StatusNotFound, wantMsg: "No results found for this roll number."},
		{name: "conflict", err: model.ErrEmailTaken, wantStatus: http.StatusConflict, wantMsg: "Email already registered!"},
		{name: "wrapped portal error", err: fmt.Errorf("outer: %w", model.ErrUserNotFound), wantStatus: http.StatusNotFound, wantMsg: "User not found"},
		{name: "unexpected", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError, wantMsg: model.MsgSignupFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.err, model.MsgSignupFailed)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.Empty(t, env.Data)
		})
	}
}
