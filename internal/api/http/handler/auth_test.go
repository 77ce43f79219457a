package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/studentportal-server/internal/api/http/context"
	"github.com/dtroode/studentportal-server/internal/metrics"
	"github.com/dtroode/studentportal-server/internal/mocks"
	"github.com/dtroode/studentportal-server/internal/model"
	"github.com/dtroode/studentportal-server/internal/testutil"
)

func newAuthHandler() (*Auth, *httpcontext.Manager, *recordingObserver) {
	cm := httpcontext.NewManager()
	obs := &recordingObserver{}
	return NewAuth(cm, obs, testutil.MakeNoopLogger()), cm, obs
}

func TestAuth_Session(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		h, cm, _ := newAuthHandler()
		session := mocks.NewSessionService(t)
		session.On("Current").Return(model.Session{}, false)

		rec := httptest.NewRecorder()
		h.Session(rec, withSession(cm, newRequest(http.MethodGet, "/api/session", ""), session))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.JSONEq(t, `{"authenticated":false}`, string(env.Data))
	})

	t.Run("authenticated", func(t *testing.T) {
		h, cm, _ := newAuthHandler()
		session := mocks.NewSessionService(t)
		session.On("Current").Return(model.Session{
			Token:   "tok",
			Account: model.Account{ID: "1", Email: "s1@x.com", Password: "secret", Role: model.RoleStudent},
		}, true)

		rec := httptest.NewRecorder()
		h.Session(rec, withSession(cm, newRequest(http.MethodGet, "/api/session", ""), session))

		env := decodeEnvelope(t, rec)
		var view sessionView
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.True(t, view.Authenticated)
		assert.Equal(t, "tok", view.Token)
		assert.Equal(t, "s1@x.com", view.User.Email)
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("no session in context", func(t *testing.T) {
		h, _, _ := newAuthHandler()
		rec := httptest.NewRecorder()
		h.Session(rec, newRequest(http.MethodGet, "/api/session", ""))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAuth_Signup(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setup       func(s *mocks.SessionService)
		wantStatus  int
		wantMessage string
		wantOutcome string
	}{
		{
			name: "created",
			body: `{"name":"S","email":"s1@x.com","password":"abcdef","confirmPassword":"abcdef","rollNo":"R1"}`,
			setup: func(s *mocks.SessionService) {
				s.On("Signup", mock.Anything, model.SignupParams{Name: "S", Email: "s1@x.com", Password: "abcdef", RollNo: "R1"}).
					Return(model.Account{ID: "1", Email: "s1@x.com", Password: "abcdef", RollNo: "R1", Role: model.RoleStudent}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: model.MsgAccountCreated,
			wantOutcome: metrics.OutcomeSuccess,
		},
		{
			name:        "password mismatch",
			body:        `{"email":"s1@x.com","password":"abcdef","confirmPassword":"abcdeg"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Passwords do not match!",
			wantOutcome: metrics.OutcomeRejected,
		},
		{
			name: "blank fields are passed through",
			body: `{"password":"abcdef"}`,
			setup: func(s *mocks.SessionService) {
				s.On("Signup", mock.Anything, model.SignupParams{Password: "abcdef"}).
					Return(model.Account{ID: "1", Role: model.RoleStudent}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: model.MsgAccountCreated,
			wantOutcome: metrics.OutcomeSuccess,
		},
		{
			name:        "malformed body",
			body:        `{`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: model.ErrInvalidRequest.Message,
			wantOutcome: metrics.OutcomeRejected,
		},
		{
			name: "email taken",
			body: `{"email":"s1@x.com","password":"abcdef"}`,
			setup: func(s *mocks.SessionService) {
				s.On("Signup", mock.Anything, mock.Anything).Return(model.Account{}, model.ErrEmailTaken)
			},
			wantStatus:  http.StatusConflict,
			wantMessage: "Email already registered!",
			wantOutcome: metrics.OutcomeRejected,
		},
		{
			name: "storage failure",
			body: `{"email":"s1@x.com","password":"abcdef"}`,
			setup: func(s *mocks.SessionService) {
				s.On("Signup", mock.Anything, mock.Anything).Return(model.Account{}, errors.New("disk full"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: model.MsgSignupFailed,
			wantOutcome: metrics.OutcomeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, cm, obs := newAuthHandler()
			session := mocks.NewSessionService(t)
			if tt.setup != nil {
				tt.setup(session)
			}

			rec := httptest.NewRecorder()
			h.Signup(rec, withSession(cm, newRequest(http.MethodPost, "/api/auth/signup", tt.body), session))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Equal(t, tt.wantStatus == http.StatusOK, env.Success)
			assert.NotContains(t, string(env.Data), "abcdef")
			assert.Equal(t, []authRecord{{flow: FlowSignup, outcome: tt.wantOutcome}}, obs.seen)
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, cm, obs := newAuthHandler()
		session := mocks.NewSessionService(t)
		session.On("Login", mock.Anything, model.AdminEmail, model.AdminPassword).
			Return(model.Session{Token: "tok", Account: model.DefaultAdmin(fixedTime)}, nil)

		rec := httptest.NewRecorder()
		h.Login(rec, withSession(cm, newRequest(http.MethodPost, "/api/auth/login",
			`{"email":"admin@studentportal.com","password":"admin123"}`), session))

		assert.Equal(t, http.StatusOK, rec.Code)
		var view sessionView
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
		assert.Equal(t, model.RoleAdmin, view.User.Role)
		assert.NotContains(t, rec.Body.String(), model.AdminPassword)
		assert.Equal(t, []authRecord{{flow: FlowLogin, outcome: metrics.OutcomeSuccess}}, obs.seen)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h, cm, obs := newAuthHandler()
		session := mocks.NewSessionService(t)
		session.On("Login", mock.Anything, "a@x.com", "wrong").Return(model.Session{}, model.ErrInvalidCredentials)

		rec := httptest.NewRecorder()
		h.Login(rec, withSession(cm, newRequest(http.MethodPost, "/api/auth/login",
			`{"email":"a@x.com","password":"wrong"}`), session))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid email or password", decodeEnvelope(t, rec).Message)
		assert.Equal(t, []authRecord{{flow: FlowLogin, outcome: metrics.OutcomeRejected}}, obs.seen)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		h, cm, _ := newAuthHandler()
		session := mocks.NewSessionService(t)
		session.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(model.Session{}, errors.New("timeout"))

		rec := httptest.NewRecorder()
		h.Login(rec, withSession(cm, newRequest(http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"p"}`), session))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, model.MsgLoginFailed, decodeEnvelope(t, rec).Message)
	})
}

func TestAuth_External(t *testing.T) {
	t.Run("default name", func(t *testing.T) {
		h, cm, obs := newAuthHandler()
		session := mocks.NewSessionService(t)
		session.On("LoginWithExternalProvider", mock.Anything, model.ExternalIdentity{Email: "g@x.com", Name: model.ExternalDefaultName}).
			Return(model.Session{Token: "tok", Account: model.Account{Email: "g@x.com", External: true}}, nil)

		rec := httptest.NewRecorder()
		h.External(rec, withSession(cm, newRequest(http.MethodPost, "/api/auth/external", `{"email":"g@x.com"}`), session))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"isGoogleUser":true`)
		assert.Equal(t, []authRecord{{flow: FlowExternal, outcome: metrics.OutcomeSuccess}}, obs.seen)
	})

	t.Run("missing email", func(t *testing.T) {
		h, cm, _ := newAuthHandler()
		session := mocks.NewSessionService(t)

		rec := httptest.NewRecorder()
		h.External(rec, withSession(cm, newRequest(http.MethodPost, "/api/auth/external", `{"name":"G"}`), session))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("provider failure", func(t *testing.T) {
		h, cm, _ := newAuthHandler()
		session := mocks.NewSessionService(t)
		session.On("LoginWithExternalProvider", mock.Anything, mock.Anything).Return(model.Session{}, errors.New("write failed"))

		rec := httptest.NewRecorder()
		h.External(rec, withSession(cm, newRequest(http.MethodPost, "/api/auth/external", `{"email":"g@x.com","name":"G"}`), session))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, model.MsgExternalLoginFailed, decodeEnvelope(t, rec).Message)
	})
}

func TestAuth_Logout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, cm, _ := newAuthHandler()
		session := mocks.NewSessionService(t)
		session.On("Logout", mock.Anything).Return(nil)

		rec := httptest.NewRecorder()
		h.Logout(rec, withSession(cm, newRequest(http.MethodPost, "/api/auth/logout", ""), session))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.MsgLoggedOut, decodeEnvelope(t, rec).Message)
	})

	t.Run("storage failure", func(t *testing.T) {
		h, cm, _ := newAuthHandler()
		session := mocks.NewSessionService(t)
		session.On("Logout", mock.Anything).Return(errors.New("remove failed"))

		rec := httptest.NewRecorder()
		h.Logout(rec, withSession(cm, newRequest(http.MethodPost, "/api/auth/logout", ""), session))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
