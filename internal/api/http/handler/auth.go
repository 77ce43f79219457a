package handler

import (
	"net/http"
	"strings"

	"github.com/dtroode/studentportal-server/internal/api/http/response"
	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/metrics"
	"github.com/dtroode/studentportal-server/internal/model"
)

// Authentication flows reported to the AuthObserver.
const (
	FlowSignup   = "signup"
	FlowLogin    = "login"
	FlowExternal = "external"
)

// AuthObserver records authentication attempts.
type AuthObserver interface {
	ObserveAuth(flow, outcome string)
}

// Auth handles session and authentication endpoints.
type Auth struct {
	contextManager model.ContextManager
	observer       AuthObserver
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(contextManager model.ContextManager, observer AuthObserver, logger *logger.Logger) *Auth {
	return &Auth{
		contextManager: contextManager,
		observer:       observer,
		logger:         logger,
	}
}

type signupRequest struct {
	Name            string  `json:"name"`
	FatherName      string  `json:"fatherName"`
	Class           string  `json:"class"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirmPassword,omitempty"`
	RollNo          string  `json:"rollNo"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type externalRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session returns the restored session of the calling device.
func (h *Auth) Session(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(h.contextManager, r)
	if err != nil {
		response.Error(w, err, model.MsgInternal)
		return
	}

	current, ok := session.Current()
	if !ok {
		response.OK(w, sessionView{}, "")
		return
	}
	response.OK(w, newSessionView(current), "")
}

// Signup registers a student account. It does not log the client in.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	err := decode(r, &req)
	if err == nil {
		err = validateSignup(req)
	}
	if err != nil {
		h.observe(FlowSignup, err)
		response.Error(w, err, model.MsgSignupFailed)
		return
	}

	session, err := sessionFrom(h.contextManager, r)
	if err != nil {
		response.Error(w, err, model.MsgSignupFailed)
		return
	}

	account, err := session.Signup(r.Context(), model.SignupParams{
		Name:       req.Name,
		FatherName: req.FatherName,
		Class:      req.Class,
		Email:      req.Email,
		Password:   req.Password,
		RollNo:     req.RollNo,
	})
	h.observe(FlowSignup, err)
	if err != nil {
		h.logger.Debug("Auth handler: signup rejected",
			"email", req.Email,
			"error", err.Error())
		response.Error(w, err, model.MsgSignupFailed)
		return
	}

	response.OK(w, newAccountView(account), model.MsgAccountCreated)
}

func validateSignup(req signupRequest) error {
	if req.ConfirmPassword != nil && *req.ConfirmPassword != req.Password {
		return model.ErrPasswordMismatch
	}
	return nil
}

// Login authenticates with email and password.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		h.observe(FlowLogin, err)
		response.Error(w, err, model.MsgLoginFailed)
		return
	}

	session, err := sessionFrom(h.contextManager, r)
	if err != nil {
		response.Error(w, err, model.MsgLoginFailed)
		return
	}

	current, err := session.Login(r.Context(), req.Email, req.Password)
	h.observe(FlowLogin, err)
	if err != nil {
		h.logger.Debug("Auth handler: login rejected",
			"email", req.Email,
			"error", err.Error())
		response.Error(w, err, model.MsgLoginFailed)
		return
	}

	response.OK(w, newSessionView(current), "")
}

// External authenticates with an identity asserted by an external
// provider, registering the account on first use.
func (h *Auth) External(w http.ResponseWriter, r *http.Request) {
	var req externalRequest
	err := decode(r, &req)
	if err == nil && strings.TrimSpace(req.Email) == "" {
		err = model.ErrInvalidRequest
	}
	if err != nil {
		h.observe(FlowExternal, err)
		response.Error(w, err, model.MsgExternalLoginFailed)
		return
	}

	if req.Name == "" {
		req.Name = model.ExternalDefaultName
	}

	session, err := sessionFrom(h.contextManager, r)
	if err != nil {
		response.Error(w, err, model.MsgExternalLoginFailed)
		return
	}

	current, err := session.LoginWithExternalProvider(r.Context(), model.ExternalIdentity{
		Email: req.Email,
		Name:  req.Name,
	})
	h.observe(FlowExternal, err)
	if err != nil {
		h.logger.Error("Auth handler: external login failed",
			"email", req.Email,
			"error", err.Error())
		response.Error(w, err, model.MsgExternalLoginFailed)
		return
	}

	response.OK(w, newSessionView(current), "")
}

// Logout ends the calling device's session.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(h.contextManager, r)
	if err != nil {
		response.Error(w, err, model.MsgInternal)
		return
	}

	if err := session.Logout(r.Context()); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		response.Error(w, err, model.MsgInternal)
		return
	}

	response.Message(w, model.MsgLoggedOut)
}

func (h *Auth) observe(flow string, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
		if _, ok := model.AsPortalError(err); ok {
			outcome = metrics.OutcomeRejected
		}
	}
	h.observer.ObserveAuth(flow, outcome)
}
