package handler

import (
	"context"
	"net/http"
	"unicode/utf8"

	"github.com/dtroode/studentportal-server/internal/api/http/response"
	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/model"
)

// AccountLister lists registered accounts.
type AccountLister interface {
	ListAll(ctx context.Context) []model.Account
}

// Users handles account administration endpoints.
type Users struct {
	accounts       AccountLister
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUsers creates a new Users handler.
func NewUsers(accounts AccountLister, contextManager model.ContextManager, logger *logger.Logger) *Users {
	return &Users{
		accounts:       accounts,
		contextManager: contextManager,
		logger:         logger,
	}
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// List returns every account without passwords.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.accounts.ListAll(r.Context())
	views := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, newAccountView(a.WithDerivedRole()))
	}
	response.OK(w, views, "")
}

// ChangePassword replaces the password of the account in the path.
func (h *Users) ChangePassword(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, "email")

	var req changePasswordRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err, model.MsgChangePasswordFailed)
		return
	}
	if utf8.RuneCountInString(req.NewPassword) < model.MinPasswordLength {
		response.Error(w, model.ErrPasswordTooShort, model.MsgChangePasswordFailed)
		return
	}

	session, err := sessionFrom(h.contextManager, r)
	if err != nil {
		response.Error(w, err, model.MsgChangePasswordFailed)
		return
	}

	if err := session.ChangePassword(r.Context(), email, req.NewPassword); err != nil {
		h.logger.Error("Users handler: change password failed",
			"email", email,
			"error", err.Error())
		response.Error(w, err, model.MsgChangePasswordFailed)
		return
	}

	h.logger.Info("Users handler: password changed",
		"email", email)
	response.Message(w, model.MsgPasswordChanged)
}
