package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/studentportal-server/internal/model"
)

var errNoSession = errors.New("no session in request context")

// accountView is an account as shown to clients. The password never
// leaves the server.
type accountView struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	FatherName string     `json:"fatherName"`
	Class      string     `json:"class"`
	Email      string     `json:"email"`
	RollNo     string     `json:"rollNo"`
	Role       model.Role `json:"role"`
	CreatedAt  time.Time  `json:"createdAt"`
	External   bool       `json:"isGoogleUser,omitempty"`
}

func newAccountView(a model.Account) accountView {
	return accountView{
		ID:         a.ID,
		Name:       a.Name,
		FatherName: a.FatherName,
		Class:      a.Class,
		Email:      a.Email,
		RollNo:     a.RollNo,
		Role:       a.Role,
		CreatedAt:  a.CreatedAt,
		External:   a.External,
	}
}

type sessionView struct {
	Authenticated bool         `json:"authenticated"`
	Token         string       `json:"token,omitempty"`
	User          *accountView `json:"user,omitempty"`
}

func newSessionView(s model.Session) sessionView {
	user := newAccountView(s.Account)
	return sessionView{Authenticated: true, Token: s.Token, User: &user}
}

func decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.ErrInvalidRequest
	}
	return nil
}

func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func sessionFrom(cm model.ContextManager, r *http.Request) (model.SessionService, error) {
	session, ok := cm.GetSessionFromContext(r.Context())
	if !ok {
		return nil, errNoSession
	}
	return session, nil
}
