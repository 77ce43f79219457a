package model

import "context"

// Session is the authenticated identity of one client.
// Account is a copy, never shared with the identity store.
type Session struct {
	Token   string
	Account Account
}

// SessionService is the session lifecycle of one client.
type SessionService interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Signup(ctx context.Context, params SignupParams) (Account, error)
	LoginWithExternalProvider(ctx context.Context, identity ExternalIdentity) (Session, error)
	ChangePassword(ctx context.Context, email, newPassword string) error
	Logout(ctx context.Context) error
	Current() (Session, bool)
}
