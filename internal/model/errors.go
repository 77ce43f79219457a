package model

import "errors"

// ErrNotFound is returned by stores when the requested item does not exist.
var ErrNotFound = errors.New("not found")

// ErrorKind classifies user-facing failures.
type ErrorKind int

const (
	KindInvalid ErrorKind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// PortalError is a failure whose Message is shown to the user verbatim.
type PortalError struct {
	Kind    ErrorKind
	Message string
}

func (e *PortalError) Error() string {
	return e.Message
}

// NewPortalError creates a PortalError.
func NewPortalError(kind ErrorKind, message string) *PortalError {
	return &PortalError{Kind: kind, Message: message}
}

var (
	ErrInvalidCredentials = NewPortalError(KindUnauthorized, "Invalid email or password")
	ErrEmailTaken         = NewPortalError(KindConflict, "Email already registered!")
	ErrUserNotFound       = NewPortalError(KindNotFound, "User not found")
	ErrNoResults          = NewPortalError(KindNotFound, "No results found for this roll number.")
	ErrRollNoRequired     = NewPortalError(KindInvalid, "Please enter a roll number")
	ErrPasswordTooShort   = NewPortalError(KindInvalid, "Password must be at least 6 characters")
	ErrPasswordMismatch   = NewPortalError(KindInvalid, "Passwords do not match!")
	ErrNotAuthenticated   = NewPortalError(KindUnauthorized, "Please log in to continue")
	ErrAdminOnly          = NewPortalError(KindForbidden, "You do not have permission to access this page")
	ErrInvalidRequest     = NewPortalError(KindInvalid, "Invalid request")
)

// Success messages of the portal operations.
const (
	MsgAccountCreated  = "Account created successfully!"
	MsgPasswordChanged = "Password changed successfully!"
	MsgLoggedOut       = "Logged out successfully"
)

// Generic messages shown when an operation fails unexpectedly.
const (
	MsgSignupFailed         = "Error creating account"
	MsgLoginFailed          = "Error logging in"
	MsgExternalLoginFailed  = "Error logging in with Google"
	MsgChangePasswordFailed = "Error changing password"
	MsgResultsFailed        = "Error fetching results. Please try again."
	MsgInternal             = "Something went wrong"
)

// MinPasswordLength is the shortest password accepted on password change.
const MinPasswordLength = 6

// AsPortalError extracts a PortalError from err.
func AsPortalError(err error) (*PortalError, bool) {
	var pe *PortalError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
