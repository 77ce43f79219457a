package model

import "time"

// Role is the access level of an account.
type Role string

const (
	// RoleStudent is the default role of every account.
	RoleStudent Role = "student"
	// RoleAdmin is reserved for the account owning AdminEmail.
	RoleAdmin Role = "admin"
)

// Fixed identity of the built-in administrator.
const (
	AdminEmail      = "admin@studentportal.com"
	AdminPassword   = "admin123"
	AdminID         = "admin-default"
	AdminRollNo     = "ADMIN-001"
	AdminName       = "Admin User"
	AdminFatherName = "System"
	AdminClass      = "Administration"
)

// Placeholders for accounts registered through an external provider.
const (
	ExternalIDPrefix       = "google-"
	ExternalRollNoPrefix   = "GOOGLE-"
	ExternalPasswordPrefix = "google-"
	ExternalFatherName     = "Google User"
	ExternalClass          = "Not Specified"
	ExternalDefaultName    = "Google User"
)

// Account is a registered identity as kept in the users collection.
type Account struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FatherName string    `json:"fatherName"`
	Class      string    `json:"class"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	RollNo     string    `json:"rollNo"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	External   bool      `json:"isGoogleUser,omitempty"`
}

// DeriveRole returns the effective role for an email address.
func DeriveRole(email string) Role {
	if email == AdminEmail {
		return RoleAdmin
	}
	return RoleStudent
}

// WithDerivedRole returns a copy of the account whose role is recomputed
// from its email, whatever role was stored.
func (a Account) WithDerivedRole() Account {
	a.Role = DeriveRole(a.Email)
	return a
}

// IsAdmin reports whether the account's effective role is admin.
func (a Account) IsAdmin() bool {
	return DeriveRole(a.Email) == RoleAdmin
}

// DefaultAdmin builds the administrator account seeded into an empty store.
func DefaultAdmin(now time.Time) Account {
	return Account{
		ID:         AdminID,
		Name:       AdminName,
		FatherName: AdminFatherName,
		Class:      AdminClass,
		Email:      AdminEmail,
		Password:   AdminPassword,
		RollNo:     AdminRollNo,
		Role:       RoleAdmin,
		CreatedAt:  now,
	}
}

// SignupParams holds the profile submitted on registration.
type SignupParams struct {
	Name       string
	FatherName string
	Class      string
	Email      string
	Password   string
	RollNo     string
}

// ExternalIdentity is what an external provider tells us about a user.
type ExternalIdentity struct {
	Email string
	Name  string
}
