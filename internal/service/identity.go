package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/model"
)

var errCorruptUsers = errors.New("stored users are not a valid account list")

// Identity owns the account collection, kept as one JSON array under
// model.UsersKey. Every mutation rewrites the whole array.
type Identity struct {
	storage model.Storage
	logger  *logger.Logger
	now     func() time.Time

	// mu serializes read-modify-write cycles of this process only.
	mu sync.Mutex
}

func NewIdentity(storage model.Storage, logger *logger.Logger) *Identity {
	return &Identity{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// EnsureAdminSeed appends the default administrator unless an account
// with the admin email already exists. It never fails the caller.
func (s *Identity) EnsureAdminSeed(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load(ctx)
	if err != nil {
		if !errors.Is(err, errCorruptUsers) {
			s.logger.Error("Identity store: skipping admin seed, users unavailable",
				"error", err.Error())
			return
		}
		s.logger.Warn("Identity store: users unreadable, seeding over them",
			"error", err.Error())
		accounts = nil
	}

	for _, a := range accounts {
		if a.Email == model.AdminEmail {
			return
		}
	}

	accounts = append(accounts, model.DefaultAdmin(s.now().UTC()))
	if err := s.save(ctx, accounts); err != nil {
		s.logger.Error("Identity store: failed to persist admin seed",
			"error", err.Error())
		return
	}

	s.logger.Info("Identity store: admin account created",
		"email", model.AdminEmail)
}

// FindByEmail returns the first account with exactly this email.
func (s *Identity) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	for _, a := range s.ListAll(ctx) {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Account{}, model.ErrNotFound
}

// FindByEmailAndPassword matches both fields exactly, case included.
func (s *Identity) FindByEmailAndPassword(ctx context.Context, email, password string) (model.Account, error) {
	for _, a := range s.ListAll(ctx) {
		if a.Email == email && a.Password == password {
			return a, nil
		}
	}
	return model.Account{}, model.ErrNotFound
}

// UpsertAccount appends account to the collection. Existing accounts are
// never merged: a second account with the same email is rejected with
// model.ErrEmailTaken.
func (s *Identity) UpsertAccount(ctx context.Context, account model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	for _, a := range accounts {
		if a.Email == account.Email {
			return model.ErrEmailTaken
		}
	}

	accounts = append(accounts, account)
	if err := s.save(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	s.logger.Debug("Identity store: account saved",
		"email", account.Email,
		"id", account.ID)

	return nil
}

// SetPassword overwrites the password of the account owning email.
func (s *Identity) SetPassword(ctx context.Context, email, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	idx := -1
	for i, a := range accounts {
		if a.Email == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.ErrUserNotFound
	}

	accounts[idx].Password = newPassword
	if err := s.save(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	s.logger.Info("Identity store: password changed",
		"email", email)

	return nil
}

// ListAll returns every stored account, or an empty list when the
// collection cannot be read.
func (s *Identity) ListAll(ctx context.Context) []model.Account {
	accounts, err := s.load(ctx)
	if err != nil {
		s.logger.Error("Identity store: failed to read users",
			"error", err.Error())
		return []model.Account{}
	}
	if accounts == nil {
		return []model.Account{}
	}
	return accounts
}

// load returns nil for a missing collection and errCorruptUsers for one
// that does not decode.
func (s *Identity) load(ctx context.Context) ([]model.Account, error) {
	raw, err := s.storage.Get(ctx, model.UsersKey)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	var accounts []model.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorruptUsers, err)
	}
	return accounts, nil
}

func (s *Identity) save(ctx context.Context, accounts []model.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	return s.storage.Set(ctx, model.UsersKey, string(raw))
}
