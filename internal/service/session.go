package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/model"
	"github.com/dtroode/studentportal-server/internal/token"
)

var _ model.SessionService = (*SessionManager)(nil)

var errNullSnapshot = errors.New("null session snapshot")

// SessionManager runs the authentication flows of one client. Its storage
// holds that client's token and account snapshot; accounts live in
// Identity.
type SessionManager struct {
	identity *Identity
	storage  model.Storage
	logger   *logger.Logger
	now      func() time.Time
	newID    func() string

	mu      sync.RWMutex
	current *model.Session
}

func NewSessionManager(identity *Identity, storage model.Storage, logger *logger.Logger) *SessionManager {
	return &SessionManager{
		identity: identity,
		storage:  storage,
		logger:   logger,
		now:      time.Now,
		newID:    func() string { return ulid.Make().String() },
	}
}

// RestoreSession seeds the admin account and then activates the stored
// snapshot if both token and snapshot are present. The token itself is
// not checked. Failures leave the manager unauthenticated.
func (m *SessionManager) RestoreSession(ctx context.Context) {
	m.identity.EnsureAdminSeed(ctx)

	tok, err := m.storage.Get(ctx, model.TokenKey)
	if err != nil {
		m.logRestoreMiss("token", err)
		m.deactivate()
		return
	}

	raw, err := m.storage.Get(ctx, model.SessionKey)
	if err != nil {
		m.logRestoreMiss("user", err)
		m.deactivate()
		return
	}

	if tok == "" || raw == "" {
		m.logger.Debug("Session manager: empty stored session")
		m.deactivate()
		return
	}

	var account *model.Account
	err = json.Unmarshal([]byte(raw), &account)
	if err == nil && account == nil {
		err = errNullSnapshot
	}
	if err != nil {
		m.logger.Error("Session manager: failed to parse stored session",
			"error", err.Error())
		m.deactivate()
		return
	}

	m.activate(model.Session{Token: tok, Account: account.WithDerivedRole()})

	m.logger.Debug("Session manager: session restored",
		"email", account.Email)
}

func (m *SessionManager) logRestoreMiss(key string, err error) {
	if errors.Is(err, model.ErrNotFound) {
		m.logger.Debug("Session manager: no stored session",
			"missing", key)
		return
	}
	m.logger.Error("Session manager: failed to read stored session",
		"key", key,
		"error", err.Error())
}

// Login authenticates by exact email and password. Unknown email and
// wrong password fail identically.
func (m *SessionManager) Login(ctx context.Context, email, password string) (model.Session, error) {
	m.logger.Debug("Session manager: login attempt",
		"email", email)

	account, err := m.identity.FindByEmailAndPassword(ctx, email, password)
	if errors.Is(err, model.ErrNotFound) {
		m.logger.Info("Session manager: invalid credentials",
			"email", email)
		return model.Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to find account: %w", err)
	}

	return m.startSession(ctx, account)
}

// Signup registers a new account. It does not log the account in.
func (m *SessionManager) Signup(ctx context.Context, params model.SignupParams) (model.Account, error) {
	m.logger.Debug("Session manager: signup attempt",
		"email", params.Email)

	_, err := m.identity.FindByEmail(ctx, params.Email)
	if err == nil {
		m.logger.Info("Session manager: email already registered",
			"email", params.Email)
		return model.Account{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("failed to find account: %w", err)
	}

	account := model.Account{
		ID:         m.newID(),
		Name:       params.Name,
		FatherName: params.FatherName,
		Class:      params.Class,
		Email:      params.Email,
		Password:   params.Password,
		RollNo:     params.RollNo,
		Role:       model.DeriveRole(params.Email),
		CreatedAt:  m.now().UTC(),
	}

	if err := m.identity.UpsertAccount(ctx, account); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.Account{}, err
		}
		m.logger.Error("Session manager: failed to create account",
			"email", params.Email,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	m.logger.Info("Session manager: account created",
		"email", account.Email,
		"id", account.ID,
		"role", account.Role)

	return account, nil
}

// LoginWithExternalProvider fetches the account for identity.Email,
// registering a placeholder profile on first use, and logs it in.
func (m *SessionManager) LoginWithExternalProvider(ctx context.Context, identity model.ExternalIdentity) (model.Session, error) {
	m.logger.Debug("Session manager: external login attempt",
		"email", identity.Email)

	account, err := m.identity.FindByEmail(ctx, identity.Email)
	if errors.Is(err, model.ErrNotFound) {
		account, err = m.registerExternal(ctx, identity)
	}
	if err != nil {
		m.logger.Error("Session manager: failed to resolve external account",
			"email", identity.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to resolve external account: %w", err)
	}

	return m.startSession(ctx, account)
}

func (m *SessionManager) registerExternal(ctx context.Context, identity model.ExternalIdentity) (model.Account, error) {
	name := identity.Name
	if name == "" {
		name = model.ExternalDefaultName
	}

	account := model.Account{
		ID:         model.ExternalIDPrefix + m.newID(),
		Name:       name,
		FatherName: model.ExternalFatherName,
		Class:      model.ExternalClass,
		Email:      identity.Email,
		Password:   model.ExternalPasswordPrefix + identity.Email,
		RollNo:     fmt.Sprintf("%s%d", model.ExternalRollNoPrefix, len(m.identity.ListAll(ctx))+1),
		Role:       model.DeriveRole(identity.Email),
		CreatedAt:  m.now().UTC(),
		External:   true,
	}

	err := m.identity.UpsertAccount(ctx, account)
	if errors.Is(err, model.ErrEmailTaken) {
		// registered concurrently
		return m.identity.FindByEmail(ctx, identity.Email)
	}
	if err != nil {
		return model.Account{}, err
	}

	m.logger.Info("Session manager: external account registered",
		"email", account.Email,
		"id", account.ID)

	return account, nil
}

// ChangePassword sets the password of any account. Callers decide who
// may use it.
func (m *SessionManager) ChangePassword(ctx context.Context, email, newPassword string) error {
	err := m.identity.SetPassword(ctx, email, newPassword)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return err
		}
		m.logger.Error("Session manager: failed to change password",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// Logout clears the stored session. The manager is unauthenticated
// afterwards even if the storage fails.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.deactivate()

	errToken := m.storage.Remove(ctx, model.TokenKey)
	errUser := m.storage.Remove(ctx, model.SessionKey)
	if err := errors.Join(errToken, errUser); err != nil {
		m.logger.Error("Session manager: failed to clear stored session",
			"error", err.Error())
		return fmt.Errorf("failed to clear session: %w", err)
	}

	m.logger.Debug("Session manager: logged out")
	return nil
}

// Current returns a copy of the active session.
func (m *SessionManager) Current() (model.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return model.Session{}, false
	}
	return *m.current, true
}

func (m *SessionManager) startSession(ctx context.Context, account model.Account) (model.Session, error) {
	account = account.WithDerivedRole()
	session := model.Session{
		Token:   token.MintSession(account.ID, m.now()),
		Account: account,
	}

	snapshot, err := json.Marshal(account)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := m.storage.Set(ctx, model.TokenKey, session.Token); err != nil {
		return model.Session{}, fmt.Errorf("failed to persist token: %w", err)
	}
	if err := m.storage.Set(ctx, model.SessionKey, string(snapshot)); err != nil {
		return model.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	m.activate(session)

	m.logger.Info("Session manager: logged in",
		"email", account.Email,
		"role", account.Role)

	return session, nil
}

func (m *SessionManager) activate(session model.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &session
}

func (m *SessionManager) deactivate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}
