package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"discbin/internal/faults"
	"discbin/internal/logging"
	"discbin/internal/store"
)

// MinPasswordLength is the registration password policy.
const MinPasswordLength = 6

// dummyHash is compared against when the username does not resolve, so the
// lookup miss and the password mismatch take a similar amount of time.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserDirectory is the account persistence the authenticator needs.
type UserDirectory interface {
	UserByUsername(ctx context.Context, username string) (store.User, error)
	CreateUser(ctx context.Context, user store.User) (int64, error)
}

// Authenticator resolves sessions from credentials and registers accounts.
type Authenticator struct {
	users  UserDirectory
	tokens *TokenManager
	logger *slog.Logger
}

// New constructs an authenticator.
func New(users UserDirectory, tokens *TokenManager, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Authenticator{users: users, tokens: tokens, logger: logger}
}

// Login verifies a credential pair and issues a session plus token. The
// username match is byte-exact and case-sensitive. A lookup miss and a
// password mismatch both report the same error so the response never reveals
// which field was wrong.
func (a *Authenticator) Login(ctx context.Context, username, password string, remember bool) (Session, TokenIssue, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return Session{}, TokenIssue{}, faults.Wrap(faults.ErrValidation, "auth", "login", "username and password are required", nil)
	}

	user, err := a.users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return Session{}, TokenIssue{}, faults.Wrap(faults.ErrBadCredentials, "auth", "login", "", nil)
		}
		return Session{}, TokenIssue{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, TokenIssue{}, faults.Wrap(faults.ErrBadCredentials, "auth", "login", "", nil)
	}

	session, issue, err := a.tokens.Issue(Session{
		UserID:   user.ID,
		Name:     user.Name,
		Surname1: user.Surname1,
		Surname2: user.Surname2,
		Username: user.Username,
		Role:     user.Role,
	}, remember)
	if err != nil {
		return Session{}, TokenIssue{}, err
	}

	a.logger.Info("login",
		slog.String(logging.FieldUser, user.Username),
		slog.String("role", string(user.Role)),
		slog.Bool("remember", remember))
	return session, issue, nil
}

// Profile is the registration input.
type Profile struct {
	Name     string
	Surname1 string
	Surname2 string
	Username string
	Password string
}

// Register creates a new account with role "user". Admin accounts are never
// self-registered; they are seeded through the CLI.
func (a *Authenticator) Register(ctx context.Context, profile Profile) (int64, error) {
	name := strings.TrimSpace(profile.Name)
	surname1 := strings.TrimSpace(profile.Surname1)
	surname2 := strings.TrimSpace(profile.Surname2)
	username := strings.TrimSpace(profile.Username)

	switch {
	case name == "":
		return 0, faults.Wrap(faults.ErrValidation, "auth", "register", "name is required", nil)
	case surname1 == "":
		return 0, faults.Wrap(faults.ErrValidation, "auth", "register", "first surname is required", nil)
	case username == "":
		return 0, faults.Wrap(faults.ErrValidation, "auth", "register", "username is required", nil)
	case len(profile.Password) < MinPasswordLength:
		return 0, faults.Wrap(faults.ErrValidation, "auth", "register", "password must be at least 6 characters", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, faults.Wrap(faults.ErrUnavailable, "auth", "register", "hash password", err)
	}

	id, err := a.users.CreateUser(ctx, store.User{
		Name:         name,
		Surname1:     surname1,
		Surname2:     surname2,
		Username:     username,
		PasswordHash: string(hash),
		Role:         store.RoleUser,
	})
	if err != nil {
		return 0, err
	}

	a.logger.Info("registered", slog.String(logging.FieldUser, username))
	return id, nil
}

// Resume reconstructs a session from a persisted token. Anything that fails
// verification yields anonymous; resume never raises.
func (a *Authenticator) Resume(tokenStr string) (Session, bool) {
	if tokenStr == "" {
		return Session{}, false
	}
	session, err := a.tokens.Parse(tokenStr)
	if err != nil {
		a.logger.Debug("discarding stale session token", slog.String("error", err.Error()))
		return Session{}, false
	}
	return session, true
}

// HashPassword exposes the registration hash policy for account seeding.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
