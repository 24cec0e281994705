package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"discbin/internal/config"
	"discbin/internal/faults"
	"discbin/internal/store"
)

// Session is an authenticated identity plus role. The ID is the token's jti
// and keys per-session state such as the cart.
type Session struct {
	ID       string
	UserID   int64
	Name     string
	Surname1 string
	Surname2 string
	Username string
	Role     store.Role
}

// DisplayName joins the session's name components for presentation.
func (s Session) DisplayName() string {
	name := s.Name
	if s.Surname1 != "" {
		name += " " + s.Surname1
	}
	if s.Surname2 != "" {
		name += " " + s.Surname2
	}
	return name
}

// TokenIssue is a freshly signed token plus its cookie lifetime. MaxAge zero
// means a session-scoped cookie that the browser discards on close.
type TokenIssue struct {
	Token  string
	MaxAge int
}

type sessionClaims struct {
	Name     string `json:"name"`
	Surname1 string `json:"surname1"`
	Surname2 string `json:"surname2,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens.
type TokenManager struct {
	key         []byte
	issuer      string
	rememberTTL time.Duration
}

// NewTokenManager builds a manager from session configuration.
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		key:         []byte(cfg.Session.SigningKey),
		issuer:      cfg.Session.Issuer,
		rememberTTL: time.Duration(cfg.Session.RememberDays) * 24 * time.Hour,
	}
}

// Issue signs a token for the session. Remembered tokens carry an expiry at
// the configured horizon; plain tokens carry none and live only as long as
// the cookie they ride in.
func (m *TokenManager) Issue(session Session, remember bool) (Session, TokenIssue, error) {
	now := time.Now()
	session.ID = uuid.NewString()

	claims := sessionClaims{
		Name:     session.Name,
		Surname1: session.Surname1,
		Surname2: session.Surname2,
		Username: session.Username,
		Role:     string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatInt(session.UserID, 10),
			ID:       session.ID,
			Issuer:   m.issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	issue := TokenIssue{}
	if remember {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.rememberTTL))
		issue.MaxAge = int(m.rememberTTL / time.Second)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return Session{}, TokenIssue{}, fmt.Errorf("sign session token: %w", err)
	}
	issue.Token = signed
	return session, issue, nil
}

// Parse verifies a token and reconstructs its session. Malformed, forged, or
// expired tokens are reported as errors; callers resuming a session should
// treat any error as anonymous.
func (m *TokenManager) Parse(tokenStr string) (Session, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
	)
	token, err := parser.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		return m.key, nil
	})
	if err != nil {
		return Session{}, faults.Wrap(faults.ErrBadCredentials, "auth", "parse token", "", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return Session{}, faults.Wrap(faults.ErrBadCredentials, "auth", "parse token", "unexpected claims type", nil)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Session{}, faults.Wrap(faults.ErrBadCredentials, "auth", "parse token", "malformed subject", err)
	}
	role := store.Role(claims.Role)
	if !role.Valid() {
		return Session{}, faults.Wrap(faults.ErrBadCredentials, "auth", "parse token", fmt.Sprintf("unknown role %q", claims.Role), nil)
	}

	return Session{
		ID:       claims.ID,
		UserID:   userID,
		Name:     claims.Name,
		Surname1: claims.Surname1,
		Surname2: claims.Surname2,
		Username: claims.Username,
		Role:     role,
	}, nil
}
