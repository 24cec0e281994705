package auth_test

import (
	"context"
	"errors"
	"testing"

	"discbin/internal/auth"
	"discbin/internal/faults"
	"discbin/internal/store"
	"discbin/internal/testsupport"
)

func newAuthenticator(t *testing.T) (*auth.Authenticator, *store.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	tokens := auth.NewTokenManager(cfg)
	return auth.New(st, tokens, nil), st
}

func register(t *testing.T, a *auth.Authenticator, username, password string) int64 {
	t.Helper()
	id, err := a.Register(context.Background(), auth.Profile{
		Name:     "Ana",
		Surname1: "Garcia",
		Username: username,
		Password: password,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return id
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	id := register(t, a, "ana", "secret1")

	session, issue, err := a.Login(ctx, "ana", "secret1", false)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session.UserID != id {
		t.Fatalf("expected user id %d, got %d", id, session.UserID)
	}
	if session.Role != store.RoleUser {
		t.Fatalf("registered accounts always get role user, got %q", session.Role)
	}
	if session.ID == "" {
		t.Fatal("expected session id")
	}
	if issue.Token == "" {
		t.Fatal("expected signed token")
	}
}

func TestLoginLifetimes(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()
	register(t, a, "ana", "secret1")

	_, plain, err := a.Login(ctx, "ana", "secret1", false)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if plain.MaxAge != 0 {
		t.Fatalf("plain login must issue a session-lifetime token, got MaxAge %d", plain.MaxAge)
	}

	_, remembered, err := a.Login(ctx, "ana", "secret1", true)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if remembered.MaxAge != 30*24*3600 {
		t.Fatalf("remembered login must issue a 30-day token, got MaxAge %d", remembered.MaxAge)
	}
}

func TestLoginDoesNotLeakWhichFieldFailed(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()
	register(t, a, "ana", "secret1")

	wrongPassword := func() error {
		_, _, err := a.Login(ctx, "ana", "wrong", false)
		return err
	}
	unknownUser := func() error {
		_, _, err := a.Login(ctx, "nobody", "secret1", false)
		return err
	}
	caseMismatch := func() error {
		_, _, err := a.Login(ctx, "Ana", "secret1", false)
		return err
	}

	for name, attempt := range map[string]func() error{
		"wrong password": wrongPassword,
		"unknown user":   unknownUser,
		"case mismatch":  caseMismatch,
	} {
		err := attempt()
		if !errors.Is(err, faults.ErrBadCredentials) {
			t.Fatalf("%s: expected bad credentials, got %v", name, err)
		}
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	for _, tc := range [][2]string{{"", "pw"}, {"ana", ""}, {"  ", "pw"}} {
		_, _, err := a.Login(ctx, tc[0], tc[1], false)
		if !errors.Is(err, faults.ErrValidation) {
			t.Fatalf("expected validation error for %q/%q, got %v", tc[0], tc[1], err)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		profile auth.Profile
	}{
		{"blank name", auth.Profile{Surname1: "G", Username: "u", Password: "secret1"}},
		{"blank surname", auth.Profile{Name: "A", Username: "u", Password: "secret1"}},
		{"blank username", auth.Profile{Name: "A", Surname1: "G", Password: "secret1"}},
		{"short password", auth.Profile{Name: "A", Surname1: "G", Username: "u", Password: "12345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := a.Register(ctx, tc.profile); !errors.Is(err, faults.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	a, _ := newAuthenticator(t)
	register(t, a, "ana", "secret1")

	_, err := a.Register(context.Background(), auth.Profile{
		Name: "Otra", Surname1: "Persona", Username: "ana", Password: "secret2",
	})
	if !errors.Is(err, faults.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestPasswordsAreHashed(t *testing.T) {
	a, st := newAuthenticator(t)
	register(t, a, "ana", "secret1")

	user, err := st.UserByUsername(context.Background(), "ana")
	if err != nil {
		t.Fatalf("UserByUsername failed: %v", err)
	}
	if user.PasswordHash == "secret1" {
		t.Fatal("password stored in clear")
	}
}

func TestResumeRoundTrip(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()
	register(t, a, "ana", "secret1")

	session, issue, err := a.Login(ctx, "ana", "secret1", true)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	resumed, ok := a.Resume(issue.Token)
	if !ok {
		t.Fatal("expected token to resume")
	}
	if resumed.UserID != session.UserID || resumed.Username != "ana" || resumed.Role != store.RoleUser {
		t.Fatalf("resumed session mismatch: %#v", resumed)
	}
	if resumed.DisplayName() != "Ana Garcia" {
		t.Fatalf("unexpected display name: %q", resumed.DisplayName())
	}
}

func TestResumeRejectsGarbage(t *testing.T) {
	a, _ := newAuthenticator(t)

	for _, token := range []string{"", "not.a.token", "eyJhbGciOiJub25lIn0.e30."} {
		if _, ok := a.Resume(token); ok {
			t.Fatalf("expected %q to be anonymous", token)
		}
	}
}

func TestResumeRejectsForeignSignature(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	a := auth.New(st, auth.NewTokenManager(cfg), nil)
	register(t, a, "ana", "secret1")

	otherCfg := testsupport.NewConfig(t)
	otherCfg.Session.SigningKey = "another-signing-key-0123456789abcd"
	forger := auth.NewTokenManager(otherCfg)
	_, forged, err := forger.Issue(auth.Session{UserID: 1, Username: "ana", Role: store.RoleAdmin}, true)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, ok := a.Resume(forged.Token); ok {
		t.Fatal("token signed with a different key must not resume")
	}
}
