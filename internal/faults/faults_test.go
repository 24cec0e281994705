package faults_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"discbin/internal/faults"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := faults.Wrap(faults.ErrValidation, "catalog", "create artist", "name required", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, faults.ErrValidation) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"catalog", "create artist", "name required"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := faults.Wrap(nil, "store", "query", "", errors.New("io"))
	if !errors.Is(err, faults.ErrUnavailable) {
		t.Fatalf("expected nil marker to default to ErrUnavailable, got %v", err)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", faults.Wrap(faults.ErrValidation, "catalog", "create cd", "bad price", nil), http.StatusBadRequest},
		{"not found", faults.Wrap(faults.ErrNotFound, "catalog", "delete artist", "unknown id", nil), http.StatusNotFound},
		{"conflict", faults.Wrap(faults.ErrConflict, "catalog", "delete artist", "in use", nil), http.StatusConflict},
		{"duplicate", faults.Wrap(faults.ErrDuplicate, "auth", "register", "username taken", nil), http.StatusConflict},
		{"out of stock", faults.Wrap(faults.ErrOutOfStock, "cart", "add", "", nil), http.StatusConflict},
		{"credentials", faults.Wrap(faults.ErrBadCredentials, "auth", "login", "", nil), http.StatusUnauthorized},
		{"backend", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := faults.HTTPStatus(tc.err); got != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, got)
			}
		})
	}
}

func TestRecoverable(t *testing.T) {
	if faults.Recoverable(errors.New("backend fault")) {
		t.Fatal("backend faults are not recoverable")
	}
	if !faults.Recoverable(faults.Wrap(faults.ErrOutOfStock, "cart", "set quantity", "", nil)) {
		t.Fatal("cart errors are recoverable by correcting the quantity")
	}
	if faults.Recoverable(nil) {
		t.Fatal("nil error is not a failure")
	}
}
