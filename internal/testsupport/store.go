package testsupport

import (
	"context"
	"testing"

	"discbin/internal/config"
	"discbin/internal/money"
	"discbin/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// NewArtist creates an artist for tests using the provided store.
func NewArtist(t testing.TB, st *store.Store, name string) store.Artist {
	t.Helper()

	artist, err := st.CreateArtist(context.Background(), name)
	if err != nil {
		t.Fatalf("store.CreateArtist: %v", err)
	}
	return artist
}

// NewCD creates a CD for tests using the provided store.
func NewCD(t testing.TB, st *store.Store, title string, artistID int64, price money.Cents, stock int) store.CD {
	t.Helper()

	cd, err := st.CreateCD(context.Background(), title, artistID, price, stock)
	if err != nil {
		t.Fatalf("store.CreateCD: %v", err)
	}
	return cd
}
