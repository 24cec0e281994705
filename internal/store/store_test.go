package store_test

import (
	"context"
	"errors"
	"testing"

	"discbin/internal/faults"
	"discbin/internal/money"
	"discbin/internal/store"
	"discbin/internal/testsupport"
)

func TestOpenInitializesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	health, err := st.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth failed: %v", err)
	}
	if !health.Reachable || !health.IntegrityCheck {
		t.Fatalf("unexpected health: %#v", health)
	}
	if health.Artists != 0 || health.CDs != 0 || health.Users != 0 {
		t.Fatalf("expected empty database, got %#v", health)
	}
}

func TestCreateArtistAssignsID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	artist, err := st.CreateArtist(ctx, "  Mecano  ")
	if err != nil {
		t.Fatalf("CreateArtist failed: %v", err)
	}
	if artist.ID == 0 {
		t.Fatal("expected artist ID to be assigned")
	}
	if artist.Name != "Mecano" {
		t.Fatalf("expected trimmed name, got %q", artist.Name)
	}

	artists, err := st.ListArtists(ctx)
	if err != nil {
		t.Fatalf("ListArtists failed: %v", err)
	}
	if len(artists) != 1 || artists[0].ID != artist.ID {
		t.Fatalf("unexpected artists: %#v", artists)
	}
}

func TestCreateArtistRejectsBlankName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	for _, name := range []string{"", "   "} {
		if _, err := st.CreateArtist(context.Background(), name); !errors.Is(err, faults.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", name, err)
		}
	}
}

func TestDeleteArtistGuardsDependents(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	artist := testsupport.NewArtist(t, st, "Triana")
	testsupport.NewCD(t, st, "El Patio", artist.ID, 1299, 4)
	testsupport.NewCD(t, st, "Hijos del Agobio", artist.ID, 1399, 2)

	err := st.DeleteArtist(ctx, artist.ID)
	if !errors.Is(err, faults.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	var inUse *store.ArtistInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("expected ArtistInUseError, got %T", err)
	}
	if inUse.Count != 2 {
		t.Fatalf("expected 2 dependents, got %d", inUse.Count)
	}

	// Removing the dependents makes the delete succeed.
	cds, err := st.ListCDs(ctx)
	if err != nil {
		t.Fatalf("ListCDs failed: %v", err)
	}
	for _, cd := range cds {
		if err := st.DeleteCD(ctx, cd.ID); err != nil {
			t.Fatalf("DeleteCD failed: %v", err)
		}
	}
	if err := st.DeleteArtist(ctx, artist.ID); err != nil {
		t.Fatalf("DeleteArtist failed after removing dependents: %v", err)
	}

	if err := st.DeleteArtist(ctx, artist.ID); !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected not found for second delete, got %v", err)
	}
}

func TestCreateCDJoinsArtistName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	artist := testsupport.NewArtist(t, st, "Heroes del Silencio")
	cd, err := st.CreateCD(ctx, "Senderos de Traicion", artist.ID, 1550, 10)
	if err != nil {
		t.Fatalf("CreateCD failed: %v", err)
	}
	if cd.ArtistName != "Heroes del Silencio" {
		t.Fatalf("expected joined artist name, got %q", cd.ArtistName)
	}

	listed, err := st.ListCDs(ctx)
	if err != nil {
		t.Fatalf("ListCDs failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 cd, got %d", len(listed))
	}
	got := listed[0]
	if got.Title != "Senderos de Traicion" || got.ArtistID != artist.ID || got.Price != 1550 || got.Stock != 10 {
		t.Fatalf("round-trip mismatch: %#v", got)
	}
}

func TestCreateCDValidation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	artist := testsupport.NewArtist(t, st, "Los Planetas")

	cases := []struct {
		name     string
		title    string
		artistID int64
		price    int64
		stock    int
		marker   error
	}{
		{"blank title", "  ", artist.ID, 1000, 1, faults.ErrValidation},
		{"zero price", "Una Semana en el Motor de un Autobus", artist.ID, 0, 1, faults.ErrValidation},
		{"negative stock", "Super 8", artist.ID, 1000, -1, faults.ErrValidation},
		{"unknown artist", "Pop", artist.ID + 999, 1000, 1, faults.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := st.CreateCD(ctx, tc.title, tc.artistID, money.Cents(tc.price), tc.stock)
			if !errors.Is(err, tc.marker) {
				t.Fatalf("expected %v, got %v", tc.marker, err)
			}
		})
	}
}

func TestListCDsOrderedByTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	artist := testsupport.NewArtist(t, st, "Various")
	for _, title := range []string{"Zurdo", "agua", "Brindis", "alma"} {
		testsupport.NewCD(t, st, title, artist.ID, 999, 1)
	}

	first, err := st.ListCDs(ctx)
	if err != nil {
		t.Fatalf("ListCDs failed: %v", err)
	}
	second, err := st.ListCDs(ctx)
	if err != nil {
		t.Fatalf("ListCDs failed: %v", err)
	}
	if len(first) != 4 {
		t.Fatalf("expected 4 cds, got %d", len(first))
	}
	// Deterministic: two listings of the same data agree exactly.
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("ordering not deterministic at %d: %v vs %v", i, first[i].Title, second[i].Title)
		}
	}
}

func TestDeleteCD(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	artist := testsupport.NewArtist(t, st, "Extremoduro")
	cd := testsupport.NewCD(t, st, "Agila", artist.ID, 1199, 3)

	if err := st.DeleteCD(ctx, cd.ID); err != nil {
		t.Fatalf("DeleteCD failed: %v", err)
	}
	if err := st.DeleteCD(ctx, cd.ID); !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStockRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	artist := testsupport.NewArtist(t, st, "Camaron")
	cd := testsupport.NewCD(t, st, "La Leyenda del Tiempo", artist.ID, 1899, 5)

	stock, err := st.StockOf(ctx, cd.ID)
	if err != nil || stock != 5 {
		t.Fatalf("StockOf = %d, %v", stock, err)
	}

	if err := st.SetStock(ctx, cd.ID, 0); err != nil {
		t.Fatalf("SetStock failed: %v", err)
	}
	stock, err = st.StockOf(ctx, cd.ID)
	if err != nil || stock != 0 {
		t.Fatalf("StockOf after update = %d, %v", stock, err)
	}

	if err := st.SetStock(ctx, cd.ID, -1); !errors.Is(err, faults.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := st.StockOf(ctx, cd.ID+999); !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	user := store.User{Name: "Ana", Surname1: "Garcia", Username: "ana", PasswordHash: "hash", Role: store.RoleUser}
	id, err := st.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected user ID to be assigned")
	}

	if _, err := st.CreateUser(ctx, user); !errors.Is(err, faults.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	// Username comparison is case-sensitive: "Ana" is a different account.
	upper := user
	upper.Username = "Ana"
	if _, err := st.CreateUser(ctx, upper); err != nil {
		t.Fatalf("expected case-sensitive usernames to coexist, got %v", err)
	}
}

func TestUserLookup(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	id, err := st.CreateUser(ctx, store.User{
		Name: "Luis", Surname1: "Perez", Surname2: "Soto",
		Username: "luis", PasswordHash: "hash", Role: store.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byName, err := st.UserByUsername(ctx, "luis")
	if err != nil {
		t.Fatalf("UserByUsername failed: %v", err)
	}
	if byName.ID != id || byName.Role != store.RoleAdmin || byName.Surname2 != "Soto" {
		t.Fatalf("unexpected user: %#v", byName)
	}
	if byName.DisplayName() != "Luis Perez Soto" {
		t.Fatalf("unexpected display name: %q", byName.DisplayName())
	}

	if _, err := st.UserByUsername(ctx, "LUIS"); !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected case-sensitive lookup miss, got %v", err)
	}

	byID, err := st.UserByID(ctx, id)
	if err != nil || byID.Username != "luis" {
		t.Fatalf("UserByID = %#v, %v", byID, err)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	_, err := st.CreateUser(context.Background(), store.User{
		Name: "X", Surname1: "Y", Username: "x", PasswordHash: "h", Role: store.Role("root"),
	})
	if !errors.Is(err, faults.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
