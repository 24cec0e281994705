package api_test

import (
	"context"
	"testing"

	"discbin/internal/api"
	"discbin/internal/auth"
	"discbin/internal/cart"
	"discbin/internal/store"
)

type fixedStock map[int64]int

func (f fixedStock) StockOf(_ context.Context, cdID int64) (int, error) {
	return f[cdID], nil
}

func TestFromCDRendersPriceAsDecimal(t *testing.T) {
	dto := api.FromCD(store.CD{ID: 3, Title: "Kind of Blue", ArtistID: 1, ArtistName: "Miles Davis", Price: 1299, Stock: 4})
	if dto.Price != "12.99" {
		t.Fatalf("price = %q, want 12.99", dto.Price)
	}
	if dto.ArtistName != "Miles Davis" || dto.Stock != 4 {
		t.Fatalf("unexpected DTO: %+v", dto)
	}
}

func TestFromCartTotalsLines(t *testing.T) {
	c := cart.New(fixedStock{1: 5, 2: 5})
	disc := store.CD{ID: 1, Title: "Blue Train", Price: 1000}
	other := store.CD{ID: 2, Title: "Giant Steps", Price: 550}
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := c.Add(ctx, disc); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := c.Add(ctx, other); err != nil {
		t.Fatalf("add: %v", err)
	}

	dto := api.FromCart(c)
	if dto.Total != "25.50" {
		t.Fatalf("total = %q, want 25.50", dto.Total)
	}
	if dto.ItemCount != 3 {
		t.Fatalf("itemCount = %d, want 3", dto.ItemCount)
	}
	if len(dto.Lines) != 2 || dto.Lines[0].Subtotal != "20.00" || dto.Lines[1].Subtotal != "5.50" {
		t.Fatalf("unexpected lines: %+v", dto.Lines)
	}
}

func TestFromCartNilIsEmpty(t *testing.T) {
	dto := api.FromCart(nil)
	if dto.Lines == nil || len(dto.Lines) != 0 || dto.ItemCount != 0 {
		t.Fatalf("unexpected empty cart view: %+v", dto)
	}
}

func TestFromSessionIncludesRoleHome(t *testing.T) {
	dto := api.FromSession(auth.Session{UserID: 7, Username: "ops", Name: "Ana", Surname1: "Reyes", Role: store.RoleAdmin})
	if dto.Home != "/admin" {
		t.Fatalf("home = %q, want /admin", dto.Home)
	}
	if dto.Role != "admin" || dto.Surname2 != "" {
		t.Fatalf("unexpected profile: %+v", dto)
	}
}
