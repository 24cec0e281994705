package api

import (
	"discbin/internal/access"
	"discbin/internal/auth"
	"discbin/internal/cart"
	"discbin/internal/store"
)

// FromArtist converts a stored artist to its API representation.
func FromArtist(a store.Artist) Artist {
	return Artist{ID: a.ID, Name: a.Name}
}

// FromArtists converts a slice of stored artists, preserving order.
func FromArtists(artists []store.Artist) []Artist {
	out := make([]Artist, 0, len(artists))
	for _, a := range artists {
		out = append(out, FromArtist(a))
	}
	return out
}

// FromCD converts a stored CD to its API representation.
func FromCD(cd store.CD) CD {
	return CD{
		ID:         cd.ID,
		Title:      cd.Title,
		ArtistID:   cd.ArtistID,
		ArtistName: cd.ArtistName,
		Price:      cd.Price.String(),
		Stock:      cd.Stock,
	}
}

// FromCDs converts a slice of stored CDs, preserving order.
func FromCDs(cds []store.CD) []CD {
	out := make([]CD, 0, len(cds))
	for _, cd := range cds {
		out = append(out, FromCD(cd))
	}
	return out
}

// FromCart renders the full cart view including line subtotals and the
// running total in exact cents.
func FromCart(c *cart.Cart) Cart {
	if c == nil {
		return Cart{Lines: []CartLine{}}
	}
	lines := c.Lines()
	out := Cart{
		Lines:     make([]CartLine, 0, len(lines)),
		ItemCount: c.ItemCount(),
		Total:     c.Total().String(),
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, CartLine{
			CD:       FromCD(line.CD),
			Quantity: line.Quantity,
			Subtotal: line.Subtotal().String(),
		})
	}
	return out
}

// FromSession converts an authenticated session into the profile payload,
// including the landing page for the session's role.
func FromSession(s auth.Session) Profile {
	return Profile{
		UserID:   s.UserID,
		Username: s.Username,
		Name:     s.Name,
		Surname1: s.Surname1,
		Surname2: s.Surname2,
		Role:     string(s.Role),
		Home:     access.RoleHome(s.Role),
	}
}
