package api

// Artist describes a catalog artist in a transport-friendly format.
type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CD describes a catalog title. Price is rendered as a decimal string with
// two fractional digits so consumers never see float rounding artefacts.
type CD struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	ArtistID   int64  `json:"artistId"`
	ArtistName string `json:"artistName"`
	Price      string `json:"price"`
	Stock      int    `json:"stock"`
}

// CartLine describes one cart entry with its extended subtotal.
type CartLine struct {
	CD       CD     `json:"cd"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

// Cart is the full cart view returned after every mutation. Currency is the
// configured catalog currency code; it applies to every amount in the view.
type Cart struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"itemCount"`
	Total     string     `json:"total"`
	Currency  string     `json:"currency,omitempty"`
}

// Profile is the authenticated-user payload returned by login and session
// resume. The password hash never crosses the wire.
type Profile struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Surname1 string `json:"surname1"`
	Surname2 string `json:"surname2,omitempty"`
	Role     string `json:"role"`
	Home     string `json:"home"`
}

// CreateArtistRequest is the payload for POST /api/artists.
type CreateArtistRequest struct {
	Name string `json:"name"`
}

// CreateCDRequest is the payload for POST /api/cds. The artist is referenced
// by id; the entry form offers a picker over the existing artists.
type CreateCDRequest struct {
	Title    string `json:"title"`
	ArtistID int64  `json:"artistId"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Surname1 string `json:"surname1"`
	Surname2 string `json:"surname2"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CartAddRequest is the payload for POST /api/cart/items.
type CartAddRequest struct {
	CDID int64 `json:"cdId"`
}

// CartQuantityRequest is the payload for PUT /api/cart/items.
type CartQuantityRequest struct {
	CDID     int64 `json:"cdId"`
	Quantity int   `json:"quantity"`
}
