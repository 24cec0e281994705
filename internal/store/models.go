package store

import "discbin/internal/money"

// Role identifies the authorization level carried by a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Artist is a catalog artist. Artists are never mutated after creation; they
// are only created and, when no CD references them, deleted.
type Artist struct {
	ID   int64
	Name string
}

// CD is a catalog entry joined with its artist's name. Stock is the only
// field that changes after creation.
type CD struct {
	ID         int64
	Title      string
	ArtistID   int64
	ArtistName string
	Price      money.Cents
	Stock      int
}

// User is a registered account. PasswordHash holds a bcrypt digest; the clear
// password never touches the database.
type User struct {
	ID           int64
	Name         string
	Surname1     string
	Surname2     string
	Username     string
	PasswordHash string
	Role         Role
}

// DisplayName joins the user's name components for presentation.
func (u User) DisplayName() string {
	name := u.Name
	if u.Surname1 != "" {
		name += " " + u.Surname1
	}
	if u.Surname2 != "" {
		name += " " + u.Surname2
	}
	return name
}
