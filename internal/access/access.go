// Package access implements the role-gating decision protecting every entry
// point. The decision is pure: given a session (or none) and the role an
// entry point requires, it either admits the caller or names the path to
// redirect to. Callers must evaluate the decision before running the entry
// point's body.
package access

import (
	"discbin/internal/auth"
	"discbin/internal/store"
)

// Paths the guard redirects to.
const (
	LoginPath = "/"
	AdminHome = "/admin"
	UserHome  = "/shop"
)

// Decision is the guard's verdict for one entry point evaluation.
type Decision struct {
	Admitted bool
	Redirect string
}

// Admit is the verdict that lets the caller through.
var Admit = Decision{Admitted: true}

// RedirectTo builds a denial verdict pointing at the given path.
func RedirectTo(path string) Decision {
	return Decision{Redirect: path}
}

// Check gates an entry point. Anonymous callers are sent to the login page.
// Authenticated callers with the wrong role are sent to their own role's
// home; an unrecognized role falls back to the login page.
func Check(session *auth.Session, required store.Role) Decision {
	if session == nil {
		return RedirectTo(LoginPath)
	}
	if required != "" && session.Role != required {
		return RedirectTo(RoleHome(session.Role))
	}
	return Admit
}

// RoleHome maps a role to its landing path.
func RoleHome(role store.Role) string {
	switch role {
	case store.RoleAdmin:
		return AdminHome
	case store.RoleUser:
		return UserHome
	default:
		return LoginPath
	}
}
