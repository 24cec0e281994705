// Package server exposes the catalog, cart, and auth operations over an HTTP
// JSON API. Handlers evaluate the role guard before touching any state, map
// domain errors onto HTTP statuses through the faults package, and return
// transport DTOs from the api package.
//
// Sessions travel in a signed "session" cookie. Carts live server-side in a
// registry keyed by the session token's jti; they are created lazily and
// dropped on logout.
package server
