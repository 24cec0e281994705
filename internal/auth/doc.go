// Package auth resolves a caller's identity and role from a credential pair
// or from a previously issued session token.
//
// A Session is a value, never module-level state: handlers receive it per
// request after the token is parsed. Tokens are HS256-signed JWTs carrying the
// user id, display name fields, username, and role. A token either lives for
// the browser session (no expiry claim, session cookie) or for the configured
// remember horizon (default 30 days); those are the only two lifetimes.
//
// The role claim travels inside the client-held token, exactly as the rest of
// the system expects it to. That means a captured signing key lets a client
// mint any role; operations needing a stronger guarantee must re-validate the
// account server-side instead of trusting the carried claim.
package auth
