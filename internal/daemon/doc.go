// Package daemon ties the store, authenticator, and API server together
// behind a single Start/Stop lifecycle. A flock-based lock file in the data
// directory keeps a second instance from opening the same database.
package daemon
