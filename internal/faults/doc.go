// Package faults defines the error taxonomy shared across the catalog store,
// the cart engine, and the authentication layer.
//
// Every failure returned by those components carries one of the sentinel
// markers declared here, wrapped with component context via Wrap. The API
// surface maps markers to HTTP status codes with HTTPStatus; nothing in this
// taxonomy is fatal to the process.
package faults
