// Package api defines wire-format types and converters for the HTTP API
// layer. It translates internal catalog, cart, and session models into
// transport-friendly DTOs so browser clients never couple to internal types.
//
// # Key Types
//
// Artist/CD: catalog entries with prices rendered as decimal strings.
//
// Cart/CartLine: the full cart view returned after every cart mutation,
// with per-line subtotals and the running total.
//
// Profile: authenticated-user payload returned by login and session resume,
// including the role's landing page.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript consumers. Monetary amounts
// cross the wire as strings ("10.50") because the internal representation is
// integer cents and clients must never round floats. Converters accept the
// internal structs by value and allocate fresh slices so handlers can return
// them without aliasing store results.
package api
