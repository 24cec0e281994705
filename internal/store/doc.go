// Package store owns catalog and account persistence backed by SQLite.
//
// It exposes authoritative CRUD for artists and CDs with an explicit
// referential-integrity guard (a CD always references an existing artist, and
// an artist with dependent CDs cannot be deleted), plus the user records the
// authentication layer builds sessions from. Check-then-act pairs such as the
// artist delete guard run inside a single transaction so no dependent row can
// appear between the check and the mutation.
//
// All failures are classified with the markers in discbin/internal/faults.
package store
