package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"discbin/internal/faults"
)

// ArtistInUseError reports how many CDs still reference an artist whose
// deletion was refused.
type ArtistInUseError struct {
	ArtistID int64
	Count    int
}

func (e *ArtistInUseError) Error() string {
	return fmt.Sprintf("artist %d has %d dependent CDs", e.ArtistID, e.Count)
}

// Unwrap ties the error into the faults taxonomy so it maps to 409.
func (e *ArtistInUseError) Unwrap() error {
	return faults.ErrConflict
}

// ListArtists returns all artists ordered by name.
func (s *Store) ListArtists(ctx context.Context) ([]Artist, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM artists ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		var artist Artist
		if err := rows.Scan(&artist.ID, &artist.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

// CreateArtist inserts a new artist and returns it with its assigned id.
func (s *Store) CreateArtist(ctx context.Context, name string) (Artist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Artist{}, faults.Wrap(faults.ErrValidation, "store", "create artist", "name is required", nil)
	}

	ctx = ensureContext(ctx)
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx, `INSERT INTO artists (name) VALUES (?)`, name)
		return execErr
	})
	if err != nil {
		return Artist{}, fmt.Errorf("insert artist: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Artist{}, fmt.Errorf("last insert id: %w", err)
	}
	return Artist{ID: id, Name: name}, nil
}

// DeleteArtist removes an artist that has no dependent CDs. The dependency
// check and the delete run in one transaction so a CD created concurrently
// cannot slip between them.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return faults.Wrap(faults.ErrNotFound, "store", "delete artist", fmt.Sprintf("artist %d", id), nil)
		}
		if err != nil {
			return fmt.Errorf("check artist: %w", err)
		}

		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM cds WHERE artist_id = ?`, id).Scan(&count); err != nil {
			return fmt.Errorf("count dependent cds: %w", err)
		}
		if count > 0 {
			return &ArtistInUseError{ArtistID: id, Count: count}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete artist: %w", err)
		}
		return nil
	})
}

// ArtistByName fetches an artist by exact name. Convenience for the CLI;
// the API references artists by id because names are not unique.
func (s *Store) ArtistByName(ctx context.Context, name string) (Artist, error) {
	ctx = ensureContext(ctx)
	name = strings.TrimSpace(name)
	var artist Artist
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM artists WHERE name = ?`, name).Scan(&artist.ID, &artist.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Artist{}, faults.Wrap(faults.ErrNotFound, "store", "get artist", fmt.Sprintf("artist %q", name), nil)
	}
	if err != nil {
		return Artist{}, fmt.Errorf("get artist: %w", err)
	}
	return artist, nil
}

// ArtistByID fetches a single artist.
func (s *Store) ArtistByID(ctx context.Context, id int64) (Artist, error) {
	ctx = ensureContext(ctx)
	var artist Artist
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM artists WHERE id = ?`, id).Scan(&artist.ID, &artist.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Artist{}, faults.Wrap(faults.ErrNotFound, "store", "get artist", fmt.Sprintf("artist %d", id), nil)
	}
	if err != nil {
		return Artist{}, fmt.Errorf("get artist: %w", err)
	}
	return artist, nil
}
