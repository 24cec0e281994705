package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"discbin/internal/faults"
	"discbin/internal/money"
)

const cdColumns = "c.id, c.title, c.artist_id, a.name, c.price_cents, c.stock"

// titleCollator orders CD titles deterministically for listings. The collator
// is not safe for concurrent use, so ListCDs allocates its own.
func titleCollator() *collate.Collator {
	return collate.New(language.Und)
}

// ListCDs returns every CD joined with its artist's name, ordered by title.
func (s *Store) ListCDs(ctx context.Context) ([]CD, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cdColumns+` FROM cds c JOIN artists a ON c.artist_id = a.id`)
	if err != nil {
		return nil, fmt.Errorf("list cds: %w", err)
	}
	defer rows.Close()

	var cds []CD
	for rows.Next() {
		cd, err := scanCD(rows)
		if err != nil {
			return nil, err
		}
		cds = append(cds, cd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	coll := titleCollator()
	sort.SliceStable(cds, func(i, j int) bool {
		if cmp := coll.CompareString(cds[i].Title, cds[j].Title); cmp != 0 {
			return cmp < 0
		}
		return cds[i].ID < cds[j].ID
	})
	return cds, nil
}

// CreateCD inserts a new CD after verifying the referenced artist exists. The
// artist check and the insert share a transaction, so the reference cannot go
// stale between them.
func (s *Store) CreateCD(ctx context.Context, title string, artistID int64, price money.Cents, stock int) (CD, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return CD{}, faults.Wrap(faults.ErrValidation, "store", "create cd", "title is required", nil)
	}
	if price <= 0 {
		return CD{}, faults.Wrap(faults.ErrValidation, "store", "create cd", "price must be positive", nil)
	}
	if stock < 0 {
		return CD{}, faults.Wrap(faults.ErrValidation, "store", "create cd", "stock cannot be negative", nil)
	}

	var cd CD
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var artistName string
		err := tx.QueryRowContext(ctx, `SELECT name FROM artists WHERE id = ?`, artistID).Scan(&artistName)
		if errors.Is(err, sql.ErrNoRows) {
			return faults.Wrap(faults.ErrNotFound, "store", "create cd", fmt.Sprintf("artist %d", artistID), nil)
		}
		if err != nil {
			return fmt.Errorf("check artist: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO cds (title, artist_id, price_cents, stock) VALUES (?, ?, ?, ?)`,
			title, artistID, int64(price), stock)
		if err != nil {
			return fmt.Errorf("insert cd: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}

		cd = CD{ID: id, Title: title, ArtistID: artistID, ArtistName: artistName, Price: price, Stock: stock}
		return nil
	})
	if err != nil {
		return CD{}, err
	}
	return cd, nil
}

// DeleteCD removes a CD unconditionally; CDs have no dependents.
func (s *Store) DeleteCD(ctx context.Context, id int64) error {
	ctx = ensureContext(ctx)
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx, `DELETE FROM cds WHERE id = ?`, id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("delete cd: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return faults.Wrap(faults.ErrNotFound, "store", "delete cd", fmt.Sprintf("cd %d", id), nil)
	}
	return nil
}

// CDByID fetches a single CD joined with its artist's name.
func (s *Store) CDByID(ctx context.Context, id int64) (CD, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cdColumns+` FROM cds c JOIN artists a ON c.artist_id = a.id WHERE c.id = ?`, id)
	cd, err := scanCD(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CD{}, faults.Wrap(faults.ErrNotFound, "store", "get cd", fmt.Sprintf("cd %d", id), nil)
	}
	if err != nil {
		return CD{}, fmt.Errorf("get cd: %w", err)
	}
	return cd, nil
}

// StockOf returns the current stock figure for a CD. The cart engine uses
// this as the advisory upper bound for quantity changes.
func (s *Store) StockOf(ctx context.Context, id int64) (int, error) {
	ctx = ensureContext(ctx)
	var stock int
	err := s.db.QueryRowContext(ctx, `SELECT stock FROM cds WHERE id = ?`, id).Scan(&stock)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, faults.Wrap(faults.ErrNotFound, "store", "stock", fmt.Sprintf("cd %d", id), nil)
	}
	if err != nil {
		return 0, fmt.Errorf("read stock: %w", err)
	}
	return stock, nil
}

// SetStock updates a CD's stock figure. Stock is the only field mutated after
// creation; order fulfillment drives it down, restocking drives it up.
func (s *Store) SetStock(ctx context.Context, id int64, stock int) error {
	if stock < 0 {
		return faults.Wrap(faults.ErrValidation, "store", "set stock", "stock cannot be negative", nil)
	}
	ctx = ensureContext(ctx)
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx, `UPDATE cds SET stock = ? WHERE id = ?`, stock, id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return faults.Wrap(faults.ErrNotFound, "store", "set stock", fmt.Sprintf("cd %d", id), nil)
	}
	return nil
}

func scanCD(scanner interface{ Scan(dest ...any) error }) (CD, error) {
	var (
		cd         CD
		priceCents int64
	)
	if err := scanner.Scan(&cd.ID, &cd.Title, &cd.ArtistID, &cd.ArtistName, &priceCents, &cd.Stock); err != nil {
		return CD{}, err
	}
	cd.Price = money.Cents(priceCents)
	return cd, nil
}
