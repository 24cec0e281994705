package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"discbin/internal/faults"
)

const userColumns = "id, name, surname1, surname2, username, password_hash, role"

// CreateUser inserts a new account. The username must be unique with
// byte-exact, case-sensitive comparison; the duplicate check and the insert
// share a transaction.
func (s *Store) CreateUser(ctx context.Context, user User) (int64, error) {
	if !user.Role.Valid() {
		return 0, faults.Wrap(faults.ErrValidation, "store", "create user", fmt.Sprintf("unknown role %q", user.Role), nil)
	}

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var existing int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, user.Username).Scan(&existing)
		if err == nil {
			return faults.Wrap(faults.ErrDuplicate, "store", "create user", fmt.Sprintf("username %q already exists", user.Username), nil)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check username: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (name, surname1, surname2, username, password_hash, role) VALUES (?, ?, ?, ?, ?, ?)`,
			user.Name, user.Surname1, nullableString(user.Surname2), user.Username, user.PasswordHash, string(user.Role))
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UserByUsername fetches an account by exact, case-sensitive username match.
func (s *Store) UserByUsername(ctx context.Context, username string) (User, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, faults.Wrap(faults.ErrNotFound, "store", "get user", fmt.Sprintf("username %q", username), nil)
	}
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UserByID fetches an account by identifier.
func (s *Store) UserByID(ctx context.Context, id int64) (User, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, faults.Wrap(faults.ErrNotFound, "store", "get user", fmt.Sprintf("user %d", id), nil)
	}
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func scanUser(scanner interface{ Scan(dest ...any) error }) (User, error) {
	var (
		user     User
		surname2 sql.NullString
		role     string
	)
	if err := scanner.Scan(&user.ID, &user.Name, &user.Surname1, &surname2, &user.Username, &user.PasswordHash, &role); err != nil {
		return User{}, err
	}
	user.Surname2 = surname2.String
	user.Role = Role(strings.TrimSpace(role))
	return user, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
