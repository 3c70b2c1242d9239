package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/myrjola/planfit/internal/contexthelpers"
)

// User is a named profile owner. Several people can track themselves in the
// same installation by switching the active user.
type User struct {
	ID   int
	Name string
}

// ensureUser returns the id of the named user, creating the user and an
// empty biometric profile on first sight.
func (r *sqliteRepository) ensureUser(ctx context.Context, name string) (int, error) {
	var id int
	err := r.db.ReadOnly.QueryRowContext(ctx, `SELECT id FROM users WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("query user: %w", err)
	}

	result, err := r.db.ReadWrite.ExecContext(ctx, `INSERT INTO users (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user id: %w", err)
	}
	id = int(insertedID)

	if _, err = r.db.ReadWrite.ExecContext(ctx,
		`INSERT INTO profiles (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`, id); err != nil {
		return 0, fmt.Errorf("insert empty profile: %w", err)
	}
	return id, nil
}

// getUser returns the current user, or the default user when the context
// carries no known id.
func (r *sqliteRepository) getUser(ctx context.Context) (User, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	var user User
	err := r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT id, name FROM users WHERE id = ?`, userID).Scan(&user.ID, &user.Name)
	if errors.Is(err, sql.ErrNoRows) {
		err = r.db.ReadOnly.QueryRowContext(ctx,
			`SELECT id, name FROM users ORDER BY id LIMIT 1`).Scan(&user.ID, &user.Name)
	}
	if err != nil {
		return User{}, fmt.Errorf("query current user: %w", err)
	}
	return user, nil
}

// listUsers returns all users ordered by id.
func (r *sqliteRepository) listUsers(ctx context.Context) ([]User, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `SELECT id, name FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// SwitchUser resolves name to a user id, creating the user on first use.
func (s *Service) SwitchUser(ctx context.Context, name string) (int, error) {
	id, err := s.repo.ensureUser(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("switch user: %w", err)
	}
	return id, nil
}

// CurrentUser returns the user the context resolves to.
func (s *Service) CurrentUser(ctx context.Context) (User, error) {
	user, err := s.repo.getUser(ctx)
	if err != nil {
		return User{}, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

// Users lists all known users.
func (s *Service) Users(ctx context.Context) ([]User, error) {
	users, err := s.repo.listUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
