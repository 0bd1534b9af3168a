package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrAdminNotFound = errors.New("admin not found")

// Admin matches the 'catalog_admins' table. Passwords are stored as bcrypt hashes only.
type Admin struct {
	ID           int
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type AdminStore struct {
	db *sql.DB
}

func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) CreateAdmin(ctx context.Context, username, passwordHash string) (int, error) {
	query := `
		INSERT INTO catalog_admins (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	var id int
	if err := s.db.QueryRowContext(ctx, query, username, passwordHash).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create admin: %w", err)
	}
	return id, nil
}

func (s *AdminStore) GetAdmin(ctx context.Context, username string) (*Admin, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM catalog_admins
		WHERE username = $1
	`
	var a Admin
	err := s.db.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &a, nil
}
