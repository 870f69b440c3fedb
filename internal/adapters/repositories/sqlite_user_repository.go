package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"space-booking-service/internal/domain"
)

// SQLite-backed implementation of the UserRepository port.
// The login check compares against the first seeded record.
type SqliteUserRepository struct{ DB *sql.DB }

func NewSqliteUserRepository(db *sql.DB) *SqliteUserRepository {
	return &SqliteUserRepository{DB: db}
}

// Return the configured user record.
func (s *SqliteUserRepository) GetUser(ctx context.Context) (*domain.User, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite user repository: DB is nil")
	}

	query := `
	SELECT
		username,
		email,
		password
	FROM users
	ORDER BY username
	LIMIT 1;
	`
	var u domain.User
	err := s.DB.QueryRowContext(ctx, query).Scan(&u.Username, &u.Email, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("get user: no user record seeded")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: query users table: %w", err)
	}

	return &u, nil
}
