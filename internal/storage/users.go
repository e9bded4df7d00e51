package storage

import (
	"context"
	"fmt"

	"github.com/claude/healthsync/internal/models"
)

// GetOrCreateUser finds or creates a user by contact email (the unique
// identity key clients sync under). Name and phone are refreshed on each
// sync when supplied.
func GetOrCreateUser(ctx context.Context, q Querier, email, name, phone string) (*models.User, error) {
	u := &models.User{}
	err := q.QueryRow(ctx, `
		INSERT INTO users (email, name, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
			SET name  = COALESCE(NULLIF($2, ''), users.name),
			    phone = COALESCE(NULLIF($3, ''), users.phone)
		RETURNING id, email, name, phone
	`, email, name, phone).Scan(&u.ID, &u.Email, &u.Name, &u.Phone)
	if err != nil {
		return nil, fmt.Errorf("getting or creating user: %w", err)
	}
	return u, nil
}

// GetUser fetches a user by id.
func (db *DB) GetUser(ctx context.Context, id int) (*models.User, error) {
	u := &models.User{}
	err := db.Pool.QueryRow(ctx,
		`SELECT id, email, name, phone FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Phone)
	if err != nil {
		return nil, fmt.Errorf("fetching user %d: %w", id, err)
	}
	return u, nil
}
