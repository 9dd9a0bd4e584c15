package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fulfillment-portal/models"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

// UserRepository handles database operations for user profiles
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

// GetByID returns the profile of a user, or ErrNotFound
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT id, email, company_name FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("❌ GetByID: User not found: id=%s", id)
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
