package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/database/postgres"
	"jobboard/internal/domain/seeker"

	"github.com/google/uuid"
)

var ErrSeekerProfileNotFound = errors.New("seeker profile not found")

type SeekerProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (seeker.Profile, error)
}

type PostgresSeekerProfileRepository struct {
	db database.DB
}

func NewPostgresSeekerProfileRepository(db database.DB) *PostgresSeekerProfileRepository {
	return &PostgresSeekerProfileRepository{db: db}
}

func (r *PostgresSeekerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, full_name, COALESCE(skills, '')
		 FROM seeker_profiles
		 WHERE user_id = $1`,
		userID,
	)

	var p seeker.Profile
	if err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.Skills); err != nil {
		if postgres.IsNoRows(err) {
			return seeker.Profile{}, ErrSeekerProfileNotFound
		}
		return seeker.Profile{}, err
	}
	return p, nil
}
