package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

var ErrSavedJobNotFound = errors.New("saved job not found")

const (
	SavedSortNewest = "-timestamp"
	SavedSortOldest = "timestamp"
)

type SavedJobFilter struct {
	Search   string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Sort     string
	Limit    int
	Offset   int
}

type SavedJobRepository interface {
	SavedJobIDs(ctx context.Context, userID uuid.UUID, jobIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	Save(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	Unsave(ctx context.Context, userID, jobID uuid.UUID) error
	CountByUserID(ctx context.Context, userID uuid.UUID, f SavedJobFilter) (int, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, f SavedJobFilter) ([]job.SavedJob, error)
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) SavedJobIDs(ctx context.Context, userID uuid.UUID, jobIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(jobIDs))
	for _, id := range jobIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.db.Query(ctx,
		`SELECT sj.job_id
		 FROM saved_jobs sj
		 JOIN seeker_profiles s ON s.id = sj.seeker_id
		 WHERE s.user_id = $1 AND sj.job_id = ANY($2::uuid[])`,
		userID, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("saved job ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save reports whether a new row was created; saving twice is not an error.
func (r *PostgresSavedJobRepository) Save(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	n, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (id, job_id, seeker_id, saved_at)
		 SELECT $1, $2, s.id, $4 FROM seeker_profiles s WHERE s.user_id = $3
		 ON CONFLICT (job_id, seeker_id) DO NOTHING`,
		uuid.New(), jobID, userID, time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("save job: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresSavedJobRepository) Unsave(ctx context.Context, userID, jobID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs sj
		 USING seeker_profiles s
		 WHERE s.id = sj.seeker_id AND s.user_id = $1 AND sj.job_id = $2`,
		userID, jobID,
	)
	if err != nil {
		return fmt.Errorf("unsave job: %w", err)
	}
	if n == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

const savedJobsFrom = `
		 FROM saved_jobs sj
		 JOIN seeker_profiles s ON s.id = sj.seeker_id
		 JOIN job_postings p ON p.id = sj.job_id
		 JOIN employer_profiles e ON e.id = p.employer_id
		 WHERE s.user_id = $1
		   AND ($2::text = '' OR p.title ILIKE '%' || $2 || '%' ESCAPE '\'
			OR e.company_name ILIKE '%' || $2 || '%' ESCAPE '\'
			OR p.skills_required ILIKE '%' || $2 || '%' ESCAPE '\')
		   AND ($3::text = '' OR p.job_status = $3)
		   AND ($4::timestamptz IS NULL OR sj.saved_at >= $4)
		   AND ($5::timestamptz IS NULL OR sj.saved_at < $5::timestamptz + interval '1 day')`

func savedJobArgs(userID uuid.UUID, f SavedJobFilter) []any {
	return []any{userID, escapeLike(f.Search), strings.TrimSpace(f.Status), f.DateFrom, f.DateTo}
}

// CountByUserID counts the saved jobs matching f, ignoring Limit and Offset.
func (r *PostgresSavedJobRepository) CountByUserID(ctx context.Context, userID uuid.UUID, f SavedJobFilter) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+savedJobsFrom, savedJobArgs(userID, f)...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count saved jobs: %w", err)
	}
	return total, nil
}

// ListByUserID returns one page of saved jobs matching f. DateTo is inclusive
// of the whole day.
func (r *PostgresSavedJobRepository) ListByUserID(ctx context.Context, userID uuid.UUID, f SavedJobFilter) ([]job.SavedJob, error) {
	order := "sj.saved_at DESC"
	if f.Sort == SavedSortOldest {
		order = "sj.saved_at ASC"
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT sj.id, sj.job_id, sj.seeker_id, sj.saved_at, `+postingColumns+savedJobsFrom+`
		 ORDER BY `+order+`, sj.id
		 LIMIT $6 OFFSET $7`,
		append(savedJobArgs(userID, f), limit, offset)...,
	)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	defer rows.Close()

	out := make([]job.SavedJob, 0)
	for rows.Next() {
		var sj job.SavedJob
		p := &sj.Posting
		if err := rows.Scan(
			&sj.ID, &sj.JobID, &sj.SeekerID, &sj.SavedAt,
			&p.ID, &p.EmployerID, &p.Title, &p.CompanyName, &p.Location, &p.JobType,
			&p.Status, &p.Deadline, &p.PostedAt, &p.SkillsRequired, &p.Salary,
			&p.ApplicationCount,
		); err != nil {
			return nil, err
		}
		out = append(out, sj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
