package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/database/postgres"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

var ErrPostingNotFound = errors.New("job posting not found")

// PostingFilter narrows the candidate set. Empty or nil fields do not filter.
// Postings without a published salary never match a salary bound.
type PostingFilter struct {
	Query     string
	JobType   string
	Location  string
	SalaryMin *int
	SalaryMax *int
}

type PostingRepository interface {
	ListOpenForSeeker(ctx context.Context, userID uuid.UUID, f PostingFilter) ([]job.Posting, error)
	FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

const postingColumns = `p.id, p.employer_id, p.title, COALESCE(e.company_name, ''), p.location, p.job_type,
	p.job_status, p.deadline, p.posted_date, COALESCE(p.skills_required, ''), p.salary,
	(SELECT COUNT(*) FROM job_applications a WHERE a.job_id = p.id)`

// ListOpenForSeeker returns open, unexpired postings the seeker has not
// applied to, newest first.
func (r *PostgresPostingRepository) ListOpenForSeeker(ctx context.Context, userID uuid.UUID, f PostingFilter) ([]job.Posting, error) {
	q := escapeLike(f.Query)
	jobType := strings.TrimSpace(f.JobType)
	location := escapeLike(f.Location)

	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+`
		 FROM job_postings p
		 JOIN employer_profiles e ON e.id = p.employer_id
		 WHERE p.job_status = 'open'
		   AND p.deadline >= CURRENT_DATE
		   AND NOT EXISTS (
			SELECT 1 FROM job_applications x
			JOIN seeker_profiles s ON s.id = x.applicant_id
			WHERE x.job_id = p.id AND s.user_id = $1
		   )
		   AND ($2::text = '' OR p.title ILIKE '%' || $2 || '%' ESCAPE '\'
			OR p.qualifications ILIKE '%' || $2 || '%' ESCAPE '\'
			OR p.skills_required ILIKE '%' || $2 || '%' ESCAPE '\'
			OR e.company_name ILIKE '%' || $2 || '%' ESCAPE '\')
		   AND ($3::text = '' OR p.job_type = $3)
		   AND ($4::text = '' OR p.location ILIKE '%' || $4 || '%' ESCAPE '\')
		   AND ($5::int IS NULL OR p.salary >= $5)
		   AND ($6::int IS NULL OR p.salary <= $6)
		 ORDER BY p.posted_date DESC, p.id`,
		userID, q, jobType, location, f.SalaryMin, f.SalaryMax,
	)
	if err != nil {
		return nil, fmt.Errorf("list open postings: %w", err)
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostingRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+postingColumns+`
		 FROM job_postings p
		 JOIN employer_profiles e ON e.id = p.employer_id
		 WHERE p.id = $1`,
		id,
	)
	p, err := scanPosting(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return job.Posting{}, ErrPostingNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(
		&p.ID,
		&p.EmployerID,
		&p.Title,
		&p.CompanyName,
		&p.Location,
		&p.JobType,
		&p.Status,
		&p.Deadline,
		&p.PostedAt,
		&p.SkillsRequired,
		&p.Salary,
		&p.ApplicationCount,
	)
	return p, err
}
