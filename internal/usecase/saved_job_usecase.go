package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const SavedJobsPageSize = 10

type SavedJobListParams struct {
	Search   string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Sort     string
	Page     int
}

type SavedJobPage struct {
	Items   []job.SavedJob
	Number  int
	Total   int
	HasNext bool
}

type SavedJobUsecase interface {
	Save(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	Unsave(ctx context.Context, userID, jobID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params SavedJobListParams) (SavedJobPage, error)
}

type SavedJobs struct {
	postings repository.PostingRepository
	seekers  repository.SeekerProfileRepository
	saved    repository.SavedJobRepository
	cache    RecommendationCache
	logger   *zap.Logger
}

func NewSavedJobUsecase(
	postings repository.PostingRepository,
	seekers repository.SeekerProfileRepository,
	saved repository.SavedJobRepository,
	cache RecommendationCache,
	logger *zap.Logger,
) *SavedJobs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SavedJobs{postings: postings, seekers: seekers, saved: saved, cache: cache, logger: logger.Named("saved_jobs")}
}

func (u *SavedJobs) Save(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	if err := u.requireSeeker(ctx, userID); err != nil {
		return false, err
	}
	if jobID == uuid.Nil {
		return false, ErrInvalidInput
	}

	if _, err := u.postings.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return false, ErrPostingNotFound
		}
		u.logger.Error("find posting", zap.String("job_id", jobID.String()), zap.Error(err))
		return false, ErrInternal
	}

	created, err := u.saved.Save(ctx, userID, jobID)
	if err != nil {
		u.logger.Error("save job", zap.String("job_id", jobID.String()), zap.Error(err))
		return false, ErrInternal
	}
	if created {
		u.invalidate(ctx, userID)
	}
	return created, nil
}

func (u *SavedJobs) Unsave(ctx context.Context, userID, jobID uuid.UUID) error {
	if err := u.requireSeeker(ctx, userID); err != nil {
		return err
	}
	if jobID == uuid.Nil {
		return ErrInvalidInput
	}

	if err := u.saved.Unsave(ctx, userID, jobID); err != nil {
		if errors.Is(err, repository.ErrSavedJobNotFound) {
			return ErrSavedJobNotFound
		}
		u.logger.Error("unsave job", zap.String("job_id", jobID.String()), zap.Error(err))
		return ErrInternal
	}
	u.invalidate(ctx, userID)
	return nil
}

func (u *SavedJobs) List(ctx context.Context, userID uuid.UUID, params SavedJobListParams) (SavedJobPage, error) {
	if err := u.requireSeeker(ctx, userID); err != nil {
		return SavedJobPage{}, err
	}
	if params.Status != "" && params.Status != job.StatusOpen && params.Status != job.StatusClosed {
		return SavedJobPage{}, ErrInvalidInput
	}
	if params.DateFrom != nil && params.DateTo != nil && params.DateTo.Before(*params.DateFrom) {
		return SavedJobPage{}, ErrInvalidInput
	}

	sortOpt := params.Sort
	if sortOpt != repository.SavedSortOldest {
		sortOpt = repository.SavedSortNewest
	}
	page := params.Page
	if page < 1 {
		page = 1
	}

	filter := repository.SavedJobFilter{
		Search:   params.Search,
		Status:   params.Status,
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
		Sort:     sortOpt,
		Limit:    SavedJobsPageSize,
	}
	total, err := u.saved.CountByUserID(ctx, userID, filter)
	if err != nil {
		u.logger.Error("count saved jobs", zap.String("user_id", userID.String()), zap.Error(err))
		return SavedJobPage{}, ErrInternal
	}

	// Out-of-range pages clamp to the last page, like the browse listing.
	lastPage := (total + SavedJobsPageSize - 1) / SavedJobsPageSize
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}
	filter.Offset = (page - 1) * SavedJobsPageSize

	items, err := u.saved.ListByUserID(ctx, userID, filter)
	if err != nil {
		u.logger.Error("list saved jobs", zap.String("user_id", userID.String()), zap.Error(err))
		return SavedJobPage{}, ErrInternal
	}

	return SavedJobPage{
		Items:   items,
		Number:  page,
		Total:   total,
		HasNext: page*SavedJobsPageSize < total,
	}, nil
}

// requireSeeker rejects callers without a seeker profile; only seekers can save jobs.
func (u *SavedJobs) requireSeeker(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if _, err := u.seekers.FindByUserID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return ErrForbidden
		}
		u.logger.Error("find seeker profile", zap.String("user_id", userID.String()), zap.Error(err))
		return ErrInternal
	}
	return nil
}

// invalidate bumps the generation first so lists still being computed from
// the old saved set are written where no reader looks.
func (u *SavedJobs) invalidate(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.BumpGeneration(ctx, RecommendationGenerationKey(userID)); err != nil {
		u.logger.Warn("bump recommendations generation", zap.String("user_id", userID.String()), zap.Error(err))
	}
	if err := u.cache.DeleteByPattern(ctx, RecommendationCachePattern(userID)); err != nil {
		u.logger.Warn("invalidate recommendations cache", zap.String("user_id", userID.String()), zap.Error(err))
	}
}
