package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/matching"
	"jobboard/internal/domain/seeker"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultDashboardLimit = 10
	MaxDashboardLimit     = 50
	BrowsePageSize        = 10
)

type RecommendationParams struct {
	Limit     int
	Query     string
	JobType   string
	Location  string
	SalaryMin *int
	SalaryMax *int
}

type BrowseParams struct {
	Query     string
	JobType   string
	Location  string
	SalaryMin *int
	SalaryMax *int
	Page      int
}

type JobPage struct {
	Items   []job.Posting
	Number  int
	Total   int
	HasNext bool
}

type BrowseResult struct {
	Recommended matching.Recommendations
	Page        JobPage
}

type RecommendationUsecase interface {
	Dashboard(ctx context.Context, userID uuid.UUID, params RecommendationParams) (matching.Recommendations, error)
	Browse(ctx context.Context, userID uuid.UUID, params BrowseParams) (BrowseResult, error)
}

type RecommendationOptions struct {
	DefaultLimit int
	CacheTTL     time.Duration
}

type Recommendation struct {
	postings repository.PostingRepository
	seekers  repository.SeekerProfileRepository
	saved    repository.SavedJobRepository
	ranker   *matching.Ranker
	cache    RecommendationCache
	opts     RecommendationOptions
	logger   *zap.Logger
}

func NewRecommendationUsecase(
	postings repository.PostingRepository,
	seekers repository.SeekerProfileRepository,
	saved repository.SavedJobRepository,
	cache RecommendationCache,
	opts RecommendationOptions,
	logger *zap.Logger,
) *Recommendation {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultDashboardLimit
	}
	return &Recommendation{
		postings: postings,
		seekers:  seekers,
		saved:    saved,
		ranker:   matching.NewRanker(matching.NewScorer(matching.DefaultQualityPolicy)),
		cache:    cache,
		opts:     opts,
		logger:   logger.Named("recommendation"),
	}
}

func (u *Recommendation) Dashboard(ctx context.Context, userID uuid.UUID, params RecommendationParams) (matching.Recommendations, error) {
	if userID == uuid.Nil {
		return matching.Recommendations{}, ErrUnauthorized
	}

	limit := params.Limit
	if limit < 0 || !validJobType(params.JobType) || !validSalaryRange(params.SalaryMin, params.SalaryMax) {
		return matching.Recommendations{}, ErrInvalidInput
	}
	if limit == 0 {
		limit = u.opts.DefaultLimit
	}
	if limit > MaxDashboardLimit {
		limit = MaxDashboardLimit
	}

	// The generation is read before loading so a concurrent save moves
	// readers off whatever this call ends up writing.
	cacheKey := ""
	if u.cache != nil {
		gen, err := u.cache.Generation(ctx, RecommendationGenerationKey(userID))
		if err != nil {
			u.logger.Debug("cache generation unavailable", zap.String("user_id", userID.String()), zap.Error(err))
		} else {
			cacheKey = RecommendationCacheKey(userID, gen, params, limit)
			var cached matching.Recommendations
			hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err == nil && hit {
				u.logger.Debug("cache hit", zap.String("key", cacheKey))
				return cached, nil
			}
		}
	}

	profile, candidates, err := u.load(ctx, userID, repository.PostingFilter{
		Query:     params.Query,
		JobType:   params.JobType,
		Location:  params.Location,
		SalaryMin: params.SalaryMin,
		SalaryMax: params.SalaryMax,
	})
	if err != nil {
		return matching.Recommendations{}, err
	}

	recs, err := u.rank(ctx, userID, profile, candidates, limit)
	if err != nil {
		return matching.Recommendations{}, err
	}

	if cacheKey != "" {
		if err := u.cache.SetJSON(ctx, cacheKey, recs, u.opts.CacheTTL); err != nil {
			u.logger.Debug("cache set failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return recs, nil
}

// Browse ranks the full filtered candidate set and returns one recency-ordered
// page of the same set alongside it.
func (u *Recommendation) Browse(ctx context.Context, userID uuid.UUID, params BrowseParams) (BrowseResult, error) {
	if userID == uuid.Nil {
		return BrowseResult{}, ErrUnauthorized
	}
	if !validJobType(params.JobType) || !validSalaryRange(params.SalaryMin, params.SalaryMax) {
		return BrowseResult{}, ErrInvalidInput
	}
	page := params.Page
	if page < 1 {
		page = 1
	}

	profile, candidates, err := u.load(ctx, userID, repository.PostingFilter{
		Query:     params.Query,
		JobType:   params.JobType,
		Location:  params.Location,
		SalaryMin: params.SalaryMin,
		SalaryMax: params.SalaryMax,
	})
	if err != nil {
		return BrowseResult{}, err
	}

	recs, err := u.rank(ctx, userID, profile, candidates, matching.NoLimit)
	if err != nil {
		return BrowseResult{}, err
	}

	return BrowseResult{Recommended: recs, Page: paginate(candidates, page, BrowsePageSize)}, nil
}

// load reads the seeker profile and the candidate postings concurrently.
func (u *Recommendation) load(ctx context.Context, userID uuid.UUID, f repository.PostingFilter) (seeker.Profile, []job.Posting, error) {
	var (
		profile    seeker.Profile
		candidates []job.Posting
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := u.seekers.FindByUserID(gctx, userID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		c, err := u.postings.ListOpenForSeeker(gctx, userID, f)
		if err != nil {
			return err
		}
		candidates = c
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return seeker.Profile{}, nil, ErrSeekerProfileNotFound
		}
		u.logger.Error("load recommendation inputs", zap.String("user_id", userID.String()), zap.Error(err))
		return seeker.Profile{}, nil, ErrInternal
	}
	return profile, candidates, nil
}

func (u *Recommendation) rank(ctx context.Context, userID uuid.UUID, profile seeker.Profile, candidates []job.Posting, limit int) (matching.Recommendations, error) {
	lookup := func(ids []uuid.UUID) (map[uuid.UUID]bool, error) {
		return u.saved.SavedJobIDs(ctx, userID, ids)
	}

	recs, err := u.ranker.Rank(matching.Tokenize(profile.Skills), candidates, limit, lookup)
	if err != nil {
		if errors.Is(err, matching.ErrInvalidLimit) {
			return matching.Recommendations{}, ErrInvalidInput
		}
		u.logger.Error("rank recommendations", zap.String("user_id", userID.String()), zap.Error(err))
		return matching.Recommendations{}, ErrInternal
	}

	u.logger.Debug("recommendations ranked",
		zap.String("user_id", userID.String()),
		zap.String("strategy", string(recs.Strategy)),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(recs.Items)),
	)
	return recs, nil
}

func validJobType(t string) bool {
	return t == "" || job.IsValidType(t)
}

func validSalaryRange(lo, hi *int) bool {
	if (lo != nil && *lo < 0) || (hi != nil && *hi < 0) {
		return false
	}
	return lo == nil || hi == nil || *lo <= *hi
}

// paginate clamps an out-of-range page to the last page.
func paginate(postings []job.Posting, page, size int) JobPage {
	total := len(postings)
	lastPage := (total + size - 1) / size
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	items := make([]job.Posting, end-start)
	copy(items, postings[start:end])
	return JobPage{Items: items, Number: page, Total: total, HasNext: end < total}
}
