package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error

	// Generation reads a counter that is 0 until first bumped.
	Generation(ctx context.Context, key string) (int64, error)
	BumpGeneration(ctx context.Context, key string) error
}

type recommendationCacheKeyInput struct {
	Query     string `json:"q"`
	JobType   string `json:"job_type"`
	Location  string `json:"location"`
	SalaryMin *int   `json:"salary_min"`
	SalaryMax *int   `json:"salary_max"`
	Limit     int    `json:"limit"`
}

// normalizeSearchValue only folds what the query already treats as equal:
// surrounding space is trimmed before querying and ILIKE ignores case.
func normalizeSearchValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func recommendationCachePrefix(userID uuid.UUID) string {
	return "recs:" + userID.String() + ":"
}

// RecommendationGenerationKey holds the per-user counter bumped on every
// save and unsave. It sits outside RecommendationCachePattern.
func RecommendationGenerationKey(userID uuid.UUID) string {
	return "recs-gen:" + userID.String()
}

// RecommendationCacheKey is scoped per user and generation. A list computed
// before a save lands under the old generation and is never read again.
func RecommendationCacheKey(userID uuid.UUID, generation int64, params RecommendationParams, limit int) string {
	in := recommendationCacheKeyInput{
		Query:     normalizeSearchValue(params.Query),
		JobType:   normalizeSearchValue(params.JobType),
		Location:  normalizeSearchValue(params.Location),
		SalaryMin: params.SalaryMin,
		SalaryMax: params.SalaryMax,
		Limit:     limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return recommendationCachePrefix(userID) + strconv.FormatInt(generation, 10) + ":" + hex.EncodeToString(sum[:])
}

func RecommendationCachePattern(userID uuid.UUID) string {
	return recommendationCachePrefix(userID) + "*"
}
