package matching

import (
	"errors"
	"fmt"
	"sort"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// NoLimit disables truncation of the ranked list.
const NoLimit = 0

var ErrInvalidLimit = errors.New("limit must not be negative")

type Strategy string

const (
	StrategySkillMatch Strategy = "skill_match"
	StrategyPopularity Strategy = "popularity"
)

// SavedLookup reports which of the given posting IDs the seeker has saved.
type SavedLookup func(ids []uuid.UUID) (map[uuid.UUID]bool, error)

type Recommendation struct {
	Posting job.Posting
	// Match is nil for popularity-ordered entries.
	Match   *MatchResult
	IsSaved bool
}

type Recommendations struct {
	Strategy Strategy
	Items    []Recommendation
}

type Ranker struct {
	scorer Scorer
}

func NewRanker(scorer Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

func Rank(seeker SkillSet, candidates []job.Posting, limit int, saved SavedLookup) (Recommendations, error) {
	return NewRanker(NewScorer(DefaultQualityPolicy)).Rank(seeker, candidates, limit, saved)
}

func (r *Ranker) Rank(seeker SkillSet, candidates []job.Posting, limit int, saved SavedLookup) (Recommendations, error) {
	if limit < 0 {
		return Recommendations{}, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	out, ok := r.rankBySkills(seeker, candidates)
	if !ok {
		out = rankByPopularity(candidates)
	}

	if limit != NoLimit && len(out.Items) > limit {
		out.Items = out.Items[:limit]
	}

	if err := annotateSaved(out.Items, saved); err != nil {
		return Recommendations{}, err
	}
	return out, nil
}

// rankBySkills reports false when no candidate scores above zero.
func (r *Ranker) rankBySkills(seeker SkillSet, candidates []job.Posting) (Recommendations, bool) {
	if seeker.Len() == 0 || len(candidates) == 0 {
		return Recommendations{}, false
	}

	items := make([]Recommendation, 0, len(candidates))
	positive := false
	for _, p := range candidates {
		res := r.scorer.Score(seeker, Tokenize(p.SkillsRequired))
		if res.PercentMatch > 0 {
			positive = true
		}
		items = append(items, Recommendation{Posting: p, Match: &res})
	}
	if !positive {
		return Recommendations{}, false
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Match.PercentMatch != b.Match.PercentMatch {
			return a.Match.PercentMatch > b.Match.PercentMatch
		}
		return a.Posting.PostedAt.After(b.Posting.PostedAt)
	})

	return Recommendations{Strategy: StrategySkillMatch, Items: items}, true
}

func rankByPopularity(candidates []job.Posting) Recommendations {
	items := make([]Recommendation, 0, len(candidates))
	for _, p := range candidates {
		items = append(items, Recommendation{Posting: p})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Posting, items[j].Posting
		if a.ApplicationCount != b.ApplicationCount {
			return a.ApplicationCount > b.ApplicationCount
		}
		return a.PostedAt.After(b.PostedAt)
	})

	return Recommendations{Strategy: StrategyPopularity, Items: items}
}

func annotateSaved(items []Recommendation, saved SavedLookup) error {
	if len(items) == 0 || saved == nil {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Posting.ID)
	}

	savedIDs, err := saved(ids)
	if err != nil {
		return fmt.Errorf("saved jobs lookup: %w", err)
	}
	for i := range items {
		items[i].IsSaved = savedIDs[items[i].Posting.ID]
	}
	return nil
}
