package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/matching"
	"jobboard/internal/domain/seeker"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type fakePostingRepo struct {
	items []job.Posting
	err   error
	seen  *repository.PostingFilter
}

func (f fakePostingRepo) ListOpenForSeeker(_ context.Context, _ uuid.UUID, filter repository.PostingFilter) ([]job.Posting, error) {
	if f.seen != nil {
		*f.seen = filter
	}
	return f.items, f.err
}

func (f fakePostingRepo) FindByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if f.err != nil {
		return job.Posting{}, f.err
	}
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return job.Posting{}, repository.ErrPostingNotFound
}

type fakeSeekerRepo struct {
	profiles map[uuid.UUID]seeker.Profile
	err      error
}

func (f fakeSeekerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (seeker.Profile, error) {
	if f.err != nil {
		return seeker.Profile{}, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return seeker.Profile{}, repository.ErrSeekerProfileNotFound
	}
	return p, nil
}

type fakeSavedRepo struct {
	mu       sync.Mutex
	saved    map[uuid.UUID]bool
	lookups  [][]uuid.UUID
	onLookup func()
	list     []job.SavedJob
	total    int
	filter   repository.SavedJobFilter
	err      error
}

func newFakeSavedRepo(ids ...uuid.UUID) *fakeSavedRepo {
	m := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return &fakeSavedRepo{saved: m}
}

// SavedJobIDs runs onLookup once, after the result is taken, to stand in for
// a write racing the caller.
func (f *fakeSavedRepo) SavedJobIDs(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	f.mu.Lock()
	if f.err != nil {
		f.mu.Unlock()
		return nil, f.err
	}
	f.lookups = append(f.lookups, ids)
	out := map[uuid.UUID]bool{}
	for _, id := range ids {
		if f.saved[id] {
			out[id] = true
		}
	}
	hook := f.onLookup
	f.onLookup = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (f *fakeSavedRepo) Save(_ context.Context, _ uuid.UUID, jobID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if f.saved[jobID] {
		return false, nil
	}
	f.saved[jobID] = true
	return true, nil
}

func (f *fakeSavedRepo) Unsave(_ context.Context, _ uuid.UUID, jobID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if !f.saved[jobID] {
		return repository.ErrSavedJobNotFound
	}
	delete(f.saved, jobID)
	return nil
}

func (f *fakeSavedRepo) CountByUserID(context.Context, uuid.UUID, repository.SavedJobFilter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total, f.err
}

func (f *fakeSavedRepo) ListByUserID(_ context.Context, _ uuid.UUID, filter repository.SavedJobFilter) ([]job.SavedJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = filter
	return f.list, f.err
}

type fakeCache struct {
	mu          sync.Mutex
	data        map[string]any
	generations map[string]int64
	deleted     []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]any{}, generations: map[string]int64{}}
}

func (c *fakeCache) Generation(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key], nil
}

func (c *fakeCache) BumpGeneration(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[key]++
	return nil
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if p, ok := out.(*matching.Recommendations); ok {
		*p = v.(matching.Recommendations)
		return true, nil
	}
	return false, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := value.(matching.Recommendations); ok {
		c.data[key] = v
	}
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}
