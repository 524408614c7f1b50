package handler_test

import (
	"testing"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func TestSaveJob(t *testing.T) {
	jobID := uuid.New()
	tests := []struct {
		name    string
		target  string
		created bool
		err     error
		want    int
	}{
		{name: "created", target: "/api/v1/jobs/" + jobID.String() + "/save", created: true, want: fiber.StatusCreated},
		{name: "already saved", target: "/api/v1/jobs/" + jobID.String() + "/save", want: fiber.StatusOK},
		{name: "bad id", target: "/api/v1/jobs/nope/save", want: fiber.StatusBadRequest},
		{name: "missing posting", target: "/api/v1/jobs/" + jobID.String() + "/save", err: usecase.ErrPostingNotFound, want: fiber.StatusNotFound},
		{name: "not a seeker", target: "/api/v1/jobs/" + jobID.String() + "/save", err: usecase.ErrForbidden, want: fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeSavedJobUC{created: tt.created, err: tt.err}
			app := newTestApp(t, &fakeRecommendationUC{}, uc)

			status, _ := do(t, app, "POST", tt.target, tokenFor(t, uuid.New(), jwt.RoleSeeker))
			if status != tt.want {
				t.Fatalf("status = %d, want %d", status, tt.want)
			}
			if tt.want != fiber.StatusBadRequest && (len(uc.savedIDs) != 1 || uc.savedIDs[0] != jobID) {
				t.Fatalf("unexpected saved ids: %v", uc.savedIDs)
			}
		})
	}
}

func TestUnsaveJob(t *testing.T) {
	target := "/api/v1/jobs/" + uuid.NewString() + "/save"

	app := newTestApp(t, &fakeRecommendationUC{}, &fakeSavedJobUC{})
	if status, _ := do(t, app, "DELETE", target, tokenFor(t, uuid.New(), jwt.RoleSeeker)); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	app = newTestApp(t, &fakeRecommendationUC{}, &fakeSavedJobUC{err: usecase.ErrSavedJobNotFound})
	if status, _ := do(t, app, "DELETE", target, tokenFor(t, uuid.New(), jwt.RoleSeeker)); status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestListSavedJobs(t *testing.T) {
	uc := &fakeSavedJobUC{page: usecase.SavedJobPage{
		Items:   []job.SavedJob{{ID: uuid.New(), Posting: job.Posting{Title: "Backend"}}},
		Number:  1,
		Total:   1,
		HasNext: false,
	}}
	app := newTestApp(t, &fakeRecommendationUC{}, uc)

	status, body := do(t, app, "GET",
		"/api/v1/saved-jobs?search=go&status=open&date_from=2024-01-01&date_to=2024-02-01&sort=timestamp&page=3",
		tokenFor(t, uuid.New(), jwt.RoleSeeker))
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}

	p := uc.listParams
	if p.Search != "go" || p.Status != job.StatusOpen || p.Sort != repository.SavedSortOldest || p.Page != 3 {
		t.Fatalf("unexpected params: %+v", p)
	}
	wantFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if p.DateFrom == nil || !p.DateFrom.Equal(wantFrom) || p.DateTo == nil {
		t.Fatalf("unexpected dates: %v %v", p.DateFrom, p.DateTo)
	}
	if body.Meta == nil || body.Meta.Total != 1 || body.Meta.PageSize != usecase.SavedJobsPageSize {
		t.Fatalf("unexpected meta: %+v", body.Meta)
	}
}

func TestListSavedJobs_BadDate(t *testing.T) {
	app := newTestApp(t, &fakeRecommendationUC{}, &fakeSavedJobUC{})

	status, _ := do(t, app, "GET", "/api/v1/saved-jobs?date_from=01/02/2024", tokenFor(t, uuid.New(), jwt.RoleSeeker))
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}
