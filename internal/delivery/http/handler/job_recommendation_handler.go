package handler

import (
	"errors"
	"strconv"
	"strings"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.RecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.Browse)
	r.Get("/jobs/recommendations", h.Dashboard)
}

func (h *JobRecommendationHandler) Dashboard(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil || limit < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	salaryMin, salaryMax, err := parseSalaryRange(c)
	if err != nil {
		return err
	}

	recs, err := h.uc.Dashboard(c.Context(), userID, usecase.RecommendationParams{
		Limit:     limit,
		Query:     strings.TrimSpace(c.Query("q")),
		JobType:   strings.TrimSpace(c.Query("job_type")),
		Location:  strings.TrimSpace(c.Query("location")),
		SalaryMin: salaryMin,
		SalaryMax: salaryMax,
	})
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobRecommendationListResponse(recs))
}

func (h *JobRecommendationHandler) Browse(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	page, err := parseQueryInt(c, "page", 1)
	if err != nil {
		page = 1
	}
	salaryMin, salaryMax, err := parseSalaryRange(c)
	if err != nil {
		return err
	}

	res, err := h.uc.Browse(c.Context(), userID, usecase.BrowseParams{
		Query:     strings.TrimSpace(c.Query("q")),
		JobType:   strings.TrimSpace(c.Query("job_type")),
		Location:  strings.TrimSpace(c.Query("location")),
		SalaryMin: salaryMin,
		SalaryMax: salaryMax,
		Page:      page,
	})
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	jobs := make([]dto.JobResponse, 0, len(res.Page.Items))
	for _, p := range res.Page.Items {
		jobs = append(jobs, dto.NewJobResponse(p))
	}

	return response.Paginated(c, dto.BrowseJobsResponse{
		Recommended: dto.NewJobRecommendationListResponse(res.Recommended),
		Jobs:        jobs,
	}, response.PageMeta{
		Page:     res.Page.Number,
		PageSize: usecase.BrowsePageSize,
		Total:    res.Page.Total,
		HasNext:  res.Page.HasNext,
	})
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

// parseQueryOptionalInt returns nil when the parameter is absent.
func parseQueryOptionalInt(c fiber.Ctx, key string) (*int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseSalaryRange(c fiber.Ctx) (*int, *int, error) {
	lo, err := parseQueryOptionalInt(c, "salary_min")
	if err != nil || (lo != nil && *lo < 0) {
		return nil, nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid salary_min", nil, err)
	}
	hi, err := parseQueryOptionalInt(c, "salary_max")
	if err != nil || (hi != nil && *hi < 0) {
		return nil, nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid salary_max", nil, err)
	}
	if lo != nil && hi != nil && *lo > *hi {
		return nil, nil, middleware.NewAppError(fiber.StatusBadRequest, "salary_min must not exceed salary_max", nil, nil)
	}
	return lo, hi, nil
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request", nil, err)
	case errors.Is(err, usecase.ErrSeekerProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Seeker profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
