package handler

import (
	"errors"
	"strings"
	"time"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SavedJobHandler struct {
	uc usecase.SavedJobUsecase
}

func NewSavedJobHandler(uc usecase.SavedJobUsecase) *SavedJobHandler {
	return &SavedJobHandler{uc: uc}
}

func (h *SavedJobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs/:id/save", h.Save)
	r.Delete("/jobs/:id/save", h.Unsave)
	r.Get("/saved-jobs", h.List)
}

func (h *SavedJobHandler) Save(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	created, err := h.uc.Save(c.Context(), userID, jobID)
	if err != nil {
		return mapSavedJobUsecaseError(err)
	}

	status, msg := fiber.StatusOK, "Job already saved"
	if created {
		status, msg = fiber.StatusCreated, "Job saved successfully"
	}
	return response.Success(c, status, msg, dto.SaveJobResponse{JobID: jobID, IsSaved: true})
}

func (h *SavedJobHandler) Unsave(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.uc.Unsave(c.Context(), userID, jobID); err != nil {
		return mapSavedJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job removed from saved list", dto.SaveJobResponse{JobID: jobID, IsSaved: false})
}

func (h *SavedJobHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	dateFrom, err := parseQueryDate(c, "date_from")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date_from", nil, err)
	}
	dateTo, err := parseQueryDate(c, "date_to")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date_to", nil, err)
	}
	page, err := parseQueryInt(c, "page", 1)
	if err != nil {
		page = 1
	}

	res, err := h.uc.List(c.Context(), userID, usecase.SavedJobListParams{
		Search:   strings.TrimSpace(c.Query("search")),
		Status:   strings.TrimSpace(c.Query("status")),
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Sort:     strings.TrimSpace(c.Query("sort")),
		Page:     page,
	})
	if err != nil {
		return mapSavedJobUsecaseError(err)
	}

	return response.Paginated(c, dto.NewSavedJobResponses(res.Items), response.PageMeta{
		Page:     res.Number,
		PageSize: usecase.SavedJobsPageSize,
		Total:    res.Total,
		HasNext:  res.HasNext,
	})
}

func parseQueryDate(c fiber.Ctx, key string) (*time.Time, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapSavedJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Only job seekers can save jobs", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request", nil, err)
	case errors.Is(err, usecase.ErrPostingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrSavedJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job is not in your saved list", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
