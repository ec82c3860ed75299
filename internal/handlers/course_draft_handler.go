package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/japanesestudent/courseview/internal/models"
	"go.uber.org/zap"
)

// CourseDraftService is the interface that wraps the create-course form checks.
type CourseDraftService interface {
	// Method Validate check the first create-course step.
	//
	// The returned draft has defaults applied to unset category, course type and release date.
	// Invalid fields are listed in the Errors of the response, the draft is never stored.
	Validate(draft models.CourseDraft) models.DraftValidationResponse
}

// CourseDraftHandler handles HTTP requests for create-course drafts
type CourseDraftHandler struct {
	BaseHandler
	service CourseDraftService
}

// NewCourseDraftHandler creates a new course draft handler
func NewCourseDraftHandler(svc CourseDraftService, logger *zap.Logger) *CourseDraftHandler {
	return &CourseDraftHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all course draft routes
func (h *CourseDraftHandler) RegisterRoutes(r chi.Router) {
	r.Post("/course-drafts/validate", h.Validate)
}

// Validate handles POST /api/v1/course-drafts/validate
// @Summary Validate create-course draft
// @Description Check the first create-course form step and apply its defaults
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CourseDraft true "Course draft"
// @Success 200 {object} models.DraftValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} models.DraftValidationResponse
// @Router /course-drafts/validate [post]
func (h *CourseDraftHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var draft models.CourseDraft
	if err := h.decodeJSON(r, &draft); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := h.service.Validate(draft)
	if !resp.Valid {
		h.respondJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
