package services

import (
	"time"

	"github.com/japanesestudent/courseview/internal/models"
	"go.uber.org/zap"
)

type courseDraftService struct {
	now    func() time.Time
	logger *zap.Logger
}

// NewCourseDraftService creates a new create-course draft service
func NewCourseDraftService(logger *zap.Logger) *courseDraftService {
	return &courseDraftService{
		now:    time.Now,
		logger: logger,
	}
}

// Validate checks the first create-course step and returns the draft with its defaults applied.
//
// Unset category, course type and release date default to BEGINNER, premium and the current time.
// Drafts are never stored.
func (s *courseDraftService) Validate(draft models.CourseDraft) models.DraftValidationResponse {
	if draft.Category == "" {
		draft.Category = models.CourseCategoryBeginner
	}
	if draft.CourseType == "" {
		draft.CourseType = models.CourseTypePremium
	}
	if draft.ReleasedAt.IsZero() {
		draft.ReleasedAt = s.now()
	}

	resp := models.DraftValidationResponse{
		Valid:  true,
		Draft:  draft,
		Errors: []models.FieldError{},
	}
	if err := validate.Struct(draft); err != nil {
		resp.Valid = false
		resp.Errors = fieldErrors(err)
		s.logger.Debug("course draft rejected", zap.Int("errors", len(resp.Errors)))
	}
	return resp
}
