package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/japanesestudent/courseview/internal/models"
	"github.com/japanesestudent/courseview/internal/repositories"
	"github.com/japanesestudent/courseview/internal/services"
	"go.uber.org/zap"
)

// LessonViewService is the interface that wraps methods for course reads and lesson table state.
type LessonViewService interface {
	// Method GetCourses retrieve the list of every course.
	//
	// If the backend can not be reached or answers with an error, the error will be returned together with "nil" value.
	GetCourses(ctx context.Context) ([]models.Course, error)
	// Method GetCourse retrieve a course by its ID.
	//
	// Please reference GetCourses method for more information about error values.
	GetCourse(ctx context.Context, courseID int) (*models.Course, error)
	// Method GetAllLessons retrieve every lesson of a course without paging.
	//
	// Please reference GetCourses method for more information about error values.
	GetAllLessons(ctx context.Context, courseID int) ([]models.Lesson, error)
	// Method GetLessonPage return the lesson table of a course.
	//
	// The first access to a course loads its first page sorted by sequence number.
	// The returned snapshot is meaningful even together with an error, it then describes the failed state.
	// While the last load of the table has failed, every call returns that error without fetching again.
	GetLessonPage(ctx context.Context, courseID int) (models.LessonPage, error)
	// Method ChangeSort apply a sort change, go back to the first page and reload it.
	//
	// Please reference GetLessonPage method for more information about return values.
	ChangeSort(ctx context.Context, courseID int, change models.SortChangeRequest) (models.LessonPage, error)
	// Method ChangePage move the paginator and reload the page.
	//
	// Please reference GetLessonPage method for more information about return values.
	ChangePage(ctx context.Context, courseID int, change models.PageChangeRequest) (models.LessonPage, error)
	// Method ToggleSelection flip the selection of a lesson row of the current page.
	ToggleSelection(ctx context.Context, courseID, lessonID int) (models.LessonPage, error)
	// Method SelectAll select every lesson row of the current page.
	SelectAll(ctx context.Context, courseID int) (models.LessonPage, error)
	// Method ClearSelection deselect every lesson row.
	ClearSelection(ctx context.Context, courseID int) (models.LessonPage, error)
	// Method ToggleExpansion expand a lesson row, or collapse it when it is already expanded.
	ToggleExpansion(ctx context.Context, courseID, lessonID int) (models.LessonPage, error)
}

// LessonViewHandler handles HTTP requests for courses and lesson tables
type LessonViewHandler struct {
	BaseHandler
	service LessonViewService
}

// NewLessonViewHandler creates a new lesson view handler
func NewLessonViewHandler(svc LessonViewService, logger *zap.Logger) *LessonViewHandler {
	return &LessonViewHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all course and lesson table routes
func (h *LessonViewHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.GetCourses)
		r.Route("/{courseId}", func(r chi.Router) {
			r.Get("/", h.GetCourse)
			r.Route("/lessons", func(r chi.Router) {
				r.Get("/", h.GetLessonPage)
				r.Get("/all", h.GetAllLessons)
				r.Post("/sort", h.ChangeSort)
				r.Post("/page", h.ChangePage)
				r.Post("/selection", h.SelectAll)
				r.Delete("/selection", h.ClearSelection)
				r.Post("/{lessonId}/select", h.ToggleSelection)
				r.Post("/{lessonId}/expand", h.ToggleExpansion)
			})
		})
	})
}

// GetCourses handles GET /api/v1/courses
// @Summary Get all courses
// @Description Get the list of every course
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Failure 502 {object} map[string]string
// @Router /courses [get]
func (h *LessonViewHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.GetCourses(r.Context())
	if err != nil {
		h.logger.Error("failed to get courses", zap.Error(err))
		h.respondError(w, statusForBackendError(err), "failed to get courses")
		return
	}

	h.respondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /api/v1/courses/{courseId}
// @Summary Get course by ID
// @Description Get a single course
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /courses/{courseId} [get]
func (h *LessonViewHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.service.GetCourse(r.Context(), courseID)
	if err != nil {
		h.logger.Error("failed to get course", zap.Error(err), zap.Int("courseId", courseID))
		h.respondError(w, statusForBackendError(err), "failed to get course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// GetAllLessons handles GET /api/v1/courses/{courseId}/lessons/all
// @Summary Get all lessons of a course
// @Description Get every lesson of a course in a single unsorted page
// @Tags lessons
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {array} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /courses/{courseId}/lessons/all [get]
func (h *LessonViewHandler) GetAllLessons(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	lessons, err := h.service.GetAllLessons(r.Context(), courseID)
	if err != nil {
		h.logger.Error("failed to get all lessons", zap.Error(err), zap.Int("courseId", courseID))
		h.respondError(w, statusForBackendError(err), "failed to get lessons")
		return
	}

	h.respondJSON(w, http.StatusOK, lessons)
}

// GetLessonPage handles GET /api/v1/courses/{courseId}/lessons
// @Summary Get lesson table
// @Description Get the current lesson table of a course, loading the first page on first access
// @Tags lessons
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} models.LessonPage
// @Failure 400 {object} map[string]string
// @Failure 502 {object} models.LessonPage
// @Router /courses/{courseId}/lessons [get]
func (h *LessonViewHandler) GetLessonPage(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	page, err := h.service.GetLessonPage(r.Context(), courseID)
	h.respondPage(w, page, err)
}

// ChangeSort handles POST /api/v1/courses/{courseId}/lessons/sort
// @Summary Sort lesson table
// @Description Apply a sort to the lesson table, go back to the first page and reload it
// @Tags lessons
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param request body models.SortChangeRequest true "Sort column and order"
// @Success 200 {object} models.LessonPage
// @Failure 400 {object} map[string]string
// @Failure 502 {object} models.LessonPage
// @Router /courses/{courseId}/lessons/sort [post]
func (h *LessonViewHandler) ChangeSort(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	var req models.SortChangeRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := h.service.ChangeSort(r.Context(), courseID, req)
	h.respondPage(w, page, err)
}

// ChangePage handles POST /api/v1/courses/{courseId}/lessons/page
// @Summary Change lesson table page
// @Description Move the paginator of the lesson table and reload
// @Tags lessons
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param request body models.PageChangeRequest true "Page index and size"
// @Success 200 {object} models.LessonPage
// @Failure 400 {object} map[string]string
// @Failure 502 {object} models.LessonPage
// @Router /courses/{courseId}/lessons/page [post]
func (h *LessonViewHandler) ChangePage(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	var req models.PageChangeRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := h.service.ChangePage(r.Context(), courseID, req)
	h.respondPage(w, page, err)
}

// ToggleSelection handles POST /api/v1/courses/{courseId}/lessons/{lessonId}/select
// @Summary Toggle lesson selection
// @Tags lessons
// @Produce json
// @Param courseId path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} models.LessonPage
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{courseId}/lessons/{lessonId}/select [post]
func (h *LessonViewHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	h.rowAction(w, r, h.service.ToggleSelection)
}

// ToggleExpansion handles POST /api/v1/courses/{courseId}/lessons/{lessonId}/expand
// @Summary Toggle lesson row expansion
// @Tags lessons
// @Produce json
// @Param courseId path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} models.LessonPage
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{courseId}/lessons/{lessonId}/expand [post]
func (h *LessonViewHandler) ToggleExpansion(w http.ResponseWriter, r *http.Request) {
	h.rowAction(w, r, h.service.ToggleExpansion)
}

// SelectAll handles POST /api/v1/courses/{courseId}/lessons/selection
// @Summary Select every lesson of the current page
// @Tags lessons
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} models.LessonPage
// @Failure 400 {object} map[string]string
// @Router /courses/{courseId}/lessons/selection [post]
func (h *LessonViewHandler) SelectAll(w http.ResponseWriter, r *http.Request) {
	h.tableAction(w, r, h.service.SelectAll)
}

// ClearSelection handles DELETE /api/v1/courses/{courseId}/lessons/selection
// @Summary Clear lesson selection
// @Tags lessons
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} models.LessonPage
// @Failure 400 {object} map[string]string
// @Router /courses/{courseId}/lessons/selection [delete]
func (h *LessonViewHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.tableAction(w, r, h.service.ClearSelection)
}

func (h *LessonViewHandler) tableAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, courseID int) (models.LessonPage, error)) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	page, err := action(r.Context(), courseID)
	h.respondPage(w, page, err)
}

func (h *LessonViewHandler) rowAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, courseID, lessonID int) (models.LessonPage, error)) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}
	lessonID, err := pathID(r, "lessonId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	page, err := action(r.Context(), courseID, lessonID)
	h.respondPage(w, page, err)
}

// respondPage writes a lesson table snapshot, mapping service errors to statuses.
// Load failures still carry the snapshot so the client can render the previous lessons.
func (h *LessonViewHandler) respondPage(w http.ResponseWriter, page models.LessonPage, err error) {
	switch {
	case err == nil, errors.Is(err, services.ErrSuperseded):
		h.respondJSON(w, http.StatusOK, page)
	case errors.Is(err, services.ErrInvalidCourseID):
		h.respondError(w, http.StatusBadRequest, "invalid course id")
	case errors.Is(err, services.ErrInvalidPageRequest):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrLessonNotLoaded):
		h.respondError(w, http.StatusNotFound, "lesson is not on the current page")
	default:
		h.logger.Warn("lesson table load failed", zap.Error(err))
		h.respondJSON(w, http.StatusBadGateway, page)
	}
}

// statusForBackendError maps gateway failures to the status returned to the client
func statusForBackendError(err error) int {
	if errors.Is(err, services.ErrInvalidCourseID) {
		return http.StatusBadRequest
	}
	var fetchErr *repositories.FetchError
	if errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
