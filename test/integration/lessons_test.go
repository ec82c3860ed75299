package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/japanesestudent/courseview/internal/config"
	"github.com/japanesestudent/courseview/internal/handlers"
	"github.com/japanesestudent/courseview/internal/models"
	"github.com/japanesestudent/courseview/internal/repositories"
	"github.com/japanesestudent/courseview/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testBackend     *httptest.Server
	backendFailing  atomic.Bool
	backendRequests atomic.Int64
	testLogger      *zap.Logger
	testTimeout     time.Duration
)

var seedLessons = []models.Lesson{
	{ID: 120, CourseID: 11, SeqNo: 1, Description: "Introduction to Angular Material", Duration: "4:17"},
	{ID: 121, CourseID: 11, SeqNo: 2, Description: "Navigation and Containers", Duration: "6:37"},
	{ID: 122, CourseID: 11, SeqNo: 3, Description: "Data Tables", Duration: "8:03"},
	{ID: 123, CourseID: 11, SeqNo: 4, Description: "Dialogs and Overlays", Duration: "11:46"},
	{ID: 124, CourseID: 11, SeqNo: 5, Description: "Commonly used Form Controls", Duration: "7:17"},
	{ID: 125, CourseID: 11, SeqNo: 6, Description: "Drag and Drop", Duration: "8:16"},
	{ID: 126, CourseID: 11, SeqNo: 7, Description: "Responsive Design", Duration: "7:28"},
	{ID: 127, CourseID: 11, SeqNo: 8, Description: "Tree Component", Duration: "11:09"},
	{ID: 128, CourseID: 11, SeqNo: 9, Description: "Virtual Scrolling", Duration: "3:44"},
	{ID: 129, CourseID: 11, SeqNo: 10, Description: "Custom Themes", Duration: "8:55"},
	{ID: 130, CourseID: 11, SeqNo: 11, Description: "Changing Theme at Runtime", Duration: "12:37"},
}

var seedCourse = models.Course{
	ID:           11,
	Description:  "Angular Material Course",
	Category:     models.CourseCategoryBeginner,
	LessonsCount: len(seedLessons),
}

// backendHandler imitates the courses REST backend
func backendHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			backendRequests.Add(1)
			if backendFailing.Load() {
				http.Error(w, `{"error":"unavailable"}`, http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, r)
		})
	})
	r.Get("/api/courses", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"payload": []models.Course{seedCourse}})
	})
	r.Get("/api/courses/{courseId}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "courseId") != strconv.Itoa(seedCourse.ID) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(seedCourse)
	})
	r.Get("/api/lessons", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		pageNumber, _ := strconv.Atoi(q.Get("pageNumber"))
		pageSize, _ := strconv.Atoi(q.Get("pageSize"))

		lessons := slices.Clone(seedLessons)
		if q.Get("sortColumn") == "description" {
			slices.SortFunc(lessons, func(a, b models.Lesson) int { return strings.Compare(a.Description, b.Description) })
		}
		if q.Get("sortOrder") == "desc" {
			slices.Reverse(lessons)
		}

		start := min(pageNumber*pageSize, len(lessons))
		end := min(start+pageSize, len(lessons))
		json.NewEncoder(w).Encode(map[string]any{"payload": lessons[start:end]})
	})
	return r
}

// setupTestRouter wires the real gateway, services and handlers against the fake backend
func setupTestRouter(t *testing.T, logger *zap.Logger) chi.Router {
	t.Helper()
	gateway := repositories.NewCoursesGateway(repositories.NewBackendClient(testBackend.URL, testTimeout), logger)
	lessonViewService := services.NewLessonViewService(gateway, services.NewLogNotifier(logger), logger)
	t.Cleanup(lessonViewService.Close)
	courseDraftService := services.NewCourseDraftService(logger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		handlers.NewLessonViewHandler(lessonViewService, logger).RegisterRoutes(r)
		handlers.NewCourseDraftHandler(courseDraftService, logger).RegisterRoutes(r)
	})
	return r
}

func TestMain(m *testing.M) {
	cfg, err := config.LoadTestConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load test config: %v", err))
	}
	testTimeout = cfg.CoursesAPI.Timeout

	testLogger, err = zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	testBackend = httptest.NewServer(backendHandler())

	code := m.Run()

	testBackend.Close()
	os.Exit(code)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (int, models.LessonPage) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	var page models.LessonPage
	if w.Code == http.StatusOK || w.Code == http.StatusBadGateway {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page), w.Body.String())
	}
	return w.Code, page
}

func lessonIDs(lessons []models.Lesson) []int {
	ids := make([]int, 0, len(lessons))
	for _, l := range lessons {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestIntegration_LessonTableFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	backendFailing.Store(false)
	router := setupTestRouter(t, testLogger)

	// first access loads the default page
	status, page := doRequest(t, router, http.MethodGet, "/api/v1/courses/11/lessons", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.DefaultPageRequest(11), page.Request)
	assert.Equal(t, []int{120, 121, 122}, lessonIDs(page.Lessons))
	assert.Equal(t, models.LoadStateIdle, page.State)

	// paginator
	status, page = doRequest(t, router, http.MethodPost, "/api/v1/courses/11/lessons/page", `{"pageIndex":1,"pageSize":3}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []int{123, 124, 125}, lessonIDs(page.Lessons))

	// selection and expansion on the displayed page
	status, page = doRequest(t, router, http.MethodPost, "/api/v1/courses/11/lessons/124/select", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []int{124}, page.SelectedIDs)
	assert.False(t, page.AllSelected)

	status, page = doRequest(t, router, http.MethodPost, "/api/v1/courses/11/lessons/selection", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, page.AllSelected)

	status, page = doRequest(t, router, http.MethodPost, "/api/v1/courses/11/lessons/125/expand", "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, page.ExpandedID)
	assert.Equal(t, 125, *page.ExpandedID)

	status, _ = doRequest(t, router, http.MethodPost, "/api/v1/courses/11/lessons/120/expand", "")
	assert.Equal(t, http.StatusNotFound, status)

	// sort returns to the first page and resets row state
	status, page = doRequest(t, router, http.MethodPost, "/api/v1/courses/11/lessons/sort", `{"column":"seqNo","order":"desc"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, page.Request.PageIndex)
	assert.Equal(t, []int{130, 129, 128}, lessonIDs(page.Lessons))
	assert.Empty(t, page.SelectedIDs)
	assert.Nil(t, page.ExpandedID)

	status, _ = doRequest(t, router, http.MethodPost, "/api/v1/courses/11/lessons/sort", `{"column":"title"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestIntegration_LessonTableBackendFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	backendFailing.Store(false)
	router := setupTestRouter(t, testLogger)

	status, page := doRequest(t, router, http.MethodGet, "/api/v1/courses/11/lessons", "")
	require.Equal(t, http.StatusOK, status)
	before := lessonIDs(page.Lessons)

	backendFailing.Store(true)
	defer backendFailing.Store(false)
	requestsBefore := backendRequests.Load()

	status, page = doRequest(t, router, http.MethodPost, "/api/v1/courses/11/lessons/page", `{"pageIndex":2}`)

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, before, lessonIDs(page.Lessons))
	assert.Equal(t, models.LoadStateError, page.State)
	assert.False(t, page.Loading)
	assert.Equal(t, "Error loading lessons", page.Error)
	assert.Equal(t, int64(1), backendRequests.Load()-requestsBefore, "failed loads are not retried")

	// reading the table again reports the same failure
	status, page = doRequest(t, router, http.MethodGet, "/api/v1/courses/11/lessons", "")

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, models.LoadStateError, page.State)
	assert.Equal(t, before, lessonIDs(page.Lessons))
	assert.Equal(t, int64(1), backendRequests.Load()-requestsBefore)
}

func TestIntegration_Courses(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	backendFailing.Store(false)
	router := setupTestRouter(t, testLogger)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "all courses", path: "/api/v1/courses", expectedStatus: http.StatusOK},
		{name: "course by id", path: "/api/v1/courses/11", expectedStatus: http.StatusOK},
		{name: "unknown course", path: "/api/v1/courses/99", expectedStatus: http.StatusNotFound},
		{name: "all lessons", path: "/api/v1/courses/11/lessons/all", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/11/lessons/all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var lessons []models.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lessons))
	assert.Len(t, lessons, len(seedLessons))
}

func TestIntegration_ValidateCourseDraft(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	router := setupTestRouter(t, testLogger)

	body := `{"title":"Angular Material In Depth","downloadsAllowed":true,"longDescription":"All the components"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/course-drafts/validate", strings.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.DraftValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, models.CourseCategoryBeginner, resp.Draft.Category)
	assert.Equal(t, models.CourseTypePremium, resp.Draft.CourseType)
	assert.False(t, resp.Draft.ReleasedAt.IsZero())
}
