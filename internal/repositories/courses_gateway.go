package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/japanesestudent/courseview/internal/models"
	"go.uber.org/zap"
)

// ErrResponseShape is returned when a backend envelope carries no payload field
var ErrResponseShape = errors.New("response envelope has no payload")

// FetchError reports a failed read against the courses backend.
// StatusCode is zero when the request never got a response.
type FetchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: backend responded with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

const (
	coursesPath = "/api/courses"
	coursePath  = "/api/courses/{courseId}"
	lessonsPath = "/api/lessons"
)

type coursesGateway struct {
	client *resty.Client
	logger *zap.Logger
}

// NewCoursesGateway creates a gateway reading courses and lessons through the given client.
// The client is expected to carry the backend base URL.
func NewCoursesGateway(client *resty.Client, logger *zap.Logger) *coursesGateway {
	return &coursesGateway{
		client: client,
		logger: logger,
	}
}

// NewBackendClient builds the resty client used by the gateway
func NewBackendClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

// FetchCourse retrieves a single course by its ID
func (g *coursesGateway) FetchCourse(ctx context.Context, courseID int) (*models.Course, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("courseId", strconv.Itoa(courseID)).
		Get(coursePath)
	if err := checkResponse("fetch course", resp, err); err != nil {
		return nil, err
	}

	var course models.Course
	if err := json.Unmarshal(resp.Body(), &course); err != nil {
		return nil, fmt.Errorf("failed to decode course: %w", err)
	}

	return &course, nil
}

// FetchAllCourses retrieves every course from the payload envelope
func (g *coursesGateway) FetchAllCourses(ctx context.Context) ([]models.Course, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get(coursesPath)
	if err := checkResponse("fetch courses", resp, err); err != nil {
		return nil, err
	}

	var courses []models.Course
	if err := unwrapPayload(resp.Body(), &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}

	return courses, nil
}

// FetchAllLessons retrieves all lessons of a course in a single uncapped page
func (g *coursesGateway) FetchAllLessons(ctx context.Context, courseID int) ([]models.Lesson, error) {
	return g.getLessons(ctx, "fetch all lessons", map[string]string{
		"courseId":   strconv.Itoa(courseID),
		"pageNumber": "0",
		"pageSize":   strconv.Itoa(models.AllLessonsPageSize),
	})
}

// FetchLessons retrieves one sorted page of lessons.
//
// Zero sort and size fields of the request fall back to seqNo, asc and the default page size.
func (g *coursesGateway) FetchLessons(ctx context.Context, req models.PageRequest) ([]models.Lesson, error) {
	req = req.WithDefaults()
	return g.getLessons(ctx, "fetch lessons", map[string]string{
		"courseId":   strconv.Itoa(req.CourseID),
		"sortOrder":  string(req.SortOrder),
		"pageNumber": strconv.Itoa(req.PageIndex),
		"pageSize":   strconv.Itoa(req.PageSize),
		"sortColumn": string(req.SortColumn),
	})
}

func (g *coursesGateway) getLessons(ctx context.Context, op string, params map[string]string) ([]models.Lesson, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(lessonsPath)
	if err := checkResponse(op, resp, err); err != nil {
		return nil, err
	}

	var lessons []models.Lesson
	if err := unwrapPayload(resp.Body(), &lessons); err != nil {
		g.logger.Warn("unexpected lessons response", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	if lessons == nil {
		lessons = []models.Lesson{}
	}

	return lessons, nil
}

// checkResponse turns transport errors and non-2xx statuses into a FetchError
func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	if resp.IsError() || resp.StatusCode() >= 300 {
		return &FetchError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}
	return nil
}

// unwrapPayload decodes the "payload" field of a backend envelope into dst
func unwrapPayload(body []byte, dst any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseShape, err)
	}
	payload, ok := envelope["payload"]
	if !ok || string(payload) == "null" {
		return ErrResponseShape
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseShape, err)
	}
	return nil
}
