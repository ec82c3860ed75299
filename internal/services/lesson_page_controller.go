package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/japanesestudent/courseview/internal/models"
	"go.uber.org/zap"
)

// ErrSuperseded is returned by a load whose response arrived after a newer load was started
var ErrSuperseded = errors.New("lesson page load superseded by a newer request")

// LessonsGateway is the interface that wraps the lesson page query of the courses backend.
type LessonsGateway interface {
	// Method FetchLessons retrieve one sorted page of lessons of a course.
	//
	// Every field of "req" is forwarded to the backend as a query parameter.
	// The lessons are returned in the order the backend sent them.
	// If the backend can not be reached, answers with an error status or an envelope without payload, the error will be returned together with "nil" value.
	FetchLessons(ctx context.Context, req models.PageRequest) ([]models.Lesson, error)
}

// Notifier raises a user-visible notification.
type Notifier interface {
	Notify(ctx context.Context, message string, err error)
}

const loadErrorMessage = "Error loading lessons"

// LessonPageController owns the lesson list of a table and its load state
type LessonPageController struct {
	gateway  LessonsGateway
	notifier Notifier
	logger   *zap.Logger

	mu         sync.Mutex
	lessons    []models.Lesson
	request    models.PageRequest
	state      models.LoadState
	lastErr    error
	generation uint64
	inFlight   int
	onReplace  func()
}

// NewLessonPageController creates a controller in the idle state with an empty lesson list
func NewLessonPageController(gateway LessonsGateway, notifier Notifier, logger *zap.Logger) *LessonPageController {
	return &LessonPageController{
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
		lessons:  []models.Lesson{},
		state:    models.LoadStateIdle,
	}
}

// OnReplace registers a callback run each time a load replaces the lesson list
func (c *LessonPageController) OnReplace(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onReplace = fn
}

// Load fetches the page described by req and replaces the lesson list with it.
//
// Only the newest started load may change the lesson list and state: a load that finishes
// after a newer one was started returns ErrSuperseded and leaves them untouched.
// Loading stays true until every started fetch has returned, superseded ones included.
// On a fetch failure the previous lesson list is kept, the state becomes Error and
// exactly one notification is raised before the error is returned.
func (c *LessonPageController) Load(ctx context.Context, req models.PageRequest) ([]models.Lesson, error) {
	req = req.WithDefaults()
	if err := validatePageRequest(req); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.inFlight++
	c.state = models.LoadStateLoading
	c.request = req
	c.mu.Unlock()

	lessons, err := c.gateway.FetchLessons(ctx, req)

	c.mu.Lock()
	c.inFlight--
	if gen != c.generation {
		c.mu.Unlock()
		c.logger.Debug("discarding stale lesson page",
			zap.Int("courseId", req.CourseID),
			zap.Uint64("generation", gen),
			zap.Error(err),
		)
		return nil, ErrSuperseded
	}

	if err != nil {
		c.state = models.LoadStateError
		c.lastErr = err
		c.mu.Unlock()

		c.logger.Error("failed to load lessons",
			zap.Int("courseId", req.CourseID),
			zap.Int("pageIndex", req.PageIndex),
			zap.Error(err),
		)
		c.notifier.Notify(ctx, loadErrorMessage, err)
		return nil, fmt.Errorf("failed to load lessons: %w", err)
	}

	c.lessons = lessons
	c.state = models.LoadStateIdle
	c.lastErr = nil
	onReplace := c.onReplace
	c.mu.Unlock()

	if onReplace != nil {
		onReplace()
	}

	return lessons, nil
}

// Lessons returns a copy of the currently loaded lessons
func (c *LessonPageController) Lessons() []models.Lesson {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// State returns the load state of the newest started load
func (c *LessonPageController) State() models.LoadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether any started fetch has not returned yet
func (c *LessonPageController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// Request returns the request of the newest started load
func (c *LessonPageController) Request() models.PageRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.request
}

// LastError returns the failure of the newest load, if it failed
func (c *LessonPageController) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
