package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/japanesestudent/courseview/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidCourseID is returned for non-positive course ids
var ErrInvalidCourseID = errors.New("invalid course id")

// ErrViewClosed is returned for sort and page changes sent after Close
var ErrViewClosed = errors.New("lesson view service is closed")

// CoursesGateway is the interface that wraps read methods of the courses backend.
type CoursesGateway interface {
	LessonsGateway
	// Method FetchCourse retrieve a single course by its ID.
	//
	// If the backend can not be reached or answers with an error status, the error will be returned together with "nil" value.
	FetchCourse(ctx context.Context, courseID int) (*models.Course, error)
	// Method FetchAllCourses retrieve the list of every course.
	//
	// Please reference FetchCourse method for more information about error values.
	FetchAllCourses(ctx context.Context) ([]models.Course, error)
	// Method FetchAllLessons retrieve every lesson of a course in a single page, in backend order.
	//
	// Please reference FetchCourse method for more information about error values.
	FetchAllLessons(ctx context.Context, courseID int) ([]models.Lesson, error)
}

// courseTable is a lesson table together with the event stream its Run loop consumes
type courseTable struct {
	*LessonTable
	events chan TableEvent
}

type lessonViewService struct {
	gateway  CoursesGateway
	notifier Notifier
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	tables map[int]*courseTable
}

// NewLessonViewService creates a new lesson view service.
// Close must be called to stop the event loops of the opened tables.
func NewLessonViewService(gateway CoursesGateway, notifier Notifier, logger *zap.Logger) *lessonViewService {
	ctx, cancel := context.WithCancel(context.Background())
	return &lessonViewService{
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		tables:   map[int]*courseTable{},
	}
}

// Close stops the event loops of every table and waits for their loads to return
func (s *lessonViewService) Close() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}

// GetCourses retrieves every course
func (s *lessonViewService) GetCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.gateway.FetchAllCourses(ctx)
	if err != nil {
		s.logger.Error("failed to get courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	return courses, nil
}

// GetCourse retrieves a course by its ID
func (s *lessonViewService) GetCourse(ctx context.Context, courseID int) (*models.Course, error) {
	if courseID <= 0 {
		return nil, ErrInvalidCourseID
	}

	course, err := s.gateway.FetchCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("failed to get course", zap.Error(err), zap.Int("courseId", courseID))
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

// GetAllLessons retrieves every lesson of a course without paging
func (s *lessonViewService) GetAllLessons(ctx context.Context, courseID int) ([]models.Lesson, error) {
	if courseID <= 0 {
		return nil, ErrInvalidCourseID
	}

	lessons, err := s.gateway.FetchAllLessons(ctx, courseID)
	if err != nil {
		s.logger.Error("failed to get all lessons", zap.Error(err), zap.Int("courseId", courseID))
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}
	return lessons, nil
}

// GetLessonPage returns the lesson table of a course, loading its first page on first access.
// While the last load of the table has failed, its error is returned with the snapshot.
func (s *lessonViewService) GetLessonPage(ctx context.Context, courseID int) (models.LessonPage, error) {
	t, err := s.table(ctx, courseID)
	if t == nil {
		return models.LessonPage{}, err
	}
	page := t.Snapshot()
	if err == nil && page.State == models.LoadStateError {
		err = fmt.Errorf("failed to load lessons: %w", t.controller.LastError())
	}
	return page, err
}

// ChangeSort applies a sort change to the lesson table of a course
func (s *lessonViewService) ChangeSort(ctx context.Context, courseID int, change models.SortChangeRequest) (models.LessonPage, error) {
	return s.withTable(ctx, courseID, func(t *courseTable) error {
		return s.dispatch(ctx, t, TableEvent{Sort: &change})
	})
}

// ChangePage applies a paginator change to the lesson table of a course
func (s *lessonViewService) ChangePage(ctx context.Context, courseID int, change models.PageChangeRequest) (models.LessonPage, error) {
	return s.withTable(ctx, courseID, func(t *courseTable) error {
		return s.dispatch(ctx, t, TableEvent{Page: &change})
	})
}

// ToggleSelection flips the selection of a lesson row
func (s *lessonViewService) ToggleSelection(ctx context.Context, courseID, lessonID int) (models.LessonPage, error) {
	return s.withTable(ctx, courseID, func(t *courseTable) error {
		return t.ToggleSelection(lessonID)
	})
}

// SelectAll selects every lesson row of the current page
func (s *lessonViewService) SelectAll(ctx context.Context, courseID int) (models.LessonPage, error) {
	return s.withTable(ctx, courseID, func(t *courseTable) error {
		t.SelectAll()
		return nil
	})
}

// ClearSelection deselects every lesson row
func (s *lessonViewService) ClearSelection(ctx context.Context, courseID int) (models.LessonPage, error) {
	return s.withTable(ctx, courseID, func(t *courseTable) error {
		t.ClearSelection()
		return nil
	})
}

// ToggleExpansion expands or collapses a lesson row
func (s *lessonViewService) ToggleExpansion(ctx context.Context, courseID, lessonID int) (models.LessonPage, error) {
	return s.withTable(ctx, courseID, func(t *courseTable) error {
		return t.ToggleExpansion(lessonID)
	})
}

// withTable runs fn on the course table and returns the resulting snapshot.
// The snapshot is returned even when fn fails so callers can render the error state.
func (s *lessonViewService) withTable(ctx context.Context, courseID int, fn func(t *courseTable) error) (models.LessonPage, error) {
	t, err := s.table(ctx, courseID)
	if err != nil && t == nil {
		return models.LessonPage{}, err
	}
	if err := fn(t); err != nil {
		return t.Snapshot(), err
	}
	return t.Snapshot(), nil
}

// dispatch sends a sort or page event to the Run loop of a table and waits for its load
func (s *lessonViewService) dispatch(ctx context.Context, t *courseTable, ev TableEvent) error {
	result := make(chan error, 1)
	ev.Result = result

	select {
	case t.events <- ev:
	case <-s.ctx.Done():
		return ErrViewClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// table returns the lesson table of a course, creating it, starting its event loop and
// loading its first page when absent. A failed initial load returns the table together with the error.
func (s *lessonViewService) table(ctx context.Context, courseID int) (*courseTable, error) {
	if courseID <= 0 {
		return nil, ErrInvalidCourseID
	}

	s.mu.Lock()
	t, ok := s.tables[courseID]
	if !ok {
		t = &courseTable{
			LessonTable: NewLessonTable(courseID, s.gateway, s.notifier, s.logger),
			events:      make(chan TableEvent),
		}
		s.tables[courseID] = t

		if s.ctx.Err() == nil {
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				t.Run(s.ctx, t.events)
			}()
		}
	}
	s.mu.Unlock()

	if ok {
		return t, nil
	}

	s.logger.Info("opening lesson table", zap.Int("courseId", courseID))
	if err := t.Reload(ctx); err != nil {
		return t, err
	}
	return t, nil
}
