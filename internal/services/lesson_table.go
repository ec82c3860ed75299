package services

import (
	"context"
	"errors"
	"sync"

	"github.com/japanesestudent/courseview/internal/models"
	"go.uber.org/zap"
)

// ErrLessonNotLoaded is returned when a row action targets a lesson absent from the current page
var ErrLessonNotLoaded = errors.New("lesson is not on the current page")

// TableEvent is a sort change or a paginator change of a lesson table.
// Exactly one of Sort and Page is set. When Result is set, the outcome of the
// event is sent on it once, so it must have room for one value.
type TableEvent struct {
	Sort   *models.SortChangeRequest
	Page   *models.PageChangeRequest
	Result chan<- error
}

// LessonTable is the lesson table of one course: sort and paginator state,
// the page controller and the row selection and expansion trackers.
//
// Selection and expansion are scoped to the displayed page and are cleared
// whenever a load replaces the lesson list.
type LessonTable struct {
	courseID   int
	controller *LessonPageController
	selection  *LessonSelectionTracker
	expansion  *LessonRowExpansionTracker
	logger     *zap.Logger

	mu      sync.Mutex
	request models.PageRequest
}

// NewLessonTable creates the table of a course positioned on its first default page
func NewLessonTable(courseID int, gateway LessonsGateway, notifier Notifier, logger *zap.Logger) *LessonTable {
	t := &LessonTable{
		courseID:   courseID,
		controller: NewLessonPageController(gateway, notifier, logger),
		selection:  NewLessonSelectionTracker(),
		expansion:  NewLessonRowExpansionTracker(),
		logger:     logger,
		request:    models.DefaultPageRequest(courseID),
	}
	t.controller.OnReplace(func() {
		t.selection.Clear()
		t.expansion.Clear()
	})
	return t
}

// Reload fetches the page matching the current sort and paginator state
func (t *LessonTable) Reload(ctx context.Context) error {
	_, err := t.controller.Load(ctx, t.currentRequest())
	return err
}

// Run consumes merged sort and page events in arrival order until the channel is
// closed or ctx is done. A sort change returns to the first page. Every event starts
// its own load under ctx without waiting for the previous one; responses of
// superseded loads are discarded by the controller.
func (t *LessonTable) Run(ctx context.Context, events <-chan TableEvent) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			req, err := t.apply(ev)
			if err != nil {
				t.logger.Warn("ignoring invalid table event", zap.Int("courseId", t.courseID), zap.Error(err))
				reply(ev, err)
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := t.controller.Load(ctx, req)
				if err != nil && !errors.Is(err, ErrSuperseded) {
					t.logger.Debug("table event load failed", zap.Int("courseId", t.courseID), zap.Error(err))
				}
				reply(ev, err)
			}()
		}
	}
}

func reply(ev TableEvent, err error) {
	if ev.Result != nil {
		ev.Result <- err
	}
}

// apply folds an event into the sort and paginator state and returns the resulting request.
// Invalid events leave the state unchanged.
func (t *LessonTable) apply(ev TableEvent) (models.PageRequest, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.request
	switch {
	case ev.Sort != nil:
		if ev.Sort.Column != "" {
			next.SortColumn = ev.Sort.Column
		}
		if ev.Sort.Order != "" {
			next.SortOrder = ev.Sort.Order
		}
		next.PageIndex = 0
	case ev.Page != nil:
		next.PageIndex = ev.Page.PageIndex
		if ev.Page.PageSize != 0 {
			next.PageSize = ev.Page.PageSize
		}
	}

	if err := validatePageRequest(next); err != nil {
		return models.PageRequest{}, err
	}
	t.request = next
	return next, nil
}

func (t *LessonTable) currentRequest() models.PageRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.request
}

// ToggleSelection flips the selection of a lesson on the current page
func (t *LessonTable) ToggleSelection(lessonID int) error {
	lesson, err := t.findLesson(lessonID)
	if err != nil {
		return err
	}
	t.selection.Toggle(lesson)
	return nil
}

// SelectAll selects every lesson of the current page
func (t *LessonTable) SelectAll() {
	t.selection.SelectAll(t.controller.Lessons())
}

// ClearSelection deselects every lesson
func (t *LessonTable) ClearSelection() {
	t.selection.Clear()
}

// ToggleExpansion expands or collapses a lesson row of the current page
func (t *LessonTable) ToggleExpansion(lessonID int) error {
	lesson, err := t.findLesson(lessonID)
	if err != nil {
		return err
	}
	t.expansion.Toggle(lesson)
	return nil
}

func (t *LessonTable) findLesson(lessonID int) (models.Lesson, error) {
	for _, l := range t.controller.Lessons() {
		if l.ID == lessonID {
			return l, nil
		}
	}
	return models.Lesson{}, ErrLessonNotLoaded
}

// Snapshot returns the current view state of the table
func (t *LessonTable) Snapshot() models.LessonPage {
	lessons := t.controller.Lessons()
	state := t.controller.State()

	page := models.LessonPage{
		Request:     t.currentRequest(),
		State:       state,
		Loading:     t.controller.Loading(),
		Lessons:     lessons,
		SelectedIDs: t.selection.Selected(),
		AllSelected: t.selection.IsAllSelected(lessons),
	}
	if id, ok := t.expansion.Expanded(); ok {
		page.ExpandedID = &id
	}
	if state == models.LoadStateError {
		page.Error = loadErrorMessage
	}
	return page
}
