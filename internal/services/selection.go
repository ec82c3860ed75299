package services

import (
	"slices"
	"sync"

	"github.com/japanesestudent/courseview/internal/models"
)

// LessonSelectionTracker keeps the ids of the lesson rows selected by the user
type LessonSelectionTracker struct {
	mu       sync.Mutex
	selected map[int]struct{}
}

// NewLessonSelectionTracker creates an empty selection
func NewLessonSelectionTracker() *LessonSelectionTracker {
	return &LessonSelectionTracker{
		selected: map[int]struct{}{},
	}
}

// Toggle flips the membership of a single lesson
func (s *LessonSelectionTracker) Toggle(lesson models.Lesson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[lesson.ID]; ok {
		delete(s.selected, lesson.ID)
		return
	}
	s.selected[lesson.ID] = struct{}{}
}

// SelectAll replaces the selection with the given lessons
func (s *LessonSelectionTracker) SelectAll(lessons []models.Lesson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[int]struct{}, len(lessons))
	for _, l := range lessons {
		s.selected[l.ID] = struct{}{}
	}
}

// Clear empties the selection
func (s *LessonSelectionTracker) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = map[int]struct{}{}
}

// IsSelected reports whether the lesson is selected
func (s *LessonSelectionTracker) IsSelected(lesson models.Lesson) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.selected[lesson.ID]
	return ok
}

// Selected returns the selected lesson ids in ascending order
func (s *LessonSelectionTracker) Selected() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsAllSelected reports whether the selection holds exactly the ids of the given lessons.
// An empty list is never all selected.
func (s *LessonSelectionTracker) IsAllSelected(lessons []models.Lesson) bool {
	if len(lessons) == 0 {
		return false
	}

	ids := make(map[int]struct{}, len(lessons))
	for _, l := range lessons {
		ids[l.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(ids) != len(s.selected) {
		return false
	}
	for id := range ids {
		if _, ok := s.selected[id]; !ok {
			return false
		}
	}
	return true
}
