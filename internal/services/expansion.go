package services

import (
	"sync"

	"github.com/japanesestudent/courseview/internal/models"
)

// LessonRowExpansionTracker keeps at most one expanded lesson row
type LessonRowExpansionTracker struct {
	mu       sync.Mutex
	expanded *int
}

// NewLessonRowExpansionTracker creates a tracker with no expanded row
func NewLessonRowExpansionTracker() *LessonRowExpansionTracker {
	return &LessonRowExpansionTracker{}
}

// Toggle collapses the lesson if it is the expanded one, otherwise expands it in place of the previous row
func (e *LessonRowExpansionTracker) Toggle(lesson models.Lesson) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.expanded != nil && *e.expanded == lesson.ID {
		e.expanded = nil
		return
	}
	id := lesson.ID
	e.expanded = &id
}

// Expanded returns the id of the expanded lesson, if any
func (e *LessonRowExpansionTracker) Expanded() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.expanded == nil {
		return 0, false
	}
	return *e.expanded, true
}

// Clear collapses the expanded row
func (e *LessonRowExpansionTracker) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.expanded = nil
}
