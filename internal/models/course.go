package models

import "time"

// CourseCategory represents the difficulty category of a course
type CourseCategory string

const (
	CourseCategoryBeginner     CourseCategory = "BEGINNER"
	CourseCategoryIntermediate CourseCategory = "INTERMEDIATE"
	CourseCategoryAdvanced     CourseCategory = "ADVANCED"
)

// CourseType tells whether a course is paid
type CourseType string

const (
	CourseTypeFree    CourseType = "free"
	CourseTypePremium CourseType = "premium"
)

// Course represents a course as served by the courses backend
type Course struct {
	ID              int            `json:"id"`
	SeqNo           int            `json:"seqNo,omitempty"`
	Description     string         `json:"description"`
	IconURL         string         `json:"iconUrl,omitempty"`
	CourseListIcon  string         `json:"courseListIcon,omitempty"`
	LongDescription string         `json:"longDescription,omitempty"`
	Category        CourseCategory `json:"category"`
	LessonsCount    int            `json:"lessonsCount,omitempty"`
}

// CourseDraft holds the values of the first create-course form step
type CourseDraft struct {
	Title            string         `json:"title" validate:"required,min=5,max=60"`
	ReleasedAt       time.Time      `json:"releasedAt" validate:"required"`
	Category         CourseCategory `json:"category" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	CourseType       CourseType     `json:"courseType" validate:"required,oneof=free premium"`
	DownloadsAllowed bool           `json:"downloadsAllowed" validate:"eq=true"`
	LongDescription  string         `json:"longDescription" validate:"required,min=3"`
}

// FieldError describes a single invalid field of a submitted form
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// DraftValidationResponse is returned by the draft validation endpoint
type DraftValidationResponse struct {
	Valid  bool         `json:"valid"`
	Draft  CourseDraft  `json:"draft"`
	Errors []FieldError `json:"errors"`
}
