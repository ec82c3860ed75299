package models

// Lesson represents a lesson of a course
type Lesson struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"courseId"`
	SeqNo       int    `json:"seqNo"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// SortOrder is the direction of the lesson table sort
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortColumn is the lesson column the table is sorted by
type SortColumn string

const (
	SortColumnSeqNo       SortColumn = "seqNo"
	SortColumnDescription SortColumn = "description"
	SortColumnDuration    SortColumn = "duration"
)

const (
	// DefaultPageSize is the number of lessons shown per page when none is chosen
	DefaultPageSize = 3
	// AllLessonsPageSize is the page size used to fetch every lesson of a course at once
	AllLessonsPageSize = 1000
)

// PageRequest fully determines one lesson page fetch
type PageRequest struct {
	CourseID   int        `json:"courseId" validate:"gt=0"`
	SortColumn SortColumn `json:"sortColumn" validate:"oneof=seqNo description duration"`
	SortOrder  SortOrder  `json:"sortOrder" validate:"oneof=asc desc"`
	PageIndex  int        `json:"pageIndex" validate:"gte=0"`
	PageSize   int        `json:"pageSize" validate:"gt=0"`
}

// DefaultPageRequest returns the first page of a course sorted by sequence number
func DefaultPageRequest(courseID int) PageRequest {
	return PageRequest{
		CourseID:   courseID,
		SortColumn: SortColumnSeqNo,
		SortOrder:  SortOrderAsc,
		PageIndex:  0,
		PageSize:   DefaultPageSize,
	}
}

// WithDefaults fills unset sort and size fields with their defaults
func (r PageRequest) WithDefaults() PageRequest {
	if r.SortColumn == "" {
		r.SortColumn = SortColumnSeqNo
	}
	if r.SortOrder == "" {
		r.SortOrder = SortOrderAsc
	}
	if r.PageSize == 0 {
		r.PageSize = DefaultPageSize
	}
	return r
}

// LoadState is the lifecycle state of the lesson table data
type LoadState string

const (
	LoadStateIdle    LoadState = "idle"
	LoadStateLoading LoadState = "loading"
	LoadStateError   LoadState = "error"
)

// LessonPage is a snapshot of a course lesson table
type LessonPage struct {
	Request     PageRequest `json:"request"`
	State       LoadState   `json:"state"`
	Loading     bool        `json:"loading"`
	Lessons     []Lesson    `json:"lessons"`
	SelectedIDs []int       `json:"selectedIds"`
	ExpandedID  *int        `json:"expandedId"`
	AllSelected bool        `json:"allSelected"`
	Error       string      `json:"error,omitempty"`
}

// SortChangeRequest is the body of a table sort event
type SortChangeRequest struct {
	Column SortColumn `json:"column"`
	Order  SortOrder  `json:"order"`
}

// PageChangeRequest is the body of a paginator event
type PageChangeRequest struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
}
