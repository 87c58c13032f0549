package domain

// Page size defaults and limits for list queries.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortField is a single ordering directive on an event attribute.
type SortField struct {
	Field string
	Desc  bool
}

// PageRequest holds offset-based pagination parameters for list queries.
// Page is 0-based.
type PageRequest struct {
	Page int
	Size int
	Sort []SortField
}

// DefaultSort orders events by identifier ascending.
var DefaultSort = []SortField{{Field: "id"}}

// Offset returns the row offset for the current page.
func (p PageRequest) Offset() int {
	if p.Page < 0 || p.Size < 1 {
		return 0
	}
	return p.Page * p.Size
}

// EventPage is a window over the ordered event collection plus paging metadata.
type EventPage struct {
	Items         []*Event
	Number        int
	Size          int
	TotalElements int
	TotalPages    int
}

// NewEventPage builds an EventPage for req. TotalPages is ceiling(total / size);
// if size is 0, TotalPages is 0.
func NewEventPage(items []*Event, req PageRequest, total int) *EventPage {
	totalPages := 0
	if req.Size > 0 {
		totalPages = (total + req.Size - 1) / req.Size
	}
	if items == nil {
		items = []*Event{}
	}
	return &EventPage{
		Items:         items,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// IsFirst reports whether this is the first page.
func (p *EventPage) IsFirst() bool { return p.Number <= 0 }

// IsLast reports whether this is the last page (or there are no pages).
func (p *EventPage) IsLast() bool { return p.Number >= p.TotalPages-1 }

// SortableEventFields lists the event attributes a list query may be ordered by.
var SortableEventFields = []string{
	"id",
	"name",
	"beginEnrollmentDateTime",
	"closeEnrollmentDateTime",
	"beginEventDateTime",
	"endEventDateTime",
	"basePrice",
	"maxPrice",
	"limitOfEnrollment",
}
