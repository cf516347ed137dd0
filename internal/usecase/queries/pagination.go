package queries

import (
	"strings"
	"time"

	"furnicraft/internal/pkg/errs"
)

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	MaxLimit      = 100
	MaxPage       = 1_000_000
	MaxExportRows = 5000
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder treats anything but "asc" as descending.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page to [1, MaxPage] and limit to [1, MaxLimit],
// defaulting zero values. The page cap keeps Offset from overflowing.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	Total       int64
	HasNext     bool
	HasPrev     bool
}

func NewPagination(p PageRequest, total int64) Pagination {
	limit := int64(p.Limit)
	if limit < 1 {
		limit = DefaultLimit
	}
	pages := int((total + limit - 1) / limit)
	return Pagination{
		CurrentPage: p.Page,
		TotalPages:  pages,
		Total:       total,
		HasNext:     p.Page < pages,
		HasPrev:     p.Page > 1,
	}
}

// pickSort returns raw when it is one of allowed, otherwise fallback.
func pickSort(raw string, allowed []string, fallback string) string {
	for _, a := range allowed {
		if a == raw {
			return raw
		}
	}
	return fallback
}

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errs.Kinded(errs.ErrInvalidArgument, "Dates must use the YYYY-MM-DD format")
	ErrInvertedDateSpan = errs.Kinded(errs.ErrInvalidArgument, "End date must not be before start date")
)

// DateRange is a half-open [From, To) interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds an inclusive calendar-day range. It only applies when both ends are given.
func NewDateRange(start, end string, loc *time.Location) (*DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	from, err := parseDay(start, loc)
	if err != nil {
		return nil, err
	}
	to, err := parseDay(end, loc)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, ErrInvertedDateSpan
	}
	return &DateRange{From: from, To: to.AddDate(0, 0, 1)}, nil
}

func parseDay(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}
