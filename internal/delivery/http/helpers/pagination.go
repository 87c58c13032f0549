package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"eventsapi/internal/domain"

	"go.einride.tech/aip/ordering"
)

// DefaultPage is the page served when the query omits it. Pages are 0-based.
const DefaultPage = 0

// ParsePageRequest reads page, size and sort from the request query string.
// Invalid or missing page and size fall back to defaults; size is clamped to
// domain.MaxPageSize. sort accepts AIP-132 syntax ("name desc,id") and may be repeated;
// the Spring form "name,desc" is also understood. The returned string is the
// normalized sort expression, empty when none was given.
func ParsePageRequest(r *http.Request) (domain.PageRequest, string, error) {
	q := r.URL.Query()
	page := DefaultPage
	if s := q.Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			page = v
		}
	}
	size := domain.DefaultPageSize
	if s := q.Get("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			size = min(v, domain.MaxPageSize)
		}
	}
	req := domain.PageRequest{Page: page, Size: size}

	var exprs []string
	for _, s := range q["sort"] {
		if s = strings.TrimSpace(s); s != "" {
			exprs = append(exprs, springToAIP(s))
		}
	}
	if len(exprs) == 0 {
		return req, "", nil
	}
	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(strings.Join(exprs, ",")); err != nil {
		return req, "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := orderBy.ValidateForPaths(domain.SortableEventFields...); err != nil {
		return req, "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	canonical := make([]string, 0, len(orderBy.Fields))
	for _, f := range orderBy.Fields {
		req.Sort = append(req.Sort, domain.SortField{Field: f.Path, Desc: f.Desc})
		if f.Desc {
			canonical = append(canonical, f.Path+" desc")
		} else {
			canonical = append(canonical, f.Path)
		}
	}
	return req, strings.Join(canonical, ","), nil
}

// springToAIP rewrites "field,asc" or "field,desc" into "field asc" / "field desc".
// Anything else is returned unchanged.
func springToAIP(s string) string {
	field, dir, ok := strings.Cut(s, ",")
	if !ok || strings.ContainsAny(field, " ,") {
		return s
	}
	switch d := strings.ToLower(strings.TrimSpace(dir)); d {
	case "asc", "desc":
		return strings.TrimSpace(field) + " " + d
	}
	return s
}
