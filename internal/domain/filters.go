package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListFilters carries the pagination and search parameters shared by every
// list endpoint.
type ListFilters struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize clamps Page to at least 1 and PageSize to [1, MaxPageSize].
// Out of range values are never rejected.
func (f ListFilters) Normalize() ListFilters {
	f.Page = max(f.Page, 1)
	f.PageSize = min(max(f.PageSize, 1), MaxPageSize)

	return f
}

func (f ListFilters) Limit() int {
	return f.PageSize
}

func (f ListFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

func (f ListFilters) HasSearch() bool {
	return f.Search != ""
}

// SearchPattern wraps the raw term in ILIKE wildcards. The result is always
// sent as a bound parameter.
func (f ListFilters) SearchPattern() string {
	return "%" + f.Search + "%"
}
