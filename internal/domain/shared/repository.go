package shared

// Filter represents query filter options
type Filter struct {
	Search   string
	Page     int
	PageSize int
	Limit    int
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with no pagination
func DefaultFilter() Filter {
	return Filter{
		Filters: make(map[string]interface{}),
	}
}

// WithLimit returns a copy of the filter capped to n rows
func (f Filter) WithLimit(n int) Filter {
	f.Limit = n
	return f
}

// WithPage returns a copy of the filter for the given 1-based page
func (f Filter) WithPage(page, pageSize int) Filter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// With returns a copy of the filter with an equality condition on key
func (f Filter) With(key string, value interface{}) Filter {
	filters := make(map[string]interface{}, len(f.Filters)+1)
	for k, v := range f.Filters {
		filters[k] = v
	}
	filters[key] = value
	f.Filters = filters
	return f
}

// Offset returns the row offset for the current page
func (f Filter) Offset() int {
	if f.Page <= 1 || f.PageSize <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
