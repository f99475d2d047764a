package usecase

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items      []T
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Paginate returns the 1-based page of items. Non-positive page or limit
// fall back to 1 and DefaultPageLimit, and limit is capped at MaxPageLimit.
// A page past the end has no items.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 1:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}

	total := len(items)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	// checked before multiplying so a huge page cannot overflow start
	if page > totalPages {
		return p
	}
	start := (page - 1) * limit
	end := min(start+limit, total)
	p.Items = items[start:end]
	return p
}
