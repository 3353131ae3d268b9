package util

const (
	ProductPageSize = 5
	UserPageSize    = 6
)

type Meta struct {
	Page       int  `json:"page"`
	Size       int  `json:"size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	from = (page - 1) * size
	return from, size
}

// Paginate slices one page out of items. Pages past the end are clamped to the last page.
func Paginate[T any](items []T, page, size int) ([]T, Meta) {
	if page < 1 {
		page = 1
	}
	_, limit := Calculate(page, size)
	total := len(items)
	totalPages := (total + limit - 1) / limit
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	from, _ := Calculate(page, limit)

	to := from + limit
	if to > total {
		to = total
	}
	if from > total {
		from = total
	}

	return items[from:to], Meta{
		Page:       page,
		Size:       limit,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    to < total,
	}
}
