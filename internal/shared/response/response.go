package response

// Pagination describes a search result window. PageSize is the number of
// records actually returned, which can be smaller than the requested limit
// on the last page.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(total int64, page, limit, returned int) Pagination {
	totalPages := 0
	if limit > 0 {
		// ceil(total / limit)
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Total:      total,
		Page:       page,
		PageSize:   returned,
		TotalPages: totalPages,
	}
}
