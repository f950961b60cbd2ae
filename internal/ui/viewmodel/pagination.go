package viewmodel

// Pagination contains pagination metadata for list views.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
	StartIndex int  `json:"start_index"`
	EndIndex   int  `json:"end_index"`
	TotalCount int  `json:"total_count"`
}

// Paginate computes the window for page (1-based) over total items. A
// pageSize <= 0 means a single page holding everything. StartIndex and
// EndIndex are slice bounds, so items[StartIndex:EndIndex] is the page.
func Paginate(total, page, pageSize int) Pagination {
	if total < 0 {
		total = 0
	}
	if pageSize <= 0 {
		pageSize = max(total, 1)
	}
	pages := max((total+pageSize-1)/pageSize, 1)
	page = min(max(page, 1), pages)

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		HasPrev:    page > 1,
		HasNext:    page < pages,
		StartIndex: start,
		EndIndex:   end,
		TotalCount: total,
	}
}
