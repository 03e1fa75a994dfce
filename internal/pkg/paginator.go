package pkg

// Pagination 固定页大小的分页计算结果。页码从 1 开始，
// 越界页码收敛到最近的合法页而不是报错；空表也有第 1 页
type Pagination struct {
	Number     int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
	Count      int64 `json:"count"`
}

// Paginate 根据总数把请求页码收敛到 [1, TotalPages]
func Paginate(number, size int, count int64) Pagination {
	if size <= 0 {
		size = 10
	}
	totalPages := int((count + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	return Pagination{
		Number:     number,
		Size:       size,
		TotalPages: totalPages,
		Count:      count,
	}
}

// Offset 当前页在全量序列中的起点
func (p Pagination) Offset() int {
	return (p.Number - 1) * p.Size
}
