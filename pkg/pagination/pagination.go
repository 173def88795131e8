package pagination

const (
	// DefaultPerPage 未传 per_page 时的页大小
	DefaultPerPage = 10
	// MaxPerPage 单页行数上限
	MaxPerPage = 100
)

// Params 1 起始的 page/per_page 分页参数
type Params struct {
	Page    int
	PerPage int
}

// Normalize 约束 page >= 1、0 < per_page <= MaxPerPage
func Normalize(page, perPage int) Params {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// Pages 总页数（向上取整；空集为 0）
func Pages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
