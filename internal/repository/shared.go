package repository

// Pagination holds pagination parameters for listing entities.
type Pagination struct {
	PageNo   int32
	PageSize int32
}

// Offset returns the zero-based index of the first row of the page. Pages
// below 1 count as the first page.
func (p *Pagination) Offset() int64 {
	if p.PageNo < 1 || p.PageSize < 1 {
		return 0
	}
	return (int64(p.PageNo) - 1) * int64(p.PageSize)
}

// Window clamps the page to a slice of length n and returns its bounds,
// always within [0, n]. A non-positive page size selects everything.
func (p *Pagination) Window(n int) (start, end int) {
	if n <= 0 {
		return 0, 0
	}
	if p.PageSize <= 0 {
		return 0, n
	}
	total := int64(n)
	s := min(p.Offset(), total)
	e := min(s+int64(p.PageSize), total)
	return int(s), int(e)
}

type FilterOrder struct {
	Filter  string
	OrderBy string
}

func (fo *FilterOrder) GetFilter() string { return fo.Filter }

func (fo *FilterOrder) GetOrderBy() string { return fo.OrderBy }
