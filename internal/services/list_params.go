package services

// ListParams carries the shared pagination query parameters.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes the page count for a total match count.
func (p ListParams) TotalPages(total int) int {
	if total == 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
