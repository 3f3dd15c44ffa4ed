package catalog

// Pager tracks how many items of the filtered list are visible. The
// count only grows (More), resets to one page when any filter or sort
// input changes (Reset), and is clamped to the list length by Window.
// Repeated More signals are harmless: the window never exceeds the
// filtered total.
type Pager struct {
	pageSize int
	visible  int
}

const DefaultPageSize = 24

func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{pageSize: pageSize, visible: pageSize}
}

// Reset drops the window back to a single page.
func (p *Pager) Reset() {
	p.visible = p.pageSize
}

// More grows the window by one page increment.
func (p *Pager) More() {
	p.visible += p.pageSize
}

// Visible returns the unclamped visible count.
func (p *Pager) Visible() int {
	return p.visible
}

// Window clamps the visible count to the filtered list's length.
func (p *Pager) Window(total int) int {
	if total < 0 {
		return 0
	}
	if p.visible > total {
		return total
	}
	return p.visible
}
