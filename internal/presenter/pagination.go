// Package presenter turns a computed page into what a client renders: the
// ordered results and which of the previous/next controls are enabled.
package presenter

import "millage/internal/models"

// Control is one navigation button. Page is the page it asks for.
type Control struct {
	Enabled bool
	Page    int

	requestPage func(page int)
}

// Click asks for the control's page. It does nothing when the control is
// disabled or no callback was supplied, and does not wait for the result.
func (c Control) Click() {
	if !c.Enabled || c.requestPage == nil {
		return
	}
	c.requestPage(c.Page)
}

// View is the render state of one page.
type View[T any] struct {
	Results      []T
	CurPage      int
	TotalPages   int
	IsFirstPage  bool
	IsLastPage   bool
	ShowControls bool
	Prev         Control
	Next         Control
}

// Present derives the view of obj. An empty result set counts as a single
// page, and a page past the end counts as the last one, so "next" is never
// offered when there is nothing to page into.
func Present[T any](obj models.PaginationObject[T], requestPage func(page int)) View[T] {
	lastPage := obj.TotalPages
	if lastPage < 1 {
		lastPage = 1
	}

	isFirst := obj.CurPage == 1
	isLast := obj.CurPage >= lastPage

	return View[T]{
		Results:      obj.Results,
		CurPage:      obj.CurPage,
		TotalPages:   obj.TotalPages,
		IsFirstPage:  isFirst,
		IsLastPage:   isLast,
		ShowControls: !isFirst || !isLast,
		Prev: Control{
			Enabled:     !isFirst,
			Page:        obj.CurPage - 1,
			requestPage: requestPage,
		},
		Next: Control{
			Enabled:     !isLast,
			Page:        obj.CurPage + 1,
			requestPage: requestPage,
		},
	}
}
