package feed

import (
	"strconv"
	"strings"
)

// Page describes one slice of a feed. Number is 1-indexed and always within
// [1, NumPages]; an empty feed still has one (empty) page.
type Page struct {
	Number   int
	NumPages int
	PerPage  int
	Count    int64
}

// Paginate resolves the raw "page" query value against count items.
// Non-integer values give the first page, values below 1 clamp to the first
// page and values past the end clamp to the last page.
func Paginate(rawPage string, count int64, perPage int) Page {
	if perPage <= 0 {
		perPage = 1
	}
	if count < 0 {
		count = 0
	}
	numPages := int((count + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}

	number, err := strconv.Atoi(strings.TrimSpace(rawPage))
	switch {
	case err != nil:
		number = 1
	case number < 1:
		number = 1
	case number > numPages:
		number = numPages
	}

	return Page{Number: number, NumPages: numPages, PerPage: perPage, Count: count}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) Limit() int {
	return p.PerPage
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

func (p Page) NextPageNumber() int {
	if !p.HasNext() {
		return p.Number
	}
	return p.Number + 1
}

func (p Page) PreviousPageNumber() int {
	if !p.HasPrevious() {
		return p.Number
	}
	return p.Number - 1
}

// PageRange lists every page number, for the paginator bar.
func (p Page) PageRange() []int {
	r := make([]int, p.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}
