// Package pagination computes page windows and navigation links for listings.
// It holds no state: every result is a function of the request parameters
// and the total number of matches.
package pagination

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit is the largest page size honoured. Larger requests fall back to
	// DefaultLimit rather than being capped.
	MaxLimit = 99
)

var (
	ErrInvalidPage  = errors.New("page must be a number")
	ErrInvalidLimit = errors.New("limit must be a number")
)

// Params is a listing request: which page, how big, and an optional search term.
type Params struct {
	Page   int
	Limit  int
	Search string
}

// Parse reads raw query values. Empty values take the defaults; values that are
// not integers are rejected. The result is normalized.
func Parse(page, limit, search string) (Params, error) {
	p := Params{Page: DefaultPage, Limit: DefaultLimit, Search: strings.TrimSpace(search)}
	if s := strings.TrimSpace(page); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Params{}, ErrInvalidPage
		}
		p.Page = int(n)
	}
	if s := strings.TrimSpace(limit); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Params{}, ErrInvalidLimit
		}
		p.Limit = int(n)
	}
	return p.Normalize(), nil
}

// Normalize clamps page to at least 1 and resets out-of-range limits to DefaultLimit.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset is the number of matches skipped before this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Window is a page request resolved against the number of matches.
type Window struct {
	Params
	Total int
}

func NewWindow(p Params, total int) Window {
	return Window{Params: p.Normalize(), Total: total}
}

// Pages is the number of pages the matches span.
func (w Window) Pages() int {
	if w.Total <= 0 {
		return 0
	}
	return (w.Total + w.Limit - 1) / w.Limit
}

func (w Window) HasNext() bool {
	return w.Page < w.Pages()
}

func (w Window) HasPrevious() bool {
	return w.Page > 1 && w.Total > 0
}

// NextLink returns the route of the following page, or "" on the last page.
func (w Window) NextLink(route string) string {
	if !w.HasNext() {
		return ""
	}
	return w.link(route, w.Page+1)
}

// PreviousLink returns the route of the preceding page, or "" on the first page
// and for empty results.
func (w Window) PreviousLink(route string) string {
	if !w.HasPrevious() {
		return ""
	}
	return w.link(route, w.Page-1)
}

func (w Window) link(route string, page int) string {
	var b strings.Builder
	b.WriteString(route)
	b.WriteString("?page=")
	b.WriteString(strconv.Itoa(page))
	b.WriteString("&limit=")
	b.WriteString(strconv.Itoa(w.Limit))
	if w.Search != "" {
		b.WriteString("&q=")
		b.WriteString(url.QueryEscape(w.Search))
	}
	return b.String()
}
