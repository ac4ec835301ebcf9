package catalog

import (
	"github.com/grooveshop/storefront/pkg/types"
)

// Viewport is the minimum viewport width at which a page item becomes
// visible. It is a rendering hint only; ordering is viewport-independent.
type Viewport int

const (
	ViewportAny Viewport = iota
	ViewportMedium
	ViewportWide
)

func (v Viewport) String() string {
	switch v {
	case ViewportMedium:
		return "medium"
	case ViewportWide:
		return "wide"
	}
	return "any"
}

// PageItem is one product on a rendered page together with its reveal
// hint for preview mode.
type PageItem struct {
	Product     types.Product `json:"product"`
	MinViewport Viewport      `json:"minViewport,omitempty"`
}

// Paginate slices the sorted products according to the page state and
// returns the page items plus the total page count.
//
// In preview mode (Limit > 0) there is exactly one page holding the
// first Limit products; for previews of at least 8 items, indices
// [4,8) are tagged medium-and-up and [8,12) wide-only, mirroring the
// 4/8/12 responsive reveal.
func Paginate(products []types.Product, ps types.PageState) ([]PageItem, int) {
	if ps.Limit > 0 {
		n := min(ps.Limit, len(products))
		items := make([]PageItem, n)
		for i := 0; i < n; i++ {
			items[i] = PageItem{Product: products[i], MinViewport: revealThreshold(i, ps.Limit)}
		}
		return items, 1
	}

	size := ps.PageSize
	if size <= 0 {
		size = types.DefaultPageSize
	}
	totalPages := (len(products) + size - 1) / size
	start := (ps.Page - 1) * size
	if start < 0 || start >= len(products) {
		return []PageItem{}, totalPages
	}
	end := min(start+size, len(products))
	items := make([]PageItem, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, PageItem{Product: products[i]})
	}
	return items, totalPages
}

func revealThreshold(index, limit int) Viewport {
	if limit < 8 {
		return ViewportAny
	}
	switch {
	case index >= 8 && index < 12:
		return ViewportWide
	case index >= 4 && index < 8:
		return ViewportMedium
	}
	return ViewportAny
}
