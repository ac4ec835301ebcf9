package catalog

import (
	"fmt"
	"testing"

	"github.com/grooveshop/storefront/pkg/types"
)

func makeProducts(n int) []types.Product {
	products := make([]types.Product, n)
	for i := range products {
		products[i] = types.Product{Id: fmt.Sprintf("p%02d", i)}
	}
	return products
}

func TestPaginateUnionReconstructsInput(t *testing.T) {
	for _, tc := range []struct{ count, size int }{
		{24, 6},  // even split
		{25, 6},  // ragged tail
		{5, 12},  // single short page
		{0, 12},  // empty
	} {
		products := makeProducts(tc.count)
		wantPages := (tc.count + tc.size - 1) / tc.size

		var union []string
		page := 1
		for {
			items, total := Paginate(products, types.PageState{Page: page, PageSize: tc.size})
			if total != wantPages {
				t.Fatalf("count=%d size=%d: totalPages=%d, want %d", tc.count, tc.size, total, wantPages)
			}
			for _, item := range items {
				union = append(union, item.Product.Id)
			}
			if page >= total {
				break
			}
			page++
		}
		if len(union) != tc.count {
			t.Fatalf("count=%d size=%d: union has %d items", tc.count, tc.size, len(union))
		}
		for i, id := range union {
			if id != products[i].Id {
				t.Errorf("count=%d size=%d: union[%d]=%s, want %s", tc.count, tc.size, i, id, products[i].Id)
			}
		}
	}
}

func TestPaginateOutOfRangePageIsEmpty(t *testing.T) {
	products := makeProducts(10)
	items, total := Paginate(products, types.PageState{Page: 5, PageSize: 6})
	if total != 2 {
		t.Fatalf("totalPages=%d", total)
	}
	if len(items) != 0 {
		t.Errorf("page beyond range should slice to nothing, got %d items", len(items))
	}
}

func TestPaginatePreviewMode(t *testing.T) {
	products := makeProducts(20)
	items, total := Paginate(products, types.PageState{Limit: 12})
	if total != 1 {
		t.Fatalf("preview mode has exactly one page, got %d", total)
	}
	if len(items) != 12 {
		t.Fatalf("got %d items, want 12", len(items))
	}
	for i, item := range items {
		var want Viewport
		switch {
		case i >= 8:
			want = ViewportWide
		case i >= 4:
			want = ViewportMedium
		default:
			want = ViewportAny
		}
		if item.MinViewport != want {
			t.Errorf("index %d: reveal hint %v, want %v", i, item.MinViewport, want)
		}
	}
}

func TestPaginatePreviewOrderingIsViewportIndependent(t *testing.T) {
	products := makeProducts(15)
	items, _ := Paginate(products, types.PageState{Limit: 12})
	// the hint marks visibility, never position
	for i, item := range items {
		if item.Product.Id != products[i].Id {
			t.Errorf("ordering changed under preview mode at %d", i)
		}
	}
}

func TestPaginateSmallPreviewHasNoHints(t *testing.T) {
	products := makeProducts(10)
	items, _ := Paginate(products, types.PageState{Limit: 6})
	for i, item := range items {
		if item.MinViewport != ViewportAny {
			t.Errorf("limit below 8 gets no reveal hints, index %d has %v", i, item.MinViewport)
		}
	}
}
