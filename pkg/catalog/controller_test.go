package catalog

import (
	"testing"

	"github.com/grooveshop/storefront/pkg/types"
)

func demoSet() []types.Product {
	return []types.Product{
		{Id: "1", Title: "Rumours", Artist: "Fleetwood Mac", Price: 28.50, SalePrice: f64(22.50), OnSale: true, Tags: []string{"Rock"}},
		{Id: "2", Title: "Kind of Blue", Artist: "Miles Davis", Price: 24.99, Tags: []string{"Jazz"}},
		{Id: "3", Title: "A Love Supreme", Artist: "John Coltrane", Price: 32, Tags: []string{"Jazz"}, IsNewArrival: true},
		{Id: "4", Title: "Spin Clean Kit", Price: 80, Tags: []string{"Spin Clean"}},
		{Id: "5", Title: "Band Tee", Artist: "Fleetwood Mac", Price: 25, Tags: []string{"T-Shirts"}},
		{Id: "6", Title: "OK Computer", Artist: "Radiohead", Price: 35, Tags: []string{"Rock"}},
	}
}

func TestControllerFacetChangeResetsPage(t *testing.T) {
	c := NewController(makeProducts(40), nil)
	c.SetPageSize(6)
	c.SetPage(3)
	if c.Page().Page != 3 {
		t.Fatalf("page = %d", c.Page().Page)
	}

	mutations := []func(){
		func() { c.SetBrowse(types.BrowseOnSale) },
		func() { c.SetFormat(types.FormatLP) },
		func() { c.SetGenre("Rock") },
		func() { c.SetLegacy("Merch") },
		func() { c.SetArtist("Miles Davis") },
		func() { c.SetPrice(types.Price25To50) },
		func() { c.SetSort(types.SortTitleAsc) },
	}
	for i, mutate := range mutations {
		c.ClearAll()
		c.SetPage(2)
		mutate()
		if got := c.Page().Page; got != 1 {
			t.Errorf("mutation %d: page = %d, want 1", i, got)
		}
	}
}

func TestControllerPageBounds(t *testing.T) {
	c := NewController(makeProducts(20), nil)
	c.SetPageSize(6) // 4 pages
	for _, bad := range []int{0, -1, 5, 99} {
		c.SetPage(bad)
		if c.Page().Page != 1 {
			t.Errorf("out-of-range request %d must be a no-op, page = %d", bad, c.Page().Page)
		}
	}
	c.SetPage(4)
	if c.Page().Page != 4 {
		t.Errorf("valid request rejected, page = %d", c.Page().Page)
	}
}

func TestControllerEmitsToken(t *testing.T) {
	var tokens []string
	c := NewController(demoSet(), func(token string) { tokens = append(tokens, token) })

	c.SetBrowse(types.BrowseOnSale)
	c.SetFormat(types.FormatLP)
	c.ClearAll()

	want := []string{"b=On+Sale", "b=On+Sale&f=LP", "All"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d emissions: %v", len(tokens), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("emission %d = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestControllerActiveFilterCount(t *testing.T) {
	c := NewController(demoSet(), nil)
	if got := c.Render().ActiveFilters; got != 0 {
		t.Fatalf("default state has %d active filters", got)
	}
	c.SetBrowse(types.BrowseOnSale)
	c.SetGenre("Rock")
	c.SetArtist("Fleetwood Mac")
	c.SetPrice(types.Price25To50)
	if got := c.Render().ActiveFilters; got != 4 {
		t.Errorf("active filters = %d, want 4", got)
	}
	c.SetLegacy("Merch")
	// legacy replaces the two category facets; artist and price remain
	if got := c.Render().ActiveFilters; got != 3 {
		t.Errorf("active filters = %d, want 3", got)
	}
}

func TestControllerSeedFromToken(t *testing.T) {
	c := NewController(demoSet(), nil)
	c.Seed("b=On%20Sale", "")
	view := c.Render()
	if view.TotalResults != 1 || view.Items[0].Product.Title != "Rumours" {
		t.Errorf("seeded filter should leave only Rumours, got %d results", view.TotalResults)
	}
}

func TestControllerSectionTitle(t *testing.T) {
	c := NewController(demoSet(), nil)
	if got := c.Render().Title; got != "Full Catalog" {
		t.Errorf("default title = %q", got)
	}
	c.SetBrowse(types.BrowseNewArrivals)
	if got := c.Render().Title; got != "Just Landed" {
		t.Errorf("title = %q", got)
	}
	c.SetFormat(types.FormatLP)
	if got := c.Render().Title; got != "Just Landed • LP (12\")" {
		t.Errorf("title = %q", got)
	}
	c.SetLegacy("Equipment")
	if got := c.Render().Title; got != "Equipment Collection" {
		t.Errorf("title = %q", got)
	}
}

func TestControllerArtists(t *testing.T) {
	c := NewController(demoSet(), nil)
	artists := c.Render().Artists
	if artists[0] != "All" {
		t.Fatalf("artists list leads with All, got %q", artists[0])
	}
	want := []string{"All", "Fleetwood Mac", "John Coltrane", "Miles Davis", "Radiohead"}
	if len(artists) != len(want) {
		t.Fatalf("artists = %v", artists)
	}
	for i := range want {
		if artists[i] != want[i] {
			t.Errorf("artists[%d] = %q, want %q", i, artists[i], want[i])
		}
	}
}

func TestControllerGridLayoutVote(t *testing.T) {
	c := NewController(demoSet(), nil)
	// 4 media vs 2 merch: grid wins
	if !c.Render().GridLayout {
		t.Error("majority media should render the grid")
	}
	c.SetLegacy("Equipment")
	if c.Render().GridLayout {
		t.Error("curated merch token forces the list layout")
	}
	c.ClearAll()
	c.SetGenre("Jazz")
	if !c.Render().GridLayout {
		t.Error("genre filters render the grid")
	}
}

func TestControllerClearAllResetsEverything(t *testing.T) {
	c := NewController(demoSet(), nil)
	c.SetBrowse(types.BrowseOnSale)
	c.SetArtist("Miles Davis")
	c.SetPrice(types.PriceOver100)
	c.ClearAll()
	view := c.Render()
	if view.ActiveFilters != 0 || view.Token != "All" {
		t.Errorf("clear all left state behind: %d filters, token %q", view.ActiveFilters, view.Token)
	}
	if view.TotalResults != len(demoSet()) {
		t.Errorf("clear all should show the full catalog, got %d", view.TotalResults)
	}
}

func TestControllerPageSizeValidation(t *testing.T) {
	c := NewController(demoSet(), nil)
	c.SetPageSize(7)
	if c.Page().PageSize != types.DefaultPageSize {
		t.Errorf("unoffered size accepted: %d", c.Page().PageSize)
	}
	c.SetPageSize(24)
	if c.Page().PageSize != 24 {
		t.Errorf("offered size rejected: %d", c.Page().PageSize)
	}
}
