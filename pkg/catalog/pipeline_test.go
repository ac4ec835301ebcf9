package catalog

import (
	"testing"

	"github.com/grooveshop/storefront/pkg/types"
)

func TestFilterOnSaleScenario(t *testing.T) {
	products := []types.Product{
		{Title: "Rumours", Artist: "Fleetwood Mac", Price: 28.50, SalePrice: f64(22.50), OnSale: true, Tags: []string{"Rock"}},
		{Title: "Kind of Blue", Artist: "Miles Davis", Price: 24.99, Tags: []string{"Jazz"}},
	}
	state := types.DefaultFilterState()
	state.SetBrowse(types.BrowseOnSale)

	result := Filter(products, &state)
	if len(result) != 1 || result[0].Title != "Rumours" {
		t.Fatalf("expected only Rumours, got %d items", len(result))
	}
}

func TestFilterIsConjunction(t *testing.T) {
	// satisfies browse + genre + price but not artist
	almost := types.Product{
		Title: "Physical Graffiti", Artist: "Led Zeppelin",
		Price: 30, OnSale: true, Tags: []string{"Rock"},
	}
	// satisfies all four
	full := types.Product{
		Title: "Rumours", Artist: "Fleetwood Mac",
		Price: 30, OnSale: true, Tags: []string{"Rock"},
	}
	state := types.DefaultFilterState()
	state.SetBrowse(types.BrowseOnSale)
	state.SetGenre("Rock")
	state.Artist = "Fleetwood Mac"
	state.Price = types.Price25To50

	result := Filter([]types.Product{almost, full}, &state)
	if len(result) != 1 || result[0].Title != "Rumours" {
		t.Fatalf("a product failing one active predicate must be excluded, got %v", result)
	}
}

func TestFilterLegacyExcludesStructured(t *testing.T) {
	state := types.DefaultFilterState()
	state.SetGenre("Jazz")
	state.SetLegacy("Equipment")

	// only the legacy predicate contributes category-wise
	preds := ActivePredicates(&state)
	if len(preds) != 1 {
		t.Fatalf("expected exactly the legacy predicate, got %d", len(preds))
	}

	turntable := types.Product{Title: "Belt Drive Turntable"}
	if result := Filter([]types.Product{turntable}, &state); len(result) != 1 {
		t.Error("setting a legacy token must drop the previous genre filter")
	}
}

func TestFilterStructuredClearsLegacy(t *testing.T) {
	state := types.DefaultFilterState()
	state.SetLegacy("Merch")
	state.SetFormat(types.FormatCD)
	if state.LegacyToken() != "" {
		t.Fatal("structured facet change must clear the legacy token")
	}
}

func TestFilterPreservesInputOrderAndInput(t *testing.T) {
	products := []types.Product{
		{Id: "a", Tags: []string{"Rock"}},
		{Id: "b", Tags: []string{"Jazz"}},
		{Id: "c", Tags: []string{"Rock"}},
	}
	state := types.DefaultFilterState()
	state.SetGenre("Rock")

	result := Filter(products, &state)
	if len(result) != 2 || result[0].Id != "a" || result[1].Id != "c" {
		t.Errorf("filtered order must follow input order, got %v", result)
	}
	if products[1].Id != "b" {
		t.Error("input slice must not be mutated")
	}
}

func TestFilterArtistAndPriceSurviveCategorySwap(t *testing.T) {
	state := types.DefaultFilterState()
	state.Artist = "Miles Davis"
	state.Price = types.PriceUnder25
	state.SetLegacy("Equipment")
	state.SetGenre("Jazz")
	if state.Artist != "Miles Davis" || state.Price != types.PriceUnder25 {
		t.Error("artist and price persist across category representation changes")
	}
}
