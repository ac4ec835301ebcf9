package types

import (
	"net/http/httptest"
	"testing"
)

func TestCategoryIntentMutualExclusion(t *testing.T) {
	f := DefaultFilterState()
	f.SetLegacy("Equipment")
	if f.LegacyToken() != "Equipment" {
		t.Fatalf("legacy token = %q", f.LegacyToken())
	}
	if f.Browse() != BrowseAll || f.Format() != FormatAll || f.Genre() != GenreAll {
		t.Error("structured accessors must read neutral under a legacy token")
	}

	f.SetBrowse(BrowseOnSale)
	if f.LegacyToken() != "" {
		t.Error("structured update must clear the legacy token")
	}
	if f.Browse() != BrowseOnSale {
		t.Errorf("browse = %q", f.Browse())
	}
}

func TestSetLegacyEmptyResetsCategory(t *testing.T) {
	f := DefaultFilterState()
	f.SetLegacy("Merch")
	f.SetLegacy("")
	if !f.CategoryIsDefault() {
		t.Error("clearing the legacy token returns to the neutral selection")
	}
}

func TestActiveCount(t *testing.T) {
	f := DefaultFilterState()
	if f.ActiveCount() != 0 {
		t.Fatalf("default count = %d", f.ActiveCount())
	}
	f.SetBrowse(BrowseClearance)
	f.SetFormat(FormatCD)
	f.SetGenre("Blues")
	f.Artist = "B.B. King"
	f.Price = Price25To50
	if got := f.ActiveCount(); got != 5 {
		t.Errorf("count = %d, want 5", got)
	}
	f.SetLegacy("Home")
	if got := f.ActiveCount(); got != 3 {
		t.Errorf("legacy swap: count = %d, want 3 (token + artist + price)", got)
	}
}

func TestProductEffectivePriceAndStock(t *testing.T) {
	sale := 22.50
	p := Product{Price: 28.50, SalePrice: &sale}
	if p.EffectivePrice() != 22.50 {
		t.Errorf("effective price = %v", p.EffectivePrice())
	}
	p.SalePrice = nil
	if p.EffectivePrice() != 28.50 {
		t.Errorf("effective price = %v", p.EffectivePrice())
	}

	if !p.Purchasable() {
		t.Error("absent stock info counts as purchasable")
	}
	out := false
	p.InStock = &out
	if p.Purchasable() {
		t.Error("explicit false blocks purchase")
	}
}

func TestPriceRangeBoundsAreHalfOpen(t *testing.T) {
	if !Price25To50.Contains(25) || Price25To50.Contains(50) {
		t.Error("[25,50) bucket bounds wrong")
	}
	if !PriceOver100.Contains(100) {
		t.Error("[100,inf) includes its lower bound")
	}
}

func TestCatalogRequestSanitize(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/catalog?filter=b%3DOn%2BSale&sort=price-asc&page=2&size=24", nil)
	cr, err := CatalogRequestFromHTTP(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cr.Sort != "price-asc" || cr.Page != 2 || cr.PageSize != 24 {
		t.Errorf("decoded %+v", cr)
	}

	r = httptest.NewRequest("GET", "/api/catalog?sort=bogus&page=-3&size=7&price=300-400", nil)
	cr, err = CatalogRequestFromHTTP(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cr.Sort != string(SortFeatured) {
		t.Errorf("unknown sort should fall back to featured, got %q", cr.Sort)
	}
	if cr.Page != 1 {
		t.Errorf("negative page clamps to 1, got %d", cr.Page)
	}
	if cr.PageSize != DefaultPageSize {
		t.Errorf("unoffered size falls back to %d, got %d", DefaultPageSize, cr.PageSize)
	}
	if cr.Price != string(PriceAll) {
		t.Errorf("unknown price bucket falls back to all, got %q", cr.Price)
	}
	if cr.Filter != "All" {
		t.Errorf("absent filter token defaults to All, got %q", cr.Filter)
	}
}

func TestCatalogRequestIgnoresUnknownKeys(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/catalog?filter=Rock&utm_source=mail", nil)
	cr, err := CatalogRequestFromHTTP(r)
	if err != nil {
		t.Fatalf("unknown query keys must not error: %v", err)
	}
	if cr.Filter != "Rock" {
		t.Errorf("filter = %q", cr.Filter)
	}
}
