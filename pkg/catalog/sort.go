package catalog

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/grooveshop/storefront/pkg/types"
)

// newCollator builds a fresh collator for one sort. collate.Collator
// keeps iterator state between CompareString calls and must not be
// shared across goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}

// Sort orders products by the given key, in place, with a stable sort:
// ties keep their input order for every key.
func Sort(products []types.Product, key types.SortKey) {
	slices.SortStableFunc(products, comparator(key))
}

// Sorted returns a sorted copy, leaving the input untouched.
func Sorted(products []types.Product, key types.SortKey) []types.Product {
	result := make([]types.Product, len(products))
	copy(result, products)
	Sort(result, key)
	return result
}

func comparator(key types.SortKey) func(a, b types.Product) int {
	switch key {
	case types.SortPriceAsc:
		return func(a, b types.Product) int {
			return cmp.Compare(a.EffectivePrice(), b.EffectivePrice())
		}
	case types.SortPriceDesc:
		return func(a, b types.Product) int {
			return cmp.Compare(b.EffectivePrice(), a.EffectivePrice())
		}
	case types.SortTitleAsc:
		c := newCollator()
		return func(a, b types.Product) int {
			return c.CompareString(a.Title, b.Title)
		}
	case types.SortArtistAsc:
		c := newCollator()
		return func(a, b types.Product) int {
			return c.CompareString(a.Artist, b.Artist)
		}
	case types.SortReleaseDate:
		return compareReleaseDate
	}
	// featured: new arrivals form a stable prefix, original order kept
	// within each group
	return func(a, b types.Product) int {
		if a.IsNewArrival && !b.IsNewArrival {
			return -1
		}
		if !a.IsNewArrival && b.IsNewArrival {
			return 1
		}
		return 0
	}
}

// compareReleaseDate sorts newest first. A product without a parsable
// release date is never reordered relative to its neighbors.
func compareReleaseDate(a, b types.Product) int {
	at, aok := parseReleaseDate(a.ReleaseDate)
	bt, bok := parseReleaseDate(b.ReleaseDate)
	if !aok || !bok {
		return 0
	}
	return bt.Compare(at)
}

func parseReleaseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
