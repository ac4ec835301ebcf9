package catalog

import (
	"github.com/grooveshop/storefront/pkg/types"
)

// ActivePredicates expands a filter state into the predicates that are
// currently contributing. Exactly one of the structured triple or the
// legacy token contributes category-wise; artist and price always do.
func ActivePredicates(state *types.FilterState) []Predicate {
	preds := make([]Predicate, 0, 5)
	if token := state.LegacyToken(); token != "" {
		preds = append(preds, LegacyPredicate(token))
	} else {
		if b := state.Browse(); b != types.BrowseAll {
			preds = append(preds, BrowsePredicate(b))
		}
		if f := state.Format(); f != types.FormatAll {
			preds = append(preds, FormatPredicate(f))
		}
		if g := state.Genre(); g != types.GenreAll {
			preds = append(preds, GenrePredicate(g))
		}
	}
	if state.Artist != types.ArtistAll && state.Artist != "" {
		preds = append(preds, ArtistPredicate(state.Artist))
	}
	if state.Price != types.PriceAll && state.Price != "" {
		preds = append(preds, PricePredicate(state.Price))
	}
	return preds
}

// Filter returns the products satisfying every active predicate, in
// input order. The input slice is never mutated.
func Filter(products []types.Product, state *types.FilterState) []types.Product {
	preds := ActivePredicates(state)
	if len(preds) == 0 {
		result := make([]types.Product, len(products))
		copy(result, products)
		return result
	}
	result := make([]types.Product, 0, len(products))
outer:
	for i := range products {
		for _, pred := range preds {
			if !pred(&products[i]) {
				continue outer
			}
		}
		result = append(result, products[i])
	}
	return result
}
