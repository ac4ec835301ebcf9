package catalog

import (
	"strings"

	"github.com/grooveshop/storefront/pkg/types"
)

// Predicate is one independent filter dimension. Predicates are pure;
// composition order is unobservable.
type Predicate func(p *types.Product) bool

func matchAll(*types.Product) bool { return true }

// BrowsePredicate implements the quick-browse facet. Bargain Bin and
// Clearance match by tag substring so backend bins like "Bargain Bin
// $5" still qualify.
func BrowsePredicate(mode types.BrowseMode) Predicate {
	switch mode {
	case types.BrowseNewArrivals:
		return func(p *types.Product) bool { return p.IsNewArrival }
	case types.BrowseOnSale:
		return func(p *types.Product) bool { return p.OnSale }
	case types.BrowseBargainBin:
		return tagContains("bargain")
	case types.BrowseClearance:
		return tagContains("clearance")
	}
	return matchAll
}

func tagContains(needle string) Predicate {
	return func(p *types.Product) bool {
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
		return false
	}
}

// haystack joins format, title and tags lower-cased for keyword tests.
func haystack(p *types.Product) string {
	parts := make([]string, 0, 2+len(p.Tags))
	parts = append(parts, strings.ToLower(p.Format), strings.ToLower(p.Title))
	for _, tag := range p.Tags {
		parts = append(parts, strings.ToLower(tag))
	}
	return strings.Join(parts, " ")
}

// FormatPredicate matches a record format by its keyword set against
// the product haystack. Unknown formats match everything.
func FormatPredicate(format types.RecordFormat) Predicate {
	if format == types.FormatAll {
		return matchAll
	}
	keywords, ok := formatKeywords[format]
	if !ok {
		return matchAll
	}
	return func(p *types.Product) bool {
		hay := haystack(p)
		for _, k := range keywords {
			if strings.Contains(hay, k) {
				return true
			}
		}
		return false
	}
}

// GenrePredicate matches any alias of the canonical genre against the
// genre field, any tag, or the title.
func GenrePredicate(genre string) Predicate {
	if genre == types.GenreAll || genre == "" {
		return matchAll
	}
	aliases := aliasesFor(genre)
	return func(p *types.Product) bool {
		fields := make([]string, 0, 2+len(p.Tags))
		fields = append(fields, strings.ToLower(p.Genre), strings.ToLower(p.Title))
		for _, tag := range p.Tags {
			fields = append(fields, strings.ToLower(tag))
		}
		for _, alias := range aliases {
			for _, field := range fields {
				if strings.Contains(field, alias) {
					return true
				}
			}
		}
		return false
	}
}

// LegacyPredicate implements the single-token category filter. Curated
// tokens use their keyword set; anything else falls back to a generic
// substring match of the raw token.
func LegacyPredicate(token string) Predicate {
	if token == "" {
		return matchAll
	}
	if keywords, ok := legacyKeywords[token]; ok {
		return func(p *types.Product) bool {
			return legacyFieldsMatch(p, keywords)
		}
	}
	lower := strings.ToLower(token)
	return func(p *types.Product) bool {
		return legacyFieldsMatch(p, []string{lower})
	}
}

func legacyFieldsMatch(p *types.Product, keywords []string) bool {
	genre := strings.ToLower(p.Genre)
	format := strings.ToLower(p.Format)
	title := strings.ToLower(p.Title)
	for _, k := range keywords {
		if strings.Contains(format, k) || strings.Contains(title, k) || strings.Contains(genre, k) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), k) {
				return true
			}
		}
	}
	return false
}

// ArtistPredicate is exact equality; ArtistAll matches everything.
func ArtistPredicate(artist string) Predicate {
	if artist == types.ArtistAll || artist == "" {
		return matchAll
	}
	return func(p *types.Product) bool { return p.Artist == artist }
}

// PricePredicate buckets by effective price.
func PricePredicate(r types.PriceRange) Predicate {
	if r == types.PriceAll || r == "" {
		return matchAll
	}
	return func(p *types.Product) bool { return r.Contains(p.EffectivePrice()) }
}
