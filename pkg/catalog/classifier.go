package catalog

import (
	"github.com/grooveshop/storefront/pkg/types"
)

// Family is the presentation family a product renders in: Media gets
// the square grid, Merchandise the horizontal list.
type Family int

const (
	Media Family = iota
	Merchandise
)

func (f Family) String() string {
	if f == Merchandise {
		return "merchandise"
	}
	return "media"
}

// Classify buckets a product into its presentation family. First
// matching rule wins:
//
//  1. any tag in the merchandise category set -> Merchandise, checked
//     first so a T-shirt carrying a genre tag still lists as merch
//  2. any tag in the media category set -> Media
//  3. format field names a physical media format -> Media
//  4. otherwise Media
//
// The rule-4 default mis-buckets genuinely unknown merchandise; that is
// a data quality problem in the source catalog (such products carry no
// usable tag or format), not something this function can decide better.
func Classify(p *types.Product) Family {
	for _, tag := range p.Tags {
		if merchCategories.Has(tag) {
			return Merchandise
		}
	}
	for _, tag := range p.Tags {
		if mediaCategories.Has(tag) {
			return Media
		}
	}
	// rules 3 and 4 agree on Media, so the format check is kept only to
	// mirror the documented rule order, not for its result.
	if mediaFormatLabels.Has(p.Format) {
		return Media
	}
	return Media
}
