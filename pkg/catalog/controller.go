package catalog

import (
	"slices"
	"strings"

	"github.com/grooveshop/storefront/pkg/types"
)

// EmitFunc receives the encoded filter token after every facet change,
// typically to push it into the host's URL/navigation layer.
type EmitFunc func(token string)

// Controller owns the catalog view state and runs the
// filter -> sort -> paginate pipeline on every interaction. All
// mutations go through its methods; each facet or sort change resets
// the page to 1 and emits the current filter token.
type Controller struct {
	products []types.Product
	filter   types.FilterState
	sort     types.SortKey
	page     types.PageState
	emit     EmitFunc
}

// NewController creates a controller over an already-fetched product
// set with default filter, sort and page state.
func NewController(products []types.Product, emit EmitFunc) *Controller {
	return &Controller{
		products: products,
		filter:   types.DefaultFilterState(),
		sort:     types.SortFeatured,
		page:     types.DefaultPageState(),
		emit:     emit,
	}
}

// Seed applies an incoming filter token and artist before first render,
// e.g. from a deep link. Empty values leave the defaults in place.
func (c *Controller) Seed(token, artist string) {
	if token != "" {
		DecodeFilter(token, &c.filter)
	}
	if artist != "" {
		c.filter.Artist = artist
	}
	c.page.Page = 1
}

// SetLimit switches to preview mode with a fixed-size prefix.
func (c *Controller) SetLimit(limit int) {
	c.page.Limit = limit
	c.page.Page = 1
}

// Replace swaps the product set, e.g. after a catalog sync. Filter and
// sort survive; the page resets since the result set changed.
func (c *Controller) Replace(products []types.Product) {
	c.products = products
	c.page.Page = 1
}

func (c *Controller) changed() {
	c.page.Page = 1
	if c.emit != nil {
		c.emit(EncodeFilter(&c.filter))
	}
}

func (c *Controller) SetBrowse(mode types.BrowseMode) {
	c.filter.SetBrowse(mode)
	c.changed()
}

func (c *Controller) SetFormat(format types.RecordFormat) {
	c.filter.SetFormat(format)
	c.changed()
}

func (c *Controller) SetGenre(genre string) {
	c.filter.SetGenre(genre)
	c.changed()
}

func (c *Controller) SetLegacy(token string) {
	c.filter.SetLegacy(token)
	c.changed()
}

func (c *Controller) SetArtist(artist string) {
	c.filter.Artist = artist
	c.changed()
}

func (c *Controller) SetPrice(r types.PriceRange) {
	c.filter.Price = r
	c.changed()
}

func (c *Controller) SetSort(key types.SortKey) {
	c.sort = key
	c.changed()
}

func (c *Controller) SetPageSize(size int) {
	if !slices.Contains(types.PageSizes, size) {
		return
	}
	c.page.PageSize = size
	c.page.Page = 1
}

// SetPage moves to a page within [1, totalPages]; out-of-range
// requests are a no-op.
func (c *Controller) SetPage(page int) {
	_, total := Paginate(Filter(c.products, &c.filter), types.PageState{
		Page:     1,
		PageSize: c.page.PageSize,
		Limit:    c.page.Limit,
	})
	if page < 1 || page > total {
		return
	}
	c.page.Page = page
}

// ClearAll resets every facet, sort stays, and the "All" token is
// emitted.
func (c *Controller) ClearAll() {
	c.filter.Reset()
	c.changed()
}

// Filter exposes a copy of the current filter state.
func (c *Controller) Filter() types.FilterState { return c.filter }

// Sort returns the active sort key.
func (c *Controller) Sort() types.SortKey { return c.sort }

// Page returns the current page state.
func (c *Controller) Page() types.PageState { return c.page }

// Token returns the encoded filter token for the current state.
func (c *Controller) Token() string { return EncodeFilter(&c.filter) }

// Artists returns the selectable artist facet values: "All" followed
// by the distinct artists of the product set, sorted.
func (c *Controller) Artists() []string {
	seen := make(map[string]struct{}, len(c.products))
	artists := make([]string, 0, len(c.products))
	for i := range c.products {
		a := c.products[i].Artist
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		artists = append(artists, a)
	}
	slices.Sort(artists)
	return append([]string{types.ArtistAll}, artists...)
}

// View is one fully-derived render of the catalog.
type View struct {
	Items         []PageItem    `json:"items"`
	TotalResults  int           `json:"totalResults"`
	TotalPages    int           `json:"totalPages"`
	Page          int           `json:"page"`
	PageSize      int           `json:"pageSize"`
	ActiveFilters int           `json:"activeFilters"`
	Token         string        `json:"token"`
	Title         string        `json:"title"`
	GridLayout    bool          `json:"gridLayout"`
	Sort          types.SortKey `json:"sort"`
	Artists       []string      `json:"artists"`
}

// Render runs the whole pipeline and derives the view metadata.
func (c *Controller) Render() View {
	filtered := Filter(c.products, &c.filter)
	Sort(filtered, c.sort)
	items, totalPages := Paginate(filtered, c.page)
	return View{
		Items:         items,
		TotalResults:  len(filtered),
		TotalPages:    totalPages,
		Page:          c.page.Page,
		PageSize:      c.page.PageSize,
		ActiveFilters: c.filter.ActiveCount(),
		Token:         EncodeFilter(&c.filter),
		Title:         c.sectionTitle(),
		GridLayout:    c.gridLayout(filtered),
		Sort:          c.sort,
		Artists:       c.Artists(),
	}
}

// sectionTitle derives the collection heading from the active category
// facets.
func (c *Controller) sectionTitle() string {
	if token := c.filter.LegacyToken(); token != "" {
		return token + " Collection"
	}
	parts := make([]string, 0, 3)
	if b := c.filter.Browse(); b != types.BrowseAll {
		if b == types.BrowseNewArrivals {
			parts = append(parts, "Just Landed")
		} else {
			parts = append(parts, string(b))
		}
	}
	if f := c.filter.Format(); f != types.FormatAll {
		parts = append(parts, types.FormatDisplayName(f))
	}
	if g := c.filter.Genre(); g != types.GenreAll {
		parts = append(parts, g)
	}
	if len(parts) == 0 {
		return "Full Catalog"
	}
	return strings.Join(parts, " • ")
}

// gridLayout decides whether the page as a whole uses the record grid.
// With only a browse mode active the filtered products vote by
// majority family; a specific category filter decides by name, with
// the curated merchandise tokens forcing the list layout.
func (c *Controller) gridLayout(filtered []types.Product) bool {
	legacy := c.filter.LegacyToken()
	format := c.filter.Format()
	genre := c.filter.Genre()

	if legacy == "" && format == types.FormatAll && genre == types.GenreAll {
		if len(filtered) == 0 {
			return true
		}
		media := 0
		for i := range filtered {
			if Classify(&filtered[i]) == Media {
				media++
			}
		}
		return media*2 > len(filtered)
	}

	chosen := legacy
	if chosen == "" {
		if format != types.FormatAll {
			chosen = string(format)
		} else {
			chosen = genre
		}
	}
	return !slices.Contains(LegacyTokens, chosen)
}
