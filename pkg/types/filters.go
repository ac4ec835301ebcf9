package types

// CategoryIntent is the authoritative category selection. Exactly one
// representation is active at a time: either the structured
// browse/format/genre triple or a single legacy token kept for old
// deep links. The closed union makes a mixed state unrepresentable.
type CategoryIntent interface {
	categoryIntent()
}

// Structured holds the three independent category facets.
type Structured struct {
	Browse BrowseMode   `json:"browse"`
	Format RecordFormat `json:"format"`
	Genre  string       `json:"genre"`
}

func (Structured) categoryIntent() {}

// Legacy is a free-text catch-all category token (Equipment, Merch, ...)
// predating the structured facets.
type Legacy struct {
	Token string `json:"token"`
}

func (Legacy) categoryIntent() {}

// DefaultStructured is the neutral category selection.
func DefaultStructured() Structured {
	return Structured{Browse: BrowseAll, Format: FormatAll, Genre: GenreAll}
}

// ArtistAll is the neutral artist selection.
const ArtistAll = "All"

// FilterState is the full set of active facets. Artist and price are
// independent of the category intent and survive category changes.
type FilterState struct {
	Category CategoryIntent
	Artist   string
	Price    PriceRange
}

func DefaultFilterState() FilterState {
	return FilterState{
		Category: DefaultStructured(),
		Artist:   ArtistAll,
		Price:    PriceAll,
	}
}

// structured returns the current structured selection, starting fresh
// when a legacy token was active.
func (f *FilterState) structured() Structured {
	if s, ok := f.Category.(Structured); ok {
		return s
	}
	return DefaultStructured()
}

// Browse returns the active browse mode (BrowseAll under a legacy token).
func (f *FilterState) Browse() BrowseMode {
	return f.structured().Browse
}

// Format returns the active record format (FormatAll under a legacy token).
func (f *FilterState) Format() RecordFormat {
	return f.structured().Format
}

// Genre returns the active genre (GenreAll under a legacy token).
func (f *FilterState) Genre() string {
	return f.structured().Genre
}

// LegacyToken returns the active legacy token, or "" when the
// structured facets are authoritative.
func (f *FilterState) LegacyToken() string {
	if l, ok := f.Category.(Legacy); ok {
		return l.Token
	}
	return ""
}

// SetBrowse activates a browse mode, clearing any legacy token.
func (f *FilterState) SetBrowse(mode BrowseMode) {
	s := f.structured()
	s.Browse = mode
	f.Category = s
}

// SetFormat activates a record format, clearing any legacy token.
func (f *FilterState) SetFormat(format RecordFormat) {
	s := f.structured()
	s.Format = format
	f.Category = s
}

// SetGenre activates a genre, clearing any legacy token.
func (f *FilterState) SetGenre(genre string) {
	s := f.structured()
	s.Genre = genre
	f.Category = s
}

// SetLegacy activates a legacy token, clearing the structured facets.
// An empty token resets to the neutral structured selection.
func (f *FilterState) SetLegacy(token string) {
	if token == "" {
		f.Category = DefaultStructured()
		return
	}
	f.Category = Legacy{Token: token}
}

// CategoryIsDefault reports whether no category-bearing facet is active.
func (f *FilterState) CategoryIsDefault() bool {
	s, ok := f.Category.(Structured)
	if !ok {
		return false
	}
	return s.Browse == BrowseAll && s.Format == FormatAll && s.Genre == GenreAll
}

// ActiveCount is the number of non-default facets, shown as the badge
// on the filter button.
func (f *FilterState) ActiveCount() int {
	n := 0
	if f.Browse() != BrowseAll {
		n++
	}
	if f.Format() != FormatAll {
		n++
	}
	if f.Genre() != GenreAll {
		n++
	}
	if f.LegacyToken() != "" {
		n++
	}
	if f.Artist != ArtistAll && f.Artist != "" {
		n++
	}
	if f.Price != PriceAll && f.Price != "" {
		n++
	}
	return n
}

// Reset returns every facet to its default.
func (f *FilterState) Reset() {
	*f = DefaultFilterState()
}

// PageSizes are the page sizes offered in the toolbar.
var PageSizes = []int{6, 12, 24, 48}

const DefaultPageSize = 12

// PageState is either classic pagination (Limit == 0) or preview mode
// exposing a fixed-size prefix (Limit > 0, exactly one page).
type PageState struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Limit    int `json:"limit,omitempty"`
}

func DefaultPageState() PageState {
	return PageState{Page: 1, PageSize: DefaultPageSize}
}
