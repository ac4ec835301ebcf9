// Package catalog implements the faceted browsing engine for the
// storefront: classification of inventory into presentation families,
// facet predicates, filter-state serialization, stable sorting and
// pagination, and the view controller tying them together.
package catalog

import (
	"strings"

	"github.com/grooveshop/storefront/pkg/types"
)

// The vocabulary below is the single source of truth for every
// keyword-driven decision in the engine. One table per concern; the
// category names mirror the commerce backend's catalog categories.

type stringSet map[string]struct{}

func makeSet(values ...string) stringSet {
	s := make(stringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s stringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// mediaCategories are the backend categories rendered as the square
// record grid: vinyl bins, physical media, and every music genre.
var mediaCategories = makeSet(
	// vinyl
	"New Vinyl", "Used Vinyl", "33New", "33Used", "45",
	// physical media
	"Cassettes", "CD's", "DVD's", "VHS", "Reel To Reel",
	// genres
	"Bluegrass", "Blues", "Compilations", "Country", "Electronic",
	"Folk", "Funk/Soul", "Indie", "Industrial", "Jazz", "Metal",
	"Pop", "Punk/Ska", "Rap/Hip-Hop", "Reggae", "Rock",
	"Singer Songwriter", "Soundtracks", "Other",
)

// merchCategories are everything rendered as the horizontal list:
// collectibles, accessories, equipment, home goods, food and the
// leftover uncategorized bins.
var merchCategories = makeSet(
	// collectibles
	"Action Figures", "Funko Pop", "Animals (Minis)", "Charms",
	"Pin", "Patches", "Buttons", "Wristband", "Jewelry",
	// accessories
	"Guitar picks", "Sleeves", "Slip Mat", "Spin Clean", "Cleaner",
	"Crates", "Wallets", "Tote Bag", "T-Shirts", "Hats", "Sticker",
	"Poster", "Coffee Mug", "Coasters",
	// electronics
	"Equipment", "Adapters", "Boombox",
	// home and lifestyle
	"Candles", "Incense", "Essential Oils", "Lava Lamps", "Bowl",
	// food and drink
	"Food", "Drinks",
	// books, games, box sets
	"Book", "Box Set", "Puzzle", "Videogames",
	// events
	"Record Store Day",
	// uncategorized
	"Sprouts", "Miscellaneous", "Uncategorized",
)

// mediaFormatLabels are free-text format values that identify physical
// media when a product carries no recognizable category tag.
var mediaFormatLabels = makeSet(
	"LP", `12"`, `7"`, `10"`, "CD", "Cassette", "Reel to Reel",
	"Vinyl", "2xLP", "Box Set",
)

// formatKeywords maps each record-format facet value to the lower-case
// keywords matched against the product's format/title/tag haystack.
// No format matches by its enum name alone.
var formatKeywords = map[types.RecordFormat][]string{
	types.FormatVinyl: {
		"vinyl", "33", "45", "lp", "record", "compilation", "box set",
		"record store day", `12"`, `7"`, `10"`, "2xlp",
	},
	types.FormatLP:         {"lp"},
	types.FormatTwelveInch: {`12"`, "12 inch"},
	types.FormatSevenInch:  {`7"`, "7 inch", "45"},
	types.FormatTenInch:    {`10"`, "10 inch"},
	types.FormatCD:         {"cd"},
	types.FormatCassette:   {"cassette"},
	types.FormatReelToReel: {"reel"},
	types.FormatBoxSet:     {"box set"},
	types.FormatDigital:    {"digital"},
}

// genreAliases maps a canonical genre (lower-cased) to the surface
// spellings seen in backend data. Genres without an entry match their
// own lower-cased name only.
var genreAliases = map[string][]string{
	"rap/hip-hop":       {"rap", "hip hop", "hip-hop"},
	"funk/soul":         {"funk", "soul", "funk/soul"},
	"punk/ska":          {"punk", "ska", "punk/ska"},
	"soundtracks":       {"soundtrack", "soundtracks"},
	"singer songwriter": {"singer songwriter", "singer-songwriter"},
	"compilations":      {"compilation", "compilations"},
}

// aliasesFor returns the matchable spellings for a genre facet value.
func aliasesFor(genre string) []string {
	lower := strings.ToLower(genre)
	if aliases, ok := genreAliases[lower]; ok {
		return aliases
	}
	return []string{lower}
}

// legacyKeywords are the curated keyword sets behind the legacy
// single-token category filters kept alive for old deep links.
var legacyKeywords = map[string][]string{
	"Equipment": {
		"equipment", "turntable", "cleaner", "cleaning", "sleeve",
		"slip mat", "adapter", "crate", "storage", "boombox", "spin clean",
	},
	"Merch": {
		"merch", "shirt", "hat", "tote", "candle", "toy", "figure",
		"poster", "pin", "sticker", "mug", "patch", "incense", "mat",
		"wallet", "button", "puzzle", "game", "funko", "action figure",
		"coasters", "drinks", "guitar picks", "wristband", "jewelry",
		"animals", "essential oils", "lava lamps", "sprouts",
	},
	"Apparel":      {"shirt", "hat", "hoodie", "apparel", "wristband"},
	"Collectibles": {"funko", "pop", "figure", "toy", "collectible", "action figures"},
	"Home":         {"candle", "mug", "poster", "incense", "bowl", "coasters", "lava lamps"},
}

// LegacyTokens lists the curated legacy filters in menu order.
var LegacyTokens = []string{"Equipment", "Merch", "Apparel", "Collectibles", "Home"}
