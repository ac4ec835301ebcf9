package types

// BrowseMode is the quick "collection" facet shown above the catalog.
type BrowseMode string

const (
	BrowseAll         BrowseMode = "All"
	BrowseNewArrivals BrowseMode = "New Arrivals"
	BrowseOnSale      BrowseMode = "On Sale"
	BrowseBargainBin  BrowseMode = "Bargain Bin"
	BrowseClearance   BrowseMode = "Clearance"
)

var BrowseModes = []BrowseMode{
	BrowseAll,
	BrowseNewArrivals,
	BrowseOnSale,
	BrowseBargainBin,
	BrowseClearance,
}

func IsBrowseMode(s string) bool {
	for _, m := range BrowseModes {
		if string(m) == s {
			return true
		}
	}
	return false
}

// RecordFormat enumerates the physical media formats offered as a facet.
// FormatAll is the neutral "no format selected" value.
type RecordFormat string

const (
	FormatAll        RecordFormat = "all"
	FormatVinyl      RecordFormat = "Vinyl"
	FormatLP         RecordFormat = "LP"
	FormatTwelveInch RecordFormat = `12"`
	FormatSevenInch  RecordFormat = `7"`
	FormatTenInch    RecordFormat = `10"`
	FormatCD         RecordFormat = "CD"
	FormatCassette   RecordFormat = "Cassette"
	FormatReelToReel RecordFormat = "Reel to Reel"
	FormatBoxSet     RecordFormat = "Box Set"
	FormatDigital    RecordFormat = "Digital"
)

var RecordFormats = []RecordFormat{
	FormatVinyl,
	FormatLP,
	FormatTwelveInch,
	FormatSevenInch,
	FormatTenInch,
	FormatCD,
	FormatCassette,
	FormatReelToReel,
	FormatBoxSet,
	FormatDigital,
}

func IsRecordFormat(s string) bool {
	for _, f := range RecordFormats {
		if string(f) == s {
			return true
		}
	}
	return false
}

// FormatDisplayName maps a format to the label shown in the facet menu.
func FormatDisplayName(f RecordFormat) string {
	if f == FormatLP {
		return `LP (12")`
	}
	return string(f)
}

// Genres are the canonical genre facet values, sourced from the
// commerce backend's category vocabulary.
var Genres = []string{
	"Bluegrass",
	"Blues",
	"Compilations",
	"Country",
	"Electronic",
	"Folk",
	"Funk/Soul",
	"Indie",
	"Industrial",
	"Jazz",
	"Metal",
	"Pop",
	"Punk/Ska",
	"Rap/Hip-Hop",
	"Reggae",
	"Rock",
	"Singer Songwriter",
	"Soundtracks",
	"Other",
}

const GenreAll = "all"

func IsGenre(s string) bool {
	for _, g := range Genres {
		if g == s {
			return true
		}
	}
	return false
}

// PriceRange selects one of the fixed half-open price buckets.
type PriceRange string

const (
	PriceAll     PriceRange = "all"
	PriceUnder25 PriceRange = "under-25"
	Price25To50  PriceRange = "25-50"
	Price50To100 PriceRange = "50-100"
	PriceOver100 PriceRange = "over-100"
)

var PriceRanges = []PriceRange{
	PriceAll,
	PriceUnder25,
	Price25To50,
	Price50To100,
	PriceOver100,
}

// Contains tests bucket membership of an effective price. PriceAll
// matches everything, as does an unrecognized value.
func (r PriceRange) Contains(price float64) bool {
	switch r {
	case PriceUnder25:
		return price < 25
	case Price25To50:
		return price >= 25 && price < 50
	case Price50To100:
		return price >= 50 && price < 100
	case PriceOver100:
		return price >= 100
	}
	return true
}

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortFeatured    SortKey = "featured"
	SortReleaseDate SortKey = "release-date"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortTitleAsc    SortKey = "title-asc"
	SortArtistAsc   SortKey = "artist-asc"
)

var SortKeys = []SortKey{
	SortFeatured,
	SortReleaseDate,
	SortPriceAsc,
	SortPriceDesc,
	SortTitleAsc,
	SortArtistAsc,
}

func IsSortKey(s string) bool {
	for _, k := range SortKeys {
		if string(k) == s {
			return true
		}
	}
	return false
}

// SortLabel is the menu label for a sort key.
func SortLabel(k SortKey) string {
	switch k {
	case SortReleaseDate:
		return "Release Date"
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	case SortTitleAsc:
		return "Title: A-Z"
	case SortArtistAsc:
		return "Artist: A-Z"
	}
	return "Featured"
}

// Condition is the record grading scale used on product detail pages.
type Condition string

const (
	ConditionNearMint      Condition = "NM"
	ConditionNearMintMinus Condition = "NM-"
	ConditionVeryGoodPlus  Condition = "VG+"
	ConditionVeryGood      Condition = "VG"
	ConditionVeryGoodMinus Condition = "VG-"
	ConditionGoodPlus      Condition = "G+"
	ConditionGood          Condition = "G"
	ConditionGoodMinus     Condition = "G-"
	ConditionPoor          Condition = "P"
	ConditionFair          Condition = "F"
)

var conditionNames = map[Condition]string{
	ConditionNearMint:      "Near Mint",
	ConditionNearMintMinus: "Near Mint-",
	ConditionVeryGoodPlus:  "Very Good+",
	ConditionVeryGood:      "Very Good",
	ConditionVeryGoodMinus: "Very Good-",
	ConditionGoodPlus:      "Good+",
	ConditionGood:          "Good",
	ConditionGoodMinus:     "Good-",
	ConditionPoor:          "Poor",
	ConditionFair:          "Fair",
}

func (c Condition) DisplayName() string {
	if name, ok := conditionNames[c]; ok {
		return name
	}
	return string(c)
}

// Playable reports whether a grading is considered playable. G- and
// below may not track.
func (c Condition) Playable() bool {
	switch c {
	case ConditionNearMint, ConditionNearMintMinus, ConditionVeryGoodPlus,
		ConditionVeryGood, ConditionVeryGoodMinus, ConditionGoodPlus, ConditionGood:
		return true
	}
	return false
}
