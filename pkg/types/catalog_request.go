package types

import (
	"encoding/json"
	"net/http"
	"net/url"
	"slices"

	"github.com/gorilla/schema"
)

// CatalogRequest is the wire form of one catalog browse interaction.
// Filter carries the encoded filter token; artist and price travel as
// separate parameters since they are independent of the category intent.
type CatalogRequest struct {
	Filter   string `json:"filter" schema:"filter"`
	Artist   string `json:"artist" schema:"artist"`
	Price    string `json:"price" schema:"price"`
	Sort     string `json:"sort" schema:"sort,default:featured"`
	Page     int    `json:"page" schema:"page,default:1"`
	PageSize int    `json:"size" schema:"size,default:12"`
	Limit    int    `json:"limit" schema:"limit"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Sanitize normalizes out-of-range or unknown values to their defaults.
// Malformed input is never an error on this path.
func (c *CatalogRequest) Sanitize() {
	c.Page = clamp(c.Page, 1, 10000)
	c.Limit = clamp(c.Limit, 0, 99)
	if !slices.Contains(PageSizes, c.PageSize) {
		c.PageSize = DefaultPageSize
	}
	if !IsSortKey(c.Sort) {
		c.Sort = string(SortFeatured)
	}
	if c.Artist == "" {
		c.Artist = ArtistAll
	}
	if !slices.Contains(PriceRanges, PriceRange(c.Price)) {
		c.Price = string(PriceAll)
	}
	if c.Filter == "" {
		c.Filter = "All"
	}
}

func makeBaseCatalogRequest() *CatalogRequest {
	return &CatalogRequest{
		Filter:   "All",
		Artist:   ArtistAll,
		Price:    string(PriceAll),
		Sort:     string(SortFeatured),
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// CatalogRequestFromHTTP decodes a request from the query string on GET
// and from a JSON body otherwise.
func CatalogRequestFromHTTP(r *http.Request) (*CatalogRequest, error) {
	cr := makeBaseCatalogRequest()
	var err error
	if r.Method == http.MethodGet {
		err = catalogRequestFromQuery(r.URL.Query(), cr)
	} else {
		err = json.NewDecoder(r.Body).Decode(cr)
	}
	cr.Sanitize()
	return cr, err
}

func catalogRequestFromQuery(query url.Values, result *CatalogRequest) error {
	return decoder.Decode(result, query)
}
