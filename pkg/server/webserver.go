package server

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic/encoder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/grooveshop/storefront/pkg/catalog"
	"github.com/grooveshop/storefront/pkg/common"
	"github.com/grooveshop/storefront/pkg/types"
)

var (
	noBrowses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_catalog_requests_total",
		Help: "The total number of processed catalog browses",
	})
	browseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_catalog_request_seconds",
		Help:    "Catalog browse latency",
		Buckets: prometheus.DefBuckets,
	})
	totalProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_products_total",
		Help: "Products currently held in the catalog",
	})
)

// WebServer serves the storefront catalog API over the product store.
type WebServer struct {
	Store *ProductStore
}

func NewWebServer(store *ProductStore) *WebServer {
	return &WebServer{Store: store}
}

func (ws *WebServer) controllerFor(cr *types.CatalogRequest) *catalog.Controller {
	ctrl := catalog.NewController(ws.Store.Products(), nil)
	ctrl.Seed(cr.Filter, cr.Artist)
	ctrl.SetPrice(types.PriceRange(cr.Price))
	ctrl.SetSort(types.SortKey(cr.Sort))
	ctrl.SetPageSize(cr.PageSize)
	if cr.Limit > 0 {
		ctrl.SetLimit(cr.Limit)
	}
	ctrl.SetPage(cr.Page)
	return ctrl
}

// Browse runs the filter, sort and paginate pipeline for one request.
func (ws *WebServer) Browse(w http.ResponseWriter, r *http.Request, enc *encoder.StreamEncoder) error {
	start := time.Now()
	noBrowses.Inc()
	defer func() { browseDuration.Observe(time.Since(start).Seconds()) }()

	cr, err := types.CatalogRequestFromHTTP(r)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid catalog request")
		return nil
	}
	view := ws.controllerFor(cr).Render()
	return enc.Encode(view)
}

type sortOption struct {
	Key   types.SortKey `json:"key"`
	Label string        `json:"label"`
}

type formatOption struct {
	Value types.RecordFormat `json:"value"`
	Label string             `json:"label"`
}

// facetResponse lists every selectable facet value so the storefront UI
// renders its filter bar without hardcoding the vocabulary.
type facetResponse struct {
	BrowseModes []types.BrowseMode `json:"browseModes"`
	Formats     []formatOption     `json:"formats"`
	Genres      []string           `json:"genres"`
	Legacy      []string           `json:"collections"`
	PriceRanges []types.PriceRange `json:"priceRanges"`
	Sorts       []sortOption       `json:"sorts"`
	PageSizes   []int              `json:"pageSizes"`
	Artists     []string           `json:"artists"`
}

func (ws *WebServer) Facets(w http.ResponseWriter, r *http.Request, enc *encoder.StreamEncoder) error {
	ctrl := catalog.NewController(ws.Store.Products(), nil)

	formats := make([]formatOption, 0, len(types.RecordFormats))
	for _, f := range types.RecordFormats {
		if f == types.FormatAll {
			continue
		}
		formats = append(formats, formatOption{Value: f, Label: types.FormatDisplayName(f)})
	}
	sorts := make([]sortOption, 0, len(types.SortKeys))
	for _, s := range types.SortKeys {
		sorts = append(sorts, sortOption{Key: s, Label: types.SortLabel(s)})
	}

	return enc.Encode(facetResponse{
		BrowseModes: types.BrowseModes,
		Formats:     formats,
		Genres:      types.Genres,
		Legacy:      catalog.LegacyTokens,
		PriceRanges: types.PriceRanges,
		Sorts:       sorts,
		PageSizes:   types.PageSizes,
		Artists:     ctrl.Artists(),
	})
}

func (ws *WebServer) GetProduct(w http.ResponseWriter, r *http.Request, enc *encoder.StreamEncoder) error {
	product, ok := ws.Store.Product(r.PathValue("id"))
	if !ok {
		common.WriteError(w, http.StatusNotFound, "Product not found")
		return nil
	}
	return enc.Encode(product)
}

// UpsertProducts feeds catalog changes into the store and keeps the
// product gauge current. Satisfies the broker sink.
func (ws *WebServer) UpsertProducts(items []types.Product) {
	ws.Store.UpsertProducts(items)
	totalProducts.Set(float64(ws.Store.Len()))
}

func (ws *WebServer) DeleteProduct(id string) {
	ws.Store.DeleteProduct(id)
	totalProducts.Set(float64(ws.Store.Len()))
}

// CatalogHandler mounts the public catalog endpoints.
func (ws *WebServer) CatalogHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", common.JsonHandler(ws.Browse))
	mux.HandleFunc("POST /catalog", common.JsonHandler(ws.Browse))
	mux.HandleFunc("GET /facets", common.JsonHandler(ws.Facets))
	mux.HandleFunc("GET /product/{id}", common.JsonHandler(ws.GetProduct))
	return mux
}
