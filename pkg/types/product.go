package types

// Product is a catalog record as delivered by the commerce backend.
// The engine never mutates one; every view is derived.
type Product struct {
	Id           string    `json:"id"`
	Title        string    `json:"title"`
	Artist       string    `json:"artist,omitempty"`
	Format       string    `json:"format,omitempty"`
	Genre        string    `json:"genre,omitempty"`
	Condition    Condition `json:"condition,omitempty"`
	Price        float64   `json:"price"`
	SalePrice    *float64  `json:"salePrice,omitempty"`
	OnSale       bool      `json:"onSale,omitempty"`
	InStock      *bool     `json:"inStock,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Categories   []string  `json:"categories,omitempty"`
	ReleaseDate  string    `json:"releaseDate,omitempty"`
	CreatedAt    string    `json:"createdAt,omitempty"`
	IsNewArrival bool      `json:"isNewArrival,omitempty"`
	CoverUrl     string    `json:"coverUrl,omitempty"`
	Label        string    `json:"label,omitempty"`
	Sku          string    `json:"sku,omitempty"`
}

// EffectivePrice is the sale price when one is set, the list price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// Purchasable reports whether quick-add is allowed. Absent stock
// information counts as purchasable; only an explicit false blocks it.
func (p *Product) Purchasable() bool {
	return p.InStock == nil || *p.InStock
}

// PrimaryTag returns tags[0], which by convention holds the primary
// category assigned by the commerce backend.
func (p *Product) PrimaryTag() string {
	if len(p.Tags) > 0 {
		return p.Tags[0]
	}
	return ""
}
