// Package checkout turns a cart into an order with exact money math.
// All amounts are decimal cents; floats never enter the totals.
package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grooveshop/storefront/pkg/cart"
)

// Sales tax applied to the subtotal at review time.
var taxRate = decimal.NewFromFloat(0.07)

type LineItem struct {
	ProductId string `json:"id"`
	Sku       string `json:"sku,omitempty"`
	Title     string `json:"title"`
	UnitCents int64  `json:"unit_price"`
	Quantity  uint   `json:"quantity"`
}

type Contact struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusPaid     OrderStatus = "paid"
	StatusRejected OrderStatus = "rejected"
)

type Order struct {
	Id             string      `json:"id"`
	IdempotencyKey string      `json:"idempotency_key"`
	Items          []LineItem  `json:"items"`
	Contact        Contact     `json:"contact"`
	SubtotalCents  int64       `json:"subtotal"`
	TaxCents       int64       `json:"tax"`
	TotalCents     int64       `json:"total"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}

var (
	ErrEmptyCart      = errors.New("add items to your cart before checking out")
	ErrMissingContact = errors.New("contact email is required")
)

// BuildOrder prices a cart into an order. Tax is rounded to whole cents
// after applying the rate to the full subtotal, not per line.
func BuildOrder(c *cart.Cart, contact Contact) (*Order, error) {
	if c == nil || len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if contact.Email == "" {
		return nil, ErrMissingContact
	}

	items := make([]LineItem, 0, len(c.Items))
	subtotal := decimal.Zero
	for _, line := range c.Items {
		if line.Quantity == 0 {
			continue
		}
		items = append(items, LineItem{
			ProductId: line.ProductId,
			Sku:       line.Sku,
			Title:     line.Title,
			UnitCents: line.PriceCents,
			Quantity:  line.Quantity,
		})
		subtotal = subtotal.Add(decimal.NewFromInt(line.PriceCents).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	tax := subtotal.Mul(taxRate).Round(0)
	total := subtotal.Add(tax)

	return &Order{
		Id:             uuid.NewString(),
		IdempotencyKey: uuid.NewString(),
		Items:          items,
		Contact:        contact,
		SubtotalCents:  subtotal.IntPart(),
		TaxCents:       tax.IntPart(),
		TotalCents:     total.IntPart(),
		Status:         StatusPending,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
