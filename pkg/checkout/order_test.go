package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grooveshop/storefront/pkg/cart"
)

func demoCart() *cart.Cart {
	return &cart.Cart{
		Id: "c1",
		Items: []cart.CartItem{
			{ProductId: "p1", Title: "Rumours", PriceCents: 2250, Quantity: 2},
			{ProductId: "p2", Title: "Kind of Blue", PriceCents: 2499, Quantity: 1},
		},
	}
}

func TestBuildOrderTotals(t *testing.T) {
	order, err := BuildOrder(demoCart(), Contact{Email: "a@b.se"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if order.SubtotalCents != 6999 {
		t.Errorf("subtotal = %d, want 6999", order.SubtotalCents)
	}
	// 6999 * 0.07 = 489.93, rounds to 490.
	if order.TaxCents != 490 {
		t.Errorf("tax = %d, want 490", order.TaxCents)
	}
	if order.TotalCents != 7489 {
		t.Errorf("total = %d, want 7489", order.TotalCents)
	}
	if order.Status != StatusPending {
		t.Errorf("status = %s", order.Status)
	}
	if order.Id == order.IdempotencyKey {
		t.Error("order id and idempotency key must be independent")
	}
}

func TestBuildOrderEmptyCart(t *testing.T) {
	if _, err := BuildOrder(&cart.Cart{Id: "c1"}, Contact{Email: "a@b.se"}); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("err = %v, want empty cart", err)
	}
	zero := &cart.Cart{Id: "c1", Items: []cart.CartItem{{ProductId: "p1", Quantity: 0}}}
	if _, err := BuildOrder(zero, Contact{Email: "a@b.se"}); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("all-zero quantities count as empty, got %v", err)
	}
}

func TestBuildOrderRequiresEmail(t *testing.T) {
	if _, err := BuildOrder(demoCart(), Contact{}); !errors.Is(err, ErrMissingContact) {
		t.Errorf("err = %v, want missing contact", err)
	}
}

type memoryCarts struct {
	cart *cart.Cart
}

func (m *memoryCarts) AddItem(_ context.Context, _ string, item cart.CartItem) (*cart.Cart, error) {
	m.cart.Items = append(m.cart.Items, item)
	return m.cart, nil
}

func (m *memoryCarts) ChangeQuantity(_ context.Context, _ string, _ string, _ uint) (*cart.Cart, error) {
	return m.cart, nil
}

func (m *memoryCarts) RemoveItem(_ context.Context, _ string, productId string) (*cart.Cart, error) {
	kept := m.cart.Items[:0]
	for _, item := range m.cart.Items {
		if item.ProductId != productId {
			kept = append(kept, item)
		}
	}
	m.cart.Items = kept
	return m.cart, nil
}

func (m *memoryCarts) GetCart(_ context.Context, _ string) (*cart.Cart, error) {
	return m.cart, nil
}

type recordingGateway struct {
	submitted *Order
	err       error
}

func (g *recordingGateway) SubmitOrder(_ context.Context, order *Order, _ string) error {
	g.submitted = order
	return g.err
}

func TestCheckoutHappyPath(t *testing.T) {
	carts := &memoryCarts{cart: demoCart()}
	gw := &recordingGateway{}
	var placed *Order
	srv := &Server{Carts: carts, Gateway: gw, OnOrderPlaced: func(o *Order) { placed = o }}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"contact":{"email":"a@b.se"},"payment_token":"tok_1"}`))
	srv.Checkout(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var order Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if order.Status != StatusPaid {
		t.Errorf("status = %s, want paid", order.Status)
	}
	if gw.submitted == nil {
		t.Fatal("gateway never received the order")
	}
	if placed == nil || placed.Id != order.Id {
		t.Error("OnOrderPlaced must fire with the paid order")
	}
	if len(carts.cart.Items) != 0 {
		t.Errorf("cart not drained: %+v", carts.cart.Items)
	}
}

func TestCheckoutDeclined(t *testing.T) {
	carts := &memoryCarts{cart: demoCart()}
	srv := &Server{Carts: carts, Gateway: &recordingGateway{err: errors.New("card declined")}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"contact":{"email":"a@b.se"},"payment_token":"tok_1"}`))
	srv.Checkout(w, r)

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
	if len(carts.cart.Items) != 2 {
		t.Error("declined payment must leave the cart intact")
	}
}

func TestCheckoutRequiresPaymentToken(t *testing.T) {
	srv := &Server{Carts: &memoryCarts{cart: demoCart()}, Gateway: NoopGateway{}}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"contact":{"email":"a@b.se"}}`))
	srv.Checkout(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
