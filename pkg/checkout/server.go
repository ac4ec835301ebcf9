package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/grooveshop/storefront/pkg/cart"
	"github.com/grooveshop/storefront/pkg/common"
)

// PaymentGateway submits a priced order to the commerce backend. The
// order's idempotency key makes retries safe on the remote side.
type PaymentGateway interface {
	SubmitOrder(ctx context.Context, order *Order, paymentToken string) error
}

type Server struct {
	Carts   cart.CartStorage
	Gateway PaymentGateway
	// OnOrderPlaced runs after a successful submit, outside the
	// request error path.
	OnOrderPlaced func(order *Order)
}

type checkoutPayload struct {
	Contact      Contact `json:"contact"`
	PaymentToken string  `json:"payment_token"`
}

func (s *Server) Checkout(w http.ResponseWriter, req *http.Request) {
	cartId := common.HandleCartCookie(w, req)
	var payload checkoutPayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if payload.PaymentToken == "" {
		common.WriteError(w, http.StatusBadRequest, "Payment form not ready")
		return
	}

	current, err := s.Carts.GetCart(req.Context(), cartId)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "Error getting cart")
		return
	}
	order, err := BuildOrder(current, payload.Contact)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.Gateway.SubmitOrder(req.Context(), order, payload.PaymentToken); err != nil {
		order.Status = StatusRejected
		log.Printf("order %s rejected: %v", order.Id, err)
		common.WriteError(w, http.StatusBadGateway, "Payment was declined")
		return
	}
	order.Status = StatusPaid

	// Drain the cart so a refresh does not double-order.
	for _, item := range order.Items {
		if _, err := s.Carts.RemoveItem(req.Context(), cartId, item.ProductId); err != nil {
			log.Printf("clearing cart %s after order %s: %v", cartId, order.Id, err)
			break
		}
	}

	if s.OnOrderPlaced != nil {
		s.OnOrderPlaced(order)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var errGatewayUnavailable = errors.New("payment gateway unavailable")

// NoopGateway accepts every order. Used in demo mode when no backend is
// configured.
type NoopGateway struct{}

func (NoopGateway) SubmitOrder(context.Context, *Order, string) error { return nil }

// UnavailableGateway refuses every order, for deployments that disable
// checkout entirely.
type UnavailableGateway struct{}

func (UnavailableGateway) SubmitOrder(context.Context, *Order, string) error {
	return errGatewayUnavailable
}

func (s *Server) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /", s.Checkout)
	return mux
}
