package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grooveshop/storefront/pkg/common"
	"github.com/grooveshop/storefront/pkg/types"
)

// ProductLookup resolves a product id against the live catalog.
type ProductLookup interface {
	Product(id string) (*types.Product, bool)
}

type CartServer struct {
	Storage CartStorage
	Catalog ProductLookup
}

type cartInput struct {
	ProductId string `json:"id"`
	Quantity  uint   `json:"quantity"`
}

var errNotPurchasable = errors.New("product is out of stock")

func (s *CartServer) cartItemFor(input *cartInput) (*CartItem, error) {
	product, ok := s.Catalog.Product(input.ProductId)
	if !ok {
		return nil, errors.New("product not found")
	}
	if !product.Purchasable() {
		return nil, errNotPurchasable
	}
	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}
	return &CartItem{
		ProductId:  product.Id,
		Sku:        product.Sku,
		Title:      product.Title,
		Artist:     product.Artist,
		PriceCents: PriceCents(product),
		Quantity:   qty,
		CoverUrl:   product.CoverUrl,
	}, nil
}

func (s *CartServer) GetCart(w http.ResponseWriter, req *http.Request) {
	cartId := common.HandleCartCookie(w, req)
	cart, err := s.Storage.GetCart(req.Context(), cartId)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "Error getting cart")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cart); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *CartServer) AddItem(w http.ResponseWriter, req *http.Request) {
	cartId := common.HandleCartCookie(w, req)
	var input cartInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid item")
		return
	}
	item, err := s.cartItemFor(&input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errNotPurchasable) {
			status = http.StatusConflict
		}
		common.WriteError(w, status, err.Error())
		return
	}
	cart, err := s.Storage.AddItem(req.Context(), cartId, *item)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "Error adding item")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cart); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *CartServer) ChangeQuantity(w http.ResponseWriter, req *http.Request) {
	cartId := common.HandleCartCookie(w, req)
	var input cartInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid item")
		return
	}
	var cart *Cart
	var err error
	if input.Quantity == 0 {
		cart, err = s.Storage.RemoveItem(req.Context(), cartId, input.ProductId)
	} else {
		cart, err = s.Storage.ChangeQuantity(req.Context(), cartId, input.ProductId, input.Quantity)
	}
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			common.WriteError(w, http.StatusNotFound, "Item not in cart")
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "Error changing quantity")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cart); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *CartServer) RemoveItem(w http.ResponseWriter, req *http.Request) {
	cartId := common.HandleCartCookie(w, req)
	productId := req.PathValue("id")
	if productId == "" {
		common.WriteError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	cart, err := s.Storage.RemoveItem(req.Context(), cartId, productId)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			common.WriteError(w, http.StatusNotFound, "Item not in cart")
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "Error removing item")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cart); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (srv *CartServer) CartHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", srv.GetCart)
	mux.HandleFunc("POST /", srv.AddItem)
	mux.HandleFunc("PUT /", srv.ChangeQuantity)
	mux.HandleFunc("DELETE /{id}", srv.RemoveItem)
	return mux
}
