package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/grooveshop/storefront/pkg/common/jsonutil"
	"github.com/grooveshop/storefront/pkg/types"
)

// CartItem is one line in a cart. Prices are stored in cents so cart
// math never touches floats.
type CartItem struct {
	ProductId  string `json:"id"`
	Sku        string `json:"sku,omitempty"`
	Title      string `json:"title"`
	Artist     string `json:"artist,omitempty"`
	PriceCents int64  `json:"price"`
	Quantity   uint   `json:"quantity"`
	CoverUrl   string `json:"image,omitempty"`
}

type Cart struct {
	Id         string     `json:"id"`
	Items      []CartItem `json:"items"`
	TotalCents int64      `json:"total_price"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (c *Cart) recalc() {
	total := int64(0)
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	c.TotalCents = total
	c.UpdatedAt = time.Now().UTC()
}

// PriceCents converts a product's effective price to cents.
func PriceCents(p *types.Product) int64 {
	return decimal.NewFromFloat(p.EffectivePrice()).Shift(2).Round(0).IntPart()
}

// ErrItemNotFound is returned when a quantity change or removal names a
// product the cart does not hold.
var ErrItemNotFound = errors.New("item not found in cart")

type CartStorage interface {
	AddItem(ctx context.Context, cartId string, item CartItem) (*Cart, error)
	ChangeQuantity(ctx context.Context, cartId string, productId string, quantity uint) (*Cart, error)
	RemoveItem(ctx context.Context, cartId string, productId string) (*Cart, error)
	GetCart(ctx context.Context, cartId string) (*Cart, error)
}

const cartTtl = 30 * 24 * time.Hour

// RedisCartStorage keeps each cart as a JSON blob under cart:<id> with a
// sliding expiry.
type RedisCartStorage struct {
	client *redis.Client
}

func NewRedisCartStorage(addr, password string, db int) *RedisCartStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCartStorage{client: rdb}
}

func cartKey(cartId string) string {
	return "cart:" + cartId
}

func (s *RedisCartStorage) load(ctx context.Context, cartId string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(cartId)).Bytes()
	if err == redis.Nil {
		return &Cart{Id: cartId}, nil
	}
	if err != nil {
		return nil, err
	}
	var cart Cart
	if err := jsonutil.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *RedisCartStorage) save(ctx context.Context, cart *Cart) error {
	cart.recalc()
	data, err := jsonutil.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(cart.Id), data, cartTtl).Err()
}

func (s *RedisCartStorage) GetCart(ctx context.Context, cartId string) (*Cart, error) {
	return s.load(ctx, cartId)
}

func (s *RedisCartStorage) AddItem(ctx context.Context, cartId string, item CartItem) (*Cart, error) {
	cart, err := s.load(ctx, cartId)
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductId == item.ProductId {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *RedisCartStorage) ChangeQuantity(ctx context.Context, cartId string, productId string, quantity uint) (*Cart, error) {
	cart, err := s.load(ctx, cartId)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ProductId == productId {
			cart.Items[i].Quantity = quantity
			if err := s.save(ctx, cart); err != nil {
				return nil, err
			}
			return cart, nil
		}
	}
	return nil, fmt.Errorf("cart %s has no item %s: %w", cartId, productId, ErrItemNotFound)
}

func (s *RedisCartStorage) RemoveItem(ctx context.Context, cartId string, productId string) (*Cart, error) {
	cart, err := s.load(ctx, cartId)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ProductId == productId {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			if err := s.save(ctx, cart); err != nil {
				return nil, err
			}
			return cart, nil
		}
	}
	return nil, fmt.Errorf("cart %s has no item %s: %w", cartId, productId, ErrItemNotFound)
}
