package domain

import (
	"github.com/google/uuid"
)

// LineKey identifies the cart line an item belongs to. Two items with equal
// keys merge into a single line instead of creating duplicates.
type LineKey struct {
	ProductID string
	VariantID string
	Size      string
}

type CartItem struct {
	ID        uuid.UUID `json:"id"`
	ProductID string    `json:"productId"`
	VariantID string    `json:"variantId"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`

	Price         Money  `json:"price"`
	DiscountPrice *Money `json:"discountPrice,omitempty"`
	Quantity      int    `json:"quantity"`
}

func (i CartItem) Key() LineKey {
	return LineKey{
		ProductID: i.ProductID,
		VariantID: i.VariantID,
		Size:      i.Size,
	}
}

// EffectivePrice is the discount price when present, else the list price.
func (i CartItem) EffectivePrice() Money {
	if i.DiscountPrice != nil {
		return *i.DiscountPrice
	}
	return i.Price
}

func (i CartItem) LineTotal() Money {
	return i.EffectivePrice().MulInt(int64(i.Quantity))
}

// Cart holds the ordered cart lines; insertion order is display order.
// Invariants: no two items share a LineKey, every quantity is >= 1.
type Cart struct {
	Items []CartItem
}

// Subtotal sums effective price times quantity over all lines. The returned
// currency is taken from the first line; an empty cart yields a zero Money.
func (c Cart) Subtotal() Money {
	if len(c.Items) == 0 {
		return Money{}
	}

	subtotal := c.Items[0].Price.Zero()
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return subtotal
}
