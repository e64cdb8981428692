package pricing

import (
	"github.com/nikolayk812/commerce-core/internal/domain"
	"github.com/nikolayk812/commerce-core/internal/port"
	"github.com/shopspring/decimal"
)

// Breakdown is the derived cost of an order. All amounts share the subtotal's
// currency.
type Breakdown struct {
	Subtotal domain.Money
	Shipping domain.Money
	Tax      domain.Money
	Discount domain.Money
	Total    domain.Money

	// PromoApplied reports whether the supplied code resolved to a discount.
	// A false value with a non-empty code means the code was rejected.
	PromoApplied bool
}

// Calculator derives a Breakdown from a subtotal and an optional promo code.
// Quote is a pure function: the calculator holds only fixed configuration.
type Calculator struct {
	shippingFee domain.Money
	taxRate     decimal.Decimal
	promos      port.PromoValidator
}

func NewCalculator(shippingFee domain.Money, taxRate decimal.Decimal, promos port.PromoValidator) Calculator {
	return Calculator{
		shippingFee: shippingFee,
		taxRate:     taxRate,
		promos:      promos,
	}
}

// Quote computes the cost breakdown. Rules:
//   - a zero subtotal ships free, there is nothing to ship
//   - tax applies to the pre-discount subtotal
//   - an unknown or empty promo code means zero discount, not an error
//   - the total is floored at zero
func (c Calculator) Quote(subtotal domain.Money, promoCode string) Breakdown {
	zero := subtotal.Zero()

	shipping := c.shippingFee
	if subtotal.IsZero() {
		shipping = zero
	}

	tax := subtotal.Mul(c.taxRate)

	discount := zero
	applied := false
	if promoCode != "" && c.promos != nil {
		if rate, ok := c.promos.Rate(promoCode); ok {
			discount = subtotal.Mul(rate)
			applied = true
		}
	}

	total := subtotal.Add(shipping).Add(tax).Sub(discount)
	if total.IsNegative() {
		total = zero
	}

	return Breakdown{
		Subtotal:     subtotal,
		Shipping:     shipping,
		Tax:          tax,
		Discount:     discount,
		Total:        total,
		PromoApplied: applied,
	}
}
