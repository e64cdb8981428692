package port

import (
	"github.com/shopspring/decimal"
)

// PromoValidator resolves a user-supplied promo code to a fractional discount
// rate. Lookup is case-insensitive; unknown codes yield (0, false) rather than
// an error.
type PromoValidator interface {
	Rate(code string) (decimal.Decimal, bool)
}
