package pricing

import (
	"strings"

	"github.com/nikolayk812/commerce-core/internal/port"
	"github.com/shopspring/decimal"
)

// Table is a fixed promo code table mapping codes to fractional discount
// rates. Lookup is case-insensitive and idempotent; the table never changes
// after construction.
type Table struct {
	rates map[string]decimal.Decimal
}

var _ port.PromoValidator = (*Table)(nil)

func NewTable(rates map[string]decimal.Decimal) *Table {
	normalized := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		normalized[normalizeCode(code)] = rate
	}
	return &Table{rates: normalized}
}

// DefaultTable holds the built-in storefront codes.
func DefaultTable() *Table {
	return NewTable(map[string]decimal.Decimal{
		"SAVE10": decimal.NewFromFloat(0.10),
	})
}

// Rate resolves a code to its discount rate. Unknown codes yield (0, false);
// the caller is expected to surface the rejection to the user.
func (t *Table) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := t.rates[normalizeCode(code)]
	if !ok {
		return decimal.Zero, false
	}
	return rate, true
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
