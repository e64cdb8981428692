package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/nikolayk812/commerce-core/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func usd(amount string) domain.Money {
	return domain.Money{
		Amount:   decimal.RequireFromString(amount),
		Currency: currency.USD,
	}
}

func TestCartItem_EffectivePrice(t *testing.T) {
	item := domain.CartItem{Price: usd("40")}
	assert.True(t, item.EffectivePrice().Amount.Equal(decimal.RequireFromString("40")))

	discount := usd("30")
	item.DiscountPrice = &discount
	assert.True(t, item.EffectivePrice().Amount.Equal(decimal.RequireFromString("30")))
}

func TestCartItem_LineTotal(t *testing.T) {
	discount := usd("12.50")
	item := domain.CartItem{
		Price:         usd("20"),
		DiscountPrice: &discount,
		Quantity:      3,
	}

	assert.True(t, item.LineTotal().Amount.Equal(decimal.RequireFromString("37.5")))
}

func TestCart_Subtotal(t *testing.T) {
	discount := usd("30")

	tests := []struct {
		name  string
		items []domain.CartItem
		want  string
	}{
		{
			name: "empty cart",
			want: "0",
		},
		{
			name: "single line",
			items: []domain.CartItem{
				{Price: usd("40"), Quantity: 3},
			},
			want: "120",
		},
		{
			name: "mixed list and discount prices",
			items: []domain.CartItem{
				{Price: usd("40"), DiscountPrice: &discount, Quantity: 2},
				{Price: usd("19.99"), Quantity: 1},
			},
			want: "79.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Cart{Items: tt.items}.Subtotal()

			assert.True(t, got.Amount.Equal(decimal.RequireFromString(tt.want)),
				"subtotal %s, want %s", got.Amount, tt.want)
		})
	}
}

func TestMoney_JSON(t *testing.T) {
	raw, err := json.Marshal(usd("19.99"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"19.99","currency":"USD"}`, string(raw))

	var decoded domain.Money
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Amount.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, "USD", decoded.Currency.String())
}

func TestMoney_UnmarshalRejectsUnknownCurrency(t *testing.T) {
	var decoded domain.Money
	err := json.Unmarshal([]byte(`{"amount":"1","currency":"ZZZ"}`), &decoded)
	require.Error(t, err)
}
