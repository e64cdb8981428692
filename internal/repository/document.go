package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/commerce-core/internal/domain"
)

// cartDocument is the persisted cart shape, shared by every backend. Only the
// cart lines are stored; transient UI state never reaches a repository.
type cartDocument struct {
	CartItems []domain.CartItem `json:"cartItems"`
}

func marshalDocument(cart domain.Cart) ([]byte, error) {
	raw, err := json.Marshal(cartDocument{CartItems: cart.Items})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}
	return raw, nil
}

func unmarshalDocument(raw []byte) (domain.Cart, error) {
	var doc cartDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Cart{}, fmt.Errorf("json.Unmarshal: %w", err)
	}
	return domain.Cart{Items: doc.CartItems}, nil
}
