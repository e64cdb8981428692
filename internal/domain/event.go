package domain

// Event is a typed notification emitted by cart mutations. The UI layer
// subscribes through a sink and renders Message as a toast; the core never
// consumes a return value.
type Event interface {
	Message() string
}

// ItemAdded is emitted by both fresh additions and merges into an existing
// line; Merged distinguishes the two.
type ItemAdded struct {
	Item   CartItem
	Merged bool
}

func (e ItemAdded) Message() string {
	if e.Merged {
		return e.Item.Name + " updated in cart"
	}
	return e.Item.Name + " added to cart"
}

type ItemRemoved struct {
	Item CartItem
}

func (e ItemRemoved) Message() string {
	return e.Item.Name + " removed from cart"
}

type CartCleared struct{}

func (e CartCleared) Message() string {
	return "Cart cleared"
}
