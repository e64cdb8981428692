package domain

// Product is a read-only catalog record; the core never writes it back.
type Product struct {
	ID   string
	Type string
	Name string

	Price         Money
	DiscountPrice *Money
	Rating        float64

	Variants []Variant
}

type Variant struct {
	Color string
	Sizes []SizeOption
}

type SizeOption struct {
	Size    string
	InStock bool
}

func (p Product) EffectivePrice() Money {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// InStock reports whether any variant offers at least one size in stock.
func (p Product) InStock() bool {
	for _, variant := range p.Variants {
		for _, size := range variant.Sizes {
			if size.InStock {
				return true
			}
		}
	}
	return false
}
