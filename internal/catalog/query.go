package catalog

import (
	"sort"
	"strconv"

	"github.com/nikolayk812/commerce-core/internal/domain"
)

type SortOption string

const (
	SortNewest     SortOption = "newest"
	SortPopularity SortOption = "popularity"
	SortPriceAsc   SortOption = "priceAsc"
	SortPriceDesc  SortOption = "priceDesc"
)

// Filter selects products. Dimensions combine conjunctively; values within a
// dimension combine disjunctively. An empty slice leaves that dimension
// unconstrained.
type Filter struct {
	Types       []string
	Colors      []string
	Sizes       []string
	OnlyInStock bool
}

// Query returns a filtered, sorted view of the catalog. The input slice is
// never mutated; the result is always a fresh slice, empty when nothing
// matches. All sorts are stable: ties keep the catalog order.
func Query(products []domain.Product, filter Filter, sortBy SortOption) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, filter) {
			result = append(result, p)
		}
	}

	sortProducts(result, sortBy)
	return result
}

func matches(p domain.Product, f Filter) bool {
	if len(f.Types) > 0 && !contains(f.Types, p.Type) {
		return false
	}
	if len(f.Colors) > 0 && !hasColor(p, f.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !hasSize(p, f.Sizes) {
		return false
	}
	if f.OnlyInStock && !p.InStock() {
		return false
	}
	return true
}

func hasColor(p domain.Product, colors []string) bool {
	for _, variant := range p.Variants {
		if contains(colors, variant.Color) {
			return true
		}
	}
	return false
}

func hasSize(p domain.Product, sizes []string) bool {
	for _, variant := range p.Variants {
		for _, option := range variant.Sizes {
			if contains(sizes, option.Size) {
				return true
			}
		}
	}
	return false
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, sortBy SortOption) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().Amount.LessThan(products[j].EffectivePrice().Amount)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().Amount.GreaterThan(products[j].EffectivePrice().Amount)
		})
	case SortPopularity:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return idRecency(products[i].ID) > idRecency(products[j].ID)
		})
	}
}

// idRecency reads the trailing digit run of a product id as a recency proxy,
// e.g. "tee-12" -> 12. Ids without a numeric suffix sort as 0.
func idRecency(id string) int {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return 0
	}

	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return 0
	}
	return n
}
