package domain

import "sort"

// ListFilter allows filtering and sorting a catalog read
type ListFilter struct {
	ProductType string
	Vendor      string
	MinPrice    *float64
	MaxPrice    *float64
	SortBy      string // "title", "price", "variants"
	Order       string // "asc" or "desc"
}

// FilterProducts returns the products matching filter, sorted as requested.
// Without SortBy the catalog order is kept.
func FilterProducts(products []CatalogProduct, filter ListFilter) []CatalogProduct {
	out := make([]CatalogProduct, 0, len(products))
	for _, p := range products {
		if filter.ProductType != "" && p.ProductType != filter.ProductType {
			continue
		}
		if filter.Vendor != "" && p.Vendor != filter.Vendor {
			continue
		}
		if filter.MinPrice != nil && p.BasePrice < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.BasePrice > *filter.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	desc := filter.Order == "desc"
	switch filter.SortBy {
	case "title":
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Title > out[j].Title
			}
			return out[i].Title < out[j].Title
		})
	case "price":
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].BasePrice > out[j].BasePrice
			}
			return out[i].BasePrice < out[j].BasePrice
		})
	case "variants":
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return len(out[i].Variants) > len(out[j].Variants)
			}
			return len(out[i].Variants) < len(out[j].Variants)
		})
	}
	return out
}

// FindByHandle returns the product with the given handle
func FindByHandle(products []CatalogProduct, handle string) (CatalogProduct, error) {
	for _, p := range products {
		if p.Handle == handle {
			return p, nil
		}
	}
	return CatalogProduct{}, NewProductNotFoundError(handle)
}
