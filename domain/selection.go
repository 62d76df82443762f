package domain

// VariantOptions returns the distinct sizes and colors offered by p, in variant order
func VariantOptions(p CatalogProduct) (sizes, colors []string) {
	seenSize := make(map[string]bool)
	seenColor := make(map[string]bool)
	for _, v := range p.Variants {
		if v.Size != nil && *v.Size != "" && !seenSize[*v.Size] {
			seenSize[*v.Size] = true
			sizes = append(sizes, *v.Size)
		}
		if v.Color != nil && *v.Color != "" && !seenColor[*v.Color] {
			seenColor[*v.Color] = true
			colors = append(colors, *v.Color)
		}
	}
	return sizes, colors
}

// SelectVariant returns the first variant matching size and color.
// An empty selector matches any value.
func SelectVariant(p CatalogProduct, size, color string) (Variant, bool) {
	for _, v := range p.Variants {
		if size != "" && (v.Size == nil || *v.Size != size) {
			continue
		}
		if color != "" && (v.Color == nil || *v.Color != color) {
			continue
		}
		return v, true
	}
	return Variant{}, false
}

// SelectedPrice is the price of the selected variant, or the base price when none matches
func SelectedPrice(p CatalogProduct, size, color string) float64 {
	if v, ok := SelectVariant(p, size, color); ok && v.Price > 0 {
		return v.Price
	}
	return p.BasePrice
}
