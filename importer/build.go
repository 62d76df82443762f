package importer

import (
	"math"
	"strconv"
	"strings"

	"squad_catalog/domain"
	"squad_catalog/util"
)

// Recognized export columns. Names are case-sensitive.
const (
	colHandle       = "Handle"
	colTitle        = "Title"
	colBody         = "Body (HTML)"
	colVendor       = "Vendor"
	colProductType  = "Product Type"
	colTags         = "Tags"
	colPublished    = "Published"
	colImageSrc     = "Image Src"
	colVariantSKU   = "Variant SKU"
	colOption1Name  = "Option1 Name"
	colOption1Value = "Option1 Value"
	colOption2Name  = "Option2 Name"
	colOption2Value = "Option2 Value"
	colOption3Name  = "Option3 Name"
	colOption3Value = "Option3 Value"
	colVariantPrice = "Variant Price"
	colInventoryQty = "Variant Inventory Qty"
)

// productBuilder accumulates one product while rows are processed.
// minPrice stays nil until a variant is accepted.
type productBuilder struct {
	product  domain.CatalogProduct
	images   map[string]bool
	minPrice *float64
}

// Build normalizes rows into products in first-seen handle order.
// It never fails: rows that cannot contribute are skipped or defaulted.
func Build(rows []Row) []domain.CatalogProduct {
	builders, order := groupProducts(rows)
	enrichProducts(rows, builders)
	return finalizeProducts(builders, order)
}

// Summarize counts products and accepted variants
func Summarize(products []domain.CatalogProduct) domain.ImportSummary {
	s := domain.ImportSummary{ProductCount: len(products)}
	for _, p := range products {
		s.VariantCount += len(p.Variants)
	}
	return s
}

// groupProducts creates one shell per handle from the first row carrying both handle and title
func groupProducts(rows []Row) (map[string]*productBuilder, []string) {
	builders := make(map[string]*productBuilder)
	var order []string
	for _, row := range rows {
		handle := row[colHandle]
		if handle == "" || row[colTitle] == "" {
			continue
		}
		if _, ok := builders[handle]; ok {
			continue
		}
		builders[handle] = &productBuilder{
			product: domain.CatalogProduct{
				ID:          util.NewID(),
				Handle:      handle,
				Title:       row[colTitle],
				Body:        row[colBody],
				Vendor:      row[colVendor],
				ProductType: row[colProductType],
				Tags:        parseTags(row[colTags]),
				Published:   row[colPublished] == "true",
				Variants:    []domain.Variant{},
				Images:      []string{},
			},
			images: make(map[string]bool),
		}
		order = append(order, handle)
	}
	return builders, order
}

// enrichProducts attaches images and variants to the shells built by groupProducts
func enrichProducts(rows []Row, builders map[string]*productBuilder) {
	for _, row := range rows {
		handle := row[colHandle]
		if handle == "" {
			continue
		}
		b, ok := builders[handle]
		if !ok {
			continue
		}

		imageSrc := strings.TrimSpace(row[colImageSrc])
		if imageSrc != "" {
			b.addImage(imageSrc)
		}

		price := parsePrice(row[colVariantPrice])
		if price <= 0 {
			continue
		}

		v := newVariant(row, price, imageSrc)
		inferAttributes(&v)
		if !hasOptionValue(v) {
			continue
		}
		b.addVariant(v)
	}
}

func finalizeProducts(builders map[string]*productBuilder, order []string) []domain.CatalogProduct {
	products := make([]domain.CatalogProduct, 0, len(order))
	for _, handle := range order {
		b := builders[handle]
		p := b.product
		if b.minPrice != nil {
			p.BasePrice = *b.minPrice
		} else {
			p.BasePrice = 0
		}
		products = append(products, p)
	}
	return products
}

func (b *productBuilder) addImage(src string) {
	if b.images[src] {
		return
	}
	b.images[src] = true
	b.product.Images = append(b.product.Images, src)
}

func (b *productBuilder) addVariant(v domain.Variant) {
	b.product.Variants = append(b.product.Variants, v)
	if b.minPrice == nil || v.Price < *b.minPrice {
		price := v.Price
		b.minPrice = &price
	}
}

func newVariant(row Row, price float64, imageSrc string) domain.Variant {
	sku := row[colVariantSKU]
	id := sku
	if id == "" {
		id = util.NewID()
	}
	return domain.Variant{
		ID:                id,
		SKU:               sku,
		Option1Name:       row[colOption1Name],
		Option1Value:      row[colOption1Value],
		Option2Name:       row[colOption2Name],
		Option2Value:      row[colOption2Value],
		Option3Name:       optional(row[colOption3Name]),
		Option3Value:      optional(row[colOption3Value]),
		Price:             price,
		InventoryQuantity: parseQuantity(row[colInventoryQty]),
		ImageSrc:          optional(imageSrc),
	}
}

// inferAttributes sets Size and Color from option names. Slots are read in
// order 1, 2, 3 and a later matching slot overwrites an earlier one.
func inferAttributes(v *domain.Variant) {
	options := [3][2]string{
		{v.Option1Name, v.Option1Value},
		{v.Option2Name, v.Option2Value},
		{deref(v.Option3Name), deref(v.Option3Value)},
	}
	for _, opt := range options {
		name, value := opt[0], opt[1]
		if name == "" || value == "" {
			continue
		}
		lower := strings.ToLower(name)
		switch {
		case strings.Contains(lower, "size"):
			v.Size = &value
		case strings.Contains(lower, "color"), strings.Contains(lower, "colour"):
			v.Color = &value
		}
	}
}

func hasOptionValue(v domain.Variant) bool {
	return v.Option1Value != "" || v.Option2Value != "" || deref(v.Option3Value) != ""
}

// parsePrice reads the longest leading decimal number of s, so "20.00 USD" is 20
// and "1,299.00" is 1. No leading number, or a non-finite one, is 0.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '-' || s[exp] == '+') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseQuantity reads the leading integer of s, so "12 pcs" is 12 and "abc" is 0.
// Negative stock is clamped to 0.
func parseQuantity(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
