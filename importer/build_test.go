package importer

import (
	"reflect"
	"testing"

	"squad_catalog/domain"
)

func mustBuild(t *testing.T, raw []byte) []domain.CatalogProduct {
	t.Helper()
	rows, err := ParseRows(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return Build(rows)
}

func TestBuild_GroupingKeepsFirstRowMetadata(t *testing.T) {
	products := mustBuild(t, csvOf(
		"tee,Classic Tee,<p>soft</p>,Acme,Shirts,\" summer , cotton,, \",true,,,Size,S,,,,,20,1",
		"tee,Renamed Tee,,Other,Hats,x,false,,,Size,M,,,,,25,1",
		"cap,Cap,,,,,,,,Size,M,,,,,5,1",
	))

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	p := products[0]
	if p.Handle != "tee" || p.Title != "Classic Tee" || p.Vendor != "Acme" || p.ProductType != "Shirts" {
		t.Fatalf("first-row metadata not kept: %+v", p)
	}
	if p.Body != "<p>soft</p>" {
		t.Fatalf("unexpected body %q", p.Body)
	}
	if !reflect.DeepEqual(p.Tags, []string{"summer", "cotton"}) {
		t.Fatalf("unexpected tags %v", p.Tags)
	}
	if !p.Published {
		t.Fatalf("expected published")
	}
	if products[1].Handle != "cap" {
		t.Fatalf("expected first-seen handle order, got %s", products[1].Handle)
	}
	if p.ID == "" || p.ID == products[1].ID {
		t.Fatalf("expected distinct generated ids")
	}
}

func TestBuild_PublishedIsStrict(t *testing.T) {
	for _, v := range []string{"TRUE", "True", "1", "yes", " true"} {
		products := mustBuild(t, csvOf("tee,Tee,,,,,\""+v+"\",,,,,,,,,,"))
		if products[0].Published {
			t.Fatalf("Published=%q should be false", v)
		}
	}
}

func TestBuild_RowsWithoutHandleOrTitle(t *testing.T) {
	products := mustBuild(t, csvOf(
		",Orphan,,,,,,,,Size,M,,,,,10,1",
		"notitle,,,,,,,,,Size,M,,,,,10,1",
		"tee,Tee,,,,,,,,Size,M,,,,,10,1",
		"tee,,,,,,,https://img/2.jpg,,Size,L,,,,,8,1",
	))
	if len(products) != 1 {
		t.Fatalf("expected only tee, got %d products", len(products))
	}
	p := products[0]
	if len(p.Variants) != 2 || p.BasePrice != 8 {
		t.Fatalf("title-less row for known handle should still attach: %+v", p)
	}
	if !reflect.DeepEqual(p.Images, []string{"https://img/2.jpg"}) {
		t.Fatalf("unexpected images %v", p.Images)
	}
}

func TestBuild_VariantAcceptance(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantCount int
	}{
		{"zero price", "tee,Tee,,,,,,,,Size,M,,,,,0,1", 0},
		{"negative price", "tee,Tee,,,,,,,,Size,M,,,,,-5,1", 0},
		{"missing price", "tee,Tee,,,,,,,,Size,M,,,,,,1", 0},
		{"no option values", "tee,Tee,,,,,,,,Size,,Color,,Material,,10,1", 0},
		{"option3 only", "tee,Tee,,,,,,,,,,,,Material,Wool,10,1", 1},
		{"option2 only", "tee,Tee,,,,,,,,,,Color,Red,,,10,1", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustBuild(t, csvOf(tt.line))[0]
			if len(p.Variants) != tt.wantCount {
				t.Fatalf("expected %d variants, got %d", tt.wantCount, len(p.Variants))
			}
			if tt.wantCount == 0 && p.BasePrice != 0 {
				t.Fatalf("expected base price 0 without variants, got %v", p.BasePrice)
			}
		})
	}
}

func TestBuild_BasePriceIsMinimum(t *testing.T) {
	p := mustBuild(t, csvOf(
		"tee,Tee,,,,,,,,Size,S,,,,,30,1",
		"tee,Tee,,,,,,,,Size,M,,,,,12.5,1",
		"tee,Tee,,,,,,,,Size,L,,,,,18,1",
		"tee,Tee,,,,,,,,,,,,,,1,1",
	))[0]
	if len(p.Variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(p.Variants))
	}
	if p.BasePrice != 12.5 {
		t.Fatalf("expected base price 12.5, got %v", p.BasePrice)
	}
}

func TestBuild_ProductWithOnlyImages(t *testing.T) {
	p := mustBuild(t, csvOf(
		"tee,Tee,,,,,,https://img/1.jpg,,Size,S,,,,,0,1",
		"tee,Tee,,,,,,https://img/2.jpg,,Size,M,,,,,-1,1",
	))[0]
	if len(p.Variants) != 0 || p.BasePrice != 0 {
		t.Fatalf("expected no variants and base price 0, got %+v", p)
	}
	if p.Variants == nil {
		t.Fatalf("variants should be an empty sequence, not nil")
	}
	if !reflect.DeepEqual(p.Images, []string{"https://img/1.jpg", "https://img/2.jpg"}) {
		t.Fatalf("unexpected images %v", p.Images)
	}
}

func TestBuild_ImageDedup(t *testing.T) {
	p := mustBuild(t, csvOf(
		"tee,Tee,,,,,,https://img/a.jpg,,Size,S,,,,,10,1",
		"tee,Tee,,,,,, https://img/a.jpg ,,Size,M,,,,,10,1",
		"tee,Tee,,,,,,https://img/b.jpg,,Size,L,,,,,10,1",
		"tee,Tee,,,,,,https://img/a.jpg,,Size,XL,,,,,10,1",
	))[0]
	if !reflect.DeepEqual(p.Images, []string{"https://img/a.jpg", "https://img/b.jpg"}) {
		t.Fatalf("unexpected images %v", p.Images)
	}
	if p.Variants[1].ImageSrc == nil || *p.Variants[1].ImageSrc != "https://img/a.jpg" {
		t.Fatalf("variant image should be set independently of product images")
	}
}

func TestBuild_SizeColorInference(t *testing.T) {
	tests := []struct {
		name      string
		options   string
		wantSize  string
		wantColor string
	}{
		{"size", "Size,M,,,,", "M", ""},
		{"colour", "Colour,Red,,,,", "", "Red"},
		{"color lower-cased", "PRIMARY COLOR,Blue,,,,", "", "Blue"},
		{"material ignored", "Material,Wool,,,,", "", ""},
		{"later slot wins", "Size,M,Size,L,,", "L", ""},
		{"both", "Color,Green,Shoe Size,42,,", "42", "Green"},
		{"third slot", "Material,Cotton,,,Size,XS", "XS", ""},
		{"name without value", "Size,,Color,Black,,", "", "Black"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustBuild(t, csvOf("tee,Tee,,,,,,,,"+tt.options+",10,1"))[0]
			if len(p.Variants) != 1 {
				t.Fatalf("expected 1 variant, got %d", len(p.Variants))
			}
			v := p.Variants[0]
			if got := deref(v.Size); got != tt.wantSize {
				t.Fatalf("expected size %q, got %q", tt.wantSize, got)
			}
			if got := deref(v.Color); got != tt.wantColor {
				t.Fatalf("expected color %q, got %q", tt.wantColor, got)
			}
			if tt.wantSize == "" && v.Size != nil {
				t.Fatalf("size should be nil when not inferred")
			}
		})
	}
}

func TestBuild_VariantFields(t *testing.T) {
	p := mustBuild(t, csvOf(
		"tee,Tee,,,,,,https://img/1.jpg,TEE-S,Size,S,Color,Red,,,19.99,7",
		"tee,Tee,,,,,,,,Size,M,,,,,21,-4",
	))[0]
	v := p.Variants[0]
	if v.ID != "TEE-S" || v.SKU != "TEE-S" {
		t.Fatalf("sku should be the variant id: %+v", v)
	}
	if v.Price != 19.99 || v.InventoryQuantity != 7 {
		t.Fatalf("unexpected price/qty: %v/%d", v.Price, v.InventoryQuantity)
	}
	if v.Option3Name != nil || v.Option3Value != nil {
		t.Fatalf("option 3 should be nil when absent")
	}
	if v.ImageSrc == nil || *v.ImageSrc != "https://img/1.jpg" {
		t.Fatalf("unexpected image src %v", v.ImageSrc)
	}

	w := p.Variants[1]
	if w.SKU != "" || w.ID == "" {
		t.Fatalf("blank sku should get a generated id: %+v", w)
	}
	if w.ImageSrc != nil {
		t.Fatalf("image src should be nil when blank")
	}
	if w.InventoryQuantity != 0 {
		t.Fatalf("negative quantity should clamp to 0, got %d", w.InventoryQuantity)
	}
}

func TestParsePriceAndQuantity(t *testing.T) {
	prices := map[string]float64{
		"20.00": 20, " 7.5 ": 7.5, "N/A": 0, "": 0, "NaN": 0, "Inf": 0, "-3": -3,
		"20.00 USD": 20, "1,299.00": 1, ".5": 0.5, "5.": 5, "1.5e2": 150, "2e": 2, "3e+x": 3,
		"$20": 0, "-": 0, ".": 0, "1e999": 0,
	}
	for in, want := range prices {
		if got := parsePrice(in); got != want {
			t.Errorf("parsePrice(%q) = %v, want %v", in, got, want)
		}
	}

	qtys := map[string]int{"12": 12, "5.7": 5, "12 pcs": 12, "abc": 0, "": 0, "-2": 0, "+3": 3}
	for in, want := range qtys {
		if got := parseQuantity(in); got != want {
			t.Errorf("parseQuantity(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestBuild_PriceWithTrailingText(t *testing.T) {
	p := mustBuild(t, csvOf(
		"tee,Tee,,,,,,,,Size,S,,,,,20.00 USD,1",
		"tee,Tee,,,,,,,,Size,L,,,,,\"1,299.00\",1",
	))[0]
	if len(p.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(p.Variants))
	}
	if p.Variants[0].Price != 20 || p.Variants[1].Price != 1 {
		t.Fatalf("unexpected prices %v, %v", p.Variants[0].Price, p.Variants[1].Price)
	}
	if p.BasePrice != 1 {
		t.Fatalf("expected base price 1, got %v", p.BasePrice)
	}
}

func TestParseRows(t *testing.T) {
	t.Run("BOM, blank lines and short rows", func(t *testing.T) {
		rows, err := ParseRows([]byte("\ufeffHandle,Title,Vendor\n\ntee,\"Tee, Classic\"\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0]["Handle"] != "tee" || rows[0]["Title"] != "Tee, Classic" || rows[0]["Vendor"] != "" {
			t.Fatalf("unexpected row %v", rows[0])
		}
	})

	t.Run("header only", func(t *testing.T) {
		rows, err := ParseRows([]byte("Handle,Title\n"))
		if err != nil || len(rows) != 0 {
			t.Fatalf("expected no rows and no error, got %d, %v", len(rows), err)
		}
	})

	t.Run("bare quote", func(t *testing.T) {
		_, err := ParseRows([]byte("Handle,Title\nte\"e,Tee\n"))
		if !domain.IsParseFailure(err) {
			t.Fatalf("expected ParseFailure, got %v", err)
		}
	})
}

func TestSummarize(t *testing.T) {
	s := Summarize([]domain.CatalogProduct{
		{Variants: make([]domain.Variant, 2)},
		{Variants: nil},
		{Variants: make([]domain.Variant, 3)},
	})
	if s.ProductCount != 3 || s.VariantCount != 5 {
		t.Fatalf("unexpected summary %+v", s)
	}
}
