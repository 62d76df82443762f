package store

import (
	"context"
	"testing"

	"squad_catalog/domain"
)

func strPtr(s string) *string { return &s }

func catalogOf(handles ...string) []domain.CatalogProduct {
	out := make([]domain.CatalogProduct, 0, len(handles))
	for _, h := range handles {
		out = append(out, domain.CatalogProduct{
			ID:        "id-" + h,
			Handle:    h,
			Title:     h,
			Tags:      []string{},
			Images:    []string{"https://img/" + h + ".jpg"},
			BasePrice: 10,
			Variants: []domain.Variant{{
				ID: "v-" + h, Option1Name: "Size", Option1Value: "M",
				Price: 10, Size: strPtr("M"),
			}},
		})
	}
	return out
}

func handlesOf(products []domain.CatalogProduct) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Handle)
	}
	return out
}

// runStoreContract checks the replace-all semantics every backend must honor
func runStoreContract(t *testing.T, s domain.CatalogStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty read", func(t *testing.T) {
		if err := s.DeleteCatalog(ctx); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		out, err := s.ReadCatalog(ctx)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected empty catalog, got %d", len(out))
		}
	})

	t.Run("replace drops previous products", func(t *testing.T) {
		if err := s.ReplaceCatalog(ctx, catalogOf("a1", "a2")); err != nil {
			t.Fatalf("replace A failed: %v", err)
		}
		if err := s.ReplaceCatalog(ctx, catalogOf("b1", "b2", "b3")); err != nil {
			t.Fatalf("replace B failed: %v", err)
		}
		out, err := s.ReadCatalog(ctx)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		got := handlesOf(out)
		want := []string{"b1", "b2", "b3"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("nullable fields survive", func(t *testing.T) {
		out, _ := s.ReadCatalog(ctx)
		v := out[0].Variants[0]
		if v.Size == nil || *v.Size != "M" {
			t.Fatalf("size lost: %+v", v)
		}
		if v.Color != nil || v.Option3Name != nil || v.ImageSrc != nil {
			t.Fatalf("nil fields should stay nil: %+v", v)
		}
	})

	t.Run("delete clears catalog", func(t *testing.T) {
		if err := s.DeleteCatalog(ctx); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		out, err := s.ReadCatalog(ctx)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected empty catalog after delete, got %d", len(out))
		}
	})
}
