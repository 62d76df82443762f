package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultOption is recorded when a list item was added without a size or color
const DefaultOption = "Default"

// ListItem is one product a squad member put on the shared shopping list
type ListItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	AddedBy   string  `json:"addedBy"`
}

// CostBreakdown is the squad list total and each member's share of it
type CostBreakdown struct {
	Total          decimal.Decimal
	PerParticipant map[string]decimal.Decimal
}

// NewListItem builds the list entry for choosing p with the given size and color
func NewListItem(p CatalogProduct, size, color, addedBy string) ListItem {
	item := ListItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     SelectedPrice(p, size, color),
		Size:      size,
		Color:     color,
		AddedBy:   addedBy,
	}
	if item.Size == "" {
		item.Size = DefaultOption
	}
	if item.Color == "" {
		item.Color = DefaultOption
	}
	return item
}

// SplitCost sums the list per participant
func SplitCost(items []ListItem) CostBreakdown {
	out := CostBreakdown{
		Total:          decimal.Zero,
		PerParticipant: make(map[string]decimal.Decimal),
	}
	for _, it := range items {
		price := decimal.NewFromFloat(it.Price)
		out.Total = out.Total.Add(price)
		out.PerParticipant[it.AddedBy] = out.PerParticipant[it.AddedBy].Add(price)
	}
	return out
}

// Participants returns the participant ids of b in sorted order
func (b CostBreakdown) Participants() []string {
	ids := make([]string, 0, len(b.PerParticipant))
	for id := range b.PerParticipant {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Share is id's percentage of the total, zero when the total is zero
func (b CostBreakdown) Share(id string) decimal.Decimal {
	if b.Total.IsZero() {
		return decimal.Zero
	}
	return b.PerParticipant[id].Div(b.Total).Mul(decimal.NewFromInt(100))
}
