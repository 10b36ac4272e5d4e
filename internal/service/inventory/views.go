package inventory

import (
	"sort"
	"strings"

	"github.com/mbodj/frigo/internal/domain/models"
)

// InStock projects the items currently in the fridge: quantity above zero,
// sorted descending by quantity. The sort is stable so items with equal
// quantities keep their relative insertion order.
func InStock(items []models.Item) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if it.Qty > 0 {
			out = append(out, it)
		}
	}
	sortByQuantityDesc(out)
	return out
}

// SearchMatch projects the items whose name contains the query,
// case-insensitively, after trimming. An empty query matches everything.
// Unlike InStock, zero-quantity items stay visible here.
func SearchMatch(items []models.Item, query string) []models.Item {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if q == "" || strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	sortByQuantityDesc(out)
	return out
}

func sortByQuantityDesc(items []models.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Qty > items[j].Qty
	})
}
