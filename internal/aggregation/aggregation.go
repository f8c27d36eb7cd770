// Package aggregation rolls a flat set of budget items up into
// category-level groups for totals display and reporting. Aggregate is a
// pure function of its inputs and is recomputed in full on every call; the
// item sets involved are tens of entries, so no incremental update is kept.
package aggregation

import (
	"patrimoine/internal/models"
	"patrimoine/internal/taxonomy"
)

// Group is a category-level roll-up of budget items.
type Group struct {
	Label  string              `json:"label"`
	Items  []models.BudgetItem `json:"items"`
	Amount models.Amount       `json:"amount"`
}

// Result holds the per-category groups and the grand total across them.
type Result struct {
	Groups      []Group       `json:"groups"`
	TotalAmount models.Amount `json:"total_amount"`
}

// Aggregate groups items against a category table.
//
// Categories with no item carrying their label as type are dropped from the
// result. Within a retained category, items are collected by matching their
// name against the category's sub-entry values, so the category an item
// lands in is whichever category's items list contains that name. Amounts
// are summed as plain float64; items whose name appears in no category are
// silently excluded from every group and from the grand total.
func Aggregate(categories []taxonomy.Category, items []models.BudgetItem) Result {
	presentTypes := make(map[string]bool, len(items))
	for _, item := range items {
		presentTypes[item.Type] = true
	}

	result := Result{
		Groups:      []Group{},
		TotalAmount: models.Amount{Instrument: models.DefaultInstrument},
	}

	for _, category := range categories {
		if !presentTypes[category.Label] {
			continue
		}

		subValues := make(map[string]bool, len(category.Items))
		for _, sub := range category.Items {
			subValues[sub.Value] = true
		}

		group := Group{
			Label:  category.Label,
			Items:  []models.BudgetItem{},
			Amount: models.Amount{Instrument: models.DefaultInstrument},
		}
		for _, item := range items {
			if !subValues[item.Name] {
				continue
			}
			group.Items = append(group.Items, item)
			group.Amount.Value += item.Amount.Value
		}

		result.Groups = append(result.Groups, group)
		result.TotalAmount.Value += group.Amount.Value
	}

	return result
}
