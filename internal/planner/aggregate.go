package planner

import "github.com/gradius/bitplanner/internal/domain"

// mergeMaterials folds incoming base materials into existing, summing
// amounts for items already present and appending new items in first-seen
// order. Entries are never removed and amounts never decrease.
func mergeMaterials(existing, incoming []domain.BaseMaterial) []domain.BaseMaterial {
	for _, m := range incoming {
		merged := false
		for i := range existing {
			if existing[i].ItemID == m.ItemID {
				existing[i].Amount += m.Amount
				merged = true
				break
			}
		}
		if !merged {
			existing = append(existing, m)
		}
	}
	return existing
}
