package schedule

import "github.com/sundial-labs/sundial-engine/pkg/models"

// resolvePass performs one conflict-resolution sweep over the slots and
// reports whether it moved anything. It is a pure function of its inputs:
// repeated calls converge or hit the caller's pass bound.
//
// For each pair of conflicting products sharing a slot, the pass tries to
// move the second product to a slot far enough away to honor the conflict's
// minimum gap, then the first product if the second has nowhere to go. A pair
// with no qualifying slot for either product stays put; the conflict remains
// visible in the caller's conflict list.
func resolvePass(slots []*candidateSlot, conflicts []models.Conflict) bool {
	changed := false
	for _, slot := range slots {
		for i := 0; i < len(slot.products); i++ {
			for j := i + 1; j < len(slot.products); j++ {
				c := findConflict(conflicts, slot.products[i].ID, slot.products[j].ID)
				if c == nil || c.TimeGapMinutes <= 0 {
					continue
				}
				if moveProduct(slots, slot, j, c.TimeGapMinutes) ||
					moveProduct(slots, slot, i, c.TimeGapMinutes) {
					changed = true
					// The slot's product list shifted under us; later
					// passes pick up any pair this one no longer sees.
					i, j = len(slot.products), len(slot.products)
				}
			}
		}
	}
	return changed
}

// findConflict returns the first conflict between the two products that
// requires a time gap, in either order.
func findConflict(conflicts []models.Conflict, a, b string) *models.Conflict {
	for i := range conflicts {
		if conflicts[i].References(a, b) && conflicts[i].TimeGapMinutes > 0 {
			return &conflicts[i]
		}
	}
	return nil
}

// moveProduct relocates the product at index idx of from into a slot at least
// gap minutes away. Among qualifying slots it prefers one matching the
// product's own food or empty-stomach requirement; candidate order is the
// fixed slot order so results are deterministic. Returns false when no slot
// qualifies.
func moveProduct(slots []*candidateSlot, from *candidateSlot, idx, gap int) bool {
	p := from.products[idx]
	wantsFood, wantsEmpty := needs(p.OptimalTiming)

	var fallback *candidateSlot
	var target *candidateSlot
	for _, s := range slots {
		if s == from || ClockDistance(s.minutes, from.minutes) < gap {
			continue
		}
		if (wantsFood && s.withFood) || (wantsEmpty && s.emptyStomach) {
			target = s
			break
		}
		if fallback == nil {
			fallback = s
		}
	}
	if target == nil {
		target = fallback
	}
	if target == nil {
		return false
	}

	from.products = append(from.products[:idx], from.products[idx+1:]...)
	target.products = append(target.products, p)
	return true
}
