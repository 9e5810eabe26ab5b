package inventory

import (
	"sort"

	"github.com/NIRESH7/garments-backend/internal/models"
)

// consumedFloor marks a set as fully consumed once its remaining weight drops
// to or below it.
const consumedFloor = 0.01

type BalancedSet struct {
	SetNo  int     `json:"set_no"`
	Colour string  `json:"colour"`
	Weight float64 `json:"weight"`
}

// LotsForDiameter lists lot numbers that received the given diameter, oldest
// receipt first, de-duplicated preserving first-seen order. This ordering is
// the basis for first-in-first-out allocation.
func LotsForDiameter(inwards []models.InwardReceipt, dia string) []string {
	sorted := make([]models.InwardReceipt, len(inwards))
	copy(sorted, inwards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InwardDate.Before(sorted[j].InwardDate)
	})

	seen := make(map[string]bool)
	lots := make([]string, 0)
	for i := range sorted {
		if !sorted[i].HasDia(dia) {
			continue
		}
		if seen[sorted[i].LotNo] {
			continue
		}
		seen[sorted[i].LotNo] = true
		lots = append(lots, sorted[i].LotNo)
	}
	return lots
}

// BalancedSets expands the storage breakdown of every receipt for (lotNo, dia)
// into per-position sets, subtracts matched outward consumption, and returns
// the sets that still carry weight.
//
// Matching is by (set_no, colour) value equality, colour case-sensitive: an
// outward line whose pair has no inward counterpart depletes nothing. That is
// the documented behavior, not a defect.
func BalancedSets(inwards []models.InwardReceipt, outwards []models.OutwardDispatch, lotNo, dia string) []BalancedSet {
	sets := make([]BalancedSet, 0)
	for i := range inwards {
		receipt := &inwards[i]
		if receipt.LotNo != lotNo || !receipt.HasDia(dia) {
			continue
		}
		for _, detail := range receipt.StorageDetails {
			if detail.Dia != dia {
				continue
			}
			for _, row := range detail.Rows {
				for idx, wt := range row.SetWeights {
					sets = append(sets, BalancedSet{
						SetNo:  idx + 1,
						Colour: row.Colour,
						Weight: float64(wt),
					})
				}
			}
		}
	}

	for i := range outwards {
		dispatch := &outwards[i]
		if dispatch.LotNo != lotNo || dispatch.Dia != dia {
			continue
		}
		for _, item := range dispatch.Items {
			for _, line := range item.Lines() {
				for s := range sets {
					if sets[s].SetNo == line.SetNo && sets[s].Colour == line.Colour {
						sets[s].Weight -= line.Weight
						break
					}
				}
			}
		}
	}

	balanced := make([]BalancedSet, 0, len(sets))
	for _, set := range sets {
		if set.Weight > consumedFloor {
			balanced = append(balanced, set)
		}
	}
	return balanced
}
