// Package inventory is the reconciliation and reporting engine: pure folds
// over the full inward/outward record sets. Nothing here touches the database
// or caches results; every report recomputes from the records it is handed.
package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/NIRESH7/garments-backend/internal/models"
)

// completionTolerance absorbs floating-point accumulation when deciding
// whether a lot is fully dispatched. It is not a business unit.
const completionTolerance = 0.1

type StockBalance struct {
	LotNumber     string  `json:"lot_number"`
	LotName       string  `json:"lot_name"`
	PartyName     string  `json:"party_name"`
	RecRolls      int     `json:"rec_rolls"`
	RecWeight     float64 `json:"rec_weight"`
	DelivRolls    int     `json:"deliv_rolls"`
	DelivWeight   float64 `json:"deliv_weight"`
	BalanceRolls  int     `json:"balance_rolls"`
	BalanceWeight float64 `json:"balance_weight"`
	Status        string  `json:"status"` // Pending or Completed
}

type InOutTotal struct {
	LotNumber string  `json:"lot_number"`
	PartyName string  `json:"party_name"`
	InRolls   int     `json:"in_rolls"`
	InWeight  float64 `json:"in_weight"`
	OutRolls  int     `json:"out_rolls"`
	OutWeight float64 `json:"out_weight"`
}

type OverviewFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	LotNo     string
	LotName   string
	Status    string // "", "All", "Pending" or "Completed"
}

// lotTotals is the shared per-lot accumulator behind both the overview and the
// inward-vs-outward report.
type lotTotals struct {
	lotNumber   string
	lotName     string
	partyName   string
	recRolls    int
	recWeight   float64
	delivRolls  int
	delivWeight float64
}

// foldLotTotals groups receipts by lot number in inward-date order, sums the
// received quantities, then adds delivered quantities for every dispatch whose
// lot survived the receipt-level filter. Dispatches against filtered-out lots
// are dropped: the filter scopes the inward side only.
func foldLotTotals(inwards []models.InwardReceipt, outwards []models.OutwardDispatch, accept func(*models.InwardReceipt) bool) []*lotTotals {
	sorted := make([]models.InwardReceipt, len(inwards))
	copy(sorted, inwards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InwardDate.Before(sorted[j].InwardDate)
	})

	byLot := make(map[string]*lotTotals)
	var order []*lotTotals

	for i := range sorted {
		receipt := &sorted[i]
		if accept != nil && !accept(receipt) {
			continue
		}
		totals, ok := byLot[receipt.LotNo]
		if !ok {
			totals = &lotTotals{
				lotNumber: receipt.LotNo,
				lotName:   receipt.LotName,
				partyName: receipt.FromParty,
			}
			byLot[receipt.LotNo] = totals
			order = append(order, totals)
		}
		totals.recRolls += receipt.TotalRecRolls()
		totals.recWeight += receipt.TotalRecWt()
	}

	for i := range outwards {
		dispatch := &outwards[i]
		totals, ok := byLot[dispatch.LotNo]
		if !ok {
			continue
		}
		totals.delivRolls += dispatch.DeliveredRolls()
		totals.delivWeight += dispatch.DeliveredWeight()
	}

	return order
}

// OverviewReport reconciles received against delivered quantities per lot.
func OverviewReport(inwards []models.InwardReceipt, outwards []models.OutwardDispatch, filter OverviewFilter) []StockBalance {
	accept := func(r *models.InwardReceipt) bool {
		if filter.StartDate != nil && r.InwardDate.Before(*filter.StartDate) {
			return false
		}
		if filter.EndDate != nil && r.InwardDate.After(*filter.EndDate) {
			return false
		}
		if filter.LotNo != "" && !containsFold(r.LotNo, filter.LotNo) {
			return false
		}
		if filter.LotName != "" && !containsFold(r.LotName, filter.LotName) {
			return false
		}
		return true
	}

	report := make([]StockBalance, 0)
	for _, totals := range foldLotTotals(inwards, outwards, accept) {
		balanceRolls := totals.recRolls - totals.delivRolls
		balanceWeight := totals.recWeight - totals.delivWeight
		status := "Completed"
		if balanceWeight > completionTolerance {
			status = "Pending"
		}
		if filter.Status != "" && !strings.EqualFold(filter.Status, "All") && !strings.EqualFold(filter.Status, status) {
			continue
		}
		report = append(report, StockBalance{
			LotNumber:     totals.lotNumber,
			LotName:       totals.lotName,
			PartyName:     totals.partyName,
			RecRolls:      totals.recRolls,
			RecWeight:     totals.recWeight,
			DelivRolls:    totals.delivRolls,
			DelivWeight:   totals.delivWeight,
			BalanceRolls:  balanceRolls,
			BalanceWeight: balanceWeight,
			Status:        status,
		})
	}
	return report
}

// InwardVsOutwardReport is the raw in/out comparison: the same fold as the
// overview, without balances or status.
func InwardVsOutwardReport(inwards []models.InwardReceipt, outwards []models.OutwardDispatch) []InOutTotal {
	report := make([]InOutTotal, 0)
	for _, totals := range foldLotTotals(inwards, outwards, nil) {
		report = append(report, InOutTotal{
			LotNumber: totals.lotNumber,
			PartyName: totals.partyName,
			InRolls:   totals.recRolls,
			InWeight:  totals.recWeight,
			OutRolls:  totals.delivRolls,
			OutWeight: totals.delivWeight,
		})
	}
	return report
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
