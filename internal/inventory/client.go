package inventory

import (
	"math"
	"sort"
	"time"

	"github.com/NIRESH7/garments-backend/internal/models"
)

// LotSummary is the client-facing per-receipt summary (one row per physical
// delivery, newest first), unlike the overview report which groups by lot.
type LotSummary struct {
	ID            uint      `json:"id"`
	LotNo         string    `json:"lotNo"`
	LotName       string    `json:"lotName"`
	FromParty     string    `json:"fromParty"`
	InwardDate    time.Time `json:"inwardDate"`
	TotalWeight   float64   `json:"totalWeight"`
	BalanceWeight float64   `json:"balanceWeight"`
	Status        string    `json:"status"` // In Stock or Dispatched
	QualityStatus string    `json:"qualityStatus"`
	VehicleNo     string    `json:"vehicleNo"`
}

// ClientFormatReport lists each receipt with its weight balanced against the
// lot's all-time outward weight. The balance is clamped at zero: this report
// goes to clients and never shows the negative balances malformed data can
// produce elsewhere.
func ClientFormatReport(inwards []models.InwardReceipt, outwards []models.OutwardDispatch, fromParty string) []LotSummary {
	outwardByLot := make(map[string]float64)
	for i := range outwards {
		outwardByLot[outwards[i].LotNo] += outwards[i].DeliveredWeight()
	}

	sorted := make([]models.InwardReceipt, len(inwards))
	copy(sorted, inwards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InwardDate.After(sorted[j].InwardDate)
	})

	report := make([]LotSummary, 0, len(sorted))
	for i := range sorted {
		receipt := &sorted[i]
		if fromParty != "" && !containsFold(receipt.FromParty, fromParty) {
			continue
		}
		totalWeight := receipt.TotalRecWt()
		balance := math.Max(0, totalWeight-outwardByLot[receipt.LotNo])
		status := "Dispatched"
		if balance > completionTolerance {
			status = "In Stock"
		}
		report = append(report, LotSummary{
			ID:            receipt.ID,
			LotNo:         receipt.LotNo,
			LotName:       receipt.LotName,
			FromParty:     receipt.FromParty,
			InwardDate:    receipt.InwardDate,
			TotalWeight:   totalWeight,
			BalanceWeight: balance,
			Status:        status,
			QualityStatus: orNA(receipt.QualityStatus),
			VehicleNo:     orNA(receipt.VehicleNo),
		})
	}
	return report
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
