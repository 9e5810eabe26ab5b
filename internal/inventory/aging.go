package inventory

import (
	"math"
	"sort"
	"time"

	"github.com/NIRESH7/garments-backend/internal/models"
)

type AgingLine struct {
	LotNumber  string    `json:"lot_number"`
	LotName    string    `json:"lot_name"`
	InwardDate time.Time `json:"inward_date"`
	Dia        string    `json:"dia"`
	Colour     string    `json:"colour"`
	Rolls      int       `json:"rolls"`
	Weight     float64   `json:"weight"`
	Age        int       `json:"age"`
}

type AgingFilter struct {
	LotNo   string
	LotName string
	Colour  string
	Dia     string
}

// AgingReport expands receipts into per-colour, per-diameter lines with an
// age in days relative to now.
//
// The storage breakdown is the only place colour is recorded, so it wins when
// present: one line per (dia, colour) row, weight = sum of that row's set
// weights, emitted only when positive. Receipts without a breakdown fall back
// to their flat dia entries under colour "N/A".
//
// Colour and dia filters apply after expansion (they need the expanded lines),
// as case-insensitive substring matches.
func AgingReport(inwards []models.InwardReceipt, filter AgingFilter, now time.Time) []AgingLine {
	sorted := make([]models.InwardReceipt, len(inwards))
	copy(sorted, inwards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InwardDate.Before(sorted[j].InwardDate)
	})

	report := make([]AgingLine, 0)
	for i := range sorted {
		receipt := &sorted[i]
		if filter.LotNo != "" && !containsFold(receipt.LotNo, filter.LotNo) {
			continue
		}
		if filter.LotName != "" && !containsFold(receipt.LotName, filter.LotName) {
			continue
		}

		age := ageInDays(receipt.InwardDate, now)

		if len(receipt.StorageDetails) > 0 {
			for _, detail := range receipt.StorageDetails {
				for _, row := range detail.Rows {
					totalWt := 0.0
					for _, wt := range row.SetWeights {
						totalWt += float64(wt)
					}
					if totalWt <= 0 {
						continue
					}
					report = append(report, AgingLine{
						LotNumber:  receipt.LotNo,
						LotName:    receipt.LotName,
						InwardDate: receipt.InwardDate,
						Dia:        detail.Dia,
						Colour:     row.Colour,
						Rolls:      len(row.SetWeights),
						Weight:     totalWt,
						Age:        age,
					})
				}
			}
		} else {
			for _, entry := range receipt.DiaEntries {
				report = append(report, AgingLine{
					LotNumber:  receipt.LotNo,
					LotName:    receipt.LotName,
					InwardDate: receipt.InwardDate,
					Dia:        entry.Dia,
					Colour:     "N/A",
					Rolls:      entry.RecRoll,
					Weight:     entry.RecWt,
					Age:        age,
				})
			}
		}
	}

	if filter.Colour != "" {
		report = filterLines(report, func(l AgingLine) bool { return containsFold(l.Colour, filter.Colour) })
	}
	if filter.Dia != "" {
		report = filterLines(report, func(l AgingLine) bool { return containsFold(l.Dia, filter.Dia) })
	}
	return report
}

func ageInDays(inwardDate, now time.Time) int {
	return int(math.Ceil(now.Sub(inwardDate).Hours() / 24))
}

func filterLines(lines []AgingLine, keep func(AgingLine) bool) []AgingLine {
	filtered := make([]AgingLine, 0, len(lines))
	for _, l := range lines {
		if keep(l) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}
