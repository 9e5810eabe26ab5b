package inventory_test

import (
	"testing"
	"time"

	"github.com/NIRESH7/garments-backend/internal/inventory"
	"github.com/NIRESH7/garments-backend/internal/models"
)

func TestAgingReportStorageBreakdown(t *testing.T) {
	now := day(2026, 1, 20)
	inwards := []models.InwardReceipt{
		{
			LotNo:      "L001",
			LotName:    "Cotton",
			InwardDate: day(2026, 1, 10),
			DiaEntries: []models.DiaEntry{{Dia: "44", RecRoll: 5, RecWt: 130}},
			StorageDetails: models.StorageDetailList{
				{Dia: "44", Rows: []models.StorageRow{
					{Colour: "Red", SetWeights: []models.FlexFloat{25, 25, 25}},
					{Colour: "Blue", SetWeights: []models.FlexFloat{30, 25}},
					// Zero-weight rows carry no stock and are dropped.
					{Colour: "Green", SetWeights: []models.FlexFloat{0, 0}},
				}},
			},
		},
	}

	report := inventory.AgingReport(inwards, inventory.AgingFilter{}, now)
	if len(report) != 2 {
		t.Fatalf("got %d lines, want 2", len(report))
	}

	red := report[0]
	if red.Colour != "Red" || red.Rolls != 3 || red.Weight != 75 {
		t.Errorf("red line: got %+v", red)
	}
	if red.Age != 10 {
		t.Errorf("age: got %d days, want 10", red.Age)
	}
	blue := report[1]
	if blue.Colour != "Blue" || blue.Rolls != 2 || blue.Weight != 55 {
		t.Errorf("blue line: got %+v", blue)
	}
}

// Receipts without a storage breakdown fall back to their flat dia entries,
// colour unknown.
func TestAgingReportDiaEntryFallback(t *testing.T) {
	now := day(2026, 1, 20)
	inwards := []models.InwardReceipt{
		receipt("L001", "Cotton", "Alpha", day(2026, 1, 10),
			models.DiaEntry{Dia: "44", RecRoll: 5, RecWt: 130},
			models.DiaEntry{Dia: "34", RecRoll: 2, RecWt: 40}),
	}

	report := inventory.AgingReport(inwards, inventory.AgingFilter{}, now)
	if len(report) != 2 {
		t.Fatalf("got %d lines, want 2", len(report))
	}
	for _, line := range report {
		if line.Colour != "N/A" {
			t.Errorf("fallback colour: got %q, want N/A", line.Colour)
		}
	}
	if report[0].Dia != "44" || report[0].Rolls != 5 || report[0].Weight != 130 {
		t.Errorf("first line: got %+v", report[0])
	}
}

// Age counts any started day as a full day.
func TestAgingReportAgeRoundsUp(t *testing.T) {
	inwardDate := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	inwards := []models.InwardReceipt{
		receipt("L001", "Cotton", "Alpha", inwardDate,
			models.DiaEntry{Dia: "44", RecRoll: 1, RecWt: 10}),
	}

	report := inventory.AgingReport(inwards, inventory.AgingFilter{}, now)
	if len(report) != 1 || report[0].Age != 1 {
		t.Fatalf("12 hours old: got %+v, want age 1", report)
	}
}

func TestAgingReportFilters(t *testing.T) {
	now := day(2026, 1, 20)
	inwards := []models.InwardReceipt{
		{
			LotNo:      "L001",
			LotName:    "Cotton",
			InwardDate: day(2026, 1, 10),
			DiaEntries: []models.DiaEntry{{Dia: "44"}},
			StorageDetails: models.StorageDetailList{
				{Dia: "44", Rows: []models.StorageRow{
					{Colour: "Dark Red", SetWeights: []models.FlexFloat{25}},
					{Colour: "Blue", SetWeights: []models.FlexFloat{30}},
				}},
				{Dia: "34", Rows: []models.StorageRow{
					{Colour: "Dark Red", SetWeights: []models.FlexFloat{10}},
				}},
			},
		},
		{
			LotNo:      "L002",
			LotName:    "Denim",
			InwardDate: day(2026, 1, 12),
			DiaEntries: []models.DiaEntry{{Dia: "44", RecRoll: 1, RecWt: 20}},
		},
	}

	byColour := inventory.AgingReport(inwards, inventory.AgingFilter{Colour: "red"}, now)
	if len(byColour) != 2 {
		t.Errorf("colour filter: got %d lines, want 2", len(byColour))
	}

	byDia := inventory.AgingReport(inwards, inventory.AgingFilter{Dia: "34"}, now)
	if len(byDia) != 1 || byDia[0].Dia != "34" {
		t.Errorf("dia filter: got %+v", byDia)
	}

	byLot := inventory.AgingReport(inwards, inventory.AgingFilter{LotNo: "l002"}, now)
	if len(byLot) != 1 || byLot[0].LotNumber != "L002" {
		t.Errorf("lot filter: got %+v", byLot)
	}
}
