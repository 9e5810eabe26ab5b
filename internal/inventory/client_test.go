package inventory_test

import (
	"testing"

	"github.com/NIRESH7/garments-backend/internal/inventory"
	"github.com/NIRESH7/garments-backend/internal/models"
)

func TestClientFormatReport(t *testing.T) {
	inwards := []models.InwardReceipt{
		receipt("L001", "Cotton", "Alpha Knits", day(2026, 1, 10),
			models.DiaEntry{Dia: "44", RecRoll: 5, RecWt: 100}),
		receipt("L002", "Denim", "Beta Mills", day(2026, 2, 1),
			models.DiaEntry{Dia: "34", RecRoll: 2, RecWt: 50}),
	}
	outwards := []models.OutwardDispatch{
		flatDispatch("L001", "44", day(2026, 1, 20),
			models.OutwardItem{SetNo: 1, Colour: "Red", SelectedWeight: 100, NoOfRolls: 5}),
	}

	report := inventory.ClientFormatReport(inwards, outwards, "")
	if len(report) != 2 {
		t.Fatalf("got %d rows, want 2", len(report))
	}
	// Newest receipt first.
	if report[0].LotNo != "L002" || report[0].Status != "In Stock" {
		t.Errorf("first row: %+v", report[0])
	}
	if report[1].LotNo != "L001" || report[1].Status != "Dispatched" || report[1].BalanceWeight != 0 {
		t.Errorf("second row: %+v", report[1])
	}
	if report[0].QualityStatus != "N/A" || report[0].VehicleNo != "N/A" {
		t.Errorf("empty fields should read N/A: %+v", report[0])
	}

	filtered := inventory.ClientFormatReport(inwards, outwards, "beta")
	if len(filtered) != 1 || filtered[0].LotNo != "L002" {
		t.Errorf("party filter: got %+v", filtered)
	}
}

// Over-dispatched lots clamp at zero instead of showing a negative balance.
func TestClientFormatReportClampsBalance(t *testing.T) {
	inwards := []models.InwardReceipt{
		receipt("L001", "Cotton", "Alpha", day(2026, 1, 10),
			models.DiaEntry{Dia: "44", RecRoll: 5, RecWt: 100}),
	}
	outwards := []models.OutwardDispatch{
		flatDispatch("L001", "44", day(2026, 1, 20),
			models.OutwardItem{SetNo: 1, Colour: "Red", SelectedWeight: 140, NoOfRolls: 6}),
	}

	report := inventory.ClientFormatReport(inwards, outwards, "")
	if len(report) != 1 {
		t.Fatalf("got %d rows, want 1", len(report))
	}
	if report[0].BalanceWeight != 0 || report[0].Status != "Dispatched" {
		t.Errorf("got %+v, want zero balance, Dispatched", report[0])
	}
}
