package models_test

import (
	"testing"

	"github.com/NIRESH7/garments-backend/internal/models"
)

func TestStorageDetailListScan(t *testing.T) {
	payload := `[{"dia": "44", "rows": [{"colour": "Red", "setWeights": [25, "25.5", ""]}]}]`

	var list models.StorageDetailList
	if err := list.Scan([]byte(payload)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(list) != 1 || list[0].Dia != "44" {
		t.Fatalf("got %+v", list)
	}
	weights := list[0].Rows[0].SetWeights
	if len(weights) != 3 || weights[0] != 25 || weights[1] != 25.5 || weights[2] != 0 {
		t.Errorf("set weights: got %v", weights)
	}
}

// The column holds whatever the intake form submitted over the years, so a
// read never fails: junk decodes as an empty breakdown.
func TestStorageDetailListScanNeverFails(t *testing.T) {
	for _, payload := range []interface{}{
		[]byte(`{"not": "a list"}`),
		[]byte(`garbage`),
		"",
		nil,
	} {
		var list models.StorageDetailList
		if err := list.Scan(payload); err != nil {
			t.Errorf("scan %v: %v", payload, err)
		}
		if list != nil {
			t.Errorf("scan %v: got %+v, want nil", payload, list)
		}
	}
}

func TestTotalRecRollsFallsBackToDeclared(t *testing.T) {
	r := models.InwardReceipt{
		DiaEntries: []models.DiaEntry{
			{Dia: "44", Roll: 10, RecRoll: 8, RecWt: 100},
			{Dia: "34", Roll: 5, RecRoll: 0, RecWt: 40},
		},
	}
	// Received counts win where keyed in; the declared count covers the rest.
	if got := r.TotalRecRolls(); got != 13 {
		t.Errorf("rec rolls: got %d, want 13", got)
	}
	if got := r.TotalRecWt(); got != 140 {
		t.Errorf("rec weight: got %v, want 140", got)
	}
}

func TestHasDiaExactMatch(t *testing.T) {
	r := models.InwardReceipt{
		DiaEntries: []models.DiaEntry{{Dia: "44"}},
	}
	if !r.HasDia("44") {
		t.Error("expected match for 44")
	}
	if r.HasDia("4") {
		t.Error("substring must not match")
	}
}
