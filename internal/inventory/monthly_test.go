package inventory_test

import (
	"testing"

	"github.com/NIRESH7/garments-backend/internal/inventory"
	"github.com/NIRESH7/garments-backend/internal/models"
)

func TestMonthlySummaryChainsBalances(t *testing.T) {
	now := day(2026, 4, 15)
	inwards := []models.InwardReceipt{
		receipt("L001", "Cotton", "Alpha", day(2026, 1, 10),
			models.DiaEntry{Dia: "44", RecRoll: 10, RecWt: 250}),
		receipt("L002", "Denim", "Beta", day(2026, 4, 2),
			models.DiaEntry{Dia: "34", RecRoll: 4, RecWt: 80}),
	}
	outwards := []models.OutwardDispatch{
		flatDispatch("L001", "44", day(2026, 1, 25),
			models.OutwardItem{SetNo: 1, Colour: "Red", SelectedWeight: 100, NoOfRolls: 4}),
	}

	buckets := inventory.MonthlySummary(inwards, outwards, nil, nil, now)
	// January through April, most recent first, with February and March kept
	// even though nothing happened in them.
	if len(buckets) != 4 {
		t.Fatalf("got %d buckets, want 4", len(buckets))
	}
	wantMonths := []string{"2026-04", "2026-03", "2026-02", "2026-01"}
	for i, want := range wantMonths {
		if buckets[i].Month != want {
			t.Fatalf("bucket %d: got %s, want %s", i, buckets[i].Month, want)
		}
	}

	jan := buckets[3]
	if jan.OpeningBalance != 0 || jan.InwardWeight != 250 || jan.OutwardWeight != 100 || jan.ClosingBalance != 150 {
		t.Errorf("january: %+v", jan)
	}
	feb := buckets[2]
	if feb.OpeningBalance != 150 || feb.InwardWeight != 0 || feb.ClosingBalance != 150 {
		t.Errorf("february: %+v", feb)
	}
	apr := buckets[0]
	if apr.OpeningBalance != 150 || apr.OpeningBalanceRolls != 6 || apr.ClosingBalance != 230 || apr.ClosingBalanceRolls != 10 {
		t.Errorf("april: %+v", apr)
	}
}

// The window filter trims the returned buckets after the full history is
// folded: a filtered view still opens with the true carried-over balance.
func TestMonthlySummaryWindowKeepsOpeningBalances(t *testing.T) {
	now := day(2026, 4, 15)
	inwards := []models.InwardReceipt{
		receipt("L001", "Cotton", "Alpha", day(2026, 1, 10),
			models.DiaEntry{Dia: "44", RecRoll: 10, RecWt: 250}),
	}

	from := day(2026, 3, 1)
	buckets := inventory.MonthlySummary(inwards, nil, &from, nil, now)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	march := buckets[1]
	if march.Month != "2026-03" || march.OpeningBalance != 250 {
		t.Errorf("march should carry the january balance: %+v", march)
	}

	until := day(2026, 1, 31)
	buckets = inventory.MonthlySummary(inwards, nil, nil, &until, now)
	if len(buckets) != 1 || buckets[0].Month != "2026-01" {
		t.Errorf("end window: got %+v", buckets)
	}
}

func TestMonthlySummaryEmptyInput(t *testing.T) {
	buckets := inventory.MonthlySummary(nil, nil, nil, nil, day(2026, 4, 15))
	if len(buckets) != 0 {
		t.Fatalf("got %+v, want no buckets", buckets)
	}
}

// Inward rolls in the monthly fold come from received counts only; a receipt
// whose RecRoll was never keyed in contributes zero rolls here, unlike the
// overview which falls back to the declared count.
func TestMonthlySummaryRollsUseReceivedCountsOnly(t *testing.T) {
	now := day(2026, 1, 31)
	inwards := []models.InwardReceipt{
		receipt("L001", "Cotton", "Alpha", day(2026, 1, 10),
			models.DiaEntry{Dia: "44", Roll: 7, RecWt: 100}),
	}

	buckets := inventory.MonthlySummary(inwards, nil, nil, nil, now)
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	if buckets[0].InwardRolls != 0 || buckets[0].InwardWeight != 100 {
		t.Errorf("got %+v, want 0 rolls / 100 kg", buckets[0])
	}
}
