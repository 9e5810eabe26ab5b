package models_test

import (
	"encoding/json"
	"testing"

	"github.com/NIRESH7/garments-backend/internal/models"
)

// Early versions stored category values as bare strings. Both shapes decode
// through the same path.
func TestCategoryValueLegacyString(t *testing.T) {
	var v models.CategoryValue
	if err := json.Unmarshal([]byte(`"Interlock"`), &v); err != nil {
		t.Fatalf("legacy string: %v", err)
	}
	if v.Name != "Interlock" || v.Photo != "" || v.GSM != "" {
		t.Errorf("got %+v", v)
	}

	if err := json.Unmarshal([]byte(`{"name": "Rib", "photo": "rib.jpg", "gsm": "180"}`), &v); err != nil {
		t.Fatalf("object shape: %v", err)
	}
	if v.Name != "Rib" || v.Photo != "rib.jpg" || v.GSM != "180" {
		t.Errorf("got %+v", v)
	}
}

func TestCategoryValueListScanDropsNameless(t *testing.T) {
	payload := `["Interlock", {"name": "", "photo": "x.jpg"}, {"name": "Rib"}]`

	var list models.CategoryValueList
	if err := list.Scan([]byte(payload)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d values, want 2", len(list))
	}
	if list[0].Name != "Interlock" || list[1].Name != "Rib" {
		t.Errorf("got %+v", list)
	}
}

func TestCategoryValueListScanToleratesJunk(t *testing.T) {
	var list models.CategoryValueList
	if err := list.Scan([]byte(`not json`)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if list != nil {
		t.Errorf("got %+v, want nil", list)
	}
}
