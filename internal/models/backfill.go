package models

import (
	"gorm.io/gorm"
)

// BackfillInwardNumbers assigns inward numbers to receipts that never got one
// and patches dia entries whose rate was never recorded.
//
// Unlike live generation, which counts records created on the current day,
// the backfill replays receipts in business-date order: the counter for each
// date advances for every receipt on that date, numbered or not, so assigned
// numbers slot in after whatever already exists. Re-running against migrated
// data changes nothing. Returns the number of receipts updated.
func BackfillInwardNumbers(db *gorm.DB) (int, error) {
	var receipts []InwardReceipt
	if err := db.Preload("DiaEntries").
		Order("inward_date asc, created_at asc").
		Find(&receipts).Error; err != nil {
		return 0, err
	}

	dateCounts := make(map[string]int64)
	updated := 0

	for i := range receipts {
		receipt := &receipts[i]
		dateKey := receipt.InwardDate.UTC().Format("20060102")
		dateCounts[dateKey]++

		changed := false

		if receipt.InwardNo == "" {
			inwardNo := FormatDocumentNo(InwardPrefix, receipt.InwardDate, dateCounts[dateKey])
			if err := db.Model(receipt).Update("inward_no", inwardNo).Error; err != nil {
				return updated, err
			}
			receipt.InwardNo = inwardNo
			changed = true
		}

		// Patch missing rates so downstream validation holds.
		for j := range receipt.DiaEntries {
			if receipt.DiaEntries[j].Rate == nil {
				zero := 0.0
				if err := db.Model(&receipt.DiaEntries[j]).Update("rate", zero).Error; err != nil {
					return updated, err
				}
				receipt.DiaEntries[j].Rate = &zero
				changed = true
			}
		}

		if changed {
			updated++
		}
	}

	return updated, nil
}
