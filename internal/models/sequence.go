package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	InwardPrefix   = "INW"
	DispatchPrefix = "DC"
)

// DocumentSequence holds one counter per (prefix, calendar day). Reservations
// go through a row lock so two same-day creates cannot persist the same number.
type DocumentSequence struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Prefix    string    `gorm:"size:10;uniqueIndex:idx_document_sequences_prefix_date;not null" json:"prefix"`
	DateKey   string    `gorm:"size:8;uniqueIndex:idx_document_sequences_prefix_date;not null" json:"date_key"`
	Counter   int64     `gorm:"default:0" json:"counter"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormatDocumentNo renders <PREFIX>-<YYYYMMDD>-<NNN> for the UTC calendar day
// of ref.
func FormatDocumentNo(prefix string, ref time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%03d", prefix, ref.UTC().Format("20060102"), seq)
}

// DayRangeUTC returns the [start, end) bounds of ref's UTC calendar day.
func DayRangeUTC(ref time.Time) (time.Time, time.Time) {
	u := ref.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// ReserveDocumentNo atomically takes the next sequence number for ref's day.
// It must run inside the same transaction that persists the document, so a
// rolled-back create releases its number. existingToday seeds the counter the
// first time a day's row is created, which keeps numbering continuous for data
// that predates the sequence table.
func ReserveDocumentNo(tx *gorm.DB, prefix string, ref time.Time, existingToday int64) (string, error) {
	dateKey := ref.UTC().Format("20060102")

	seq := DocumentSequence{Prefix: prefix, DateKey: dateKey}
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("prefix = ? AND date_key = ?", prefix, dateKey).
		FirstOrCreate(&seq)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 1 && seq.Counter == 0 {
		seq.Counter = existingToday
	}

	seq.Counter++
	if err := tx.Model(&DocumentSequence{}).Where("id = ?", seq.ID).
		Update("counter", seq.Counter).Error; err != nil {
		return "", err
	}

	return FormatDocumentNo(prefix, ref, seq.Counter), nil
}

// NextInwardNo previews the next inward number without reserving it: the count
// of receipts created on ref's day, plus one. Two concurrent previews may show
// the same number; only the create path reserves.
func NextInwardNo(db *gorm.DB, ref time.Time) (string, error) {
	start, end := DayRangeUTC(ref)
	var count int64
	if err := db.Model(&InwardReceipt{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error; err != nil {
		return "", err
	}
	return FormatDocumentNo(InwardPrefix, ref, count+1), nil
}

// NextDcNo previews the next dispatch-note number, same rules as NextInwardNo.
func NextDcNo(db *gorm.DB, ref time.Time) (string, error) {
	start, end := DayRangeUTC(ref)
	var count int64
	if err := db.Model(&OutwardDispatch{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error; err != nil {
		return "", err
	}
	return FormatDocumentNo(DispatchPrefix, ref, count+1), nil
}
