package models_test

import (
	"testing"
	"time"

	"github.com/NIRESH7/garments-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Every pooled connection gets its own :memory: database, so pin the
	// pool to one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&models.InwardReceipt{},
		&models.DiaEntry{},
		&models.OutwardDispatch{},
		&models.DocumentSequence{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestFormatDocumentNo(t *testing.T) {
	ref := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	if got := models.FormatDocumentNo(models.InwardPrefix, ref, 1); got != "INW-20260115-001" {
		t.Errorf("got %s", got)
	}
	if got := models.FormatDocumentNo(models.DispatchPrefix, ref, 42); got != "DC-20260115-042" {
		t.Errorf("got %s", got)
	}
	// Runs of a thousand or more widen rather than truncate.
	if got := models.FormatDocumentNo(models.InwardPrefix, ref, 1234); got != "INW-20260115-1234" {
		t.Errorf("got %s", got)
	}
}

func TestDayRangeUTC(t *testing.T) {
	ref := time.Date(2026, 1, 15, 23, 59, 59, 0, time.UTC)
	start, end := models.DayRangeUTC(ref)
	if !start.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start: %v", start)
	}
	if !end.Equal(time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end: %v", end)
	}
}

func TestReserveDocumentNoSequences(t *testing.T) {
	db := openTestDB(t)
	ref := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	for i, want := range []string{"INW-20260115-001", "INW-20260115-002", "INW-20260115-003"} {
		tx := db.Begin()
		got, err := models.ReserveDocumentNo(tx, models.InwardPrefix, ref, 0)
		if err != nil {
			t.Fatalf("reserve %d: %v", i, err)
		}
		tx.Commit()
		if got != want {
			t.Errorf("reserve %d: got %s, want %s", i, got, want)
		}
	}

	// Prefixes keep separate counters.
	tx := db.Begin()
	got, err := models.ReserveDocumentNo(tx, models.DispatchPrefix, ref, 0)
	if err != nil {
		t.Fatalf("reserve DC: %v", err)
	}
	tx.Commit()
	if got != "DC-20260115-001" {
		t.Errorf("got %s", got)
	}

	// So does every calendar day.
	nextDay := ref.AddDate(0, 0, 1)
	tx = db.Begin()
	got, err = models.ReserveDocumentNo(tx, models.InwardPrefix, nextDay, 0)
	if err != nil {
		t.Fatalf("reserve next day: %v", err)
	}
	tx.Commit()
	if got != "INW-20260116-001" {
		t.Errorf("got %s", got)
	}
}

// existingToday seeds the counter the first time a day's row is created, so
// numbering continues after data that predates the sequence table.
func TestReserveDocumentNoSeedsFromExisting(t *testing.T) {
	db := openTestDB(t)
	ref := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tx := db.Begin()
	got, err := models.ReserveDocumentNo(tx, models.InwardPrefix, ref, 5)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	tx.Commit()
	if got != "INW-20260115-006" {
		t.Errorf("got %s, want INW-20260115-006", got)
	}

	// The seed applies once; later reservations just increment.
	tx = db.Begin()
	got, err = models.ReserveDocumentNo(tx, models.InwardPrefix, ref, 99)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	tx.Commit()
	if got != "INW-20260115-007" {
		t.Errorf("got %s, want INW-20260115-007", got)
	}
}

func TestReserveDocumentNoRollbackReleasesNumber(t *testing.T) {
	db := openTestDB(t)
	ref := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tx := db.Begin()
	if _, err := models.ReserveDocumentNo(tx, models.InwardPrefix, ref, 0); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	tx.Rollback()

	tx = db.Begin()
	got, err := models.ReserveDocumentNo(tx, models.InwardPrefix, ref, 0)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	tx.Commit()
	if got != "INW-20260115-001" {
		t.Errorf("got %s, want the rolled-back number reissued", got)
	}
}

func TestNextInwardNoPreview(t *testing.T) {
	db := openTestDB(t)
	now := time.Now().UTC()

	got, err := models.NextInwardNo(db, now)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	want := models.FormatDocumentNo(models.InwardPrefix, now, 1)
	if got != want {
		t.Errorf("empty day: got %s, want %s", got, want)
	}

	if err := db.Create(&models.InwardReceipt{
		LotNo: "L001", LotName: "Cotton", FromParty: "Alpha", InwardDate: now,
	}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err = models.NextInwardNo(db, now)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	want = models.FormatDocumentNo(models.InwardPrefix, now, 2)
	if got != want {
		t.Errorf("after one receipt: got %s, want %s", got, want)
	}
}
