package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/NIRESH7/garments-backend/config"
	"github.com/NIRESH7/garments-backend/internal/inventory"
	"github.com/NIRESH7/garments-backend/internal/models"
	"github.com/NIRESH7/garments-backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct{}

// loadRecords fetches the full inward and outward sets. Every report is a
// single-pass fold over full history; there are no materialized views.
func loadRecords() ([]models.InwardReceipt, []models.OutwardDispatch, error) {
	var receipts []models.InwardReceipt
	if err := database.DB.Preload("DiaEntries").Order("inward_date asc").Find(&receipts).Error; err != nil {
		return nil, nil, err
	}
	var dispatches []models.OutwardDispatch
	if err := database.DB.Order("date_time asc").Find(&dispatches).Error; err != nil {
		return nil, nil, err
	}
	return receipts, dispatches, nil
}

func (h *ReportHandler) GetAgingReport(c *gin.Context) {
	var receipts []models.InwardReceipt
	if err := database.DB.Preload("DiaEntries").Order("inward_date asc").Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inward entries"})
		return
	}

	filter := inventory.AgingFilter{
		LotNo:   c.Query("lotNo"),
		LotName: c.Query("lotName"),
		Colour:  c.Query("colour"),
		Dia:     c.Query("dia"),
	}
	c.JSON(http.StatusOK, inventory.AgingReport(receipts, filter, time.Now()))
}

func overviewFilterFromQuery(c *gin.Context) inventory.OverviewFilter {
	filter := inventory.OverviewFilter{
		LotNo:   c.Query("lotNo"),
		LotName: c.Query("lotName"),
		Status:  c.Query("status"),
	}
	if start := c.Query("startDate"); start != "" {
		if t, err := parseDateParam(start); err == nil {
			filter.StartDate = &t
		}
	}
	if end := c.Query("endDate"); end != "" {
		if t, err := parseDateParam(end); err == nil {
			e := endOfDay(t)
			filter.EndDate = &e
		}
	}
	return filter
}

func (h *ReportHandler) GetOverviewReport(c *gin.Context) {
	receipts, dispatches, err := loadRecords()
	if err != nil {
		config.LogError(config.GetLogger(), "reports", "GetOverviewReport", "load records", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, inventory.OverviewReport(receipts, dispatches, overviewFilterFromQuery(c)))
}

// ExportOverviewReport streams the overview report as an xlsx download.
func (h *ReportHandler) ExportOverviewReport(c *gin.Context) {
	receipts, dispatches, err := loadRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	report := inventory.OverviewReport(receipts, dispatches, overviewFilterFromQuery(c))

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	headers := []string{"Lot No", "Lot Name", "Party", "Rec Rolls", "Rec Weight", "Deliv Rolls", "Deliv Weight", "Balance Rolls", "Balance Weight", "Status"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, head)
	}
	for row, line := range report {
		values := []interface{}{
			line.LotNumber, line.LotName, line.PartyName,
			line.RecRolls, line.RecWeight, line.DelivRolls, line.DelivWeight,
			line.BalanceRolls, line.BalanceWeight, line.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("stock-overview-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(c.Writer); err != nil {
		config.LogError(config.GetLogger(), "reports", "ExportOverviewReport", "write xlsx", nil, err)
	}
}

func (h *ReportHandler) GetInwardOutwardReport(c *gin.Context) {
	receipts, dispatches, err := loadRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, inventory.InwardVsOutwardReport(receipts, dispatches))
}

func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	receipts, dispatches, err := loadRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	var startDate, endDate *time.Time
	if start := c.Query("startDate"); start != "" {
		if t, err := parseDateParam(start); err == nil {
			startDate = &t
		}
	}
	if end := c.Query("endDate"); end != "" {
		if t, err := parseDateParam(end); err == nil {
			e := endOfDay(t)
			endDate = &e
		}
	}

	c.JSON(http.StatusOK, inventory.MonthlySummary(receipts, dispatches, startDate, endDate, time.Now()))
}

func (h *ReportHandler) GetClientFormatReport(c *gin.Context) {
	receipts, dispatches, err := loadRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, inventory.ClientFormatReport(receipts, dispatches, c.Query("fromParty")))
}
