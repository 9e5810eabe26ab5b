package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/NIRESH7/garments-backend/config"
	"github.com/NIRESH7/garments-backend/internal/models"
	"github.com/NIRESH7/garments-backend/pkg/database"

	"github.com/gin-gonic/gin"
)

type OutwardHandler struct{}

type CreateOutwardRequest struct {
	DcNo      string `json:"dc_number"`
	LotName   string `json:"lotName" binding:"required"`
	DateTime  string `json:"dateTime" binding:"required"`
	Dia       string `json:"dia" binding:"required"`
	LotNo     string `json:"lotNo" binding:"required"`
	PartyName string `json:"partyName" binding:"required"`
	Process   string `json:"process"`
	Address   string `json:"address"`
	VehicleNo string `json:"vehicleNo"`
	InTime    string `json:"inTime"`
	OutTime   string `json:"outTime"`

	// Items accepts both historical shapes (flat and grouped-by-colour); the
	// variant type normalizes them on read.
	Items json.RawMessage `json:"items" binding:"required"`
}

func (h *OutwardHandler) CreateOutward(c *gin.Context) {
	var req CreateOutwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var items models.OutwardItemList
	if err := decodeNested(req.Items, &items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed items payload"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one item is required"})
		return
	}

	dateTime, err := parseDateParam(req.DateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateTime"})
		return
	}

	userID := c.GetUint("userID")

	tx := database.DB.Begin()

	dcNo := req.DcNo
	if dcNo == "" {
		now := time.Now()
		start, end := models.DayRangeUTC(now)
		var todayCount int64
		if err := tx.Model(&models.OutwardDispatch{}).
			Where("created_at >= ? AND created_at < ?", start, end).
			Count(&todayCount).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate DC number"})
			return
		}
		dcNo, err = models.ReserveDocumentNo(tx, models.DispatchPrefix, now, todayCount)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate DC number"})
			return
		}
	} else {
		// Client-supplied numbers still have to be unique.
		var existing int64
		if err := tx.Model(&models.OutwardDispatch{}).Where("dc_no = ?", dcNo).Count(&existing).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify DC number"})
			return
		}
		if existing > 0 {
			tx.Rollback()
			c.JSON(http.StatusConflict, gin.H{"error": "DC number already exists"})
			return
		}
	}

	dispatch := models.OutwardDispatch{
		UserID:    userID,
		DcNo:      dcNo,
		LotName:   req.LotName,
		DateTime:  dateTime,
		Dia:       req.Dia,
		LotNo:     req.LotNo,
		PartyName: req.PartyName,
		Process:   req.Process,
		Address:   req.Address,
		VehicleNo: req.VehicleNo,
		InTime:    req.InTime,
		OutTime:   req.OutTime,
		Items:     items,
	}

	if err := tx.Create(&dispatch).Error; err != nil {
		tx.Rollback()
		config.LogError(config.GetLogger(), "outward", "CreateOutward", "create dispatch", req.LotNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create outward entry"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusCreated, dispatch)
}

func (h *OutwardHandler) ListOutwards(c *gin.Context) {
	query := database.DB.Order("date_time desc")

	if start := c.Query("startDate"); start != "" {
		if t, err := parseDateParam(start); err == nil {
			query = query.Where("date_time >= ?", t)
		}
	}
	if end := c.Query("endDate"); end != "" {
		if t, err := parseDateParam(end); err == nil {
			query = query.Where("date_time <= ?", endOfDay(t))
		}
	}
	if lotName := c.Query("lotName"); lotName != "" {
		query = query.Where("LOWER(lot_name) LIKE ?", "%"+strings.ToLower(lotName)+"%")
	}
	if lotNo := c.Query("lotNo"); lotNo != "" {
		query = query.Where("LOWER(lot_no) LIKE ?", "%"+strings.ToLower(lotNo)+"%")
	}
	if dia := c.Query("dia"); dia != "" {
		query = query.Where("LOWER(dia) LIKE ?", "%"+strings.ToLower(dia)+"%")
	}

	var dispatches []models.OutwardDispatch
	if err := query.Find(&dispatches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch outward entries"})
		return
	}
	c.JSON(http.StatusOK, dispatches)
}

// GenerateDcNo previews the next dispatch-note number for UI display.
func (h *OutwardHandler) GenerateDcNo(c *gin.Context) {
	dcNo, err := models.NextDcNo(database.DB, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate DC number"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dc_number": dcNo})
}
