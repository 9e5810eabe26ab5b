package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/NIRESH7/garments-backend/config"
	"github.com/NIRESH7/garments-backend/internal/inventory"
	"github.com/NIRESH7/garments-backend/internal/models"
	"github.com/NIRESH7/garments-backend/pkg/database"

	"github.com/gin-gonic/gin"
)

type InwardHandler struct{}

type DiaEntryRequest struct {
	Dia     string           `json:"dia" binding:"required"`
	Roll    int              `json:"roll"`
	Sets    int              `json:"sets"`
	DelivWt models.FlexFloat `json:"delivWt"`
	RecRoll int              `json:"recRoll"`
	RecWt   models.FlexFloat `json:"recWt"`
	Rate    *float64         `json:"rate"`
}

type CreateInwardRequest struct {
	InwardNo   string `json:"inwardNo"`
	InwardDate string `json:"inwardDate" binding:"required"`
	InTime     string `json:"inTime"`
	OutTime    string `json:"outTime"`
	LotName    string `json:"lotName" binding:"required"`
	LotNo      string `json:"lotNo" binding:"required"`
	FromParty  string `json:"fromParty" binding:"required"`
	Process    string `json:"process"`
	Rate       float64 `json:"rate"`
	GSM        string `json:"gsm"`
	VehicleNo  string `json:"vehicleNo"`
	PartyDcNo  string `json:"partyDcNo"`

	// Nested payloads arrive either as JSON values or, from the legacy intake
	// form, as JSON-encoded strings. decodeNested handles both.
	DiaEntries     json.RawMessage `json:"diaEntries" binding:"required"`
	StorageDetails json.RawMessage `json:"storageDetails"`

	QualityStatus  string `json:"qualityStatus"`
	QualityImage   string `json:"qualityImage"`
	ComplaintText  string `json:"complaintText"`
	ComplaintImage string `json:"complaintImage"`
	BalanceImage   string `json:"balanceImage"`
	GSMStatus      string `json:"gsmStatus"`
	GSMImage       string `json:"gsmImage"`
	ShadeStatus    string `json:"shadeStatus"`
	ShadeImage     string `json:"shadeImage"`
	WashingStatus  string `json:"washingStatus"`
	WashingImage   string `json:"washingImage"`

	LotInchargeSignature string `json:"lotInchargeSignature"`
	AuthorizedSignature  string `json:"authorizedSignature"`
	MdSignature          string `json:"mdSignature"`
}

// decodeNested unmarshals raw into out, unwrapping one level of string
// encoding first if present ("[{...}]" instead of [{...}]).
func decodeNested(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	data := []byte(raw)
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		if encoded == "" {
			return nil
		}
		data = []byte(encoded)
	}
	return json.Unmarshal(data, out)
}

func (h *InwardHandler) CreateInward(c *gin.Context) {
	var req CreateInwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entries []DiaEntryRequest
	if err := decodeNested(req.DiaEntries, &entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed diaEntries payload"})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one dia entry is required"})
		return
	}

	var storage models.StorageDetailList
	if err := decodeNested(req.StorageDetails, &storage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed storageDetails payload"})
		return
	}

	inwardDate, err := parseDateParam(req.InwardDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inwardDate"})
		return
	}

	userID := c.GetUint("userID")

	diaEntries := make([]models.DiaEntry, 0, len(entries))
	for _, e := range entries {
		diaEntries = append(diaEntries, models.DiaEntry{
			Dia:     e.Dia,
			Roll:    e.Roll,
			Sets:    e.Sets,
			DelivWt: float64(e.DelivWt),
			RecRoll: e.RecRoll,
			RecWt:   float64(e.RecWt),
			Rate:    e.Rate,
		})
	}

	tx := database.DB.Begin()

	// Generate Inward No if not provided
	inwardNo := req.InwardNo
	if inwardNo == "" {
		now := time.Now()
		start, end := models.DayRangeUTC(now)
		var todayCount int64
		if err := tx.Model(&models.InwardReceipt{}).
			Where("created_at >= ? AND created_at < ?", start, end).
			Count(&todayCount).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate inward number"})
			return
		}
		inwardNo, err = models.ReserveDocumentNo(tx, models.InwardPrefix, now, todayCount)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate inward number"})
			return
		}
	}

	receipt := models.InwardReceipt{
		UserID:     userID,
		InwardNo:   inwardNo,
		InwardDate: inwardDate,
		InTime:     req.InTime,
		OutTime:    req.OutTime,
		LotName:    req.LotName,
		LotNo:      req.LotNo,
		FromParty:  req.FromParty,
		Process:    req.Process,
		Rate:       req.Rate,
		GSM:        req.GSM,
		VehicleNo:  req.VehicleNo,
		PartyDcNo:  req.PartyDcNo,

		DiaEntries:     diaEntries,
		StorageDetails: storage,

		QualityStatus:  defaultStatus(req.QualityStatus),
		QualityImage:   req.QualityImage,
		ComplaintText:  req.ComplaintText,
		ComplaintImage: req.ComplaintImage,
		BalanceImage:   req.BalanceImage,
		GSMStatus:      defaultStatus(req.GSMStatus),
		GSMImage:       req.GSMImage,
		ShadeStatus:    defaultStatus(req.ShadeStatus),
		ShadeImage:     req.ShadeImage,
		WashingStatus:  defaultStatus(req.WashingStatus),
		WashingImage:   req.WashingImage,

		LotInchargeSignature: req.LotInchargeSignature,
		AuthorizedSignature:  req.AuthorizedSignature,
		MdSignature:          req.MdSignature,
	}

	if err := tx.Create(&receipt).Error; err != nil {
		tx.Rollback()
		config.LogError(config.GetLogger(), "inward", "CreateInward", "create receipt", req.LotNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inward entry"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusCreated, receipt)
}

func (h *InwardHandler) ListInwards(c *gin.Context) {
	query := database.DB.Preload("DiaEntries").Order("inward_date desc")

	if start := c.Query("startDate"); start != "" {
		if t, err := parseDateParam(start); err == nil {
			query = query.Where("inward_date >= ?", t)
		}
	}
	if end := c.Query("endDate"); end != "" {
		if t, err := parseDateParam(end); err == nil {
			query = query.Where("inward_date <= ?", endOfDay(t))
		}
	}
	if fromParty := c.Query("fromParty"); fromParty != "" {
		query = query.Where("LOWER(from_party) LIKE ?", "%"+strings.ToLower(fromParty)+"%")
	}
	if lotName := c.Query("lotName"); lotName != "" {
		query = query.Where("LOWER(lot_name) LIKE ?", "%"+strings.ToLower(lotName)+"%")
	}

	var receipts []models.InwardReceipt
	if err := query.Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inward entries"})
		return
	}
	c.JSON(http.StatusOK, receipts)
}

// GetLotsFifo lists lots that received the given dia, oldest receipt first,
// for first-in-first-out allocation.
func (h *InwardHandler) GetLotsFifo(c *gin.Context) {
	dia := c.Query("dia")
	if dia == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dia is required"})
		return
	}

	var receipts []models.InwardReceipt
	if err := database.DB.Preload("DiaEntries").Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inward entries"})
		return
	}

	c.JSON(http.StatusOK, inventory.LotsForDiameter(receipts, dia))
}

func (h *InwardHandler) GetBalancedSets(c *gin.Context) {
	lotNo := c.Query("lotNo")
	dia := c.Query("dia")
	if lotNo == "" || dia == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lotNo and dia are required"})
		return
	}

	var receipts []models.InwardReceipt
	if err := database.DB.Preload("DiaEntries").Where("lot_no = ?", lotNo).Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inward entries"})
		return
	}

	var dispatches []models.OutwardDispatch
	if err := database.DB.Where("lot_no = ? AND dia = ?", lotNo, dia).Find(&dispatches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch outward entries"})
		return
	}

	c.JSON(http.StatusOK, inventory.BalancedSets(receipts, dispatches, lotNo, dia))
}

// GenerateInwardNo previews the next inward number for UI display. Nothing is
// reserved here; the create path takes the real number.
func (h *InwardHandler) GenerateInwardNo(c *gin.Context) {
	inwardNo, err := models.NextInwardNo(database.DB, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate inward number"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inwardNo": inwardNo})
}

func defaultStatus(s string) string {
	if s == "" {
		return "OK"
	}
	return s
}
