package handler

import (
	"net/http"
	"strings"

	"github.com/NIRESH7/garments-backend/internal/models"
	"github.com/NIRESH7/garments-backend/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MasterHandler struct{}

// --- CATEGORY & DROPDOWN HANDLERS ---

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *MasterHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Category
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		return
	}

	category := models.Category{Name: req.Name, Values: models.CategoryValueList{}}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *MasterHandler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *MasterHandler) DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err := database.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category removed"})
}

type AddCategoryValueRequest struct {
	Name  string `json:"name" binding:"required"`
	Photo string `json:"photo"`
	GSM   string `json:"gsm"`
}

// AddCategoryValue appends a dropdown value. Legacy string-only values were
// already normalized to {name, photo, gsm} records when the column was read.
func (h *MasterHandler) AddCategoryValue(c *gin.Context) {
	var req AddCategoryValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	for _, v := range category.Values {
		if strings.EqualFold(v.Name, req.Name) {
			c.JSON(http.StatusConflict, gin.H{"error": "Value already exists in this category"})
			return
		}
	}

	category.Values = append(category.Values, models.CategoryValue{Name: req.Name, Photo: req.Photo, GSM: req.GSM})
	if err := database.DB.Model(&category).Update("values", category.Values).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *MasterHandler) DeleteCategoryValue(c *gin.Context) {
	var category models.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	name := c.Param("value")
	kept := make(models.CategoryValueList, 0, len(category.Values))
	for _, v := range category.Values {
		if v.Name != name {
			kept = append(kept, v)
		}
	}
	category.Values = kept

	if err := database.DB.Model(&category).Update("values", category.Values).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// --- PARTY HANDLERS ---

type PartyRequest struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address"`
	MobileNumber string  `json:"mobileNumber"`
	Process      string  `json:"process"`
	GstIn        string  `json:"gstIn"`
	Rate         float64 `json:"rate"`
}

func (h *MasterHandler) CreateParty(c *gin.Context) {
	var req PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)

	// Case-insensitive duplicate check
	var existing models.Party
	if err := database.DB.Where("LOWER(name) = ?", strings.ToLower(name)).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Party Name already exists"})
		return
	}

	party := models.Party{
		Name:         name,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
		Process:      req.Process,
		GstIn:        req.GstIn,
		Rate:         req.Rate,
	}
	if err := database.DB.Create(&party).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create party"})
		return
	}
	c.JSON(http.StatusCreated, party)
}

func (h *MasterHandler) ListParties(c *gin.Context) {
	var parties []models.Party
	if err := database.DB.Find(&parties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch parties"})
		return
	}
	c.JSON(http.StatusOK, parties)
}

func (h *MasterHandler) UpdateParty(c *gin.Context) {
	var party models.Party
	if err := database.DB.First(&party, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		return
	}

	var req PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	party.Name = req.Name
	party.Address = req.Address
	party.MobileNumber = req.MobileNumber
	party.Process = req.Process
	party.GstIn = req.GstIn
	party.Rate = req.Rate

	if err := database.DB.Save(&party).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update party"})
		return
	}
	c.JSON(http.StatusOK, party)
}

func (h *MasterHandler) DeleteParty(c *gin.Context) {
	var party models.Party
	if err := database.DB.First(&party, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		return
	}
	if err := database.DB.Delete(&party).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete party"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Party removed"})
}

// --- ITEM GROUP HANDLERS ---

type ItemGroupRequest struct {
	GroupName string   `json:"groupName" binding:"required"`
	ItemNames []string `json:"itemNames"`
	GSM       string   `json:"gsm"`
	Colours   []string `json:"colours"`
	Rate      float64  `json:"rate"`
}

func (h *MasterHandler) CreateItemGroup(c *gin.Context) {
	var req ItemGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.GroupName)

	var existing models.ItemGroup
	if err := database.DB.Where("LOWER(group_name) = ?", strings.ToLower(name)).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Item Group Name already exists"})
		return
	}

	group := models.ItemGroup{
		GroupName: name,
		ItemNames: models.StringList(req.ItemNames),
		GSM:       req.GSM,
		Colours:   models.StringList(req.Colours),
		Rate:      req.Rate,
	}
	if err := database.DB.Create(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item group"})
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *MasterHandler) ListItemGroups(c *gin.Context) {
	var groups []models.ItemGroup
	if err := database.DB.Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item groups"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *MasterHandler) UpdateItemGroup(c *gin.Context) {
	var group models.ItemGroup
	if err := database.DB.First(&group, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item Group not found"})
		return
	}

	var req ItemGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group.GroupName = req.GroupName
	group.ItemNames = models.StringList(req.ItemNames)
	group.GSM = req.GSM
	group.Colours = models.StringList(req.Colours)
	group.Rate = req.Rate

	if err := database.DB.Save(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item group"})
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *MasterHandler) DeleteItemGroup(c *gin.Context) {
	var group models.ItemGroup
	if err := database.DB.First(&group, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item Group not found"})
		return
	}
	if err := database.DB.Delete(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item group"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item Group removed"})
}

// --- LOT HANDLERS ---

type LotRequest struct {
	LotNumber string `json:"lotNumber" binding:"required"`
	PartyName string `json:"partyName"`
	Process   string `json:"process"`
	Remarks   string `json:"remarks"`
}

func (h *MasterHandler) CreateLot(c *gin.Context) {
	var req LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Lot
	err := database.DB.Where("lot_number = ?", req.LotNumber).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Lot Number already exists"})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify lot number"})
		return
	}

	lot := models.Lot{
		LotNumber: req.LotNumber,
		PartyName: req.PartyName,
		Process:   req.Process,
		Remarks:   req.Remarks,
	}
	if err := database.DB.Create(&lot).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lot"})
		return
	}
	c.JSON(http.StatusCreated, lot)
}

func (h *MasterHandler) ListLots(c *gin.Context) {
	var lots []models.Lot
	if err := database.DB.Find(&lots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lots"})
		return
	}
	c.JSON(http.StatusOK, lots)
}
