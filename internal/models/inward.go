package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// FlexFloat decodes a JSON number that historical clients sometimes sent as a
// string (e.g. "12.5" or ""). Unparseable values read as 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		*f = 0
		return nil
	}
	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(num)
	return nil
}

type StorageRow struct {
	Colour     string      `json:"colour"`
	SetWeights []FlexFloat `json:"setWeights"`
}

type StorageDetail struct {
	Dia  string       `json:"dia"`
	Rows []StorageRow `json:"rows"`
}

// StorageDetailList is stored as a JSON column. The column holds whatever the
// intake form submitted, so Scan never fails the read: anything that does not
// decode as the structured shape comes back as an empty list.
type StorageDetailList []StorageDetail

func (l StorageDetailList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StorageDetailList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported storage details column type")
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	var details []StorageDetail
	if err := json.Unmarshal(raw, &details); err != nil {
		*l = nil
		return nil
	}
	*l = details
	return nil
}

type DiaEntry struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	InwardID uint     `gorm:"index" json:"inward_id"`
	Dia      string   `gorm:"size:20;not null" json:"dia"`
	Roll     int      `gorm:"default:0" json:"roll"`
	Sets     int      `gorm:"default:0" json:"sets"`
	DelivWt  float64  `gorm:"default:0" json:"delivWt"`
	RecRoll  int      `gorm:"default:0" json:"recRoll"`
	RecWt    float64  `gorm:"default:0" json:"recWt"`
	Rate     *float64 `json:"rate"` // nullable in legacy rows, patched to 0 by the backfill pass
}

type InwardReceipt struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `json:"user_id"`
	InwardNo   string    `gorm:"size:50;index" json:"inwardNo"` // INW-YYYYMMDD-NNN, empty until backfilled
	InwardDate time.Time `gorm:"index;not null" json:"inwardDate"`
	InTime     string    `gorm:"size:20" json:"inTime"`
	OutTime    string    `gorm:"size:20" json:"outTime"`
	LotName    string    `gorm:"size:100;not null" json:"lotName"`
	LotNo      string    `gorm:"size:50;index;not null" json:"lotNo"`
	FromParty  string    `gorm:"size:100;not null" json:"fromParty"`
	Process    string    `gorm:"size:100" json:"process"`
	Rate       float64   `gorm:"default:0" json:"rate"`
	GSM        string    `gorm:"size:20" json:"gsm"`
	VehicleNo  string    `gorm:"size:30" json:"vehicleNo"`
	PartyDcNo  string    `gorm:"size:50" json:"partyDcNo"`

	DiaEntries     []DiaEntry        `gorm:"foreignKey:InwardID" json:"diaEntries"`
	StorageDetails StorageDetailList `gorm:"type:json" json:"storageDetails"`

	// Quality / compliance; persisted but not part of reconciliation.
	QualityStatus string `gorm:"size:20;default:'OK'" json:"qualityStatus"`
	QualityImage  string `gorm:"size:255" json:"qualityImage"`
	ComplaintText string `gorm:"type:text" json:"complaintText"`
	ComplaintImage string `gorm:"size:255" json:"complaintImage"`
	BalanceImage  string `gorm:"size:255" json:"balanceImage"`
	GSMStatus     string `gorm:"size:20;default:'OK'" json:"gsmStatus"`
	GSMImage      string `gorm:"size:255" json:"gsmImage"`
	ShadeStatus   string `gorm:"size:20;default:'OK'" json:"shadeStatus"`
	ShadeImage    string `gorm:"size:255" json:"shadeImage"`
	WashingStatus string `gorm:"size:20;default:'OK'" json:"washingStatus"`
	WashingImage  string `gorm:"size:255" json:"washingImage"`

	LotInchargeSignature string `gorm:"size:255" json:"lotInchargeSignature"`
	AuthorizedSignature  string `gorm:"size:255" json:"authorizedSignature"`
	MdSignature          string `gorm:"size:255" json:"mdSignature"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InwardReceipt) TableName() string {
	return "inward_receipts"
}

// TotalRecRolls sums received rolls across dia entries, falling back to the
// declared roll count when the received count was never keyed in.
func (r *InwardReceipt) TotalRecRolls() int {
	total := 0
	for _, e := range r.DiaEntries {
		if e.RecRoll > 0 {
			total += e.RecRoll
		} else {
			total += e.Roll
		}
	}
	return total
}

func (r *InwardReceipt) TotalRecWt() float64 {
	total := 0.0
	for _, e := range r.DiaEntries {
		total += e.RecWt
	}
	return total
}

// HasDia reports whether any dia entry matches the given diameter exactly.
func (r *InwardReceipt) HasDia(dia string) bool {
	for _, e := range r.DiaEntries {
		if e.Dia == dia {
			return true
		}
	}
	return false
}
