package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// FlexInt mirrors FlexFloat for set numbers, which old dispatch notes stored
// as strings.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var num int
	if err := json.Unmarshal(data, &num); err == nil {
		*i = FlexInt(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		*i = 0
		return nil
	}
	num, err := strconv.Atoi(str)
	if err != nil {
		*i = 0
		return nil
	}
	*i = FlexInt(num)
	return nil
}

type OutwardColour struct {
	Colour     string    `json:"colour"`
	Weight     FlexFloat `json:"weight"`
	NoOfRolls  int       `json:"no_of_rolls"`
	RollWeight FlexFloat `json:"roll_weight"`
}

// OutwardItem is a tagged variant. Two incompatible shapes exist in historical
// dispatch notes:
//
//	flat:    {set_no, colour, selected_weight, roll_weight, no_of_rolls}
//	grouped: {set_no, colours: [{colour, weight, no_of_rolls, roll_weight}], total_weight}
//
// An item with a non-empty Colours slice is grouped; otherwise it is flat.
// Reports never touch the shape-specific fields directly: they go through
// Lines, ItemWeight and ItemRolls.
type OutwardItem struct {
	SetNo FlexInt `json:"set_no"`

	// flat shape
	Colour         string    `json:"colour,omitempty"`
	SelectedWeight FlexFloat `json:"selected_weight,omitempty"`
	RollWeight     FlexFloat `json:"roll_weight,omitempty"`
	NoOfRolls      int       `json:"no_of_rolls,omitempty"`

	// grouped shape
	Colours     []OutwardColour `json:"colours,omitempty"`
	TotalWeight FlexFloat       `json:"total_weight,omitempty"`
}

func (it OutwardItem) IsGrouped() bool {
	return len(it.Colours) > 0
}

// ConsumptionLine is the normalized view of one colour consumed from one set.
type ConsumptionLine struct {
	SetNo  int
	Colour string
	Weight float64
	Rolls  int
}

func (it OutwardItem) Lines() []ConsumptionLine {
	if it.IsGrouped() {
		lines := make([]ConsumptionLine, 0, len(it.Colours))
		for _, col := range it.Colours {
			lines = append(lines, ConsumptionLine{
				SetNo:  int(it.SetNo),
				Colour: col.Colour,
				Weight: float64(col.Weight),
				Rolls:  col.NoOfRolls,
			})
		}
		return lines
	}
	return []ConsumptionLine{{
		SetNo:  int(it.SetNo),
		Colour: it.Colour,
		Weight: float64(it.SelectedWeight),
		Rolls:  it.NoOfRolls,
	}}
}

// ItemWeight is the total weight this item dispatched, regardless of shape.
func (it OutwardItem) ItemWeight() float64 {
	if it.IsGrouped() {
		return float64(it.TotalWeight)
	}
	return float64(it.SelectedWeight)
}

func (it OutwardItem) ItemRolls() int {
	total := 0
	for _, line := range it.Lines() {
		total += line.Rolls
	}
	return total
}

type OutwardItemList []OutwardItem

func (l OutwardItemList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *OutwardItemList) Scan(value interface{}) error {
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
		return errors.New("unsupported outward items column type")
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	var items []OutwardItem
	if err := json.Unmarshal(raw, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

type OutwardDispatch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `json:"user_id"`
	DcNo      string    `gorm:"size:50;unique;not null" json:"dcNo"`
	LotName   string    `gorm:"size:100;not null" json:"lotName"`
	DateTime  time.Time `gorm:"index;not null" json:"dateTime"`
	Dia       string    `gorm:"size:20;not null" json:"dia"`
	LotNo     string    `gorm:"size:50;index;not null" json:"lotNo"`
	PartyName string    `gorm:"size:100;not null" json:"partyName"`
	Process   string    `gorm:"size:100" json:"process"`
	Address   string    `gorm:"type:text" json:"address"`
	VehicleNo string    `gorm:"size:30" json:"vehicleNo"`
	InTime    string    `gorm:"size:20" json:"inTime"`
	OutTime   string    `gorm:"size:20" json:"outTime"`

	Items OutwardItemList `gorm:"type:json" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OutwardDispatch) TableName() string {
	return "outward_dispatches"
}

func (d *OutwardDispatch) DeliveredWeight() float64 {
	total := 0.0
	for _, it := range d.Items {
		total += it.ItemWeight()
	}
	return total
}

func (d *OutwardDispatch) DeliveredRolls() int {
	total := 0
	for _, it := range d.Items {
		total += it.ItemRolls()
	}
	return total
}
