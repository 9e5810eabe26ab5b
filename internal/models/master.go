package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// CategoryValue is one dropdown entry. Early versions of the app stored bare
// strings; UnmarshalJSON migrates the legacy shape on read so both DB scans and
// request bodies normalize through the same path.
type CategoryValue struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
	GSM   string `json:"gsm"`
}

func (v *CategoryValue) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		v.Name = str
		v.Photo = ""
		v.GSM = ""
		return nil
	}
	type plain CategoryValue
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*v = CategoryValue(obj)
	return nil
}

type CategoryValueList []CategoryValue

func (l CategoryValueList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]CategoryValue{})
	}
	return json.Marshal(l)
}

func (l *CategoryValueList) Scan(value interface{}) error {
	raw, err := jsonColumnBytes(value)
	if err != nil {
		return err
	}
	if raw == nil {
		*l = nil
		return nil
	}
	var values []CategoryValue
	if err := json.Unmarshal(raw, &values); err != nil {
		*l = nil
		return nil
	}
	// Drop entries that carried no usable name at all.
	cleaned := values[:0]
	for _, v := range values {
		if v.Name != "" {
			cleaned = append(cleaned, v)
		}
	}
	*l = cleaned
	return nil
}

// StringList is a JSON column of plain strings (item names, colours).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	raw, err := jsonColumnBytes(value)
	if err != nil {
		return err
	}
	if raw == nil {
		*l = nil
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		*l = nil
		return nil
	}
	*l = values
	return nil
}

func jsonColumnBytes(value interface{}) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return v, nil
	case string:
		if len(v) == 0 {
			return nil, nil
		}
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported JSON column type")
	}
}

type Category struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"size:100;unique;not null" json:"name"`
	Values    CategoryValueList `gorm:"type:json" json:"values"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type Party struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Address      string    `gorm:"type:text" json:"address"`
	MobileNumber string    `gorm:"size:15" json:"mobileNumber"`
	Process      string    `gorm:"size:100" json:"process"`
	GstIn        string    `gorm:"size:20" json:"gstIn"`
	Rate         float64   `gorm:"default:0" json:"rate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ItemGroup struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	GroupName string     `gorm:"size:100;not null" json:"groupName"`
	ItemNames StringList `gorm:"type:json" json:"itemNames"`
	GSM       string     `gorm:"size:20" json:"gsm"`
	Colours   StringList `gorm:"type:json" json:"colours"`
	Rate      float64    `gorm:"default:0" json:"rate"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Lot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LotNumber string    `gorm:"size:50;unique;not null" json:"lotNumber"`
	PartyName string    `gorm:"size:100" json:"partyName"`
	Process   string    `gorm:"size:100" json:"process"`
	Remarks   string    `gorm:"type:text" json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
