package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of every date the API reads or writes.
const DateLayout = "2006-01-02"

type Patient struct {
	PatientID   string          `json:"patient_id" gorm:"column:patient_id;primaryKey;size:64"`
	PatientName string          `json:"patient_name" gorm:"column:patient_name;size:255;not null;index"`
	Birthdate   *datatypes.Date `json:"birthdate" gorm:"column:birthdate"`
	Details     string          `json:"details" gorm:"column:details;type:text"`
}

func (Patient) TableName() string {
	return "patient"
}

// PatientID accepts either a JSON string or a JSON number, since clients send
// both. Numbers are kept in their literal text form.
type PatientID string

func (id *PatientID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = PatientID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("patient_id must be a string or number: %w", err)
	}
	*id = PatientID(n.String())
	return nil
}

func (id PatientID) String() string {
	return string(id)
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// FormatDatePtr renders d as YYYY-MM-DD, or nil when d is nil.
func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
