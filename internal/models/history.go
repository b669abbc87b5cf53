package models

import (
	"gorm.io/datatypes"
)

// History is one visit note. Rows are only ever inserted.
type History struct {
	ID        uint           `json:"-" gorm:"primaryKey;autoIncrement"`
	PatientID string         `json:"patient_id" gorm:"column:patient_id;size:64;not null;index:idx_history_patient_date"`
	Date      datatypes.Date `json:"date" gorm:"column:date;index:idx_history_patient_date"`
	Details   string         `json:"details" gorm:"column:details;type:text;not null"`
}

func (History) TableName() string {
	return "history"
}
