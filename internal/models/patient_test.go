package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestPatientID_UnmarshalJSON(t *testing.T) {
	var req struct {
		PatientID PatientID `json:"patient_id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"patient_id":" P1 "}`), &req))
	assert.Equal(t, PatientID("P1"), req.PatientID)

	require.NoError(t, json.Unmarshal([]byte(`{"patient_id":42}`), &req))
	assert.Equal(t, PatientID("42"), req.PatientID)

	require.NoError(t, json.Unmarshal([]byte(`{"patient_id":null}`), &req))
	assert.Equal(t, PatientID(""), req.PatientID)

	assert.Error(t, json.Unmarshal([]byte(`{"patient_id":true}`), &req))
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", FormatDate(d))
	assert.Equal(t, time.UTC, time.Time(d).Location())

	_, err = ParseDate("09/03/2024")
	assert.Error(t, err)
}

func TestFormatDatePtr(t *testing.T) {
	assert.Nil(t, FormatDatePtr(nil))

	d := datatypes.Date(time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC))
	got := FormatDatePtr(&d)
	require.NotNil(t, got)
	assert.Equal(t, "1990-01-02", *got)
}
