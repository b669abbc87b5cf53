package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rohits-web03/medrecords/internal/models"
	"github.com/rohits-web03/medrecords/internal/utils"
	"gorm.io/datatypes"
)

type HistoryStore interface {
	Append(ctx context.Context, h *models.History) error
	ListByPatient(ctx context.Context, patientID string, from, to *datatypes.Date) ([]models.History, error)
}

type HistoryHandler struct {
	history HistoryStore
	now     func() time.Time
}

// NewHistoryHandler uses now to date history saved without an explicit date.
func NewHistoryHandler(history HistoryStore, now func() time.Time) *HistoryHandler {
	if now == nil {
		now = time.Now
	}
	return &HistoryHandler{history: history, now: now}
}

// POST /api/patientHistory
// List godoc
// @Summary Visit history of a patient within an inclusive date range
// @Tags History
// @Accept json
// @Produce json
// @Param body body handlers.HistoryQuery true "patient_id, start_date, end_date (YYYY-MM-DD)"
// @Success 200 {array} handlers.HistoryEntry
// @Failure 400 {object} utils.ErrorBody
// @Router /api/patientHistory [post]
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var input HistoryQuery
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	if input.PatientID == "" {
		utils.Error(w, http.StatusBadRequest, "Invalid request")
		return
	}

	from, err := optionalDate(input.StartDate)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	to, err := optionalDate(input.EndDate)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	rows, err := h.history.ListByPatient(r.Context(), input.PatientID.String(), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries := make([]HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, HistoryEntry{
			Details: row.Details,
			Date:    models.FormatDate(row.Date),
		})
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}

// POST /api/savePatientHistory
// Save godoc
// @Summary Append a history note
// @Tags History
// @Accept json
// @Produce json
// @Param body body handlers.HistoryInput true "patient_id, historyDetails, optional date"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Router /api/savePatientHistory [post]
func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input HistoryInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	if input.PatientID == "" || strings.TrimSpace(input.Details) == "" {
		utils.Error(w, http.StatusBadRequest, "Invalid request")
		return
	}

	date, err := optionalDate(input.Date)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if date == nil {
		y, m, d := h.now().UTC().Date()
		today := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
		date = &today
	}

	row := &models.History{
		PatientID: input.PatientID.String(),
		Date:      *date,
		Details:   input.Details,
	}
	if err := h.history.Append(r.Context(), row); err != nil {
		writeError(w, r, err)
		return
	}
	utils.Message(w, http.StatusOK, "History saved successfully")
}

func optionalDate(s string) (*datatypes.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type HistoryQuery struct {
	PatientID models.PatientID `json:"patient_id"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
}

type HistoryInput struct {
	PatientID models.PatientID `json:"patient_id"`
	Details   string           `json:"historyDetails"`
	Date      string           `json:"date"`
}

type HistoryEntry struct {
	Details string `json:"details"`
	Date    string `json:"date"`
}
