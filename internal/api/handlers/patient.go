package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rohits-web03/medrecords/internal/models"
	"github.com/rohits-web03/medrecords/internal/utils"
)

type PatientStore interface {
	FindByID(ctx context.Context, id string) (*models.Patient, error)
	FindByName(ctx context.Context, name string) ([]models.Patient, error)
	FindDetailsByID(ctx context.Context, id string) ([]string, error)
}

type PatientHandler struct {
	patients PatientStore
}

func NewPatientHandler(patients PatientStore) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// POST /api/patient-details
// Details godoc
// @Summary Patient identity and birthdate
// @Tags Patients
// @Accept json
// @Produce json
// @Param body body handlers.PatientSelector true "patient_id"
// @Success 200 {object} handlers.PatientDetails
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/patient-details [post]
func (h *PatientHandler) Details(w http.ResponseWriter, r *http.Request) {
	var input PatientSelector
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	if input.PatientID == "" {
		utils.Error(w, http.StatusBadRequest, "No patient_id provided")
		return
	}

	patient, err := h.patients.FindByID(r.Context(), input.PatientID.String())
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Patient not found")
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, PatientDetails{
		PatientID:   patient.PatientID,
		PatientName: patient.PatientName,
		Birthdate:   models.FormatDatePtr(patient.Birthdate),
	})
}

// Data serves both /api/patientData and /api/addPatientData. Exactly one of
// patient_name or patient_id selects the rows: by name the full rows come
// back, by id only their details.
//
// @Summary Patient rows by name, or details by id
// @Tags Patients
// @Accept json
// @Produce json
// @Param body body handlers.PatientSelector true "patient_name or patient_id"
// @Success 200 {array} handlers.PatientRow
// @Failure 400 {object} utils.ErrorBody
// @Router /api/patientData [post]
// @Router /api/addPatientData [post]
func (h *PatientHandler) Data(w http.ResponseWriter, r *http.Request) {
	var input PatientSelector
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	name := strings.TrimSpace(input.PatientName)
	switch {
	case name == "" && input.PatientID == "":
		utils.Error(w, http.StatusBadRequest, "Invalid request")
	case name != "" && input.PatientID != "":
		utils.Error(w, http.StatusBadRequest, "Provide either patient_name or patient_id, not both")
	case name != "":
		patients, err := h.patients.FindByName(r.Context(), name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		rows := make([]PatientRow, 0, len(patients))
		for _, p := range patients {
			rows = append(rows, PatientRow{
				PatientID:   p.PatientID,
				PatientName: p.PatientName,
				Birthdate:   models.FormatDatePtr(p.Birthdate),
				Details:     p.Details,
			})
		}
		utils.WriteJSON(w, http.StatusOK, rows)
	default:
		details, err := h.patients.FindDetailsByID(r.Context(), input.PatientID.String())
		if err != nil {
			writeError(w, r, err)
			return
		}
		rows := make([]PatientDetailsOnly, 0, len(details))
		for _, d := range details {
			rows = append(rows, PatientDetailsOnly{Details: d})
		}
		utils.WriteJSON(w, http.StatusOK, rows)
	}
}

type PatientSelector struct {
	PatientID   models.PatientID `json:"patient_id"`
	PatientName string           `json:"patient_name"`
}

type PatientDetails struct {
	PatientID   string  `json:"patient_id"`
	PatientName string  `json:"patient_name"`
	Birthdate   *string `json:"birthdate"`
}

type PatientRow struct {
	PatientID   string  `json:"patient_id"`
	PatientName string  `json:"patient_name"`
	Birthdate   *string `json:"birthdate"`
	Details     string  `json:"details"`
}

type PatientDetailsOnly struct {
	Details string `json:"details"`
}
