package handlers

import (
	"net/http"

	"github.com/rohits-web03/medrecords/internal/utils"
)

// demoNames is the fixed list served by /api/names.
var demoNames = [20]string{
	"Alice", "Bob", "Charlie", "David", "Emma",
	"Frank", "Grace", "Henry", "Ivy", "Jack",
	"Kate", "Liam", "Mia", "Noah", "Olivia",
	"Peter", "Quinn", "Rose", "Sam", "Tina",
}

// GET /api/home
// Home godoc
// @Summary Liveness message
// @Tags Home
// @Accept json
// @Produce json
// @Success 200 {object} utils.MessageBody
// @Router /api/home [get]
func Home(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, http.StatusOK, "Message delivered successfully")
}

// POST /api/home echoes patientName back. A body without the key still
// gets 200, carrying an error message instead.
//
// @Summary Echo patientName
// @Description A body without patientName is answered with 200 and {"error": "Key not found in request"}.
// @Tags Home
// @Accept json
// @Produce json
// @Param body body map[string]interface{} true "Any object carrying patientName"
// @Success 200 {object} map[string]interface{} "patientName echoed, or the missing key error"
// @Failure 400 {object} utils.ErrorBody "Invalid request body"
// @Router /api/home [post]
func EchoPatientName(w http.ResponseWriter, r *http.Request) {
	var input map[string]any
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	name, ok := input["patientName"]
	if !ok {
		utils.Error(w, http.StatusOK, "Key not found in request")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"patientName": name})
}

// GET /api/names
// Names godoc
// @Summary Fixed list of twenty demo names
// @Tags Home
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/names [get]
func Names(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string][]string{"names": demoNames[:]})
}
