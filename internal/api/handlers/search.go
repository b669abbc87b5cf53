package handlers

import (
	"net/http"

	"github.com/rohits-web03/medrecords/internal/utils"
)

type Searcher interface {
	Lookup(query string) (map[string]string, error)
}

type SearchHandler struct {
	index Searcher
}

func NewSearchHandler(index Searcher) *SearchHandler {
	return &SearchHandler{index: index}
}

// POST /api/search
// Search godoc
// @Summary Search patients by id or name
// @Description Case-insensitive substring match against the index built at startup.
// @Tags Patients
// @Accept json
// @Produce json
// @Param body body handlers.SearchInput true "Query"
// @Success 200 {object} map[string]string "patient_id to patient_name"
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/search [post]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var input SearchInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	matches, err := h.index.Lookup(input.Query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, matches)
}

type SearchInput struct {
	Query string `json:"query"`
}
