// Package index holds the in-memory patient lookup table.
//
// An Index is a snapshot of the patient table taken once, when the server
// starts. It is never refreshed or invalidated afterwards: patients written to
// the store later stay unsearchable until the process is restarted. Because a
// built Index is never mutated it is safe for concurrent readers without
// locking.
package index

import (
	"context"
	"strings"

	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rohits-web03/medrecords/internal/models"
	"github.com/rs/zerolog"
)

// Source is the bulk read the index is built from.
type Source interface {
	ListNames(ctx context.Context) ([]models.Patient, error)
}

type entry struct {
	id        string
	name      string
	lowerID   string
	lowerName string
}

type Index struct {
	entries []entry
}

// Build reads every patient from src in one query and returns the snapshot.
// A failing read is returned to the caller, who is expected to abort startup.
func Build(ctx context.Context, src Source, logger zerolog.Logger) (*Index, error) {
	patients, err := src.ListNames(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrUpstreamUnavailable, err, "build patient index: "+err.Error())
	}

	names := make(map[string]string, len(patients))
	for _, p := range patients {
		if _, dup := names[p.PatientID]; dup {
			logger.Warn().Str("patient_id", p.PatientID).Msg("duplicate patient id while building index, keeping last")
		}
		names[p.PatientID] = p.PatientName
	}

	ix := New(names)
	logger.Info().Int("patients", ix.Len()).Msg("patient index built")
	return ix, nil
}

// New builds an index from a patient_id to patient_name mapping. The map is
// copied; later changes to it do not reach the index.
func New(names map[string]string) *Index {
	entries := make([]entry, 0, len(names))
	for id, name := range names {
		entries = append(entries, entry{
			id:        id,
			name:      name,
			lowerID:   strings.ToLower(id),
			lowerName: strings.ToLower(name),
		})
	}
	return &Index{entries: entries}
}

func (ix *Index) Len() int {
	return len(ix.entries)
}

// Lookup returns every patient whose id or name contains query, ignoring
// case. Result order is not defined.
//
// A blank query is a bad request; a query matching nobody is not found.
// Surrounding whitespace only decides blankness and is otherwise matched as
// typed.
func (ix *Index) Lookup(query string) (map[string]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.New(apperr.ErrBadRequest, "No query provided")
	}
	q := strings.ToLower(query)

	matches := make(map[string]string)
	for _, e := range ix.entries {
		if strings.Contains(e.lowerID, q) || strings.Contains(e.lowerName, q) {
			matches[e.id] = e.name
		}
	}
	if len(matches) == 0 {
		return nil, apperr.New(apperr.ErrNotFound, "No match found")
	}
	return matches, nil
}
