package repositories

import (
	"context"

	"github.com/rohits-web03/medrecords/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append inserts one history row in its own auto-committed statement.
func (r *HistoryRepository) Append(ctx context.Context, h *models.History) error {
	return translateError(r.db.WithContext(ctx).Create(h).Error, "history")
}

// ListByPatient returns the rows of one patient dated within [from, to].
// A nil bound leaves that side open. Rows come back in store order.
func (r *HistoryRepository) ListByPatient(ctx context.Context, patientID string, from, to *datatypes.Date) ([]models.History, error) {
	q := r.db.WithContext(ctx).
		Select("details", "date").
		Where("patient_id = ?", patientID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var rows []models.History
	if err := q.Find(&rows).Error; err != nil {
		return nil, translateError(err, "history")
	}
	return rows, nil
}
