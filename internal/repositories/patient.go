package repositories

import (
	"context"

	"github.com/rohits-web03/medrecords/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// ListNames reads every (patient_id, patient_name) pair in one query.
func (r *PatientRepository) ListNames(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Select("patient_id", "patient_name").
		Find(&patients).Error
	if err != nil {
		return nil, translateError(err, "patient")
	}
	return patients, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).Where("patient_id = ?", id).Take(&patient).Error; err != nil {
		return nil, translateError(err, "patient")
	}
	return &patient, nil
}

// FindByName returns every full row whose name matches exactly.
func (r *PatientRepository) FindByName(ctx context.Context, name string) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.WithContext(ctx).Where("patient_name = ?", name).Find(&patients).Error; err != nil {
		return nil, translateError(err, "patient")
	}
	return patients, nil
}

// FindDetailsByID returns only the details column of the matching rows.
func (r *PatientRepository) FindDetailsByID(ctx context.Context, id string) ([]string, error) {
	var details []string
	err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("patient_id = ?", id).
		Pluck("details", &details).Error
	if err != nil {
		return nil, translateError(err, "patient")
	}
	return details, nil
}

// Upsert inserts patients, overwriting rows that share a patient_id.
func (r *PatientRepository) Upsert(ctx context.Context, patients []models.Patient) error {
	if len(patients) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "patient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"patient_name", "birthdate", "details"}),
		}).
		Create(&patients).Error
	return translateError(err, "patient")
}
