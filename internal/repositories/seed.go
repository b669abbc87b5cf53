package repositories

import (
	"fmt"
	"os"
	"strings"

	"github.com/rohits-web03/medrecords/internal/models"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Patients []seedPatient `yaml:"patients"`
}

type seedPatient struct {
	PatientID   string `yaml:"patient_id"`
	PatientName string `yaml:"patient_name"`
	Birthdate   string `yaml:"birthdate"`
	Details     string `yaml:"details"`
}

// LoadSeedFile reads patient fixtures from a YAML document of the form
//
//	patients:
//	  - patient_id: "P1"
//	    patient_name: Alice
//	    birthdate: "1990-01-02"
//	    details: "..."
func LoadSeedFile(path string) ([]models.Patient, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) ([]models.Patient, error) {
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Patients))
	patients := make([]models.Patient, 0, len(doc.Patients))
	for i, p := range doc.Patients {
		id := strings.TrimSpace(p.PatientID)
		if id == "" || strings.TrimSpace(p.PatientName) == "" {
			return nil, fmt.Errorf("seed patient %d: patient_id and patient_name are required", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("seed patient %d: duplicate patient_id %q", i, id)
		}
		seen[id] = struct{}{}

		patient := models.Patient{
			PatientID:   id,
			PatientName: p.PatientName,
			Details:     p.Details,
		}
		if p.Birthdate != "" {
			d, err := models.ParseDate(p.Birthdate)
			if err != nil {
				return nil, fmt.Errorf("seed patient %q: birthdate: %w", id, err)
			}
			patient.Birthdate = &d
		}
		patients = append(patients, patient)
	}
	return patients, nil
}
