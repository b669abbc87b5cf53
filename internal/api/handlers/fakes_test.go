package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rohits-web03/medrecords/internal/models"
	"gorm.io/datatypes"
)

type fakeAuth struct {
	SignupFunc func(ctx context.Context, name, password, email string) error
	LoginFunc  func(ctx context.Context, email, password string) error
}

func (f *fakeAuth) Signup(ctx context.Context, name, password, email string) error {
	return f.SignupFunc(ctx, name, password, email)
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) error {
	return f.LoginFunc(ctx, email, password)
}

type fakePatients struct {
	rows []models.Patient
	err  error
}

func (f *fakePatients) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.rows {
		if p.PatientID == id {
			p := p
			return &p, nil
		}
	}
	return nil, apperr.New(apperr.ErrNotFound, "patient not found")
}

func (f *fakePatients) FindByName(ctx context.Context, name string) ([]models.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Patient
	for _, p := range f.rows {
		if p.PatientName == name {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePatients) FindDetailsByID(ctx context.Context, id string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, p := range f.rows {
		if p.PatientID == id {
			out = append(out, p.Details)
		}
	}
	return out, nil
}

// memoryHistory filters on the inclusive date range like the SQL query does.
type memoryHistory struct {
	mu   sync.Mutex
	rows []models.History
	err  error
}

func (m *memoryHistory) Append(ctx context.Context, h *models.History) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, *h)
	return nil
}

func (m *memoryHistory) ListByPatient(ctx context.Context, patientID string, from, to *datatypes.Date) ([]models.History, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.History
	for _, h := range m.rows {
		d := time.Time(h.Date)
		if h.PatientID != patientID {
			continue
		}
		if from != nil && d.Before(time.Time(*from)) {
			continue
		}
		if to != nil && d.After(time.Time(*to)) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

type fakeSearcher map[string]string

func (f fakeSearcher) Lookup(query string) (map[string]string, error) {
	if query == "" {
		return nil, apperr.New(apperr.ErrBadRequest, "No query provided")
	}
	if query == "xyz" {
		return nil, apperr.New(apperr.ErrNotFound, "No match found")
	}
	return f, nil
}

type fakeChatter struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeChatter) Chat(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}
