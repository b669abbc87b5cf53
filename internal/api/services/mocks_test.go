package services

import (
	"context"
	"sync"

	"github.com/ollama/ollama/api"
	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rohits-web03/medrecords/internal/models"
	"github.com/stretchr/testify/mock"
)

var _ UserStore = (*memoryUserStore)(nil)

// memoryUserStore keeps users in a slice and enforces unique names and emails
// the way the table's indexes do.
type memoryUserStore struct {
	mu    sync.Mutex
	users []models.User

	CreateErr error
	FindErr   error
}

func (m *memoryUserStore) FindByName(ctx context.Context, name string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, u := range m.users {
		if u.Name == name {
			u := u
			return &u, nil
		}
	}
	return nil, apperr.New(apperr.ErrNotFound, "user not found")
}

func (m *memoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, apperr.New(apperr.ErrNotFound, "user not found")
}

func (m *memoryUserStore) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	for _, u := range m.users {
		if u.Name == user.Name || u.Email == user.Email {
			return apperr.New(apperr.ErrConflict, "user already exists")
		}
	}
	user.ID = uint(len(m.users) + 1)
	m.users = append(m.users, *user)
	return nil
}

var _ ChatClient = (*mockChatClient)(nil)

type mockChatClient struct {
	mock.Mock
}

func (m *mockChatClient) Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error {
	args := m.Called(ctx, req)
	if fragments, ok := args.Get(0).([]string); ok {
		for _, f := range fragments {
			if err := fn(api.ChatResponse{Message: api.Message{Role: "assistant", Content: f}}); err != nil {
				return err
			}
		}
	}
	return args.Error(1)
}
