package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/studybananas/internal/models"
)

// MockContactRepository is a mock implementation of repository.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Load(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactRepository) Save(ctx context.Context, contacts []models.Contact) error {
	args := m.Called(ctx, contacts)
	return args.Error(0)
}

// MockTaskRepository is a mock implementation of repository.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Load(ctx context.Context) ([]models.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) Save(ctx context.Context, tasks []models.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

// MockFlashcardRepository is a mock implementation of repository.FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) Load(ctx context.Context) ([]*models.FlashcardSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FlashcardSet), args.Error(1)
}

func (m *MockFlashcardRepository) Save(ctx context.Context, sets []*models.FlashcardSet) error {
	args := m.Called(ctx, sets)
	return args.Error(0)
}
