package services_test

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockMentorRepository is a mock implementation of MentorRepositoryInterface
type MockMentorRepository struct {
	mock.Mock
}

func (m *MockMentorRepository) GetByID(ctx context.Context, id int) (*models.MentorRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorRecord), args.Error(1)
}

func (m *MockMentorRepository) List(ctx context.Context) ([]*models.MentorRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorRecord), args.Error(1)
}

func (m *MockMentorRepository) InvalidateCache() {
	m.Called()
}

// MockEventRepository is a mock implementation of EventRepositoryInterface
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Save(ctx context.Context, events []models.EngagementEvent, requester string) error {
	return m.Called(ctx, events, requester).Error(0)
}
