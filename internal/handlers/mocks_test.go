package handlers

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockMentorService struct {
	mock.Mock
}

func (m *MockMentorService) GetMentorByID(ctx context.Context, id int) (*models.MentorRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorRecord), args.Error(1)
}

func (m *MockMentorService) ListMentors(ctx context.Context) ([]*models.MentorRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorRecord), args.Error(1)
}

func (m *MockMentorService) InvalidateCache() {
	m.Called()
}

type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) GetCard(ctx context.Context, id int) (*models.CardView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CardView), args.Error(1)
}

func (m *MockEngagementService) ListCards(ctx context.Context) ([]models.CardView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CardView), args.Error(1)
}

func (m *MockEngagementService) GetPanel(ctx context.Context, id int, requester string) (*models.PanelView, error) {
	args := m.Called(ctx, id, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PanelView), args.Error(1)
}

func (m *MockEngagementService) RecordEvents(ctx context.Context, events []models.EngagementEvent, requester string) error {
	return m.Called(ctx, events, requester).Error(0)
}
