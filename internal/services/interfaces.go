package services

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// MentorServiceInterface defines the interface for mentor service operations
type MentorServiceInterface interface {
	GetMentorByID(ctx context.Context, id int) (*models.MentorRecord, error)
	ListMentors(ctx context.Context) ([]*models.MentorRecord, error)
	InvalidateCache()
}

// EngagementServiceInterface renders mentor views and records contact engagement
type EngagementServiceInterface interface {
	GetCard(ctx context.Context, id int) (*models.CardView, error)
	ListCards(ctx context.Context) ([]models.CardView, error)
	GetPanel(ctx context.Context, id int, requesterFirstName string) (*models.PanelView, error)
	RecordEvents(ctx context.Context, events []models.EngagementEvent, requesterFirstName string) error
}

var (
	_ MentorServiceInterface     = (*MentorService)(nil)
	_ EngagementServiceInterface = (*EngagementService)(nil)
)
