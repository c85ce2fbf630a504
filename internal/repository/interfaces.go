package repository

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// MentorStore is the persistent mentor storage
type MentorStore interface {
	GetMentorByID(ctx context.Context, id int) (*models.MentorRecord, error)
	ListMentors(ctx context.Context) ([]*models.MentorRecord, error)
}

// EventStore persists engagement events
type EventStore interface {
	InsertEngagementEvents(ctx context.Context, events []models.EngagementEvent, requester string) error
}

// MentorCacheInterface is the read-through cache in front of MentorStore
type MentorCacheInterface interface {
	GetMentorByID(ctx context.Context, id int) (*models.MentorRecord, error)
	Invalidate(id int)
	Flush()
}
