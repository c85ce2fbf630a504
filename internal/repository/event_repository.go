package repository

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// EventRepositoryInterface stores engagement events
type EventRepositoryInterface interface {
	Save(ctx context.Context, events []models.EngagementEvent, requester string) error
}

// EventRepository persists engagement events in the event store
type EventRepository struct {
	store EventStore
}

// NewEventRepository creates a new event repository
func NewEventRepository(store EventStore) EventRepositoryInterface {
	return &EventRepository{store: store}
}

// Save stores a batch of events attributed to requester
func (r *EventRepository) Save(ctx context.Context, events []models.EngagementEvent, requester string) error {
	return r.store.InsertEngagementEvents(ctx, events, requester)
}
