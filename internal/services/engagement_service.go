package services

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/engagement"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// EngagementService turns stored mentors into card and panel views
type EngagementService struct {
	mentorRepo repository.MentorRepositoryInterface
	eventRepo  repository.EventRepositoryInterface
	presenter  *engagement.Presenter
}

// NewEngagementService creates the service. eventRepo may be nil, in which
// case events are only counted.
func NewEngagementService(
	mentorRepo repository.MentorRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	presenter *engagement.Presenter,
) *EngagementService {
	return &EngagementService{
		mentorRepo: mentorRepo,
		eventRepo:  eventRepo,
		presenter:  presenter,
	}
}

// GetCard renders the grid card of one mentor
func (s *EngagementService) GetCard(ctx context.Context, id int) (*models.CardView, error) {
	ctx, span := tracing.StartSpan(ctx, "engagement.GetCard")
	defer span.End()
	span.SetAttributes(attribute.Int("mentor.id", id))

	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	card := s.presenter.Card(mentor)
	metrics.MentorViews.WithLabelValues("card", card.Direction.TextDirection).Inc()
	return &card, nil
}

// ListCards renders every visible mentor as a card
func (s *EngagementService) ListCards(ctx context.Context) ([]models.CardView, error) {
	ctx, span := tracing.StartSpan(ctx, "engagement.ListCards")
	defer span.End()

	mentors, err := s.mentorRepo.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	cards := make([]models.CardView, 0, len(mentors))
	for _, m := range mentors {
		card := s.presenter.Card(m)
		metrics.MentorViews.WithLabelValues("card", card.Direction.TextDirection).Inc()
		cards = append(cards, card)
	}
	span.SetAttributes(attribute.Int("mentor.count", len(cards)))
	return cards, nil
}

// GetPanel renders the detail panel, personalised for the requester when known
func (s *EngagementService) GetPanel(ctx context.Context, id int, requesterFirstName string) (*models.PanelView, error) {
	ctx, span := tracing.StartSpan(ctx, "engagement.GetPanel")
	defer span.End()
	span.SetAttributes(
		attribute.Int("mentor.id", id),
		attribute.Bool("requester.known", requesterFirstName != ""),
	)

	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	panel := s.presenter.Panel(mentor, requesterFirstName)
	metrics.MentorViews.WithLabelValues("panel", panel.Direction.TextDirection).Inc()

	if !panel.Links.HasWhatsApp() && mentor.ContactPhone() != "" {
		logger.Debug("Mentor phone could not be normalized",
			zap.Int("mentor_id", id))
	}

	return &panel, nil
}

// RecordEvents counts and stores a batch of engagement events
func (s *EngagementService) RecordEvents(ctx context.Context, events []models.EngagementEvent, requesterFirstName string) error {
	ctx, span := tracing.StartSpan(ctx, "engagement.RecordEvents")
	defer span.End()
	span.SetAttributes(attribute.Int("event.count", len(events)))

	for _, e := range events {
		metrics.EngagementEvents.WithLabelValues(e.Type).Inc()
	}

	if s.eventRepo == nil {
		return nil
	}

	if err := s.eventRepo.Save(ctx, events, requesterFirstName); err != nil {
		span.RecordError(err)
		logger.Error("Failed to store engagement events",
			zap.Int("count", len(events)),
			zap.Error(err))
		return err
	}
	return nil
}
