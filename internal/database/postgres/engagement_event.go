package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"go.uber.org/zap"
)

const foreignKeyViolation = "23503"

// InsertEngagementEvents stores a batch of events in one round trip.
// requester may be empty for anonymous visitors.
func (c *Client) InsertEngagementEvents(ctx context.Context, events []models.EngagementEvent, requester string) error {
	if len(events) == 0 {
		return nil
	}

	start := time.Now()
	operation := "insertEngagementEvents"

	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(
			`INSERT INTO engagement_events (mentor_id, event_type, requester, occurred_at)
			 VALUES ($1, $2, NULLIF($3, ''), $4)`,
			e.MentorID, e.Type, requester, eventTime(e.Timestamp, start),
		)
	}

	err := c.pool.SendBatch(ctx, batch).Close()
	duration := metrics.MeasureDuration(start)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		recordMetrics(operation, "rejected", duration)
		return apperrors.InvalidInputError("mentorId", "unknown mentor")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return fmt.Errorf("failed to insert engagement events: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("count", len(events)))
	return nil
}

// eventTime parses a client RFC 3339 timestamp, falling back to now
func eventTime(ts string, now time.Time) time.Time {
	if ts == "" {
		return now
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return now
	}
	return t
}
