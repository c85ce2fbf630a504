package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"go.uber.org/zap"
)

// MentorRow represents a mentor row from the database
type MentorRow struct {
	ID                   int
	FirstName            string
	LastName             string
	HeadlineTech         string
	YearsOfExperience    *int
	About                string
	Email                *string
	Phone                *string
	LinkedinURL          *string
	AvatarURL            *string
	ProgrammingLanguages []string
	Technologies         []string
	Domains              []string
	IsVisible            bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

const mentorColumns = `
	m.id, m.first_name, m.last_name, m.headline_tech, m.years_of_experience,
	m.about, m.email, m.phone, m.linkedin_url, m.avatar_url,
	m.programming_languages, m.technologies, m.domains,
	m.is_visible, m.created_at, m.updated_at`

func (r *MentorRow) scanTargets() []any {
	return []any{
		&r.ID, &r.FirstName, &r.LastName, &r.HeadlineTech, &r.YearsOfExperience,
		&r.About, &r.Email, &r.Phone, &r.LinkedinURL, &r.AvatarURL,
		&r.ProgrammingLanguages, &r.Technologies, &r.Domains,
		&r.IsVisible, &r.CreatedAt, &r.UpdatedAt,
	}
}

// GetMentorByID fetches a single visible mentor
func (c *Client) GetMentorByID(ctx context.Context, id int) (*models.MentorRecord, error) {
	start := time.Now()
	operation := "getMentorByID"

	query := `SELECT ` + mentorColumns + ` FROM mentors m WHERE m.id = $1 AND m.is_visible`

	var row MentorRow
	err := c.pool.QueryRow(ctx, query, id).Scan(row.scanTargets()...)
	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("mentor", id)
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query mentor: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("mentor_id", id))
	return rowToMentor(&row), nil
}

// ListMentors fetches all visible mentors ordered by id
func (c *Client) ListMentors(ctx context.Context) ([]*models.MentorRecord, error) {
	start := time.Now()
	operation := "listMentors"

	query := `SELECT ` + mentorColumns + ` FROM mentors m WHERE m.is_visible ORDER BY m.id`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query mentors: %w", err)
	}
	defer rows.Close()

	mentors := make([]*models.MentorRecord, 0)
	for rows.Next() {
		var row MentorRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
			return nil, fmt.Errorf("failed to scan mentor row: %w", err)
		}
		mentors = append(mentors, rowToMentor(&row))
	}

	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("error iterating mentor rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("count", len(mentors)))
	return mentors, nil
}

// rowToMentor converts a database row to the API record
func rowToMentor(row *MentorRow) *models.MentorRecord {
	return &models.MentorRecord{
		ID:                row.ID,
		FirstName:         row.FirstName,
		LastName:          row.LastName,
		HeadlineTech:      row.HeadlineTech,
		YearsOfExperience: row.YearsOfExperience,
		About:             row.About,
		Email:             deref(row.Email),
		Phone:             deref(row.Phone),
		LinkedinURL:       deref(row.LinkedinURL),
		AvatarURL:         deref(row.AvatarURL),
		Languages:         models.StringList(row.ProgrammingLanguages),
		Technologies:      models.StringList(row.Technologies),
		Domains:           models.StringList(row.Domains),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
