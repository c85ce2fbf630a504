package repository

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// MentorRepositoryInterface defines the interface for mentor data access operations.
type MentorRepositoryInterface interface {
	GetByID(ctx context.Context, id int) (*models.MentorRecord, error)
	List(ctx context.Context) ([]*models.MentorRecord, error)
	InvalidateCache()
}

// MentorRepository reads single mentors through the cache and lists from the store
type MentorRepository struct {
	store       MentorStore
	mentorCache MentorCacheInterface
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(store MentorStore, mentorCache MentorCacheInterface) MentorRepositoryInterface {
	return &MentorRepository{
		store:       store,
		mentorCache: mentorCache,
	}
}

// GetByID retrieves a mentor by numeric ID
func (r *MentorRepository) GetByID(ctx context.Context, id int) (*models.MentorRecord, error) {
	return r.mentorCache.GetMentorByID(ctx, id)
}

// List retrieves every visible mentor
func (r *MentorRepository) List(ctx context.Context) ([]*models.MentorRecord, error) {
	return r.store.ListMentors(ctx)
}

// InvalidateCache drops every cached mentor
func (r *MentorRepository) InvalidateCache() {
	r.mentorCache.Flush()
}
