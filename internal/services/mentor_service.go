package services

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
)

type MentorService struct {
	repo repository.MentorRepositoryInterface
}

func NewMentorService(repo repository.MentorRepositoryInterface) *MentorService {
	return &MentorService{repo: repo}
}

func (s *MentorService) GetMentorByID(ctx context.Context, id int) (*models.MentorRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MentorService) ListMentors(ctx context.Context) ([]*models.MentorRecord, error) {
	return s.repo.List(ctx)
}

func (s *MentorService) InvalidateCache() {
	s.repo.InvalidateCache()
}
