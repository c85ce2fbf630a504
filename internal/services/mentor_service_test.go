package services_test

import (
	"context"
	"testing"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMentorService_GetMentorByID(t *testing.T) {
	mockRepo := new(MockMentorRepository)
	service := services.NewMentorService(mockRepo)
	ctx := context.Background()

	expected := &models.MentorRecord{ID: 1, FirstName: "Noa"}
	mockRepo.On("GetByID", ctx, 1).Return(expected, nil).Once()

	mentor, err := service.GetMentorByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, mentor)
	mockRepo.AssertExpectations(t)
}

func TestMentorService_GetMentorByID_NotFound(t *testing.T) {
	mockRepo := new(MockMentorRepository)
	service := services.NewMentorService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, 999).Return(nil, apperrors.NotFoundError("mentor", 999)).Once()

	mentor, err := service.GetMentorByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, mentor)
	mockRepo.AssertExpectations(t)
}

func TestMentorService_ListMentors(t *testing.T) {
	mockRepo := new(MockMentorRepository)
	service := services.NewMentorService(mockRepo)
	ctx := context.Background()

	expected := []*models.MentorRecord{{ID: 1}, {ID: 2}}
	mockRepo.On("List", ctx).Return(expected, nil).Once()

	mentors, err := service.ListMentors(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, mentors)
	mockRepo.AssertExpectations(t)
}

func TestMentorService_InvalidateCache(t *testing.T) {
	mockRepo := new(MockMentorRepository)
	mockRepo.On("InvalidateCache").Once()

	services.NewMentorService(mockRepo).InvalidateCache()
	mockRepo.AssertExpectations(t)
}
