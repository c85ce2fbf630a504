package cache_test

import (
	"context"
	"testing"

	"github.com/mentorhub/mentorhub-api/internal/cache"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDataSource struct {
	mock.Mock
}

func (m *MockDataSource) GetMentorByID(ctx context.Context, id int) (*models.MentorRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorRecord), args.Error(1)
}

func TestMentorCache_LoadsOnceThenHits(t *testing.T) {
	ctx := context.Background()
	source := new(MockDataSource)
	noa := &models.MentorRecord{ID: 42, FirstName: "Noa"}
	source.On("GetMentorByID", ctx, 42).Return(noa, nil).Once()

	mc := cache.NewMentorCache(source, 60, false)

	first, err := mc.GetMentorByID(ctx, 42)
	require.NoError(t, err)
	second, err := mc.GetMentorByID(ctx, 42)
	require.NoError(t, err)

	assert.Same(t, noa, first)
	assert.Same(t, noa, second)
	assert.Equal(t, 1, mc.Size())
	source.AssertExpectations(t)
}

func TestMentorCache_DoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	source := new(MockDataSource)
	source.On("GetMentorByID", ctx, 7).Return(nil, apperrors.NotFoundError("mentor", 7)).Twice()

	mc := cache.NewMentorCache(source, 60, false)

	for i := 0; i < 2; i++ {
		_, err := mc.GetMentorByID(ctx, 7)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	}
	assert.Equal(t, 0, mc.Size())
	source.AssertExpectations(t)
}

func TestMentorCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	source := new(MockDataSource)
	source.On("GetMentorByID", ctx, 1).Return(&models.MentorRecord{ID: 1}, nil).Twice()

	mc := cache.NewMentorCache(source, 60, false)

	_, err := mc.GetMentorByID(ctx, 1)
	require.NoError(t, err)
	mc.Invalidate(1)
	_, err = mc.GetMentorByID(ctx, 1)
	require.NoError(t, err)

	mc.Flush()
	assert.Equal(t, 0, mc.Size())
	source.AssertExpectations(t)
}

func TestMentorCache_Disabled(t *testing.T) {
	ctx := context.Background()
	source := new(MockDataSource)
	source.On("GetMentorByID", ctx, 1).Return(&models.MentorRecord{ID: 1}, nil).Twice()

	mc := cache.NewMentorCache(source, 60, true)
	_, _ = mc.GetMentorByID(ctx, 1)
	_, _ = mc.GetMentorByID(ctx, 1)

	assert.Equal(t, 0, mc.Size())
	source.AssertExpectations(t)
}
