package service_test

import (
	"context"
	"testing"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
	"github.com/aditya-2529/portfolio/internal/portfolio/service"
	"github.com/aditya-2529/portfolio/internal/portfolio/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemarkService_CreateIsNeverApproved(t *testing.T) {
	ctx := context.Background()
	store := &mocks.RemarkStore{}
	store.On("CreateRemark", ctx, mock.MatchedBy(func(r *domain.Remark) bool {
		return !r.IsApproved && r.ClientName == "A" && r.Rating == 5
	})).Return(nil)

	svc := service.NewRemarkService(store, nil)
	r, err := svc.Create(ctx, domain.RemarkInput{ClientName: " A ", Rating: 5, Comment: "x"})
	require.NoError(t, err)
	assert.False(t, r.IsApproved)
	store.AssertExpectations(t)
}

func TestRemarkService_CreateRejectsRating(t *testing.T) {
	store := &mocks.RemarkStore{}
	svc := service.NewRemarkService(store, nil)

	for _, rating := range []int{0, 6} {
		_, err := svc.Create(context.Background(), domain.RemarkInput{ClientName: "A", Rating: rating, Comment: "x"})
		require.ErrorIs(t, err, domain.ErrInvalidRating)
	}
	store.AssertNotCalled(t, "CreateRemark", mock.Anything, mock.Anything)
}

func TestRemarkService_SetApprovalIsExplicit(t *testing.T) {
	ctx := context.Background()
	store := &mocks.RemarkStore{}
	store.On("SetRemarkApproval", ctx, "r1", false).Return(&domain.Remark{ID: "r1", IsApproved: false}, nil)

	svc := service.NewRemarkService(store, nil)
	r, err := svc.SetApproval(ctx, "r1", false)
	require.NoError(t, err)
	assert.False(t, r.IsApproved)
	store.AssertExpectations(t)
}

func TestRemarkService_SetApprovalNotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.RemarkStore{}
	store.On("SetRemarkApproval", ctx, "nope", true).Return(nil, domain.ErrRemarkNotFound)

	svc := service.NewRemarkService(store, nil)
	_, err := svc.SetApproval(ctx, "nope", true)
	require.ErrorIs(t, err, domain.ErrRemarkNotFound)
}

func TestRemarkService_ListApproved(t *testing.T) {
	ctx := context.Background()
	store := &mocks.RemarkStore{}
	store.On("ListRemarks", ctx).Return([]domain.Remark{
		{ID: "3", IsApproved: true},
		{ID: "2", IsApproved: false},
		{ID: "1", IsApproved: true},
	}, nil)

	svc := service.NewRemarkService(store, nil)
	items, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
}
