package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/otel/mocks"
	reviewMocks "pousada/internal/domains/review/mocks"
	"pousada/internal/domains/review/model"
	"pousada/internal/domains/review/model/dto"
	"pousada/internal/domains/review/service"
	"pousada/shared/cache"
	gDto "pousada/shared/dto"
)

type cacheStub struct{}

func (cacheStub) Save(context.Context, string, any, int) error { return nil }
func (cacheStub) Get(context.Context, string, any) error       { return cache.Nil }
func (cacheStub) Delete(context.Context, string) error         { return nil }
func (cacheStub) Clear(context.Context, string) error          { return nil }

func newService(t *testing.T) (service.Review, *reviewMocks.MockReview) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, cacheStub{}, mockOtel), mockRepo
}

func TestReviewService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateReviewRequest
		setupMock func(repo *reviewMocks.MockReview)
		wantErr   bool
	}{
		{
			name: "new review starts unapproved",
			req: dto.CreateReviewRequest{
				GuestName: "Joao Santos",
				Rating:    5,
				Comment:   "Estadia maravilhosa.",
			},
			setupMock: func(repo *reviewMocks.MockReview) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Cond(func(m model.Review) bool {
						return !m.Approved && m.Rating == 5
					})).
					Return(nil)
			},
		},
		{
			name: "repository error",
			req: dto.CreateReviewRequest{
				GuestName: "Joao Santos",
				Rating:    4,
				Comment:   "Muito bom.",
			},
			setupMock: func(repo *reviewMocks.MockReview) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)
			tt.setupMock(mockRepo)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_GetApproved(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Cond(func(filter gDto.FilterGroup) bool {
			if len(filter.Filters) != 1 {
				return false
			}
			f, ok := filter.Filters[0].(gDto.Filter)
			return ok && f.Field == model.FieldApproved && f.Value == true
		})).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Review{
			{ID: "review-1", GuestName: "Joao Santos", Rating: 5, Approved: true},
		}, nil)

	res, err := svc.GetApproved(context.Background(), gDto.QueryParams{Limit: 10, Page: 1})

	assert.NoError(t, err)
	assert.Len(t, res.Reviews, 1)
	assert.True(t, res.Reviews[0].Approved)
}

func TestReviewService_Update(t *testing.T) {
	approved := true

	tests := []struct {
		name      string
		id        string
		req       dto.UpdateReviewRequest
		setupMock func(repo *reviewMocks.MockReview)
		wantErr   bool
	}{
		{
			name: "approve review",
			id:   "review-1",
			req:  dto.UpdateReviewRequest{Approved: &approved},
			setupMock: func(repo *reviewMocks.MockReview) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "empty request is rejected",
			id:        "review-1",
			req:       dto.UpdateReviewRequest{},
			setupMock: func(_ *reviewMocks.MockReview) {},
			wantErr:   true,
		},
		{
			name: "not found",
			id:   "missing",
			req:  dto.UpdateReviewRequest{Approved: &approved},
			setupMock: func(repo *reviewMocks.MockReview) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)
			tt.setupMock(mockRepo)

			err := svc.Update(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
