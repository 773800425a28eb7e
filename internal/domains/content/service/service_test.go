package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/otel/mocks"
	contentMocks "pousada/internal/domains/content/mocks"
	"pousada/internal/domains/content/model"
	"pousada/internal/domains/content/model/dto"
	"pousada/internal/domains/content/service"
	"pousada/shared/cache"
	"pousada/shared/failure"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

type cacheStub struct {
	getFn func(ctx context.Context, key string, value any) error
}

func (c *cacheStub) Save(context.Context, string, any, int) error { return nil }

func (c *cacheStub) Get(ctx context.Context, key string, value any) error {
	if c.getFn != nil {
		return c.getFn(ctx, key, value)
	}
	return cache.Nil
}

func (c *cacheStub) Delete(context.Context, string) error { return nil }
func (c *cacheStub) Clear(context.Context, string) error  { return nil }

func publishedContent() model.Content {
	return model.Content{
		ID:        "content-1",
		Slug:      "about",
		Title:     "Sobre a Pousada",
		Body:      "Uma pousada aconchegante na serra.",
		Published: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func newService(t *testing.T, cacheGet func(ctx context.Context, key string, value any) error) (service.Content, *contentMocks.MockContent) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := contentMocks.NewMockContent(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, &cacheStub{getFn: cacheGet}, mockOtel), mockRepo
}

func TestContentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateContentRequest
		setupMock func(repo *contentMocks.MockContent)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateContentRequest{
				Slug:      "about",
				Title:     "Sobre a Pousada",
				Body:      "Uma pousada aconchegante na serra.",
				Published: true,
			},
			setupMock: func(repo *contentMocks.MockContent) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate slug conflicts",
			req: dto.CreateContentRequest{
				Slug:  "about",
				Title: "Sobre a Pousada",
				Body:  "Texto.",
			},
			setupMock: func(repo *contentMocks.MockContent) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req: dto.CreateContentRequest{
				Slug:  "about",
				Title: "Sobre a Pousada",
				Body:  "Texto.",
			},
			setupMock: func(repo *contentMocks.MockContent) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t, nil)
			tt.setupMock(mockRepo)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentService_GetBySlug(t *testing.T) {
	tests := []struct {
		name      string
		slug      string
		cacheGet  func(ctx context.Context, key string, value any) error
		setupMock func(repo *contentMocks.MockContent)
		wantErr   bool
	}{
		{
			name: "cache miss, published content found",
			slug: "about",
			setupMock: func(repo *contentMocks.MockContent) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(publishedContent(), nil)
			},
		},
		{
			name: "unpublished content is hidden",
			slug: "draft",
			setupMock: func(repo *contentMocks.MockContent) {
				draft := publishedContent()
				draft.Published = false

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(draft, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown slug",
			slug: "missing",
			setupMock: func(repo *contentMocks.MockContent) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Content{}, nil)
			},
			wantErr: true,
		},
		{
			name: "cache hit skips repository",
			slug: "about",
			cacheGet: func(_ context.Context, _ string, value any) error {
				res, _ := value.(*dto.ContentResponse)
				res.ID = "content-1"
				return nil
			},
			setupMock: func(_ *contentMocks.MockContent) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t, tt.cacheGet)
			tt.setupMock(mockRepo)

			res, err := svc.GetBySlug(context.Background(), tt.slug)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "content-1", res.ID)
		})
	}
}

func TestContentService_Update(t *testing.T) {
	published := true

	tests := []struct {
		name      string
		id        string
		req       dto.UpdateContentRequest
		setupMock func(repo *contentMocks.MockContent)
		wantErr   bool
	}{
		{
			name: "successful update",
			id:   "content-1",
			req:  dto.UpdateContentRequest{Title: "Novo titulo", Published: &published},
			setupMock: func(repo *contentMocks.MockContent) {
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
			id:        "content-1",
			req:       dto.UpdateContentRequest{},
			setupMock: func(_ *contentMocks.MockContent) {},
			wantErr:   true,
		},
		{
			name: "not found",
			id:   "missing",
			req:  dto.UpdateContentRequest{Title: "Novo titulo"},
			setupMock: func(repo *contentMocks.MockContent) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t, nil)
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

func TestContentService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *contentMocks.MockContent)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "content-1",
			setupMock: func(repo *contentMocks.MockContent) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(repo *contentMocks.MockContent) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t, nil)
			tt.setupMock(mockRepo)

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
