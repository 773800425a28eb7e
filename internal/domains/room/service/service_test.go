package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/otel/mocks"
	s3Mocks "pousada/infras/s3/mocks"
	roomMocks "pousada/internal/domains/room/mocks"
	"pousada/internal/domains/room/model"
	"pousada/internal/domains/room/model/dto"
	"pousada/internal/domains/room/service"
	"pousada/shared/cache"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	gModel "pousada/shared/model"
	"pousada/shared/money"
	"pousada/shared/timezone"
)

// The service saves and invalidates cache entries from detached goroutines,
// so a plain stub keeps those writes out of the mock controller's bookkeeping.
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

func suiteRoom() model.Room {
	return model.Room{
		ID:               "room-1",
		Name:             "Suite Master",
		Description:      "Suite com varanda e vista para a serra.",
		Capacity:         2,
		WeekdayRateCents: money.Cents(25000),
		WeekendRateCents: money.Cents(32000),
		Image:            "https://cdn.example.com/pousada-media/room/abc.jpg",
		Active:           true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func newService(t *testing.T, cacheGet func(ctx context.Context, key string, value any) error) (service.Room, *roomMocks.MockRoom, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "pousada-media"

	return service.New(mockRepo, cfg, &cacheStub{getFn: cacheGet}, mockOtel, mockS3), mockRepo, mockS3
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom, s3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "successful creation without image",
			req: dto.CreateRoomRequest{
				Name:             "Chale Familia",
				Capacity:         4,
				WeekdayRateCents: 30000,
				WeekendRateCents: 38000,
			},
			setupMock: func(repo *roomMocks.MockRoom, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Cond(func(m model.Room) bool {
						return m.Name == "Chale Familia" &&
							m.Active &&
							m.WeekdayRateCents == money.Cents(30000)
					})).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "successful creation with image upload",
			req: dto.CreateRoomRequest{
				Name:             "Suite Master",
				Capacity:         2,
				WeekdayRateCents: 25000,
				WeekendRateCents: 32000,
				Image:            &multipart.FileHeader{Filename: "varanda.jpg"},
			},
			setupMock: func(repo *roomMocks.MockRoom, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), "pousada-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/pousada-media/room/new.jpg", nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Cond(func(m model.Room) bool {
						return m.Image == "https://cdn.example.com/pousada-media/room/new.jpg"
					})).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "upload failure aborts creation",
			req: dto.CreateRoomRequest{
				Name:             "Suite Master",
				Capacity:         2,
				WeekdayRateCents: 25000,
				WeekendRateCents: 32000,
				Image:            &multipart.FileHeader{Filename: "varanda.jpg"},
			},
			setupMock: func(repo *roomMocks.MockRoom, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), "pousada-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 unreachable"))
			},
			wantErr: true,
		},
		{
			name: "insert failure removes the uploaded object",
			req: dto.CreateRoomRequest{
				Name:             "Suite Master",
				Capacity:         2,
				WeekdayRateCents: 25000,
				WeekendRateCents: 32000,
				Image:            &multipart.FileHeader{Filename: "varanda.jpg"},
			},
			setupMock: func(repo *roomMocks.MockRoom, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), "pousada-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/pousada-media/room/new.jpg", nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
				s3.EXPECT().
					DeleteFile(gomock.Any(), "pousada-media", model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockS3 := newService(t, nil)
			tt.setupMock(mockRepo, mockS3)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	t.Run("room found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t, nil)

		room := suiteRoom()
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		res, err := svc.Get(context.Background(), room.ID)

		assert.NoError(t, err)
		assert.Equal(t, room.ID, res.ID)
		assert.Equal(t, int64(25000), res.WeekdayRateCents)
		assert.Equal(t, int64(32000), res.WeekendRateCents)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t, nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		cached := dto.RoomResponse{ID: "room-1", Name: "Suite Master"}
		svc, _, _ := newService(t, func(_ context.Context, _ string, value any) error {
			*value.(*dto.RoomResponse) = cached
			return nil
		})

		res, err := svc.Get(context.Background(), "room-1")

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("rate change persists in cents", func(t *testing.T) {
		svc, mockRepo, _ := newService(t, nil)

		room := suiteRoom()
		newRate := int64(27500)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Cond(func(fields map[string]any) bool {
				rate, ok := fields[model.FieldWeekdayRateCents].(*int64)
				return ok && *rate == newRate
			}), gomock.Any()).
			Return(nil)

		err := svc.Update(context.Background(), dto.UpdateRoomRequest{WeekdayRateCents: &newRate}, room.ID)

		assert.NoError(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t, nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		err := svc.Update(context.Background(), dto.UpdateRoomRequest{}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("replacing the image removes the previous object", func(t *testing.T) {
		svc, mockRepo, mockS3 := newService(t, nil)

		room := suiteRoom()

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)
		mockS3.EXPECT().
			UploadFile(gomock.Any(), "pousada-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/pousada-media/room/new.jpg", nil)
		mockS3.EXPECT().
			GetObjectNameFromURL("pousada-media", room.Image).
			Return("room/abc.jpg")
		mockS3.EXPECT().
			DeleteFile(gomock.Any(), "pousada-media", model.EntityName, "room/abc.jpg").
			Return(nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(context.Background(), dto.UpdateRoomRequest{
			Image: &multipart.FileHeader{Filename: "nova.jpg"},
		}, room.ID)

		assert.NoError(t, err)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("successful deletion removes the stored image", func(t *testing.T) {
		svc, mockRepo, mockS3 := newService(t, nil)

		room := suiteRoom()

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		mockS3.EXPECT().
			GetObjectNameFromURL("pousada-media", room.Image).
			Return("room/abc.jpg")
		mockS3.EXPECT().
			DeleteFile(gomock.Any(), "pousada-media", model.EntityName, "room/abc.jpg").
			Return(nil)

		err := svc.Delete(context.Background(), room.ID)

		assert.NoError(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t, nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("lists rooms with pagination metadata", func(t *testing.T) {
		svc, mockRepo, _ := newService(t, nil)

		rooms := []model.Room{suiteRoom()}

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rooms, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 1)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})
}
