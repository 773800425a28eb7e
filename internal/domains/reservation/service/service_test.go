package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/kafka"
	"pousada/infras/otel/mocks"
	"pousada/infras/payment"
	paymentMocks "pousada/infras/payment/mocks"
	reservationMocks "pousada/internal/domains/reservation/mocks"
	"pousada/internal/domains/reservation/model"
	"pousada/internal/domains/reservation/model/dto"
	"pousada/internal/domains/reservation/service"
	roomMocks "pousada/internal/domains/room/mocks"
	roomModel "pousada/internal/domains/room/model"
	"pousada/shared/cache"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

// cacheStub is used instead of a gomock cache because the service invalidates
// and saves cache entries from goroutines that may outlive the test body,
// which would trip the mock controller.
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

// eventSink swallows lifecycle events for the same reason.
type eventSink struct{}

func (eventSink) SendMessages(context.Context, string, ...kafka.Message) error     { return nil }
func (eventSink) Consume(context.Context, string, string, func(kafkaGo.Message)) {}
func (eventSink) Reader(string, string) *kafkaGo.Reader                            { return nil }

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.Payment.Currency = "BRL"
	cfg.Kafka.Topics.ReservationEvents = "reservation-events"

	return cfg
}

func activeRoom() roomModel.Room {
	return roomModel.Room{
		ID:               "room-1",
		Name:             "Suite Master",
		Capacity:         2,
		WeekdayRateCents: 10000,
		WeekendRateCents: 15000,
		Active:           true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func blockingReservation(id, roomID, checkIn, checkOut string) model.Reservation {
	return model.Reservation{
		ID:       id,
		RoomID:   roomID,
		CheckIn:  day(checkIn),
		CheckOut: day(checkOut),
		Status:   model.StatusConfirmed,
	}
}

func TestReservationService_Create(t *testing.T) {
	// 2024-01-04 is a Thursday, so a stay through 2024-01-08 covers two
	// weekday nights and two weekend nights.
	baseReq := dto.CreateReservationRequest{
		RoomID:     "room-1",
		CheckIn:    "2024-01-04",
		CheckOut:   "2024-01-08",
		GuestName:  "Maria Silva",
		GuestEmail: "maria@example.com",
		GuestCount: 2,
	}

	tests := []struct {
		name       string
		req        dto.CreateReservationRequest
		setupMock  func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom, pay *paymentMocks.MockPayment)
		wantErr    bool
		wantCode   int
		wantTotal  int64
		wantNights int
	}{
		{
			name: "successful creation",
			req:  baseReq,
			setupMock: func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom, pay *paymentMocks.MockPayment) {
				room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(), nil)

				repo.EXPECT().
					FindBlocking(gomock.Any(), "room-1", gomock.Any()).
					Return(nil, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Cond(func(m model.Reservation) bool {
						return m.Status == model.StatusPending &&
							m.TotalCents == 50000 &&
							m.CheckIn.Equal(day("2024-01-04")) &&
							m.CheckOut.Equal(day("2024-01-08"))
					})).
					Return(nil)

				pay.EXPECT().
					InitSession(gomock.Any(), gomock.Any(), gomock.Any(), "BRL").
					Return(payment.Session{ID: "sess-1", ClientSecret: "secret"}, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantTotal:  50000,
			wantNights: 4,
		},
		{
			name: "check out before check in",
			req: dto.CreateReservationRequest{
				RoomID:     "room-1",
				CheckIn:    "2024-01-08",
				CheckOut:   "2024-01-04",
				GuestName:  "Maria Silva",
				GuestEmail: "maria@example.com",
				GuestCount: 2,
			},
			setupMock: func(_ *reservationMocks.MockReservation, _ *roomMocks.MockRoom, _ *paymentMocks.MockPayment) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room does not exist",
			req:  baseReq,
			setupMock: func(_ *reservationMocks.MockReservation, room *roomMocks.MockRoom, _ *paymentMocks.MockPayment) {
				room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room is inactive",
			req:  baseReq,
			setupMock: func(_ *reservationMocks.MockReservation, room *roomMocks.MockRoom, _ *paymentMocks.MockPayment) {
				inactive := activeRoom()
				inactive.Active = false

				room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "guest count exceeds capacity",
			req: dto.CreateReservationRequest{
				RoomID:     "room-1",
				CheckIn:    "2024-01-04",
				CheckOut:   "2024-01-08",
				GuestName:  "Maria Silva",
				GuestEmail: "maria@example.com",
				GuestCount: 5,
			},
			setupMock: func(_ *reservationMocks.MockReservation, room *roomMocks.MockRoom, _ *paymentMocks.MockPayment) {
				room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "overlapping reservation conflicts",
			req:  baseReq,
			setupMock: func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom, _ *paymentMocks.MockPayment) {
				room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(), nil)

				repo.EXPECT().
					FindBlocking(gomock.Any(), "room-1", gomock.Any()).
					Return([]model.Reservation{
						blockingReservation("resv-1", "room-1", "2024-01-06", "2024-01-10"),
					}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "checkout day handoff does not conflict",
			req:  baseReq,
			setupMock: func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom, pay *paymentMocks.MockPayment) {
				room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(), nil)

				// Back to back stays: one ends the day ours starts, one
				// starts the day ours ends.
				repo.EXPECT().
					FindBlocking(gomock.Any(), "room-1", gomock.Any()).
					Return([]model.Reservation{
						blockingReservation("resv-1", "room-1", "2024-01-01", "2024-01-04"),
						blockingReservation("resv-2", "room-1", "2024-01-08", "2024-01-10"),
					}, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				pay.EXPECT().
					InitSession(gomock.Any(), gomock.Any(), gomock.Any(), "BRL").
					Return(payment.Session{ID: "sess-1", ClientSecret: "secret"}, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantTotal:  50000,
			wantNights: 4,
		},
		{
			name: "conflict check failure aborts creation",
			req:  baseReq,
			setupMock: func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom, _ *paymentMocks.MockPayment) {
				room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(), nil)

				repo.EXPECT().
					FindBlocking(gomock.Any(), "room-1", gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "exclusion constraint maps to conflict",
			req:  baseReq,
			setupMock: func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom, _ *paymentMocks.MockPayment) {
				room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(), nil)

				repo.EXPECT().
					FindBlocking(gomock.Any(), "room-1", gomock.Any()).
					Return(nil, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23P01"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "payment failure keeps pending reservation",
			req:  baseReq,
			setupMock: func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom, pay *paymentMocks.MockPayment) {
				room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(), nil)

				repo.EXPECT().
					FindBlocking(gomock.Any(), "room-1", gomock.Any()).
					Return(nil, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				pay.EXPECT().
					InitSession(gomock.Any(), gomock.Any(), gomock.Any(), "BRL").
					Return(payment.Session{}, errors.New("gateway timeout"))

				// No Update and no Delete: the pending row stays as is.
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := reservationMocks.NewMockReservation(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)
			mockPayment := paymentMocks.NewMockPayment(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockRepo, mockRoomRepo, testConfig(), &cacheStub{}, mockOtel, mockPayment, eventSink{})

			tt.setupMock(mockRepo, mockRoomRepo, mockPayment)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ReservationID)
			assert.Equal(t, tt.wantTotal, res.TotalCents)
			assert.Equal(t, tt.wantNights, res.Nights)
			assert.Equal(t, "BRL", res.Currency)
			assert.Equal(t, "secret", res.PaymentClientSecret)
		})
	}
}

func TestReservationService_OccupiedDates(t *testing.T) {
	tests := []struct {
		name      string
		roomID    string
		setupMock func(repo *reservationMocks.MockReservation)
		wantDates []string
	}{
		{
			name:   "checkout day is free",
			roomID: "room-1",
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Reservation{
						blockingReservation("resv-1", "room-1", "2025-01-10", "2025-01-12"),
					}, nil)
			},
			wantDates: []string{"2025-01-10", "2025-01-11"},
		},
		{
			name:   "overlapping stays are merged",
			roomID: "",
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Reservation{
						blockingReservation("resv-1", "room-1", "2025-01-10", "2025-01-12"),
						blockingReservation("resv-2", "room-2", "2025-01-11", "2025-01-13"),
					}, nil)
			},
			wantDates: []string{"2025-01-10", "2025-01-11", "2025-01-12"},
		},
		{
			name:   "only blocking statuses are queried",
			roomID: "room-1",
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Cond(func(filter gDto.FilterGroup) bool {
						_, args := filter.GetWhereClause()

						return len(args) == 3 &&
							args["status_0"] == model.StatusPending &&
							args["status_1"] == model.StatusConfirmed &&
							args["room_id"] == "room-1"
					})).
					Return([]model.Reservation{}, nil)
			},
			wantDates: []string{},
		},
		{
			name:   "repository failure degrades to empty",
			roomID: "room-1",
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantDates: []string{},
		},
		{
			name:   "no blocking reservations",
			roomID: "room-1",
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Reservation{}, nil)
			},
			wantDates: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := reservationMocks.NewMockReservation(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)
			mockPayment := paymentMocks.NewMockPayment(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockRepo, mockRoomRepo, testConfig(), &cacheStub{}, mockOtel, mockPayment, eventSink{})

			tt.setupMock(mockRepo)

			res := svc.OccupiedDates(context.Background(), tt.roomID)
			assert.Equal(t, tt.wantDates, res.Dates)
		})
	}
}

func TestReservationService_AvailableRooms(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "room-1", Active: true},
		{ID: "room-2", Active: true},
		{ID: "room-3", Active: true},
	}

	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		setupMock func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom)
		wantErr   bool
		wantIDs   []string
	}{
		{
			name:     "conflicting rooms are subtracted",
			checkIn:  "2025-02-10",
			checkOut: "2025-02-12",
			setupMock: func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom) {
				room.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)

				repo.EXPECT().
					FindBlocking(gomock.Any(), "", gomock.Any()).
					Return([]model.Reservation{
						blockingReservation("resv-1", "room-2", "2025-02-11", "2025-02-14"),
					}, nil)
			},
			wantIDs: []string{"room-1", "room-3"},
		},
		{
			name:     "back to back stay does not block",
			checkIn:  "2025-02-10",
			checkOut: "2025-02-12",
			setupMock: func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom) {
				room.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)

				repo.EXPECT().
					FindBlocking(gomock.Any(), "", gomock.Any()).
					Return([]model.Reservation{
						blockingReservation("resv-1", "room-2", "2025-02-12", "2025-02-15"),
					}, nil)
			},
			wantIDs: []string{"room-1", "room-2", "room-3"},
		},
		{
			name:      "invalid range is rejected",
			checkIn:   "2025-02-12",
			checkOut:  "2025-02-10",
			setupMock: func(_ *reservationMocks.MockReservation, _ *roomMocks.MockRoom) {},
			wantErr:   true,
		},
		{
			name:     "room lookup failure degrades to empty",
			checkIn:  "2025-02-10",
			checkOut: "2025-02-12",
			setupMock: func(_ *reservationMocks.MockReservation, room *roomMocks.MockRoom) {
				room.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantIDs: []string{},
		},
		{
			name:     "blocking lookup failure degrades to empty",
			checkIn:  "2025-02-10",
			checkOut: "2025-02-12",
			setupMock: func(repo *reservationMocks.MockReservation, room *roomMocks.MockRoom) {
				room.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)

				repo.EXPECT().
					FindBlocking(gomock.Any(), "", gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := reservationMocks.NewMockReservation(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)
			mockPayment := paymentMocks.NewMockPayment(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockRepo, mockRoomRepo, testConfig(), &cacheStub{}, mockOtel, mockPayment, eventSink{})

			tt.setupMock(mockRepo, mockRoomRepo)

			res, err := svc.AvailableRooms(context.Background(), tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantIDs, res.RoomIDs)
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	reservation := blockingReservation("resv-1", "room-1", "2025-03-01", "2025-03-05")
	reservation.GuestName = "Maria Silva"
	reservation.TotalCents = 40000

	tests := []struct {
		name      string
		id        string
		cacheGet  func(ctx context.Context, key string, value any) error
		setupMock func(repo *reservationMocks.MockReservation)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss, found in db",
			id:   "resv-1",
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cache hit skips repository",
			id:   "resv-1",
			cacheGet: func(_ context.Context, _ string, value any) error {
				res, _ := value.(*dto.ReservationResponse)
				res.ID = "resv-1"
				return nil
			},
			setupMock: func(_ *reservationMocks.MockReservation) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := reservationMocks.NewMockReservation(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)
			mockPayment := paymentMocks.NewMockPayment(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockRepo, mockRoomRepo, testConfig(), &cacheStub{getFn: tt.cacheGet}, mockOtel, mockPayment, eventSink{})

			tt.setupMock(mockRepo)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "resv-1", res.ID)
		})
	}
}

func TestReservationService_Update(t *testing.T) {
	reservation := blockingReservation("resv-1", "room-1", "2025-03-01", "2025-03-05")

	tests := []struct {
		name      string
		id        string
		req       dto.UpdateReservationRequest
		setupMock func(repo *reservationMocks.MockReservation)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful status change",
			id:   "resv-1",
			req:  dto.UpdateReservationRequest{Status: model.StatusConfirmed},
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "reviving a cancelled reservation maps constraint to conflict",
			id:   "resv-1",
			req:  dto.UpdateReservationRequest{Status: model.StatusConfirmed},
			setupMock: func(repo *reservationMocks.MockReservation) {
				cancelled := blockingReservation("resv-1", "room-1", "2025-03-01", "2025-03-05")
				cancelled.Status = model.StatusCancelled

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)

				// The dates were re-booked while this reservation sat
				// cancelled; the exclusion constraint rejects the revival.
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23P01"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:      "empty request is rejected",
			id:        "resv-1",
			req:       dto.UpdateReservationRequest{},
			setupMock: func(_ *reservationMocks.MockReservation) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   "missing",
			req:  dto.UpdateReservationRequest{Status: model.StatusCancelled},
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := reservationMocks.NewMockReservation(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)
			mockPayment := paymentMocks.NewMockPayment(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockRepo, mockRoomRepo, testConfig(), &cacheStub{}, mockOtel, mockPayment, eventSink{})

			tt.setupMock(mockRepo)

			err := svc.Update(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReservationService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *reservationMocks.MockReservation)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "resv-1",
			setupMock: func(repo *reservationMocks.MockReservation) {
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
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := reservationMocks.NewMockReservation(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)
			mockPayment := paymentMocks.NewMockPayment(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockRepo, mockRoomRepo, testConfig(), &cacheStub{}, mockOtel, mockPayment, eventSink{})

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

func TestReservationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockPayment := paymentMocks.NewMockPayment(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockRoomRepo, testConfig(), &cacheStub{}, mockOtel, mockPayment, eventSink{})

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	reservation := blockingReservation("resv-1", "room-1", "2025-03-01", "2025-03-05")

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Reservation{reservation}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Reservations, 1)
	assert.Equal(t, "resv-1", res.Reservations[0].ID)
	assert.Equal(t, 4, res.Reservations[0].Nights)
}
