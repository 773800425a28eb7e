package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"pousada/config"
	"pousada/infras/kafka"
	"pousada/infras/otel"
	"pousada/infras/payment"
	"pousada/internal/domains/reservation/model"
	"pousada/internal/domains/reservation/model/dto"
	"pousada/internal/domains/reservation/repository"
	roomModel "pousada/internal/domains/room/model"
	roomRepo "pousada/internal/domains/room/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	"pousada/shared/stay"
	"pousada/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	defaultCurrency = "BRL"
)

const (
	eventReservationCreated       = "reservation.created"
	eventReservationStatusChanged = "reservation.status_changed"
)

type Reservation interface {
	OccupiedDates(ctx context.Context, roomID string) dto.OccupiedDatesResponse
	AvailableRooms(ctx context.Context, checkIn, checkOut string) (dto.AvailableRoomsResponse, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Reservation
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	payment  payment.Payment
	events   kafka.Client
}

func New(repo repository.Reservation, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, payment payment.Payment, events kafka.Client) Reservation {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		payment:  payment,
		events:   events,
	}
}

// OccupiedDates enumerates every calendar date held by a blocking reservation,
// optionally scoped to one room. The result is recomputed on every call.
//
// This is a read path that only drives UI date-picker filtering: on a
// persistence error it degrades open to an empty set instead of failing the
// request. An empty result means "no known conflicts", never a guarantee of
// availability; the write path in Create re-checks authoritatively.
func (s *serviceImpl) OccupiedDates(ctx context.Context, roomID string) (res dto.OccupiedDatesResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OccupiedDates")
	defer scope.End()

	res.Dates = []string{}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.BlockingStatuses,
				Table:    model.TableName,
			},
		},
	}

	if roomID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to get blocking reservations, degrading to empty occupied set")

		return res
	}

	seen := map[string]struct{}{}

	for i := range models {
		for _, day := range models[i].Range().Days() {
			seen[day.Format(stay.DateFormat)] = struct{}{}
		}
	}

	for date := range seen {
		res.Dates = append(res.Dates, date)
	}

	sort.Strings(res.Dates)

	return res
}

// AvailableRooms returns the ids of active rooms with no blocking reservation
// overlapping [checkIn, checkOut). The overlap set comes from a single
// set-oriented query; rooms are then subtracted in memory, so cost is bounded
// by rooms + reservations rather than their product.
func (s *serviceImpl) AvailableRooms(ctx context.Context, checkIn, checkOut string) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.RoomIDs = []string{}

	rng, err := stay.ParseRange(checkIn, checkOut)
	if err != nil {
		return res, err
	}

	activeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    roomModel.TableName,
			},
		},
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, activeFilter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active rooms, degrading to empty availability")

		return res, nil
	}

	blocking, err := s.repo.FindBlocking(ctx, constant.Empty, rng)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocking reservations, degrading to empty availability")

		return res, nil
	}

	conflicted := map[string]struct{}{}

	for i := range blocking {
		if stay.Conflicts(rng, blocking[i].Range()) {
			conflicted[blocking[i].RoomID] = struct{}{}
		}
	}

	for i := range rooms {
		if _, ok := conflicted[rooms[i].ID]; !ok {
			res.RoomIDs = append(res.RoomIDs, rooms[i].ID)
		}
	}

	return res, nil
}

// Create runs the booking pipeline: validate -> authoritative conflict
// re-check -> persist pending -> payment session init. Unlike the read paths,
// every persistence error here fails the operation; proceeding on a failed
// conflict check would risk a double booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	rng, err := req.Range()
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if !room.Active {
		return res, failure.BadRequestFromString("room is not open for booking") // nolint:wrapcheck
	}

	if req.GuestCount > room.Capacity {
		return res, failure.BadRequestFromString(fmt.Sprintf("guest count exceeds room capacity of %d", room.Capacity)) // nolint:wrapcheck
	}

	blocking, err := s.repo.FindBlocking(ctx, room.ID, rng)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for conflicting reservations")

		return res, fmt.Errorf("failed to check for conflicting reservations: %w", err)
	}

	for i := range blocking {
		if stay.Conflicts(rng, blocking[i].Range()) {
			return res, failure.Conflict("room is already booked for the selected dates") // nolint:wrapcheck
		}
	}

	// The quote is always recomputed server-side; a client-supplied total is
	// never trusted.
	currency := s.cfg.External.Payment.Currency
	if currency == constant.Empty {
		currency = defaultCurrency
	}

	total := stay.Quote(rng, room.WeekdayRateCents, room.WeekendRateCents)
	reservation := req.ToModel(user, rng, total, currency)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		// The no-overlap exclusion constraint closes the race between the
		// conflict check above and this insert.
		if repository.IsConflictViolation(err) {
			return res, failure.Conflict("room is already booked for the selected dates") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.afterWrite(ctx, eventReservationCreated, reservation)

	res.ReservationID = reservation.ID
	res.Nights = rng.Nights()
	res.TotalCents = int64(total)
	res.Currency = currency

	session, err := s.payment.InitSession(ctx, reservation.ID, total, currency)
	if err != nil {
		// The pending row is kept on purpose: the guest's booking intent is
		// preserved and a stale-pending expiry job cancels it if checkout is
		// never completed.
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to init payment session, reservation kept pending")

		return dto.CreateReservationResponse{}, failure.BadGateway("payment session could not be created, please retry") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx,
		map[string]any{
			model.FieldPaymentSessionID: session.ID,
			constant.FieldModifiedAt:    timezone.Now(),
			constant.FieldModifiedBy:    user,
		},
		shared.FilterByID(reservation.ID, model.FieldID, model.TableName),
	); err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to record payment session reference")
	}

	res.PaymentClientSecret = session.ClientSecret

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReservationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		log.Error().Msg("reservation not found")

		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		// Reviving a cancelled reservation re-enters the no-overlap exclusion
		// constraint; surface that as a conflict, not a server error.
		if repository.IsConflictViolation(err) {
			return failure.Conflict("room is already booked for the selected dates") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	if req.Status != constant.Empty && req.Status != reservation.Status {
		reservation.Status = req.Status
		s.afterWrite(ctx, eventReservationStatusChanged, reservation)
	} else {
		s.invalidate(ctx, id)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		log.Error().Msg("reservation not found")

		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

type reservationEvent struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	RoomID        string `json:"room_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	GuestCount    int    `json:"guest_count"`
	TotalCents    int64  `json:"total_cents"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}

// afterWrite invalidates reservation caches and publishes a lifecycle event
// for downstream analytics, without blocking the request.
func (s *serviceImpl) afterWrite(ctx context.Context, eventType string, reservation model.Reservation) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, reservation.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)

		topic := s.cfg.Kafka.Topics.ReservationEvents
		if topic == constant.Empty {
			return
		}

		event := reservationEvent{
			Type:          eventType,
			ReservationID: reservation.ID,
			RoomID:        reservation.RoomID,
			CheckIn:       reservation.CheckIn.Format(stay.DateFormat),
			CheckOut:      reservation.CheckOut.Format(stay.DateFormat),
			GuestCount:    reservation.GuestCount,
			TotalCents:    int64(reservation.TotalCents),
			Currency:      reservation.Currency,
			Status:        reservation.Status,
			OccurredAt:    timezone.Format(timezone.Now(), constant.DateFormat),
		}

		if err := s.events.SendMessages(c, topic, kafka.Message{Key: reservation.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish reservation event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
