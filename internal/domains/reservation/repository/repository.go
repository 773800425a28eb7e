package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"pousada/infras/otel"
	"pousada/infras/postgres"
	"pousada/internal/domains/reservation/model"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	gRepo "pousada/shared/repository"
	"pousada/shared/stay"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindBlocking(ctx context.Context, roomID string, rng stay.DateRange) ([]model.Reservation, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindBlocking returns every pending or confirmed reservation whose stay
// overlaps the given range, optionally scoped to one room. The overlap filter
// is the SQL mirror of stay.Conflicts: half-open intervals share a night iff
// check_in < range.CheckOut AND check_out > range.CheckIn.
func (repo *repositoryImpl) FindBlocking(ctx context.Context, roomID string, rng stay.DateRange) ([]model.Reservation, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, BlockingFilter(roomID, rng)) //nolint:wrapcheck
}

// BlockingFilter builds the blocking-reservation overlap filter shared by the
// availability read path and the creation-time conflict re-check.
func BlockingFilter(roomID string, rng stay.DateRange) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.BlockingStatuses,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_check_out",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLess,
				Value:    rng.CheckOut,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_check_in",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    rng.CheckIn,
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

	return filter
}

// IsConflictViolation reports whether the error is the reservations table's
// no-overlap exclusion constraint rejecting a concurrent double booking.
func IsConflictViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)

		return code == constant.PqErrorCodeExclusionViolation || code == constant.PqErrorCodeUniqueViolation
	}

	return false
}
