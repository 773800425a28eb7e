package repository_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"pousada/internal/domains/reservation/model"
	"pousada/internal/domains/reservation/repository"
	"pousada/shared/stay"
)

func mustRange(t *testing.T, checkIn, checkOut string) stay.DateRange {
	t.Helper()

	rng, err := stay.ParseRange(checkIn, checkOut)
	assert.NoError(t, err)

	return rng
}

func TestBlockingFilter(t *testing.T) {
	rng := mustRange(t, "2025-06-10", "2025-06-14")

	tests := []struct {
		name     string
		roomID   string
		wantArgs map[string]any
	}{
		{
			name:   "all rooms",
			roomID: "",
			wantArgs: map[string]any{
				"status_0":        model.StatusPending,
				"status_1":        model.StatusConfirmed,
				"range_check_out": rng.CheckOut,
				"range_check_in":  rng.CheckIn,
			},
		},
		{
			name:   "scoped to one room",
			roomID: "room-1",
			wantArgs: map[string]any{
				"status_0":        model.StatusPending,
				"status_1":        model.StatusConfirmed,
				"range_check_out": rng.CheckOut,
				"range_check_in":  rng.CheckIn,
				"room_id":         "room-1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := repository.BlockingFilter(tt.roomID, rng)
			clause, args := filter.GetWhereClause()

			// The args must hold exactly pending and confirmed plus the range
			// bounds; cancelled and completed never enter the status list.
			assert.Equal(t, tt.wantArgs, args)

			assert.Contains(t, clause, "reservations.status IN (:status_0, :status_1)")
			assert.Contains(t, clause, "AND reservations.check_in < :range_check_out")
			assert.Contains(t, clause, "AND reservations.check_out > :range_check_in")

			if tt.roomID == "" {
				assert.NotContains(t, clause, "room_id")
			} else {
				assert.Contains(t, clause, "AND reservations.room_id = :room_id")
			}
		})
	}
}

// The model predicate and the SQL filter encode the same blocking rule; this
// pins them together so one cannot drift without the other.
func TestBlockingFilterMatchesModelPredicate(t *testing.T) {
	rng := mustRange(t, "2025-06-10", "2025-06-14")

	filter := repository.BlockingFilter("", rng)
	_, args := filter.GetWhereClause()

	queried := map[string]bool{}

	for name, value := range args {
		if strings.HasPrefix(name, "status_") {
			status, ok := value.(string)
			assert.True(t, ok, name)

			queried[status] = true
		}
	}

	statuses := []string{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusCancelled,
		model.StatusCompleted,
	}

	for _, status := range statuses {
		reservation := model.Reservation{Status: status}

		assert.Equal(t, reservation.Blocking(), queried[status], status)
	}
}

func TestIsConflictViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "exclusion violation",
			err:  &pq.Error{Code: "23P01"},
			want: true,
		},
		{
			name: "unique violation",
			err:  &pq.Error{Code: "23505"},
			want: true,
		},
		{
			name: "wrapped exclusion violation",
			err:  fmt.Errorf("failed to update reservation: %w", &pq.Error{Code: "23P01"}),
			want: true,
		},
		{
			name: "other postgres error",
			err:  &pq.Error{Code: "23503"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("database error"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.IsConflictViolation(tt.err))
		})
	}
}
