package registry

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"alojamento/internal/domain"
	"alojamento/internal/pkg/apperror"
)

// CreateReservation books an accommodation for a client over [start, end).
// Both ids must resolve, the client must be active and no other active
// reservation of the accommodation may overlap the range.
func (r *Registry) CreateReservation(ctx context.Context, clientID, accommodationID int64, start, end time.Time) (domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ci, ok := r.clientIndexLocked(clientID)
	if !ok {
		return domain.Reservation{}, apperror.NewNotFound("client", clientID)
	}
	if _, ok := r.accommodationIndexLocked(accommodationID); !ok {
		return domain.Reservation{}, apperror.NewNotFound("accommodation", accommodationID)
	}
	if !r.clients[ci].Active {
		return domain.Reservation{}, apperror.NewInvalidState("client is inactive").
			WithDetail("client_id", clientID)
	}

	res, err := domain.NewReservation(r.nextReservationID, clientID, accommodationID, start, end)
	if err != nil {
		return domain.Reservation{}, err
	}
	if other, found := r.firstOverlapLocked(accommodationID, 0, start, end); found {
		r.log(ctx).Warnw("reservation rejected: dates overlap",
			"accommodation_id", accommodationID, "conflicting_reservation_id", other.ID)
		return domain.Reservation{}, apperror.NewConflict("dates overlap an existing reservation").
			WithDetail("accommodation_id", accommodationID).
			WithDetail("reservation_id", other.ID)
	}

	r.nextReservationID++
	r.reservations = append(r.reservations, res)

	r.log(ctx).Infow("reservation created",
		"reservation_id", res.ID, "client_id", clientID, "accommodation_id", accommodationID)
	return res.Clone(), nil
}

func (r *Registry) Reservations() []domain.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		out = append(out, res.Clone())
	}
	return out
}

// ReservationsFor lists every reservation of the accommodation, active or not.
func (r *Registry) ReservationsFor(accommodationID int64) []domain.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Reservation
	for _, res := range r.reservations {
		if res.AccommodationID == accommodationID {
			out = append(out, res.Clone())
		}
	}
	return out
}

func (r *Registry) Reservation(id int64) (domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.reservationIndexLocked(id)
	if !ok {
		return domain.Reservation{}, apperror.NewNotFound("reservation", id)
	}
	return r.reservations[i].Clone(), nil
}

func (r *Registry) CheckIn(ctx context.Context, id int64, at time.Time, staff string) (domain.Reservation, error) {
	return r.transition(ctx, id, "check-in", func(cur domain.Reservation) (domain.Reservation, error) {
		return cur.WithCheckIn(at, staff)
	})
}

func (r *Registry) CheckOut(ctx context.Context, id int64, at time.Time, total decimal.Decimal, cleaningDone bool) (domain.Reservation, error) {
	return r.transition(ctx, id, "check-out", func(cur domain.Reservation) (domain.Reservation, error) {
		return cur.WithCheckOut(at, total, cleaningDone)
	})
}

// CancelReservation reports false when the reservation does not exist.
// Cancelling an inactive reservation is an INVALID_STATE error.
func (r *Registry) CancelReservation(ctx context.Context, id int64) (bool, error) {
	_, err := r.transition(ctx, id, "cancel", domain.Reservation.Cancel)
	if apperror.Code(err) == apperror.CodeNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ChangeReservationDates moves a reservation. It reports false, without
// error and without changing anything, when the reservation does not exist
// or when another active reservation of the same accommodation overlaps the
// new range. Incoherent dates or an inactive reservation are returned as errors.
func (r *Registry) ChangeReservationDates(ctx context.Context, id int64, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.reservationIndexLocked(id)
	if !ok {
		return false, nil
	}
	cur := r.reservations[i]

	if other, found := r.firstOverlapLocked(cur.AccommodationID, cur.ID, start, end); found {
		r.log(ctx).Warnw("date change rejected: dates overlap",
			"reservation_id", id, "conflicting_reservation_id", other.ID)
		return false, nil
	}

	next, err := cur.WithDates(start, end)
	if err != nil {
		r.log(ctx).Warnw("date change rejected", "reservation_id", id, "error", err)
		return false, err
	}
	r.reservations[i] = next

	r.log(ctx).Infow("reservation dates changed", "reservation_id", id)
	return true, nil
}

// Describe renders the reservation with its client and accommodation.
func (r *Registry) Describe(id int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.reservationIndexLocked(id)
	if !ok {
		return "", apperror.NewNotFound("reservation", id)
	}
	res := r.reservations[i]

	ci, _ := r.clientIndexLocked(res.ClientID)
	ai, _ := r.accommodationIndexLocked(res.AccommodationID)
	return res.Format(r.clients[ci], r.accommodations[ai]), nil
}

func (r *Registry) transition(ctx context.Context, id int64, event string, fn func(domain.Reservation) (domain.Reservation, error)) (domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.reservationIndexLocked(id)
	if !ok {
		return domain.Reservation{}, apperror.NewNotFound("reservation", id)
	}

	next, err := fn(r.reservations[i])
	if err != nil {
		r.log(ctx).Warnw("reservation transition rejected", "reservation_id", id, "event", event, "error", err)
		return domain.Reservation{}, err
	}
	r.reservations[i] = next

	r.log(ctx).Infow("reservation transition", "reservation_id", id, "event", event, "status", string(next.Status()))
	return next.Clone(), nil
}

// firstOverlapLocked returns an active reservation of the accommodation,
// other than exclude, whose range overlaps [start, end).
func (r *Registry) firstOverlapLocked(accommodationID, exclude int64, start, end time.Time) (domain.Reservation, bool) {
	for _, res := range r.reservations {
		if res.AccommodationID != accommodationID || res.ID == exclude || !res.Active {
			continue
		}
		if res.OverlapsRange(start, end) {
			return res, true
		}
	}
	return domain.Reservation{}, false
}

func (r *Registry) reservationIndexLocked(id int64) (int, bool) {
	return indexOf(id, len(r.reservations))
}
