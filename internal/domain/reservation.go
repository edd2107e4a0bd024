package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"alojamento/internal/pkg/apperror"
)

// Stage is the lifecycle discriminator of a reservation.
type Stage string

const (
	StageBooked     Stage = "booked"
	StageCheckedIn  Stage = "checked_in"
	StageCheckedOut Stage = "checked_out"
)

// ReservationStatus is the externally reported state. Cancelled is derived
// from an inactive reservation that never reached check-out.
type ReservationStatus string

const (
	StatusActive     ReservationStatus = "active"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
)

type CheckInRecord struct {
	At    time.Time `json:"at"`
	Staff string    `json:"staff"`
}

type CheckOutRecord struct {
	At           time.Time       `json:"at"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CleaningDone bool            `json:"cleaning_done"`
}

// Reservation links a client and an accommodation by id over [Start, End).
// Transitions take the current value and return the next one; the receiver
// is never modified.
type Reservation struct {
	ID              int64     `json:"id"`
	ClientID        int64     `json:"client_id"`
	AccommodationID int64     `json:"accommodation_id"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Active          bool      `json:"active"`
	Stage           Stage     `json:"stage"`

	CheckIn  *CheckInRecord  `json:"check_in,omitempty"`
	CheckOut *CheckOutRecord `json:"check_out,omitempty"`
}

func NewReservation(id, clientID, accommodationID int64, start, end time.Time) (Reservation, error) {
	if err := checkRange(start, end); err != nil {
		return Reservation{}, err
	}
	if clientID <= 0 {
		return Reservation{}, apperror.NewInvalidArgument("reservation requires a client")
	}
	if accommodationID <= 0 {
		return Reservation{}, apperror.NewInvalidArgument("reservation requires an accommodation")
	}
	return Reservation{
		ID:              id,
		ClientID:        clientID,
		AccommodationID: accommodationID,
		Start:           start,
		End:             end,
		Active:          true,
		Stage:           StageBooked,
	}, nil
}

func checkRange(start, end time.Time) error {
	if !end.After(start) {
		return apperror.NewInvalidArgument("end date must be after start date").
			WithDetail("start", start).
			WithDetail("end", end)
	}
	return nil
}

func (r Reservation) Status() ReservationStatus {
	switch {
	case r.Stage == StageCheckedOut:
		return StatusCheckedOut
	case !r.Active:
		return StatusCancelled
	case r.Stage == StageCheckedIn:
		return StatusCheckedIn
	default:
		return StatusActive
	}
}

func (r Reservation) Cancelled() bool { return r.Status() == StatusCancelled }

func (r Reservation) WithCheckIn(at time.Time, staff string) (Reservation, error) {
	switch {
	case r.Stage == StageCheckedOut:
		return r, r.stateErr("cannot check in a checked-out reservation")
	case r.Stage == StageCheckedIn:
		return r, r.stateErr("check-in already performed")
	case !r.Active:
		return r, r.stateErr("cannot check in a cancelled reservation")
	}
	if strings.TrimSpace(staff) == "" {
		return r, apperror.NewInvalidArgument("check-in requires the responsible staff member")
	}

	next := r.clone()
	next.Stage = StageCheckedIn
	next.CheckIn = &CheckInRecord{At: at, Staff: staff}
	return next, nil
}

// WithCheckOut closes the stay. A prior check-in is not required.
func (r Reservation) WithCheckOut(at time.Time, total decimal.Decimal, cleaningDone bool) (Reservation, error) {
	switch {
	case r.Stage == StageCheckedOut:
		return r, r.stateErr("check-out already performed")
	case !r.Active:
		return r, r.stateErr("cannot check out a cancelled reservation")
	}
	if total.IsNegative() {
		return r, apperror.NewInvalidArgument("total amount must not be negative")
	}

	next := r.clone()
	next.Stage = StageCheckedOut
	next.Active = false
	next.CheckOut = &CheckOutRecord{At: at, TotalAmount: total, CleaningDone: cleaningDone}
	return next, nil
}

func (r Reservation) Cancel() (Reservation, error) {
	if !r.Active {
		return r, r.stateErr("reservation is already inactive")
	}
	next := r.clone()
	next.Active = false
	return next, nil
}

// WithDates only checks the reservation's own coherence. Overlap with other
// reservations is the registry's job.
func (r Reservation) WithDates(start, end time.Time) (Reservation, error) {
	if !r.Active {
		return r, r.stateErr("cannot change an inactive reservation")
	}
	if err := checkRange(start, end); err != nil {
		return r, err
	}
	next := r.clone()
	next.Start = start
	next.End = end
	return next, nil
}

// Overlaps reports whether the half-open ranges [s1, e1) and [s2, e2)
// intersect. Touching boundaries do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

func (r Reservation) OverlapsRange(start, end time.Time) bool {
	return Overlaps(r.Start, r.End, start, end)
}

func (r Reservation) Clone() Reservation { return r.clone() }

func (r Reservation) clone() Reservation {
	out := r
	if r.CheckIn != nil {
		v := *r.CheckIn
		out.CheckIn = &v
	}
	if r.CheckOut != nil {
		v := *r.CheckOut
		out.CheckOut = &v
	}
	return out
}

func (r Reservation) stateErr(msg string) *apperror.AppError {
	return apperror.NewInvalidState(msg).
		WithDetail("reservation_id", r.ID).
		WithDetail("status", string(r.Status()))
}

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04"
)

// Format renders the reservation with its client and accommodation resolved.
func (r Reservation) Format(c Client, a Accommodation) string {
	state := "Active"
	if !r.Active {
		state = "Inactive"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Reservation %d | client: %s | accommodation: %s - %s | %s to %s | %s",
		r.ID, c.Name, a.Label(), a.Address, r.Start.Format(dateLayout), r.End.Format(dateLayout), state)

	if r.CheckIn != nil {
		fmt.Fprintf(&b, " | CHECK-IN at %s by %s", r.CheckIn.At.Format(timestampLayout), r.CheckIn.Staff)
	}
	if r.CheckOut != nil {
		fmt.Fprintf(&b, " | CHECK-OUT at %s | total: %s | cleaning: %s",
			r.CheckOut.At.Format(timestampLayout), r.CheckOut.TotalAmount.StringFixed(2), yesNo(r.CheckOut.CleaningDone))
	}
	return b.String()
}
