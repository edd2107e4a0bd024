package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"alojamento/internal/domain"
	"alojamento/internal/pkg/logger"
)

// Registrar is the subset of the registry a fixture needs.
type Registrar interface {
	RegisterClient(ctx context.Context, name, taxID, email, phone string) (domain.Client, error)
	UpdateClient(ctx context.Context, id int64, fn func(*domain.Client) error) (domain.Client, error)
	AddAccommodation(ctx context.Context, a domain.Accommodation) (domain.Accommodation, error)
	CreateReservation(ctx context.Context, clientID, accommodationID int64, start, end time.Time) (domain.Reservation, error)
	CheckIn(ctx context.Context, id int64, at time.Time, staff string) (domain.Reservation, error)
	CheckOut(ctx context.Context, id int64, at time.Time, total decimal.Decimal, cleaningDone bool) (domain.Reservation, error)
	CancelReservation(ctx context.Context, id int64) (bool, error)
	ChangeReservationDates(ctx context.Context, id int64, start, end time.Time) (bool, error)
}

// Result maps fixture keys to the ids the registrar assigned.
type Result struct {
	Clients        map[string]int64
	Accommodations map[string]int64
	Reservations   map[string]int64

	// Rejected lists date changes refused because of an overlap.
	Rejected []Rejection
}

type Rejection struct {
	Index       int
	Reservation string
}

// Apply replays f in document order: clients, accommodations, reservations,
// then actions. The first failing entry stops the replay; entries applied
// before it stay applied.
func Apply(ctx context.Context, reg Registrar, f *File) (*Result, error) {
	res := &Result{
		Clients:        make(map[string]int64, len(f.Clients)),
		Accommodations: make(map[string]int64, len(f.Accommodations)),
		Reservations:   make(map[string]int64, len(f.Reservations)),
	}
	log := logger.FromContext(ctx, nil).WithComponent("fixture")

	for i, c := range f.Clients {
		if err := checkKey(res.Clients, c.Key); err != nil {
			return res, fmt.Errorf("clients[%d]: %w", i, err)
		}
		client, err := reg.RegisterClient(ctx, c.Name, c.TaxID, c.Email, c.Phone)
		if err != nil {
			return res, fmt.Errorf("clients[%d] %q: %w", i, c.Key, err)
		}
		if c.Inactive {
			if _, err := reg.UpdateClient(ctx, client.ID, func(cl *domain.Client) error {
				cl.Deactivate()
				return nil
			}); err != nil {
				return res, fmt.Errorf("clients[%d] %q: %w", i, c.Key, err)
			}
		}
		res.Clients[c.Key] = client.ID
	}

	for i, a := range f.Accommodations {
		if err := checkKey(res.Accommodations, a.Key); err != nil {
			return res, fmt.Errorf("accommodations[%d]: %w", i, err)
		}
		acc, err := a.toDomain()
		if err != nil {
			return res, fmt.Errorf("accommodations[%d] %q: %w", i, a.Key, err)
		}
		stored, err := reg.AddAccommodation(ctx, acc)
		if err != nil {
			return res, fmt.Errorf("accommodations[%d] %q: %w", i, a.Key, err)
		}
		res.Accommodations[a.Key] = stored.ID
	}

	for i, r := range f.Reservations {
		if err := checkKey(res.Reservations, r.Key); err != nil {
			return res, fmt.Errorf("reservations[%d]: %w", i, err)
		}
		clientID, ok := res.Clients[r.Client]
		if !ok {
			return res, fmt.Errorf("reservations[%d] %q: unknown client %q", i, r.Key, r.Client)
		}
		accID, ok := res.Accommodations[r.Accommodation]
		if !ok {
			return res, fmt.Errorf("reservations[%d] %q: unknown accommodation %q", i, r.Key, r.Accommodation)
		}
		created, err := reg.CreateReservation(ctx, clientID, accID, r.Start.Time, r.End.Time)
		if err != nil {
			return res, fmt.Errorf("reservations[%d] %q: %w", i, r.Key, err)
		}
		res.Reservations[r.Key] = created.ID
	}

	for i, a := range f.Actions {
		id, ok := res.Reservations[a.Reservation]
		if !ok {
			return res, fmt.Errorf("actions[%d]: unknown reservation %q", i, a.Reservation)
		}
		rejected, err := applyAction(ctx, reg, id, a)
		if err != nil {
			return res, fmt.Errorf("actions[%d] %s %q: %w", i, a.Type, a.Reservation, err)
		}
		if rejected {
			log.Warnw("fixture date change rejected", "index", i, "reservation", a.Reservation)
			res.Rejected = append(res.Rejected, Rejection{Index: i, Reservation: a.Reservation})
		}
	}

	log.Infow("fixture applied",
		"clients", len(res.Clients),
		"accommodations", len(res.Accommodations),
		"reservations", len(res.Reservations),
		"actions", len(f.Actions),
		"rejected", len(res.Rejected))
	return res, nil
}

// applyAction reports true when a date change was refused without error.
func applyAction(ctx context.Context, reg Registrar, id int64, a Action) (bool, error) {
	switch a.Type {
	case ActionCheckIn:
		_, err := reg.CheckIn(ctx, id, a.At.Time, a.Staff)
		return false, err
	case ActionCheckOut:
		_, err := reg.CheckOut(ctx, id, a.At.Time, a.Total, a.CleaningDone)
		return false, err
	case ActionCancel:
		ok, err := reg.CancelReservation(ctx, id)
		if err == nil && !ok {
			err = fmt.Errorf("reservation %d not found", id)
		}
		return false, err
	case ActionChangeDates:
		ok, err := reg.ChangeReservationDates(ctx, id, a.Start.Time, a.End.Time)
		if err != nil {
			return false, err
		}
		return !ok, nil
	default:
		return false, fmt.Errorf("unknown action type %q", a.Type)
	}
}

func (a Accommodation) toDomain() (domain.Accommodation, error) {
	kind, err := domain.ParseAccommodationKind(a.Kind)
	if err != nil {
		return domain.Accommodation{}, err
	}
	switch kind {
	case domain.KindRoom:
		return domain.NewRoom(a.Address, a.Owner, a.Capacity, a.PrivateBathroom), nil
	case domain.KindHostel:
		return domain.NewHostel(a.Address, a.Owner, a.Beds, a.Breakfast), nil
	case domain.KindApartment:
		return domain.NewApartment(a.Address, a.Owner, a.Bedrooms, a.EquippedKitchen), nil
	case domain.KindHouse:
		return domain.NewHouse(a.Address, a.Owner, a.Bedrooms, a.Garden, a.Pool), nil
	default:
		return domain.NewFarm(a.Address, a.Owner, a.Hectares, a.Livestock), nil
	}
}

func checkKey(seen map[string]int64, key string) error {
	if key == "" {
		return fmt.Errorf("missing key")
	}
	if _, dup := seen[key]; dup {
		return fmt.Errorf("duplicate key %q", key)
	}
	return nil
}
