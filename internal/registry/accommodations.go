package registry

import (
	"context"

	"alojamento/internal/domain"
	"alojamento/internal/pkg/apperror"
	"alojamento/internal/pkg/validator"
)

func (r *Registry) AddRoom(ctx context.Context, address, owner string, capacity int, privateBathroom bool) (domain.Accommodation, error) {
	return r.AddAccommodation(ctx, domain.NewRoom(address, owner, capacity, privateBathroom))
}

func (r *Registry) AddHostel(ctx context.Context, address, owner string, beds int, breakfastIncluded bool) (domain.Accommodation, error) {
	return r.AddAccommodation(ctx, domain.NewHostel(address, owner, beds, breakfastIncluded))
}

func (r *Registry) AddApartment(ctx context.Context, address, owner string, bedrooms int, equippedKitchen bool) (domain.Accommodation, error) {
	return r.AddAccommodation(ctx, domain.NewApartment(address, owner, bedrooms, equippedKitchen))
}

func (r *Registry) AddHouse(ctx context.Context, address, owner string, bedrooms int, garden, pool bool) (domain.Accommodation, error) {
	return r.AddAccommodation(ctx, domain.NewHouse(address, owner, bedrooms, garden, pool))
}

func (r *Registry) AddFarm(ctx context.Context, address, owner string, hectares float64, livestock bool) (domain.Accommodation, error) {
	return r.AddAccommodation(ctx, domain.NewFarm(address, owner, hectares, livestock))
}

// AddAccommodation stores any accommodation kind. The incoming ID is ignored.
func (r *Registry) AddAccommodation(ctx context.Context, a domain.Accommodation) (domain.Accommodation, error) {
	a = a.Clone()
	if err := checkAccommodation(a); err != nil {
		return domain.Accommodation{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextAccommodationID
	r.nextAccommodationID++
	r.accommodations = append(r.accommodations, a)

	r.log(ctx).Infow("accommodation added", "accommodation_id", a.ID, "kind", string(a.Kind))
	return a.Clone(), nil
}

func (r *Registry) Accommodations() []domain.Accommodation {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Accommodation, 0, len(r.accommodations))
	for _, a := range r.accommodations {
		out = append(out, a.Clone())
	}
	return out
}

func (r *Registry) Accommodation(id int64) (domain.Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.accommodationIndexLocked(id)
	if !ok {
		return domain.Accommodation{}, apperror.NewNotFound("accommodation", id)
	}
	return r.accommodations[i].Clone(), nil
}

// UpdateAccommodation applies fn to a copy and stores it only if fn succeeds
// and the result is still a well-formed accommodation of the same kind.
func (r *Registry) UpdateAccommodation(ctx context.Context, id int64, fn func(*domain.Accommodation) error) (domain.Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.accommodationIndexLocked(id)
	if !ok {
		return domain.Accommodation{}, apperror.NewNotFound("accommodation", id)
	}

	current := r.accommodations[i]
	next := current.Clone()
	if err := fn(&next); err != nil {
		return domain.Accommodation{}, err
	}
	next.ID = id
	if next.Kind != current.Kind {
		return domain.Accommodation{}, apperror.NewInvalidArgument("accommodation kind cannot change").
			WithDetail("accommodation_id", id)
	}
	if err := checkAccommodation(next); err != nil {
		return domain.Accommodation{}, err
	}
	r.accommodations[i] = next

	r.log(ctx).Infow("accommodation updated", "accommodation_id", id)
	return next.Clone(), nil
}

func checkAccommodation(a domain.Accommodation) error {
	if err := a.CheckPayload(); err != nil {
		return err
	}
	return validator.Check("accommodation", a)
}

func (r *Registry) accommodationIndexLocked(id int64) (int, bool) {
	return indexOf(id, len(r.accommodations))
}
