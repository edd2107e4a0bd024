package registry

import (
	"context"

	"alojamento/internal/domain"
	"alojamento/internal/pkg/apperror"
	"alojamento/internal/pkg/validator"
)

// RegisterClient adds an active client. The tax id is stored as given;
// see domain.Client.TaxIDValid.
func (r *Registry) RegisterClient(ctx context.Context, name, taxID, email, phone string) (domain.Client, error) {
	c := domain.Client{
		Name:   name,
		TaxID:  taxID,
		Email:  email,
		Phone:  phone,
		Active: true,
	}
	if err := validator.Check("client", c); err != nil {
		return domain.Client{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextClientID
	r.nextClientID++
	r.clients = append(r.clients, c)

	r.log(ctx).Infow("client registered", "client_id", c.ID, "tax_id_valid", c.TaxIDValid())
	return c, nil
}

func (r *Registry) Clients() []domain.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Client, len(r.clients))
	copy(out, r.clients)
	return out
}

func (r *Registry) Client(id int64) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.clientIndexLocked(id)
	if !ok {
		return domain.Client{}, apperror.NewNotFound("client", id)
	}
	return r.clients[i], nil
}

// UpdateClient applies fn to a copy of the client and stores it only if fn succeeds.
func (r *Registry) UpdateClient(ctx context.Context, id int64, fn func(*domain.Client) error) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.clientIndexLocked(id)
	if !ok {
		return domain.Client{}, apperror.NewNotFound("client", id)
	}

	next := r.clients[i]
	if err := fn(&next); err != nil {
		return domain.Client{}, err
	}
	next.ID = id
	if err := validator.Check("client", next); err != nil {
		return domain.Client{}, err
	}
	r.clients[i] = next

	r.log(ctx).Infow("client updated", "client_id", id, "active", next.Active)
	return next, nil
}

func (r *Registry) clientIndexLocked(id int64) (int, bool) {
	return indexOf(id, len(r.clients))
}
