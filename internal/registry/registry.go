// Package registry owns the clients, accommodations and reservations and
// enforces the invariants that span more than one entity, most notably that
// active reservations of one accommodation never overlap.
//
// Every operation runs under a single mutex, so id assignment, the overlap
// check and the following write are observed as one step. Values handed out
// are copies.
package registry

import (
	"context"
	"sync"

	"alojamento/internal/domain"
	"alojamento/internal/pkg/logger"
)

type Registry struct {
	mu sync.Mutex

	clients        []domain.Client
	accommodations []domain.Accommodation
	reservations   []domain.Reservation

	nextClientID        int64
	nextAccommodationID int64
	nextReservationID   int64

	logger *logger.Logger
}

type Option func(*Registry)

// WithLogger sets the logger used when the context carries none.
func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		nextClientID:        1,
		nextAccommodationID: 1,
		nextReservationID:   1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Default()
	}
	return r
}

func (r *Registry) log(ctx context.Context) *logger.Logger {
	return logger.FromContext(ctx, r.logger).WithComponent("registry")
}

// ids are sequential from 1 and entries are never removed, so id-1 is the slice index.
func indexOf(id int64, n int) (int, bool) {
	if id < 1 || id > int64(n) {
		return 0, false
	}
	return int(id - 1), true
}
