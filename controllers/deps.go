package controllers

import (
	"context"

	"github.com/mkim2178/My-Jet/models"
)

// Store interfaces the controllers depend on, implemented by the stores
// package and by in-memory fakes in tests.

type UserStore interface {
	FindByLoginID(ctx context.Context, loginID string) (*models.User, error)
	Create(ctx context.Context, user models.User) error
	Delete(ctx context.Context, loginID string) error
}

type TicketStore interface {
	Create(ctx context.Context, ticket models.Ticket) error
	FindAllByOwner(ctx context.Context, ownerLoginID string) ([]models.Ticket, error)
	DeleteAllByOwner(ctx context.Context, ownerLoginID string) error
	DeleteOneByOwnerAndDate(ctx context.Context, ownerLoginID, departureDate string) (bool, error)
	CountByOwnerAndDate(ctx context.Context, ownerLoginID, departureDate string) (int64, error)
}

type MileageLedger interface {
	OnBooking(ctx context.Context, loginID string) error
	OnCancelOne(ctx context.Context, loginID string) error
	OnCancelAll(ctx context.Context, loginID string) error
}
