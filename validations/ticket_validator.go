package validations

import (
	"context"

	"github.com/mkim2178/My-Jet/models"
)

// TicketFinder reports how many tickets an owner already holds on a date.
type TicketFinder interface {
	CountByOwnerAndDate(ctx context.Context, ownerLoginID, departureDate string) (int64, error)
}

// TicketIsValid enforces the booking policy:
//  1. starting point and ending point must differ;
//  2. a user may not hold two tickets departing on the same date.
//
// The same-day rule is scoped to the ticket's owner, so two different users
// may both fly on the same date.
func TicketIsValid(ctx context.Context, finder TicketFinder, ticket models.Ticket) (bool, error) {
	if ticket.StartingPoint == ticket.EndingPoint {
		return false, nil
	}
	count, err := finder.CountByOwnerAndDate(ctx, ticket.OwnerLoginID, ticket.DepartureDate)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
