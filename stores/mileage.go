package stores

import "context"

// BookingReward is the mileage credited per booked ticket.
const BookingReward = 100

// mileageAccounts is the slice of UserStore the ledger needs.
type mileageAccounts interface {
	AdjustMileage(ctx context.Context, loginID string, delta int) error
	SetMileage(ctx context.Context, loginID string, value int) error
}

// MileageLedger applies the mileage policy for ticket lifecycle events:
// every booking credits 100 miles, a single cancellation debits 100, and a
// bulk cancellation resets the balance to zero (a full refund, not a
// computed reversal).
type MileageLedger struct {
	accounts mileageAccounts
}

func NewMileageLedger(accounts mileageAccounts) *MileageLedger {
	return &MileageLedger{accounts: accounts}
}

func (l *MileageLedger) OnBooking(ctx context.Context, loginID string) error {
	return l.accounts.AdjustMileage(ctx, loginID, BookingReward)
}

// OnCancelOne assumes the cancelled ticket was rewarded when it was booked;
// it does not verify.
func (l *MileageLedger) OnCancelOne(ctx context.Context, loginID string) error {
	return l.accounts.AdjustMileage(ctx, loginID, -BookingReward)
}

func (l *MileageLedger) OnCancelAll(ctx context.Context, loginID string) error {
	return l.accounts.SetMileage(ctx, loginID, 0)
}
