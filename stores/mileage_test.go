package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccounts keeps balances in memory.
type fakeAccounts struct {
	balances map[string]int
}

func (f *fakeAccounts) AdjustMileage(_ context.Context, loginID string, delta int) error {
	f.balances[loginID] += delta
	return nil
}

func (f *fakeAccounts) SetMileage(_ context.Context, loginID string, value int) error {
	f.balances[loginID] = value
	return nil
}

func TestMileageLedger(t *testing.T) {
	ctx := context.Background()
	accounts := &fakeAccounts{balances: map[string]int{"alice": 0}}
	ledger := NewMileageLedger(accounts)

	require.NoError(t, ledger.OnBooking(ctx, "alice"))
	assert.Equal(t, 100, accounts.balances["alice"])

	require.NoError(t, ledger.OnBooking(ctx, "alice"))
	assert.Equal(t, 200, accounts.balances["alice"])

	require.NoError(t, ledger.OnCancelOne(ctx, "alice"))
	assert.Equal(t, 100, accounts.balances["alice"])

	require.NoError(t, ledger.OnBooking(ctx, "alice"))
	require.NoError(t, ledger.OnCancelAll(ctx, "alice"))
	assert.Equal(t, 0, accounts.balances["alice"])
}
