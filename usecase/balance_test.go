package usecase

import (
	"testing"

	"stakepool/domain"

	"github.com/stretchr/testify/require"
)

func TestFreeBalanceSubtractsEveryReservation(t *testing.T) {
	ledger := domain.NewLedger()
	ledger.TotalBalance = coins(1000)
	ledger.FlashPoolMinCapacity = coins(100)
	queue := newFakeQueue()

	interactor := NewBalanceInteractor(ledger, queue)

	free, err := interactor.FreeBalance()
	require.NoError(t, err)
	require.Equal(t, coins(900), free)

	capacity, err := interactor.FlashPoolCapacity()
	require.NoError(t, err)
	require.Equal(t, coins(1000), capacity)
}

func TestFreeBalanceCountsStashAndCollectedFee(t *testing.T) {
	ledger := domain.NewLedger()
	ledger.TotalBalance = coins(1000)
	ledger.FlashUnstakeCollectedFee = coins(30)
	ledger.FlashPoolMinCapacity = coins(100)
	queue := newFakeQueue()
	queue.stashed = coins(250)

	interactor := NewBalanceInteractor(ledger, queue)

	free, err := interactor.FreeBalance()
	require.NoError(t, err)
	require.Equal(t, coins(620), free)

	capacity, err := interactor.FlashPoolCapacity()
	require.NoError(t, err)
	require.Equal(t, coins(720), capacity)
}

func TestBalancesClampToZero(t *testing.T) {
	ledger := domain.NewLedger()
	ledger.TotalBalance = coins(100)
	ledger.FlashPoolMinCapacity = coins(50)
	queue := newFakeQueue()
	queue.stashed = coins(400)

	interactor := NewBalanceInteractor(ledger, queue)

	free, err := interactor.FreeBalance()
	require.NoError(t, err)
	require.Zero(t, free.Sign())

	capacity, err := interactor.FlashPoolCapacity()
	require.NoError(t, err)
	require.Zero(t, capacity.Sign())
}

func TestFreeBalanceNeverExceedsCapacity(t *testing.T) {
	cases := []struct {
		name                           string
		total, stash, fee, minCapacity int64
	}{
		{"no reservations", 1000, 0, 0, 0},
		{"only floor", 1000, 0, 0, 300},
		{"all reservations", 1000, 200, 50, 300},
		{"oversubscribed", 100, 90, 30, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ledger := domain.NewLedger()
			ledger.TotalBalance = coins(c.total)
			ledger.FlashUnstakeCollectedFee = coins(c.fee)
			ledger.FlashPoolMinCapacity = coins(c.minCapacity)
			queue := newFakeQueue()
			queue.stashed = coins(c.stash)

			interactor := NewBalanceInteractor(ledger, queue)

			free, err := interactor.FreeBalance()
			require.NoError(t, err)
			capacity, err := interactor.FlashPoolCapacity()
			require.NoError(t, err)

			require.LessOrEqual(t, free.Cmp(capacity), 0)
			require.LessOrEqual(t, capacity.Cmp(ledger.TotalBalance), 0)
		})
	}
}
