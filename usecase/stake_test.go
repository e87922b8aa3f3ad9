package usecase

import (
	"testing"

	"stakepool/domain"

	"github.com/stretchr/testify/require"
)

type stakeFixture struct {
	ledger     *domain.Ledger
	token      *fakeToken
	queue      *fakeQueue
	emitter    *fakeEmitter
	interactor *StakeInteractor
}

func newStakeFixture() *stakeFixture {
	ledger := domain.NewLedger()
	token := newFakeToken()
	queue := newFakeQueue()
	emitter := &fakeEmitter{}
	return &stakeFixture{
		ledger:     ledger,
		token:      token,
		queue:      queue,
		emitter:    emitter,
		interactor: NewStakeInteractor(ledger, token, queue, emitter),
	}
}

func TestStakeMintsSharesAndCreditsBalance(t *testing.T) {
	f := newStakeFixture()
	staker, receiver := addr(1), addr(2)

	err := f.interactor.Stake(staker, coins(500), receiver)
	require.NoError(t, err)

	require.Equal(t, coins(500), f.ledger.TotalBalance)
	require.Equal(t, coins(500), f.token.balances[receiver])

	staked := f.emitter.named("staked")
	require.Len(t, staked, 1)
	event := staked[0].(domain.StakedEvent)
	require.Equal(t, staker, event.Staker)
	require.Equal(t, receiver, event.Receiver)
	require.Equal(t, coins(500), event.Amount)
}

func TestStakeRejectsBelowMinimum(t *testing.T) {
	f := newStakeFixture()
	f.ledger.MinStake = coins(100)

	err := f.interactor.Stake(addr(1), coins(50), addr(1))
	require.ErrorIs(t, err, domain.ErrorBelowMinStake)
	require.Zero(t, f.token.mintCalls)
	require.Zero(t, f.ledger.TotalBalance.Sign())
}

func TestStakeRejectsInvalidAmount(t *testing.T) {
	f := newStakeFixture()

	require.ErrorIs(t, f.interactor.Stake(addr(1), nil, addr(1)), domain.ErrorInvalidAmount)
	require.ErrorIs(t, f.interactor.Stake(addr(1), coins(-5), addr(1)), domain.ErrorInvalidAmount)
}

func TestStakeRestoresBalanceWhenMintFails(t *testing.T) {
	f := newStakeFixture()
	f.token.failMint = true
	before := captureLedger(f.ledger)

	err := f.interactor.Stake(addr(1), coins(500), addr(1))
	require.Error(t, err)
	require.True(t, before.equals(f.ledger))
	require.Empty(t, f.emitter.events)
}

func TestUnstakeBurnsAndQueuesRequest(t *testing.T) {
	f := newStakeFixture()
	f.ledger.TotalBalance = coins(1000)
	owner, receiver := addr(1), addr(2)
	f.token.balances[owner] = coins(500)

	err := f.interactor.Unstake(owner, coins(300), receiver)
	require.NoError(t, err)

	require.Equal(t, coins(200), f.token.balances[owner])
	require.Len(t, f.queue.queued, 1)
	require.Equal(t, owner, f.queue.queued[0].owner)
	require.Equal(t, receiver, f.queue.queued[0].receiver)
	require.Equal(t, coins(300), f.queue.queued[0].amount)

	// The queued amount stays under custody until the manual claim.
	require.Equal(t, coins(1000), f.ledger.TotalBalance)

	unstaked := f.emitter.named("unstaked")
	require.Len(t, unstaked, 1)
	require.False(t, unstaked[0].(domain.UnstakedEvent).Flash)
}

func TestUnstakeRejectsBelowMinimum(t *testing.T) {
	f := newStakeFixture()
	f.ledger.MinUnstake = coins(400)
	f.token.balances[addr(1)] = coins(500)

	err := f.interactor.Unstake(addr(1), coins(300), addr(1))
	require.ErrorIs(t, err, domain.ErrorBelowMinUnstake)
	require.Zero(t, f.token.burnCalls)
}

func TestUnstakeMintsBackWhenQueueingFails(t *testing.T) {
	f := newStakeFixture()
	f.ledger.TotalBalance = coins(1000)
	f.queue.failAdd = true
	owner := addr(1)
	f.token.balances[owner] = coins(500)
	before := captureLedger(f.ledger)

	err := f.interactor.Unstake(owner, coins(300), addr(2))
	require.Error(t, err)

	require.Equal(t, coins(500), f.token.balances[owner])
	require.True(t, before.equals(f.ledger))
	require.Empty(t, f.emitter.events)
}
