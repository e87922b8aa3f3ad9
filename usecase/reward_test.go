package usecase

import (
	"fmt"
	"math/big"
	"testing"

	"stakepool/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type rewardFixture struct {
	ledger     *domain.Ledger
	staking    *fakeStaking
	bank       *fakeBank
	partners   *fakePartners
	emitter    *fakeEmitter
	operator   common.Address
	interactor *RewardInteractor
}

func newRewardFixture() *rewardFixture {
	ledger := domain.NewLedger()
	ledger.Partners = addr(9)
	staking := newFakeStaking()
	bank := &fakeBank{}
	partners := &fakePartners{}
	emitter := &fakeEmitter{}
	acl := &fakeACL{operators: []common.Address{addr(1)}}
	return &rewardFixture{
		ledger:     ledger,
		staking:    staking,
		bank:       bank,
		partners:   partners,
		emitter:    emitter,
		operator:   addr(1),
		interactor: NewRewardInteractor(ledger, staking, bank, partners, acl, emitter),
	}
}

func TestClaimDailyRewardsSplitsReferral(t *testing.T) {
	f := newRewardFixture()
	f.ledger.TotalBalance = coins(1000)
	f.staking.rewards = coins(100)
	f.partners.percent = 10

	err := f.interactor.ClaimDailyRewards(f.operator)
	require.NoError(t, err)

	require.Equal(t, coins(1090), f.ledger.TotalBalance)
	require.Equal(t, coins(10), f.bank.received(f.ledger.Partners))

	claimed := f.emitter.named("daily_rewards_claimed")
	require.Len(t, claimed, 1)
	require.Equal(t, coins(100), claimed[0].(domain.DailyRewardsClaimedEvent).Rewards)
}

func TestClaimDailyRewardsSkipsZeroReferral(t *testing.T) {
	f := newRewardFixture()
	f.ledger.TotalBalance = coins(1000)
	f.staking.rewards = coins(100)
	f.partners.percent = 0

	err := f.interactor.ClaimDailyRewards(f.operator)
	require.NoError(t, err)

	require.Equal(t, coins(1100), f.ledger.TotalBalance)
	require.Empty(t, f.bank.transfers)
}

func TestClaimDailyRewardsAbortsWhenPartnerTransferFails(t *testing.T) {
	f := newRewardFixture()
	f.ledger.TotalBalance = coins(1000)
	f.staking.rewards = coins(100)
	f.partners.percent = 10
	f.bank.failAll = true
	before := captureLedger(f.ledger)

	err := f.interactor.ClaimDailyRewards(f.operator)
	require.ErrorIs(t, err, domain.ErrorTransferFailed)

	require.True(t, before.equals(f.ledger))
	require.Empty(t, f.emitter.events)
}

func TestClaimDailyRewardsRequiresOperator(t *testing.T) {
	f := newRewardFixture()

	err := f.interactor.ClaimDailyRewards(addr(8))
	require.ErrorIs(t, err, domain.ErrorNotOperator)
	require.Zero(t, f.staking.claimCalls)
}

func TestPreClaimHookFailureAbortsBeforeClaim(t *testing.T) {
	f := newRewardFixture()
	f.ledger.TotalBalance = coins(1000)
	f.staking.rewards = coins(100)
	f.interactor.SetHooks(RewardHooks{
		PreClaim: func() error { return fmt.Errorf("balances out of sync") },
	})
	before := captureLedger(f.ledger)

	err := f.interactor.ClaimDailyRewards(f.operator)
	require.Error(t, err)

	require.Zero(t, f.staking.claimCalls)
	require.True(t, before.equals(f.ledger))
}

func TestPostClaimHookReplacesReferralSplit(t *testing.T) {
	f := newRewardFixture()
	f.ledger.TotalBalance = coins(1000)
	f.staking.rewards = coins(100)
	f.partners.percent = 10

	var seen *big.Int
	f.interactor.SetHooks(RewardHooks{
		PostClaim: func(rewards *big.Int) error {
			seen = new(big.Int).Set(rewards)
			return nil
		},
	})

	err := f.interactor.ClaimDailyRewards(f.operator)
	require.NoError(t, err)

	require.Equal(t, coins(100), seen)
	require.Equal(t, coins(1100), f.ledger.TotalBalance)
	require.Empty(t, f.bank.transfers)
}

func TestNilPostClaimHookFallsBackToReferralSplit(t *testing.T) {
	f := newRewardFixture()
	f.ledger.TotalBalance = coins(1000)
	f.staking.rewards = coins(100)
	f.partners.percent = 10
	f.interactor.SetHooks(RewardHooks{})

	err := f.interactor.ClaimDailyRewards(f.operator)
	require.NoError(t, err)
	require.Equal(t, coins(10), f.bank.received(f.ledger.Partners))
}

func TestWithdrawCreditsReleasedPrincipalFirst(t *testing.T) {
	f := newRewardFixture()
	f.ledger.TotalBalance = coins(1000)
	f.staking.rewards = coins(100)
	f.staking.undelegated = coins(50)
	f.partners.percent = 10

	err := f.interactor.WithdrawAndDistributePendingRewards(f.operator)
	require.NoError(t, err)

	require.Equal(t, 1, f.staking.releaseCalls)
	require.Equal(t, coins(1140), f.ledger.TotalBalance)
}

func TestDistributePendingRewardsSkipsPrincipalRelease(t *testing.T) {
	f := newRewardFixture()
	f.ledger.TotalBalance = coins(1000)
	f.staking.rewards = coins(100)
	f.staking.undelegated = coins(50)
	f.partners.percent = 10

	err := f.interactor.DistributePendingRewards(f.operator)
	require.NoError(t, err)

	require.Zero(t, f.staking.releaseCalls)
	require.Equal(t, coins(1090), f.ledger.TotalBalance)
}
