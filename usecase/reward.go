package usecase

import (
	"math/big"
	"stakepool/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Hooks around the reward claim. PreClaim runs before the staking precompile
// is asked for rewards; PostClaim runs after the claimed amount has been
// credited and defaults to the partner referral split. A nil hook is a no-op
// except for PostClaim, which always defaults.
type RewardHooks struct {
	PreClaim  func() error
	PostClaim func(rewards *big.Int) error
}

// RewardInteractor claims validator rewards once a day and splits the
// referral percentage to the partners address. A partner transfer failure
// aborts the whole claim; the distribution is all-or-nothing.
type RewardInteractor struct {
	ledger   *domain.Ledger
	staking  domain.StakingContract
	bank     domain.Bank
	partners domain.Partners
	acl      domain.AccessControl
	emitter  domain.Emitter
	hooks    RewardHooks
}

func NewRewardInteractor(ledger *domain.Ledger,
	staking domain.StakingContract,
	bank domain.Bank,
	partners domain.Partners,
	acl domain.AccessControl,
	emitter domain.Emitter) *RewardInteractor {
	interactor := &RewardInteractor{
		ledger:   ledger,
		staking:  staking,
		bank:     bank,
		partners: partners,
		acl:      acl,
		emitter:  emitter,
	}
	interactor.hooks.PostClaim = interactor.splitReferral
	return interactor
}

// SetHooks replaces the extension slots. A nil PostClaim falls back to the
// referral split.
func (interactor *RewardInteractor) SetHooks(hooks RewardHooks) {
	interactor.hooks = hooks
	if interactor.hooks.PostClaim == nil {
		interactor.hooks.PostClaim = interactor.splitReferral
	}
}

// ClaimDailyRewards claims the pool's validator rewards and distributes the
// referral share.
func (interactor *RewardInteractor) ClaimDailyRewards(caller common.Address) error {
	if !interactor.acl.IsOperator(caller) {
		return domain.ErrorNotOperator
	}
	if err := interactor.ledger.Enter(); err != nil {
		return err
	}
	defer interactor.ledger.Exit()

	snapshot := interactor.ledger.Snapshot()
	if err := interactor.claimAndDistribute(); err != nil {
		interactor.ledger.Restore(snapshot)
		return err
	}
	return nil
}

// WithdrawAndDistributePendingRewards first asks the precompile to release
// previously undelegated principal, then runs the same claim-and-distribute
// logic as the daily claim.
func (interactor *RewardInteractor) WithdrawAndDistributePendingRewards(caller common.Address) error {
	if !interactor.acl.IsOperator(caller) {
		return domain.ErrorNotOperator
	}
	if err := interactor.ledger.Enter(); err != nil {
		return err
	}
	defer interactor.ledger.Exit()

	snapshot := interactor.ledger.Snapshot()

	released, err := interactor.staking.ClaimUndelegated()
	if err != nil {
		return errors.Wrap(err, "claiming undelegated principal")
	}
	interactor.ledger.TotalBalance = new(big.Int).Add(interactor.ledger.TotalBalance, released)

	if err := interactor.claimAndDistribute(); err != nil {
		interactor.ledger.Restore(snapshot)
		return err
	}
	return nil
}

// DistributePendingRewards is the manual path: the same distribution without
// the principal release.
func (interactor *RewardInteractor) DistributePendingRewards(caller common.Address) error {
	if !interactor.acl.IsOperator(caller) {
		return domain.ErrorNotOperator
	}
	if err := interactor.ledger.Enter(); err != nil {
		return err
	}
	defer interactor.ledger.Exit()

	snapshot := interactor.ledger.Snapshot()
	if err := interactor.claimAndDistribute(); err != nil {
		interactor.ledger.Restore(snapshot)
		return err
	}
	return nil
}

func (interactor *RewardInteractor) claimAndDistribute() error {
	if interactor.hooks.PreClaim != nil {
		if err := interactor.hooks.PreClaim(); err != nil {
			return errors.Wrap(err, "pre-claim hook")
		}
	}

	rewards, err := interactor.staking.ClaimReward()
	if err != nil {
		return errors.Wrap(err, "claiming rewards")
	}
	interactor.ledger.TotalBalance = new(big.Int).Add(interactor.ledger.TotalBalance, rewards)

	if err := interactor.hooks.PostClaim(rewards); err != nil {
		return err
	}

	interactor.emitter.Emit(domain.DailyRewardsClaimedEvent{
		Rewards: new(big.Int).Set(rewards),
	})
	return nil
}

func (interactor *RewardInteractor) splitReferral(rewards *big.Int) error {
	percent, err := interactor.partners.PercentOfDailyRewards()
	if err != nil {
		return errors.Wrap(err, "reading partner percent")
	}

	referral := new(big.Int).Mul(rewards, new(big.Int).SetUint64(percent))
	referral.Div(referral, domain.PercentDenominator)
	if referral.Sign() == 0 {
		return nil
	}

	if !interactor.bank.Transfer(interactor.ledger.Partners, referral) {
		return domain.ErrorTransferFailed
	}
	interactor.ledger.TotalBalance = new(big.Int).Sub(interactor.ledger.TotalBalance, referral)
	return nil
}
