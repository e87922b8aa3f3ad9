package usecase

import (
	"math/big"
	"stakepool/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// DelegationInteractor moves the pool's stake to, between and away from
// validators through the staking precompile. Every precondition is checked
// before the precompile is touched; a rejected call leaves the ledger
// unchanged.
type DelegationInteractor struct {
	ledger  *domain.Ledger
	staking domain.StakingContract
	balance *BalanceInteractor
	acl     domain.AccessControl
	emitter domain.Emitter
	pool    common.Address
}

func NewDelegationInteractor(ledger *domain.Ledger,
	staking domain.StakingContract,
	balance *BalanceInteractor,
	acl domain.AccessControl,
	emitter domain.Emitter,
	pool common.Address) *DelegationInteractor {
	interactor := &DelegationInteractor{
		ledger:  ledger,
		staking: staking,
		balance: balance,
		acl:     acl,
		emitter: emitter,
		pool:    pool,
	}
	return interactor
}

// Delegate sends amount plus the relayer fee to the staking precompile and
// instructs it to delegate amount to validator.
func (interactor *DelegationInteractor) Delegate(caller common.Address, validator common.Address, amount *big.Int) error {
	if !interactor.acl.IsOperator(caller) {
		return domain.ErrorNotOperator
	}
	if validator == (common.Address{}) {
		return domain.ErrorZeroValidator
	}
	if !domain.IsPrecisionAligned(amount) {
		return domain.ErrorPrecisionMisaligned
	}

	relayerFee, err := interactor.staking.RelayerFee()
	if err != nil {
		return errors.Wrap(err, "reading relayer fee")
	}
	if amount.Cmp(relayerFee) <= 0 {
		return domain.ErrorAmountBelowRelayerFee
	}

	minDelegation, err := interactor.staking.MinDelegation()
	if err != nil {
		return errors.Wrap(err, "reading minimum delegation")
	}
	if amount.Cmp(minDelegation) < 0 {
		return domain.ErrorBelowMinDelegation
	}

	value := new(big.Int).Add(amount, relayerFee)
	free, err := interactor.balance.FreeBalance()
	if err != nil {
		return err
	}
	if value.Cmp(free) > 0 {
		return domain.ErrorInsufficientFreeBalance
	}

	snapshot := interactor.ledger.Snapshot()
	interactor.ledger.TotalBalance = new(big.Int).Sub(interactor.ledger.TotalBalance, value)

	if err := interactor.staking.Delegate(validator, amount, value); err != nil {
		interactor.ledger.Restore(snapshot)
		return errors.Wrap(err, "delegating to validator")
	}

	interactor.emitter.Emit(domain.DelegatedEvent{
		Validator:  validator,
		Amount:     new(big.Int).Set(amount),
		RelayerFee: relayerFee,
	})
	return nil
}

// Redelegate pays the relayer fee and asks the precompile to move amount
// from validatorSrc to validatorDst. Whether enough is delegated to the
// source is the precompile's own check.
func (interactor *DelegationInteractor) Redelegate(caller common.Address, validatorSrc common.Address, validatorDst common.Address, amount *big.Int) error {
	if !interactor.acl.IsGovernance(caller) {
		return domain.ErrorNotGovernance
	}
	if validatorSrc == (common.Address{}) || validatorDst == (common.Address{}) {
		return domain.ErrorZeroValidator
	}
	if validatorSrc == validatorDst {
		return domain.ErrorSameValidator
	}
	if !domain.IsPrecisionAligned(amount) {
		return domain.ErrorPrecisionMisaligned
	}

	minDelegation, err := interactor.staking.MinDelegation()
	if err != nil {
		return errors.Wrap(err, "reading minimum delegation")
	}
	if amount.Cmp(minDelegation) < 0 {
		return domain.ErrorBelowMinDelegation
	}

	relayerFee, err := interactor.staking.RelayerFee()
	if err != nil {
		return errors.Wrap(err, "reading relayer fee")
	}
	free, err := interactor.balance.FreeBalance()
	if err != nil {
		return err
	}
	if relayerFee.Cmp(free) > 0 {
		return domain.ErrorInsufficientFreeBalance
	}

	snapshot := interactor.ledger.Snapshot()
	interactor.ledger.TotalBalance = new(big.Int).Sub(interactor.ledger.TotalBalance, relayerFee)

	if err := interactor.staking.Redelegate(validatorSrc, validatorDst, amount, relayerFee); err != nil {
		interactor.ledger.Restore(snapshot)
		return errors.Wrap(err, "redelegating between validators")
	}

	interactor.emitter.Emit(domain.RedelegatedEvent{
		ValidatorSrc: validatorSrc,
		ValidatorDst: validatorDst,
		Amount:       new(big.Int).Set(amount),
		RelayerFee:   relayerFee,
	})
	return nil
}

// Undelegate pays the relayer fee and requests withdrawal of amount from
// validator. The principal comes back later through ClaimUndelegated. A
// partial undelegation must not leave a remainder below the protocol
// minimum.
func (interactor *DelegationInteractor) Undelegate(caller common.Address, validator common.Address, amount *big.Int) error {
	if !interactor.acl.IsOperator(caller) {
		return domain.ErrorNotOperator
	}
	if validator == (common.Address{}) {
		return domain.ErrorZeroValidator
	}
	if !domain.IsPrecisionAligned(amount) {
		return domain.ErrorPrecisionMisaligned
	}

	minDelegation, err := interactor.staking.MinDelegation()
	if err != nil {
		return errors.Wrap(err, "reading minimum delegation")
	}
	if amount.Cmp(minDelegation) < 0 {
		return domain.ErrorBelowMinDelegation
	}

	delegated, err := interactor.staking.Delegated(interactor.pool, validator)
	if err != nil {
		return errors.Wrap(err, "reading delegated amount")
	}
	remaining := new(big.Int).Sub(delegated, amount)
	if remaining.Sign() != 0 && remaining.Cmp(minDelegation) < 0 {
		return domain.ErrorDustRemainder
	}

	relayerFee, err := interactor.staking.RelayerFee()
	if err != nil {
		return errors.Wrap(err, "reading relayer fee")
	}
	if relayerFee.Cmp(interactor.ledger.TotalBalance) > 0 {
		return domain.ErrorInsufficientBalance
	}

	snapshot := interactor.ledger.Snapshot()
	interactor.ledger.TotalBalance = new(big.Int).Sub(interactor.ledger.TotalBalance, relayerFee)

	if err := interactor.staking.Undelegate(validator, amount, relayerFee); err != nil {
		interactor.ledger.Restore(snapshot)
		return errors.Wrap(err, "undelegating from validator")
	}

	interactor.emitter.Emit(domain.UndelegatedEvent{
		Validator:  validator,
		Amount:     new(big.Int).Set(amount),
		RelayerFee: relayerFee,
	})
	return nil
}

// TotalDelegated is a pass-through query for the pool's aggregate delegation.
func (interactor *DelegationInteractor) TotalDelegated() (*big.Int, error) {
	return interactor.staking.TotalDelegated(interactor.pool)
}
