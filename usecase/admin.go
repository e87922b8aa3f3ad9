package usecase

import (
	"fmt"
	"math/big"
	"stakepool/domain"

	"github.com/ethereum/go-ethereum/common"
)

// AdminInteractor holds the governance-gated configuration surface. Every
// setter emits a change event carrying the before and after values.
type AdminInteractor struct {
	ledger  *domain.Ledger
	acl     domain.AccessControl
	emitter domain.Emitter
}

func NewAdminInteractor(ledger *domain.Ledger, acl domain.AccessControl, emitter domain.Emitter) *AdminInteractor {
	interactor := &AdminInteractor{
		ledger:  ledger,
		acl:     acl,
		emitter: emitter,
	}
	return interactor
}

func (interactor *AdminInteractor) SetStakingContract(caller common.Address, addr common.Address) error {
	if !interactor.acl.IsGovernance(caller) {
		return domain.ErrorNotGovernance
	}
	if addr == (common.Address{}) {
		return domain.ErrorZeroAddress
	}

	before := interactor.ledger.StakingContract
	interactor.ledger.StakingContract = addr

	interactor.emitter.Emit(domain.ConfigChangedEvent{
		Field:  "staking_contract",
		Before: before.Hex(),
		After:  addr.Hex(),
	})
	return nil
}

func (interactor *AdminInteractor) SetFlashUnstakeFee(caller common.Address, bps uint64) error {
	if !interactor.acl.IsGovernance(caller) {
		return domain.ErrorNotGovernance
	}

	before := interactor.ledger.FlashUnstakeFeeBps
	interactor.ledger.FlashUnstakeFeeBps = bps

	interactor.emitter.Emit(domain.ConfigChangedEvent{
		Field:  "flash_unstake_fee_bps",
		Before: fmt.Sprintf("%d", before),
		After:  fmt.Sprintf("%d", bps),
	})
	return nil
}

func (interactor *AdminInteractor) SetFlashPoolMinCapacity(caller common.Address, amount *big.Int) error {
	if !interactor.acl.IsGovernance(caller) {
		return domain.ErrorNotGovernance
	}
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrorInvalidAmount
	}

	before := interactor.ledger.FlashPoolMinCapacity
	interactor.ledger.FlashPoolMinCapacity = new(big.Int).Set(amount)

	interactor.emitter.Emit(domain.ConfigChangedEvent{
		Field:  "flash_pool_min_capacity",
		Before: before.String(),
		After:  amount.String(),
	})
	return nil
}

func (interactor *AdminInteractor) SetPartners(caller common.Address, addr common.Address) error {
	if !interactor.acl.IsGovernance(caller) {
		return domain.ErrorNotGovernance
	}
	if addr == (common.Address{}) {
		return domain.ErrorZeroAddress
	}

	before := interactor.ledger.Partners
	interactor.ledger.Partners = addr

	interactor.emitter.Emit(domain.ConfigChangedEvent{
		Field:  "partners",
		Before: before.Hex(),
		After:  addr.Hex(),
	})
	return nil
}

func (interactor *AdminInteractor) StakingContract() common.Address {
	return interactor.ledger.StakingContract
}

func (interactor *AdminInteractor) FlashUnstakeFee() uint64 {
	return interactor.ledger.FlashUnstakeFeeBps
}

func (interactor *AdminInteractor) FlashPoolMinCapacity() *big.Int {
	return new(big.Int).Set(interactor.ledger.FlashPoolMinCapacity)
}

func (interactor *AdminInteractor) Partners() common.Address {
	return interactor.ledger.Partners
}
