package usecase

import (
	"math/big"
	"stakepool/domain"

	"github.com/pkg/errors"
)

// BalanceInteractor partitions the pool's one native balance into the slice
// that is actually spendable. Both reads clamp to zero: reservations briefly
// exceeding the total balance is a benign state right after a large payout.
type BalanceInteractor struct {
	ledger *domain.Ledger
	queue  domain.UnstakeQueue
}

func NewBalanceInteractor(ledger *domain.Ledger, queue domain.UnstakeQueue) *BalanceInteractor {
	interactor := &BalanceInteractor{
		ledger: ledger,
		queue:  queue,
	}
	return interactor
}

// FreeBalance is what remains for new delegations after every reservation:
// the queue's stash for manual claims, the collected flash fees and the
// flash-pool capacity floor.
func (interactor *BalanceInteractor) FreeBalance() (*big.Int, error) {
	stashed, err := interactor.queue.StashedForManualClaims()
	if err != nil {
		return nil, errors.Wrap(err, "reading stash reserved for manual claims")
	}

	free := new(big.Int).Sub(interactor.ledger.TotalBalance, stashed)
	free.Sub(free, interactor.ledger.FlashUnstakeCollectedFee)
	free.Sub(free, interactor.ledger.FlashPoolMinCapacity)
	return clampToZero(free), nil
}

// FlashPoolCapacity is the amount available to pay flash unstakes. The
// min-capacity floor is deliberately not subtracted here, so the capacity is
// never below the free balance.
func (interactor *BalanceInteractor) FlashPoolCapacity() (*big.Int, error) {
	stashed, err := interactor.queue.StashedForManualClaims()
	if err != nil {
		return nil, errors.Wrap(err, "reading stash reserved for manual claims")
	}

	capacity := new(big.Int).Sub(interactor.ledger.TotalBalance, stashed)
	capacity.Sub(capacity, interactor.ledger.FlashUnstakeCollectedFee)
	return clampToZero(capacity), nil
}

func clampToZero(value *big.Int) *big.Int {
	if value.Sign() < 0 {
		return value.SetInt64(0)
	}
	return value
}
