package usecase

import (
	"math/big"
	"stakepool/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// StakeInteractor handles the inbound deposit path and the slow, queued
// redemption path. The queue's matching of requests to funds is external;
// this interactor only hands requests over.
type StakeInteractor struct {
	ledger  *domain.Ledger
	token   domain.CertificateToken
	queue   domain.UnstakeQueue
	emitter domain.Emitter
}

func NewStakeInteractor(ledger *domain.Ledger,
	token domain.CertificateToken,
	queue domain.UnstakeQueue,
	emitter domain.Emitter) *StakeInteractor {
	interactor := &StakeInteractor{
		ledger:  ledger,
		token:   token,
		queue:   queue,
		emitter: emitter,
	}
	return interactor
}

// Stake takes custody of amount in native currency and mints the equivalent
// shares to receiver.
func (interactor *StakeInteractor) Stake(caller common.Address, amount *big.Int, receiver common.Address) error {
	if err := interactor.ledger.Enter(); err != nil {
		return err
	}
	defer interactor.ledger.Exit()

	if amount == nil || amount.Sign() < 0 {
		return domain.ErrorInvalidAmount
	}
	if amount.Cmp(interactor.ledger.MinStake) < 0 {
		return domain.ErrorBelowMinStake
	}

	shares, err := interactor.token.BondsToShares(amount)
	if err != nil {
		return errors.Wrap(err, "pricing deposit")
	}

	snapshot := interactor.ledger.Snapshot()
	interactor.ledger.TotalBalance = new(big.Int).Add(interactor.ledger.TotalBalance, amount)

	if err := interactor.token.Mint(receiver, shares); err != nil {
		interactor.ledger.Restore(snapshot)
		return errors.Wrap(err, "minting shares")
	}

	interactor.emitter.Emit(domain.StakedEvent{
		Staker:   caller,
		Receiver: receiver,
		Amount:   new(big.Int).Set(amount),
		Shares:   shares,
	})
	return nil
}

// Unstake burns the caller's shares and queues a manual-claim request for
// the priced amount. The payout happens later, out of the queue's stash.
func (interactor *StakeInteractor) Unstake(caller common.Address, shares *big.Int, receiver common.Address) error {
	if err := interactor.ledger.Enter(); err != nil {
		return err
	}
	defer interactor.ledger.Exit()

	amount, err := interactor.token.SharesToBonds(shares)
	if err != nil {
		return errors.Wrap(err, "pricing shares")
	}
	if amount.Cmp(interactor.ledger.MinUnstake) < 0 {
		return domain.ErrorBelowMinUnstake
	}

	shares, err = interactor.token.BondsToShares(amount)
	if err != nil {
		return errors.Wrap(err, "re-deriving shares")
	}
	held, err := interactor.token.BalanceOf(caller)
	if err != nil {
		return errors.Wrap(err, "reading share balance")
	}
	if held.Cmp(shares) < 0 {
		return domain.ErrorInsufficientShares
	}

	snapshot := interactor.ledger.Snapshot()

	if err := interactor.token.Burn(caller, shares); err != nil {
		interactor.ledger.Restore(snapshot)
		return errors.Wrap(err, "burning shares")
	}

	if err := interactor.queue.AddIntoQueue(caller, receiver, amount); err != nil {
		if mintErr := interactor.token.Mint(caller, shares); mintErr != nil {
			interactor.ledger.Restore(snapshot)
			return errors.Wrap(mintErr, "minting shares back after failed queueing")
		}
		interactor.ledger.Restore(snapshot)
		return errors.Wrap(err, "queueing unstake request")
	}

	interactor.emitter.Emit(domain.UnstakedEvent{
		Owner:    caller,
		Receiver: receiver,
		Shares:   new(big.Int).Set(shares),
		Amount:   amount,
		Fee:      new(big.Int),
		Flash:    false,
	})
	return nil
}
