package usecase

import (
	"math/big"
	"stakepool/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// FlashUnstakeInteractor pays out a depositor immediately, net of the flash
// fee, instead of sending them through the queue. The fee is reserved before
// the capacity check on purpose: collected fees are never payable out of
// funds earmarked for other claimants.
type FlashUnstakeInteractor struct {
	ledger   *domain.Ledger
	token    domain.CertificateToken
	balance  *BalanceInteractor
	bank     domain.Bank
	treasury domain.TreasurySource
	emitter  domain.Emitter
}

func NewFlashUnstakeInteractor(ledger *domain.Ledger,
	token domain.CertificateToken,
	balance *BalanceInteractor,
	bank domain.Bank,
	treasury domain.TreasurySource,
	emitter domain.Emitter) *FlashUnstakeInteractor {
	interactor := &FlashUnstakeInteractor{
		ledger:   ledger,
		token:    token,
		balance:  balance,
		bank:     bank,
		treasury: treasury,
		emitter:  emitter,
	}
	return interactor
}

// Swap redeems shares for an immediate native payout to receiver. Open to
// any caller. Any failure undoes every mutation of this invocation,
// including the fee reservation and the share burn.
func (interactor *FlashUnstakeInteractor) Swap(caller common.Address, shares *big.Int, receiver common.Address) error {
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

	// Share pricing may round. Re-deriving the share figure from the priced
	// amount resolves the asymmetry the same way every time.
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

	fee := new(big.Int).Mul(amount, new(big.Int).SetUint64(interactor.ledger.FlashUnstakeFeeBps))
	fee.Div(fee, domain.FeeDenominator)
	netAmount := new(big.Int).Sub(amount, fee)

	snapshot := interactor.ledger.Snapshot()
	interactor.ledger.FlashUnstakeCollectedFee = new(big.Int).Add(interactor.ledger.FlashUnstakeCollectedFee, fee)

	// Capacity is evaluated after the fee reservation above.
	capacity, err := interactor.balance.FlashPoolCapacity()
	if err != nil {
		interactor.ledger.Restore(snapshot)
		return err
	}
	if netAmount.Cmp(capacity) > 0 {
		interactor.ledger.Restore(snapshot)
		return domain.ErrorInsufficientFlashCapacity
	}

	if err := interactor.token.Burn(caller, shares); err != nil {
		interactor.ledger.Restore(snapshot)
		return errors.Wrap(err, "burning shares")
	}

	if !interactor.bank.Transfer(receiver, netAmount) {
		// The burn already happened; mint the shares back before restoring
		// the ledger so the whole invocation has no observable effect.
		if err := interactor.token.Mint(caller, shares); err != nil {
			interactor.ledger.Restore(snapshot)
			return errors.Wrap(err, "minting shares back after failed payout")
		}
		interactor.ledger.Restore(snapshot)
		return domain.ErrorTransferFailed
	}

	interactor.ledger.TotalBalance = new(big.Int).Sub(interactor.ledger.TotalBalance, netAmount)

	interactor.emitter.Emit(domain.FeeCollectedEvent{Amount: fee})
	interactor.emitter.Emit(domain.UnstakedEvent{
		Owner:    caller,
		Receiver: receiver,
		Shares:   new(big.Int).Set(shares),
		Amount:   amount,
		Fee:      fee,
		Flash:    true,
	})
	return nil
}

// ClaimCollectedFee sweeps the whole collected-fee balance to the treasury.
// The counter is zeroed before the transfer and only restored if the
// transfer fails.
func (interactor *FlashUnstakeInteractor) ClaimCollectedFee(caller common.Address) error {
	if err := interactor.ledger.Enter(); err != nil {
		return err
	}
	defer interactor.ledger.Exit()

	treasury := interactor.treasury.TreasuryAddress()
	if treasury == (common.Address{}) {
		return domain.ErrorNoTreasury
	}

	amount := new(big.Int).Set(interactor.ledger.FlashUnstakeCollectedFee)
	if amount.Sign() == 0 {
		return domain.ErrorNoCollectedFee
	}

	snapshot := interactor.ledger.Snapshot()
	interactor.ledger.FlashUnstakeCollectedFee = new(big.Int)

	if !interactor.bank.Transfer(treasury, amount) {
		interactor.ledger.Restore(snapshot)
		return domain.ErrorTransferFailed
	}

	interactor.ledger.TotalBalance = new(big.Int).Sub(interactor.ledger.TotalBalance, amount)

	interactor.emitter.Emit(domain.FeeClaimedEvent{
		Treasury: treasury,
		Amount:   amount,
	})
	return nil
}
