package domain

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// Granularity of the staking precompile. Every delegated amount must be
	// an exact multiple of this unit.
	PrecisionUnit = big.NewInt(10_000_000_000)

	// 10000 basis points = 100%
	FeeDenominator = big.NewInt(10_000)

	// Partner revenue share is expressed as an integer percent.
	PercentDenominator = big.NewInt(100)
)

// Ledger is the single mutable state of the pool. Every interactor reads
// and/or mutates it, always through an exclusive reference.
type Ledger struct {
	// Native currency currently under the pool's custody.
	TotalBalance *big.Int

	// Address of the staking precompile currently in use.
	StakingContract common.Address

	// Flash-unstake fee rate in basis points.
	FlashUnstakeFeeBps uint64

	// Fee revenue accumulated by flash unstakes, awaiting sweep to the
	// treasury. Only a sweep resets it, back to zero.
	FlashUnstakeCollectedFee *big.Int

	// Floor amount kept liquid for the flash-unstake path.
	FlashPoolMinCapacity *big.Int

	// Receiver of the referral share of daily rewards.
	Partners common.Address

	// Pool-wide entry thresholds, bound at initialization.
	MinStake   *big.Int
	MinUnstake *big.Int

	guard sync.Mutex
}

func NewLedger() *Ledger {
	return &Ledger{
		TotalBalance:             new(big.Int),
		FlashUnstakeCollectedFee: new(big.Int),
		FlashPoolMinCapacity:     new(big.Int),
		MinStake:                 new(big.Int),
		MinUnstake:               new(big.Int),
	}
}

// Enter marks a guarded operation as in progress. A nested call of any
// guarded operation fails instead of proceeding, so a malicious receiver
// cannot re-trigger a mutation before the outer one has committed.
func (ledger *Ledger) Enter() error {
	if !ledger.guard.TryLock() {
		return ErrorReentrantCall
	}
	return nil
}

func (ledger *Ledger) Exit() {
	ledger.guard.Unlock()
}

// LedgerSnapshot holds deep copies of every stored field. Mutating
// operations take a snapshot on entry and restore it on any failure, so an
// aborted operation leaves the ledger bit-for-bit unchanged.
type LedgerSnapshot struct {
	totalBalance    *big.Int
	stakingContract common.Address
	feeBps          uint64
	collectedFee    *big.Int
	minCapacity     *big.Int
	partners        common.Address
	minStake        *big.Int
	minUnstake      *big.Int
}

func (ledger *Ledger) Snapshot() LedgerSnapshot {
	return LedgerSnapshot{
		totalBalance:    new(big.Int).Set(ledger.TotalBalance),
		stakingContract: ledger.StakingContract,
		feeBps:          ledger.FlashUnstakeFeeBps,
		collectedFee:    new(big.Int).Set(ledger.FlashUnstakeCollectedFee),
		minCapacity:     new(big.Int).Set(ledger.FlashPoolMinCapacity),
		partners:        ledger.Partners,
		minStake:        new(big.Int).Set(ledger.MinStake),
		minUnstake:      new(big.Int).Set(ledger.MinUnstake),
	}
}

func (ledger *Ledger) Restore(snapshot LedgerSnapshot) {
	ledger.TotalBalance = new(big.Int).Set(snapshot.totalBalance)
	ledger.StakingContract = snapshot.stakingContract
	ledger.FlashUnstakeFeeBps = snapshot.feeBps
	ledger.FlashUnstakeCollectedFee = new(big.Int).Set(snapshot.collectedFee)
	ledger.FlashPoolMinCapacity = new(big.Int).Set(snapshot.minCapacity)
	ledger.Partners = snapshot.partners
	ledger.MinStake = new(big.Int).Set(snapshot.minStake)
	ledger.MinUnstake = new(big.Int).Set(snapshot.minUnstake)
}

// IsPrecisionAligned reports whether amount is an exact multiple of the
// staking precompile's granularity.
func IsPrecisionAligned(amount *big.Int) bool {
	return new(big.Int).Mod(amount, PrecisionUnit).Sign() == 0
}
