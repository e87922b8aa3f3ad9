package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// StakingContract is the validator-staking precompile. Delegation-affecting
// calls carry native value: the delegated amount plus the relayer fee for
// delegate, the relayer fee alone for redelegate and undelegate.
type StakingContract interface {
	RelayerFee() (*big.Int, error)
	MinDelegation() (*big.Int, error)
	TotalDelegated(pool common.Address) (*big.Int, error)
	Delegated(pool common.Address, validator common.Address) (*big.Int, error)

	Delegate(validator common.Address, amount *big.Int, value *big.Int) error
	Redelegate(validatorSrc common.Address, validatorDst common.Address, amount *big.Int, value *big.Int) error
	Undelegate(validator common.Address, amount *big.Int, value *big.Int) error

	// ClaimReward returns the reward amount credited to the pool.
	ClaimReward() (*big.Int, error)

	// ClaimUndelegated releases previously undelegated principal and returns
	// the amount credited to the pool.
	ClaimUndelegated() (*big.Int, error)
}

// CertificateToken prices and moves the depositors' share claims.
type CertificateToken interface {
	SharesToBonds(shares *big.Int) (*big.Int, error)
	BondsToShares(amount *big.Int) (*big.Int, error)
	BalanceOf(owner common.Address) (*big.Int, error)
	Mint(owner common.Address, shares *big.Int) error
	Burn(owner common.Address, shares *big.Int) error
}

// UnstakeQueue is the slow redemption path. Its matching algorithm is a black
// box; the pool only hands requests over and respects its reservation figure.
type UnstakeQueue interface {
	StashedForManualClaims() (*big.Int, error)
	AddIntoQueue(owner common.Address, receiver common.Address, amount *big.Int) error
}

// Partners reports the referral share of daily rewards.
type Partners interface {
	PercentOfDailyRewards() (uint64, error)
}

// TreasurySource resolves the recipient of swept flash-unstake fees.
type TreasurySource interface {
	TreasuryAddress() common.Address
}

// AccessControl answers capability checks. How roles are granted is not the
// pool's concern.
type AccessControl interface {
	IsOperator(caller common.Address) bool
	IsGovernance(caller common.Address) bool
}

// Bank moves native currency out of the pool's custody. The result is
// deliberately opaque: false means the transfer did not happen, with no
// further detail, and the caller must abort whatever it was doing.
type Bank interface {
	Transfer(to common.Address, amount *big.Int) bool
}
