package domain

import "fmt"

var (
	ErrorNotOperator   = fmt.Errorf("caller is not an operator")
	ErrorNotGovernance = fmt.Errorf("caller is not governance")

	ErrorZeroValidator       = fmt.Errorf("validator address is zero")
	ErrorZeroAddress         = fmt.Errorf("address is zero")
	ErrorSameValidator       = fmt.Errorf("source and destination validators are the same")
	ErrorPrecisionMisaligned = fmt.Errorf("amount is not a multiple of the precision unit")

	ErrorAmountBelowRelayerFee = fmt.Errorf("amount does not exceed the relayer fee")
	ErrorBelowMinDelegation    = fmt.Errorf("amount is below the minimum delegation")
	ErrorDustRemainder         = fmt.Errorf("remaining delegation would fall below the minimum")

	ErrorInsufficientFreeBalance = fmt.Errorf("free balance does not cover the requested amount")
	ErrorInsufficientBalance     = fmt.Errorf("pool balance does not cover the relayer fee")

	ErrorBelowMinStake             = fmt.Errorf("amount is below the minimum stake")
	ErrorBelowMinUnstake           = fmt.Errorf("amount is below the minimum unstake")
	ErrorInsufficientShares        = fmt.Errorf("share balance is insufficient")
	ErrorInsufficientFlashCapacity = fmt.Errorf("payout exceeds the flash pool capacity")

	ErrorTransferFailed = fmt.Errorf("native transfer failed")
	ErrorNoTreasury     = fmt.Errorf("no treasury address is configured")
	ErrorNoCollectedFee = fmt.Errorf("no collected fee to claim")
	ErrorInvalidAmount  = fmt.Errorf("amount is missing or negative")

	ErrorReentrantCall = fmt.Errorf("reentrant call")
)
