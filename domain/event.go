package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Event is a record of a completed balance movement or configuration change.
// Emitted events form the audit trail external monitoring relies on, so every
// successful mutating operation emits at least one.
type Event interface {
	Name() string
}

// Emitter receives events from the interactors. The default implementation
// logs them, counts them and makes them durable.
type Emitter interface {
	Emit(event Event)
}

type DelegatedEvent struct {
	Validator  common.Address `json:"validator"`
	Amount     *big.Int       `json:"amount"`
	RelayerFee *big.Int       `json:"relayerFee"`
}

func (DelegatedEvent) Name() string { return "delegated" }

type RedelegatedEvent struct {
	ValidatorSrc common.Address `json:"validatorSrc"`
	ValidatorDst common.Address `json:"validatorDst"`
	Amount       *big.Int       `json:"amount"`
	RelayerFee   *big.Int       `json:"relayerFee"`
}

func (RedelegatedEvent) Name() string { return "redelegated" }

type UndelegatedEvent struct {
	Validator  common.Address `json:"validator"`
	Amount     *big.Int       `json:"amount"`
	RelayerFee *big.Int       `json:"relayerFee"`
}

func (UndelegatedEvent) Name() string { return "undelegated" }

type StakedEvent struct {
	Staker   common.Address `json:"staker"`
	Receiver common.Address `json:"receiver"`
	Amount   *big.Int       `json:"amount"`
	Shares   *big.Int       `json:"shares"`
}

func (StakedEvent) Name() string { return "staked" }

// UnstakedEvent covers both redemption paths; Flash tells them apart.
type UnstakedEvent struct {
	Owner    common.Address `json:"owner"`
	Receiver common.Address `json:"receiver"`
	Shares   *big.Int       `json:"shares"`
	Amount   *big.Int       `json:"amount"`
	Fee      *big.Int       `json:"fee"`
	Flash    bool           `json:"flash"`
}

func (UnstakedEvent) Name() string { return "unstaked" }

type FeeCollectedEvent struct {
	Amount *big.Int `json:"amount"`
}

func (FeeCollectedEvent) Name() string { return "flash_fee_collected" }

type FeeClaimedEvent struct {
	Treasury common.Address `json:"treasury"`
	Amount   *big.Int       `json:"amount"`
}

func (FeeClaimedEvent) Name() string { return "flash_fee_claimed" }

type DailyRewardsClaimedEvent struct {
	Rewards *big.Int `json:"rewards"`
}

func (DailyRewardsClaimedEvent) Name() string { return "daily_rewards_claimed" }

type ConfigChangedEvent struct {
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

func (ConfigChangedEvent) Name() string { return "config_changed" }
