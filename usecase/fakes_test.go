package usecase

import (
	"fmt"
	"math/big"
	"stakepool/domain"

	"github.com/ethereum/go-ethereum/common"
)

func addr(n byte) common.Address {
	var a common.Address
	a[19] = n
	return a
}

func coins(n int64) *big.Int {
	return big.NewInt(n)
}

func units(n int64) *big.Int {
	return new(big.Int).Mul(domain.PrecisionUnit, big.NewInt(n))
}

// ---------------------------------------------------------------------------

type fakeStaking struct {
	relayerFee    *big.Int
	minDelegation *big.Int
	total         *big.Int
	delegated     map[common.Address]*big.Int
	rewards       *big.Int
	undelegated   *big.Int

	failDelegate   bool
	failRedelegate bool
	failUndelegate bool
	failClaim      bool

	delegateCalls   int
	redelegateCalls int
	undelegateCalls int
	claimCalls      int
	releaseCalls    int
	lastValue       *big.Int
}

func newFakeStaking() *fakeStaking {
	return &fakeStaking{
		relayerFee:    new(big.Int),
		minDelegation: new(big.Int),
		total:         new(big.Int),
		delegated:     make(map[common.Address]*big.Int),
		rewards:       new(big.Int),
		undelegated:   new(big.Int),
	}
}

func (staking *fakeStaking) RelayerFee() (*big.Int, error) {
	return new(big.Int).Set(staking.relayerFee), nil
}

func (staking *fakeStaking) MinDelegation() (*big.Int, error) {
	return new(big.Int).Set(staking.minDelegation), nil
}

func (staking *fakeStaking) TotalDelegated(pool common.Address) (*big.Int, error) {
	return new(big.Int).Set(staking.total), nil
}

func (staking *fakeStaking) Delegated(pool common.Address, validator common.Address) (*big.Int, error) {
	if amount, ok := staking.delegated[validator]; ok {
		return new(big.Int).Set(amount), nil
	}
	return new(big.Int), nil
}

func (staking *fakeStaking) Delegate(validator common.Address, amount *big.Int, value *big.Int) error {
	staking.delegateCalls++
	staking.lastValue = new(big.Int).Set(value)
	if staking.failDelegate {
		return fmt.Errorf("precompile rejected delegate")
	}
	return nil
}

func (staking *fakeStaking) Redelegate(validatorSrc common.Address, validatorDst common.Address, amount *big.Int, value *big.Int) error {
	staking.redelegateCalls++
	staking.lastValue = new(big.Int).Set(value)
	if staking.failRedelegate {
		return fmt.Errorf("precompile rejected redelegate")
	}
	return nil
}

func (staking *fakeStaking) Undelegate(validator common.Address, amount *big.Int, value *big.Int) error {
	staking.undelegateCalls++
	staking.lastValue = new(big.Int).Set(value)
	if staking.failUndelegate {
		return fmt.Errorf("precompile rejected undelegate")
	}
	return nil
}

func (staking *fakeStaking) ClaimReward() (*big.Int, error) {
	staking.claimCalls++
	if staking.failClaim {
		return nil, fmt.Errorf("precompile rejected claim")
	}
	return new(big.Int).Set(staking.rewards), nil
}

func (staking *fakeStaking) ClaimUndelegated() (*big.Int, error) {
	staking.releaseCalls++
	return new(big.Int).Set(staking.undelegated), nil
}

// ---------------------------------------------------------------------------

// fakeToken prices shares at a fixed whole-number rate: one share is worth
// `rate` units of native currency.
type fakeToken struct {
	rate     *big.Int
	balances map[common.Address]*big.Int

	failBurn bool
	failMint bool

	burnCalls int
	mintCalls int
}

func newFakeToken() *fakeToken {
	return &fakeToken{
		rate:     big.NewInt(1),
		balances: make(map[common.Address]*big.Int),
	}
}

func (token *fakeToken) SharesToBonds(shares *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(shares, token.rate), nil
}

func (token *fakeToken) BondsToShares(amount *big.Int) (*big.Int, error) {
	return new(big.Int).Div(amount, token.rate), nil
}

func (token *fakeToken) BalanceOf(owner common.Address) (*big.Int, error) {
	if balance, ok := token.balances[owner]; ok {
		return new(big.Int).Set(balance), nil
	}
	return new(big.Int), nil
}

func (token *fakeToken) Mint(owner common.Address, shares *big.Int) error {
	token.mintCalls++
	if token.failMint {
		return fmt.Errorf("token rejected mint")
	}
	balance, ok := token.balances[owner]
	if !ok {
		balance = new(big.Int)
	}
	token.balances[owner] = new(big.Int).Add(balance, shares)
	return nil
}

func (token *fakeToken) Burn(owner common.Address, shares *big.Int) error {
	token.burnCalls++
	if token.failBurn {
		return fmt.Errorf("token rejected burn")
	}
	balance, ok := token.balances[owner]
	if !ok || balance.Cmp(shares) < 0 {
		return fmt.Errorf("token balance too low")
	}
	token.balances[owner] = new(big.Int).Sub(balance, shares)
	return nil
}

// ---------------------------------------------------------------------------

type queuedRequest struct {
	owner    common.Address
	receiver common.Address
	amount   *big.Int
}

type fakeQueue struct {
	stashed *big.Int
	queued  []queuedRequest
	failAdd bool
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{stashed: new(big.Int)}
}

func (queue *fakeQueue) StashedForManualClaims() (*big.Int, error) {
	return new(big.Int).Set(queue.stashed), nil
}

func (queue *fakeQueue) AddIntoQueue(owner common.Address, receiver common.Address, amount *big.Int) error {
	if queue.failAdd {
		return fmt.Errorf("queue rejected request")
	}
	queue.queued = append(queue.queued, queuedRequest{owner, receiver, new(big.Int).Set(amount)})
	return nil
}

// ---------------------------------------------------------------------------

type fakePartners struct {
	percent uint64
}

func (partners *fakePartners) PercentOfDailyRewards() (uint64, error) {
	return partners.percent, nil
}

type fakeTreasury struct {
	addr common.Address
}

func (treasury *fakeTreasury) TreasuryAddress() common.Address {
	return treasury.addr
}

type fakeACL struct {
	operators  []common.Address
	governance []common.Address
}

func (acl *fakeACL) IsOperator(caller common.Address) bool {
	for _, a := range acl.operators {
		if a == caller {
			return true
		}
	}
	return false
}

func (acl *fakeACL) IsGovernance(caller common.Address) bool {
	for _, a := range acl.governance {
		if a == caller {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------

type transferRecord struct {
	to     common.Address
	amount *big.Int
}

type fakeBank struct {
	transfers  []transferRecord
	failAll    bool
	onTransfer func(to common.Address, amount *big.Int) bool
}

func (bank *fakeBank) Transfer(to common.Address, amount *big.Int) bool {
	if bank.onTransfer != nil {
		if !bank.onTransfer(to, amount) {
			return false
		}
	}
	if bank.failAll {
		return false
	}
	bank.transfers = append(bank.transfers, transferRecord{to, new(big.Int).Set(amount)})
	return true
}

func (bank *fakeBank) received(to common.Address) *big.Int {
	sum := new(big.Int)
	for _, t := range bank.transfers {
		if t.to == to {
			sum.Add(sum, t.amount)
		}
	}
	return sum
}

// ---------------------------------------------------------------------------

// ledgerState is a plain copy of every ledger field, for asserting that a
// rejected operation changed nothing.
type ledgerState struct {
	totalBalance    *big.Int
	stakingContract common.Address
	feeBps          uint64
	collectedFee    *big.Int
	minCapacity     *big.Int
	partners        common.Address
	minStake        *big.Int
	minUnstake      *big.Int
}

func captureLedger(ledger *domain.Ledger) ledgerState {
	return ledgerState{
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

func (state ledgerState) equals(ledger *domain.Ledger) bool {
	return state.totalBalance.Cmp(ledger.TotalBalance) == 0 &&
		state.stakingContract == ledger.StakingContract &&
		state.feeBps == ledger.FlashUnstakeFeeBps &&
		state.collectedFee.Cmp(ledger.FlashUnstakeCollectedFee) == 0 &&
		state.minCapacity.Cmp(ledger.FlashPoolMinCapacity) == 0 &&
		state.partners == ledger.Partners &&
		state.minStake.Cmp(ledger.MinStake) == 0 &&
		state.minUnstake.Cmp(ledger.MinUnstake) == 0
}

// ---------------------------------------------------------------------------

type fakeEmitter struct {
	events []domain.Event
}

func (emitter *fakeEmitter) Emit(event domain.Event) {
	emitter.events = append(emitter.events, event)
}

func (emitter *fakeEmitter) named(name string) []domain.Event {
	var matched []domain.Event
	for _, event := range emitter.events {
		if event.Name() == name {
			matched = append(matched, event)
		}
	}
	return matched
}
