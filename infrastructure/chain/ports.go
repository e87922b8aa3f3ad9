package chain

import (
	"log"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// StakingClient drives the validator-staking precompile.
type StakingClient struct {
	client *Client
	addr   common.Address
}

func NewStakingClient(client *Client, addr common.Address) *StakingClient {
	return &StakingClient{client: client, addr: addr}
}

func (staking *StakingClient) RelayerFee() (*big.Int, error) {
	return staking.client.callBigInt(staking.addr, stakingAbi, "getRelayerFee")
}

func (staking *StakingClient) MinDelegation() (*big.Int, error) {
	return staking.client.callBigInt(staking.addr, stakingAbi, "getMinDelegation")
}

func (staking *StakingClient) TotalDelegated(pool common.Address) (*big.Int, error) {
	return staking.client.callBigInt(staking.addr, stakingAbi, "getTotalDelegated", pool)
}

func (staking *StakingClient) Delegated(pool common.Address, validator common.Address) (*big.Int, error) {
	return staking.client.callBigInt(staking.addr, stakingAbi, "getDelegated", pool, validator)
}

func (staking *StakingClient) Delegate(validator common.Address, amount *big.Int, value *big.Int) error {
	data, err := stakingAbi.Pack("delegate", validator, amount)
	if err != nil {
		return err
	}
	return staking.client.send(staking.addr, value, data)
}

func (staking *StakingClient) Redelegate(validatorSrc common.Address, validatorDst common.Address, amount *big.Int, value *big.Int) error {
	data, err := stakingAbi.Pack("redelegate", validatorSrc, validatorDst, amount)
	if err != nil {
		return err
	}
	return staking.client.send(staking.addr, value, data)
}

func (staking *StakingClient) Undelegate(validator common.Address, amount *big.Int, value *big.Int) error {
	data, err := stakingAbi.Pack("undelegate", validator, amount)
	if err != nil {
		return err
	}
	return staking.client.send(staking.addr, value, data)
}

func (staking *StakingClient) ClaimReward() (*big.Int, error) {
	return staking.client.transactBigInt(staking.addr, stakingAbi, "claimReward", nil)
}

func (staking *StakingClient) ClaimUndelegated() (*big.Int, error) {
	return staking.client.transactBigInt(staking.addr, stakingAbi, "claimUndelegated", nil)
}

// TokenClient talks to the certificate token.
type TokenClient struct {
	client *Client
	addr   common.Address
}

func NewTokenClient(client *Client, addr common.Address) *TokenClient {
	return &TokenClient{client: client, addr: addr}
}

func (token *TokenClient) SharesToBonds(shares *big.Int) (*big.Int, error) {
	return token.client.callBigInt(token.addr, tokenAbi, "sharesToBonds", shares)
}

func (token *TokenClient) BondsToShares(amount *big.Int) (*big.Int, error) {
	return token.client.callBigInt(token.addr, tokenAbi, "bondsToShares", amount)
}

func (token *TokenClient) BalanceOf(owner common.Address) (*big.Int, error) {
	return token.client.callBigInt(token.addr, tokenAbi, "balanceOf", owner)
}

func (token *TokenClient) Mint(owner common.Address, shares *big.Int) error {
	data, err := tokenAbi.Pack("mint", owner, shares)
	if err != nil {
		return err
	}
	return token.client.send(token.addr, nil, data)
}

func (token *TokenClient) Burn(owner common.Address, shares *big.Int) error {
	data, err := tokenAbi.Pack("burn", owner, shares)
	if err != nil {
		return err
	}
	return token.client.send(token.addr, nil, data)
}

// QueueClient talks to the manual-claim queue.
type QueueClient struct {
	client *Client
	addr   common.Address
}

func NewQueueClient(client *Client, addr common.Address) *QueueClient {
	return &QueueClient{client: client, addr: addr}
}

func (queue *QueueClient) StashedForManualClaims() (*big.Int, error) {
	return queue.client.callBigInt(queue.addr, queueAbi, "getStashedForManualClaims")
}

func (queue *QueueClient) AddIntoQueue(owner common.Address, receiver common.Address, amount *big.Int) error {
	data, err := queueAbi.Pack("addIntoQueue", owner, receiver, amount)
	if err != nil {
		return err
	}
	return queue.client.send(queue.addr, nil, data)
}

// PartnersClient reads the referral share from the partners contract.
type PartnersClient struct {
	client *Client
	addr   common.Address
}

func NewPartnersClient(client *Client, addr common.Address) *PartnersClient {
	return &PartnersClient{client: client, addr: addr}
}

func (partners *PartnersClient) PercentOfDailyRewards() (uint64, error) {
	percent, err := partners.client.callBigInt(partners.addr, partnersAbi, "percentOfDailyRewards")
	if err != nil {
		return 0, err
	}
	return percent.Uint64(), nil
}

// BankClient moves native currency with plain value transfers. Failures are
// reported as a bare false; the detail only goes to the log.
type BankClient struct {
	client *Client
}

func NewBankClient(client *Client) *BankClient {
	return &BankClient{client: client}
}

func (bank *BankClient) Transfer(to common.Address, amount *big.Int) bool {
	if err := bank.client.send(to, amount, nil); err != nil {
		log.Printf("🔴 native transfer to %v - %v\n", to.Hex(), err.Error())
		return false
	}
	return true
}
