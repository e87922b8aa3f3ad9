package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

const callTimeout = 30 * time.Second
const sendTimeout = 3 * time.Minute

var (
	ErrorTransactionReverted = fmt.Errorf("transaction reverted")
	ErrorUnexpectedOutput    = fmt.Errorf("unexpected contract call output")
)

// Client signs and sends the driver's transactions and runs read-only calls.
type Client struct {
	eth      *ethclient.Client
	key      *ecdsa.PrivateKey
	from     common.Address
	chainId  *big.Int
	gasLimit uint64
}

func NewClient(eth *ethclient.Client, key *ecdsa.PrivateKey, chainId *big.Int, gasLimit uint64) *Client {
	return &Client{
		eth:      eth,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		chainId:  chainId,
		gasLimit: gasLimit,
	}
}

// BalanceAt reads an account's native balance at the latest block.
func (client *Client) BalanceAt(account common.Address) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	return client.eth.BalanceAt(ctx, account, nil)
}

func (client *Client) call(to common.Address, contract abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "packing %v", method)
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	output, err := client.eth.CallContract(ctx, ethereum.CallMsg{From: client.from, To: &to, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "calling %v", method)
	}

	return contract.Unpack(method, output)
}

func (client *Client) callBigInt(to common.Address, contract abi.ABI, method string, args ...interface{}) (*big.Int, error) {
	output, err := client.call(to, contract, method, args...)
	if err != nil {
		return nil, err
	}
	if len(output) != 1 {
		return nil, ErrorUnexpectedOutput
	}
	value, ok := output[0].(*big.Int)
	if !ok {
		return nil, ErrorUnexpectedOutput
	}
	return value, nil
}

func (client *Client) send(to common.Address, value *big.Int, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	nonce, err := client.eth.PendingNonceAt(ctx, client.from)
	if err != nil {
		return errors.Wrap(err, "reading pending nonce")
	}
	gasPrice, err := client.eth.SuggestGasPrice(ctx)
	if err != nil {
		return errors.Wrap(err, "reading gas price")
	}

	if value == nil {
		value = new(big.Int)
	}
	tx := types.NewTransaction(nonce, to, value, client.gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(client.chainId), client.key)
	if err != nil {
		return errors.Wrap(err, "signing transaction")
	}

	if err := client.eth.SendTransaction(ctx, signed); err != nil {
		return errors.Wrap(err, "sending transaction")
	}

	receipt, err := bind.WaitMined(ctx, client.eth, signed)
	if err != nil {
		return errors.Wrap(err, "waiting for transaction")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return ErrorTransactionReverted
	}
	return nil
}

// transactBigInt learns the method's return value through a dry-run call,
// then sends the real transaction. Return values of state-changing methods
// are not observable any other way.
func (client *Client) transactBigInt(to common.Address, contract abi.ABI, method string, value *big.Int, args ...interface{}) (*big.Int, error) {
	result, err := client.callBigInt(to, contract, method, args...)
	if err != nil {
		return nil, err
	}

	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "packing %v", method)
	}
	if err := client.send(to, value, data); err != nil {
		return nil, err
	}
	return result, nil
}

func mustParseAbi(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return parsed
}
