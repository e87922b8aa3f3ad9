package util

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
)

var weiPerCoin = new(big.Float).SetFloat64(1e18)

func CoinString(wei *big.Int) string {
	value, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerCoin).Float64()
	return fmt.Sprintf("%v Coin", humanize.Commaf(value))
}

func WeiString(wei *big.Int) string {
	return fmt.Sprintf("%v Wei", humanize.BigComma(new(big.Int).Set(wei)))
}
