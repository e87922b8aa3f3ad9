package cmd

import (
	"fmt"
	"math/big"

	"stakepool/domain"
	"stakepool/domain/util"
	"stakepool/interface/exporter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var delegateCmd = &cobra.Command{
	Use:   "delegate <validator> <amount>",
	Short: "Delegates pool funds to a validator",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		validator, amount, ok := parseValidatorAndAmount(args[0], args[1])
		if !ok {
			return
		}

		err := delegationInteractor.Delegate(domain.GetOperatorKeyAddress(), validator, amount)
		if err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 delegation failed - %v\n", err.Error())
			return
		}

		fmt.Printf("delegated %v to %v\n", util.CoinString(amount), validator.Hex())
	},
}

var redelegateCmd = &cobra.Command{
	Use:   "redelegate <validator-src> <validator-dst> <amount>",
	Short: "Moves delegated funds between validators",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		src := common.HexToAddress(args[0])
		dst, amount, ok := parseValidatorAndAmount(args[1], args[2])
		if !ok {
			return
		}

		err := delegationInteractor.Redelegate(domain.GetOperatorKeyAddress(), src, dst, amount)
		if err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 redelegation failed - %v\n", err.Error())
			return
		}

		fmt.Printf("redelegated %v from %v to %v\n", util.CoinString(amount), src.Hex(), dst.Hex())
	},
}

var undelegateCmd = &cobra.Command{
	Use:   "undelegate <validator> <amount>",
	Short: "Withdraws delegated funds from a validator",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		validator, amount, ok := parseValidatorAndAmount(args[0], args[1])
		if !ok {
			return
		}

		err := delegationInteractor.Undelegate(domain.GetOperatorKeyAddress(), validator, amount)
		if err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 undelegation failed - %v\n", err.Error())
			return
		}

		fmt.Printf("undelegation of %v from %v requested\n", util.CoinString(amount), validator.Hex())
	},
}

func parseValidatorAndAmount(validatorArg string, amountArg string) (common.Address, *big.Int, bool) {
	if !domain.AddressRE.MatchString(validatorArg) {
		fmt.Printf("⛔️ validator must be a 0x-prefixed address.\n")
		return common.Address{}, nil, false
	}
	amount, ok := new(big.Int).SetString(amountArg, 10)
	if !ok {
		fmt.Printf("⛔️ amount must be an integer in wei.\n")
		return common.Address{}, nil, false
	}
	return common.HexToAddress(validatorArg), amount, true
}

func init() {
	rootCmd.AddCommand(delegateCmd)
	rootCmd.AddCommand(redelegateCmd)
	rootCmd.AddCommand(undelegateCmd)
}
