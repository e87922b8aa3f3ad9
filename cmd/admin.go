package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"stakepool/domain"
	"stakepool/interface/exporter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var setFeeCmd = &cobra.Command{
	Use:   "set-fee <bps>",
	Short: "Sets the flash-unstake fee rate in basis points",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		bps, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Printf("⛔️ fee must be an unsigned integer in basis points.\n")
			return
		}

		if err := adminInteractor.SetFlashUnstakeFee(domain.GetOperatorKeyAddress(), bps); err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 setting fee failed - %v\n", err.Error())
			return
		}
		fmt.Printf("flash-unstake fee set to %v bps\n", bps)
	},
}

var setMinCapacityCmd = &cobra.Command{
	Use:   "set-min-capacity <amount>",
	Short: "Sets the flash-pool minimum capacity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		amount, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			fmt.Printf("⛔️ amount must be an integer in wei.\n")
			return
		}

		if err := adminInteractor.SetFlashPoolMinCapacity(domain.GetOperatorKeyAddress(), amount); err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 setting min capacity failed - %v\n", err.Error())
			return
		}
		fmt.Printf("flash-pool min capacity set to %v\n", amount)
	},
}

var setPartnersCmd = &cobra.Command{
	Use:   "set-partners <address>",
	Short: "Sets the partners address for the reward split",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		if !domain.AddressRE.MatchString(args[0]) {
			fmt.Printf("⛔️ partners must be a 0x-prefixed address.\n")
			return
		}

		if err := adminInteractor.SetPartners(domain.GetOperatorKeyAddress(), common.HexToAddress(args[0])); err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 setting partners failed - %v\n", err.Error())
			return
		}
		fmt.Printf("partners set to %v\n", args[0])
	},
}

var setStakingContractCmd = &cobra.Command{
	Use:   "set-staking-contract <address>",
	Short: "Sets the staking precompile address",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		if !domain.AddressRE.MatchString(args[0]) {
			fmt.Printf("⛔️ staking contract must be a 0x-prefixed address.\n")
			return
		}

		if err := adminInteractor.SetStakingContract(domain.GetOperatorKeyAddress(), common.HexToAddress(args[0])); err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 setting staking contract failed - %v\n", err.Error())
			return
		}
		fmt.Printf("staking contract set to %v\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(setFeeCmd)
	rootCmd.AddCommand(setMinCapacityCmd)
	rootCmd.AddCommand(setPartnersCmd)
	rootCmd.AddCommand(setStakingContractCmd)
}
