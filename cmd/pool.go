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

var stakeCmd = &cobra.Command{
	Use:   "stake <amount> [receiver]",
	Short: "Deposits native funds into the pool for shares",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		amount, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			fmt.Printf("⛔️ amount must be an integer in wei.\n")
			return
		}
		receiver := optionalReceiver(args, 1)

		err := stakeInteractor.Stake(domain.GetOperatorKeyAddress(), amount, receiver)
		if err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 stake failed - %v\n", err.Error())
			return
		}

		fmt.Printf("staked %v for %v\n", util.CoinString(amount), receiver.Hex())
	},
}

var unstakeCmd = &cobra.Command{
	Use:   "unstake <shares> [receiver]",
	Short: "Queues a slow unstake of the given shares",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		shares, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			fmt.Printf("⛔️ shares must be an integer.\n")
			return
		}
		receiver := optionalReceiver(args, 1)

		err := stakeInteractor.Unstake(domain.GetOperatorKeyAddress(), shares, receiver)
		if err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 unstake failed - %v\n", err.Error())
			return
		}

		fmt.Printf("queued unstake of %v shares for %v\n", shares, receiver.Hex())
	},
}

var swapCmd = &cobra.Command{
	Use:   "swap <shares> [receiver]",
	Short: "Flash-unstakes the given shares for an immediate payout",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		shares, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			fmt.Printf("⛔️ shares must be an integer.\n")
			return
		}
		receiver := optionalReceiver(args, 1)

		err := flashUnstakeInteractor.Swap(domain.GetOperatorKeyAddress(), shares, receiver)
		if err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 flash unstake failed - %v\n", err.Error())
			return
		}

		fmt.Printf("flash unstaked %v shares for %v\n", shares, receiver.Hex())
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweeps collected flash-unstake fees to the treasury",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		collected := new(big.Int).Set(ledger.FlashUnstakeCollectedFee)
		err := flashUnstakeInteractor.ClaimCollectedFee(domain.GetOperatorKeyAddress())
		if err != nil {
			exporter.IncErrorCount()
			fmt.Printf("🔴 fee sweep failed - %v\n", err.Error())
			return
		}

		fmt.Printf("swept %v to treasury\n", util.CoinString(collected))
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Prints the pool's balances and delegation",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		printOutBalances()

		delegated, err := delegationInteractor.TotalDelegated()
		if err != nil {
			fmt.Printf("🔴 reading total delegated - %v\n", err.Error())
			return
		}
		fmt.Printf("delegated : %v\n", util.CoinString(delegated))
	},
}

func optionalReceiver(args []string, index int) common.Address {
	if len(args) > index && domain.AddressRE.MatchString(args[index]) {
		return common.HexToAddress(args[index])
	}
	return domain.GetOperatorKeyAddress()
}

func init() {
	rootCmd.AddCommand(stakeCmd)
	rootCmd.AddCommand(unstakeCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(statusCmd)
}
