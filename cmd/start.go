/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stakepool/domain"
	"stakepool/domain/util"
	"stakepool/interface/exporter"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var quit = make(chan bool)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts driver's tasks",
	Long:  `Starts driver's tasks. To stop it, run 'stop' command.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("start called.")

		defaultDependencyInject()

		go serveMetrics()

		rewardTicker := schedule(claimRewards, domain.GetRewardInterval(), quit)
		withdrawTicker := schedule(withdrawPending, domain.GetWithdrawInterval(), quit)

		signal.Ignore()
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		s := <-stop
		log.Printf("Got signal '%v', stopping", s)

		rewardTicker.Stop()
		withdrawTicker.Stop()
	},
}

func schedule(task func(), interval time.Duration, done chan bool) *time.Ticker {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {

			case <-ticker.C:
				ticker.Stop()
				task()
				ticker.Reset(interval)

			case <-done:
				return
			}
		}
	}()
	return ticker
}

func serveMetrics() {
	http.Handle("/metrics", promhttp.Handler())
	log.Printf("metrics listening on %v\n", domain.GetMetricsListen())
	if err := http.ListenAndServe(domain.GetMetricsListen(), nil); err != nil {
		log.Printf("🔴 metrics listener - %v\n", err.Error())
	}
}

func claimRewards() {
	err := rewardInteractor.ClaimDailyRewards(domain.GetOperatorKeyAddress())
	if err != nil {
		exporter.IncErrorCount()
		log.Printf("🔴 claiming daily rewards - %v\n", err.Error())
		return
	}

	printOutBalances()
}

func withdrawPending() {
	err := rewardInteractor.WithdrawAndDistributePendingRewards(domain.GetOperatorKeyAddress())
	if err != nil {
		exporter.IncErrorCount()
		log.Printf("🔴 withdrawing pending rewards - %v\n", err.Error())
		return
	}

	printOutBalances()
}

func printOutBalances() {
	free, err := balanceInteractor.FreeBalance()
	if err != nil {
		log.Printf("🔴 reading free balance - %v\n", err.Error())
		return
	}
	capacity, err := balanceInteractor.FlashPoolCapacity()
	if err != nil {
		log.Printf("🔴 reading flash pool capacity - %v\n", err.Error())
		return
	}

	fmt.Printf("------------- POOL BALANCES -----------------\n")
	fmt.Printf("total     : %v\n", util.CoinString(ledger.TotalBalance))
	fmt.Printf("free      : %v\n", util.CoinString(free))
	fmt.Printf("flash pool: %v\n", util.CoinString(capacity))
	fmt.Printf("fees held : %v\n", util.CoinString(ledger.FlashUnstakeCollectedFee))
}

func init() {
	rootCmd.AddCommand(startCmd)
}
