/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"stakepool/domain"

	"github.com/spf13/cobra"
)

var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stakepool",
	Short: "Operator driver for the liquid-staking pool",
	Long: `stakepool drives the liquid-staking pool contract: it claims daily
rewards, releases undelegated principal, manages delegations and sweeps the
collected flash-unstake fees.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "configuration file")
}

func initConfig() {
	domain.ReadConfig(configFile)
}
