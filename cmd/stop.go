/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stops driver's tasks",
	Long:  `Stops driver's tasks, which are started previously by 'start' command.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stop called.")

		// send an integer to the 'quit' channel, defined in 'start' command file.
		quit <- true
		close(quit)
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
