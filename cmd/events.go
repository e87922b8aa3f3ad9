package cmd

import (
	"fmt"
	"strconv"

	"stakepool/infrastructure/dbhandler"
	"stakepool/interface/repository"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events [limit]",
	Short: "Prints the most recent audit-trail events",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		limit := 20
		if len(args) == 1 {
			value, err := strconv.Atoi(args[0])
			if err != nil || value <= 0 {
				fmt.Printf("⛔️ limit must be a positive integer.\n")
				return
			}
			limit = value
		}

		eventRepository := repository.NewEventRepository(dbhandler.DBHandler{DB: dbPool})
		records, err := eventRepository.FindRecent(limit)
		if err != nil {
			fmt.Printf("🔴 reading events - %v\n", err.Error())
			return
		}

		for _, record := range records {
			fmt.Printf("%v  %-24v %v\n",
				record.CreateTime.Format("2006-01-02 15:04:05"),
				record.Name,
				string(record.Payload))
		}
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
