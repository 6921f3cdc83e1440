package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/application/commands"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Manage plain calendar entries",
}

var calendarAddCmd = &cobra.Command{
	Use:   "add <text> <date>",
	Short: "Add a calendar entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewAddCalendarEntryCommand(Session(), args[0], args[1]).Execute(cmd.Context()))
	},
}

var calendarDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a calendar entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewDeleteCalendarEntryCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List calendar entries, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := commands.NewListCalendarEntriesCommand(Session()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s %s  %s\n", e.ID, e.Date, e.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.AddCommand(calendarAddCmd, calendarDeleteCmd, calendarListCmd)
}
