package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/application/commands"
)

var (
	eventLocation string
	eventNotes    string
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage events",
	Long: `Add, edit, delete and list dated events.

Examples:
  daybook-cli event add "Dentist" 2024-01-10T15:30 --location "Main St"`,
}

var eventAddCmd = &cobra.Command{
	Use:   "add <text> <date>",
	Short: "Add an event (date as YYYY-MM-DD or YYYY-MM-DDTHH:MM)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewAddEventCommand(Session(), args[0], args[1], eventLocation, eventNotes).Execute(cmd.Context()))
	},
}

var eventEditCmd = &cobra.Command{
	Use:   "edit <id> <text> <date>",
	Short: "Replace the fields of an event",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewEditEventCommand(Session(), args[0], args[1], args[2], eventLocation, eventNotes).Execute(cmd.Context()))
	},
}

var eventDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewDeleteEventCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := commands.NewListEventsCommand(Session()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range events {
			fmt.Printf("%s %s  %s", e.ID, e.Date, e.Text)
			if e.Location != "" {
				fmt.Printf(" @ %s", e.Location)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventCmd)
	eventCmd.AddCommand(eventAddCmd, eventEditCmd, eventDeleteCmd, eventListCmd)

	for _, c := range []*cobra.Command{eventAddCmd, eventEditCmd} {
		c.Flags().StringVarP(&eventLocation, "location", "l", "", "where it takes place")
		c.Flags().StringVarP(&eventNotes, "notes", "n", "", "free-form notes")
	}
}
