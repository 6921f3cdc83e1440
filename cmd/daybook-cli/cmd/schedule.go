package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/format"
	"daybook/internal/application/commands"
)

var (
	agendaJSON bool
	monthJSON  bool
)

var agendaCmd = &cobra.Command{
	Use:   "agenda [date]",
	Short: "Show everything scheduled on a day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agenda, err := commands.NewAgendaCommand(Session(), argOr(args, 0)).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if agendaJSON {
			return printJSON(agenda)
		}
		fmt.Print(format.Agenda(agenda))
		return nil
	},
}

var monthCmd = &cobra.Command{
	Use:   "month [year] [month]",
	Short: "Show which days of a month have activity",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var year, month int
		var err error
		if len(args) > 0 {
			if year, err = strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
		}
		if len(args) > 1 {
			if month, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid month %q", args[1])
			}
		}

		days, err := commands.NewMonthCommand(Session(), year, month).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if monthJSON {
			return printJSON(days)
		}
		fmt.Print(format.Month(days))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search across every kind of item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hits, err := commands.NewSearchCommand(Session(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(hits) == 0 {
			fmt.Println("No results found.")
			return nil
		}
		for _, h := range hits {
			fmt.Printf("%-8s %s  %s\n", h.Kind, h.ID, h.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(agendaCmd, monthCmd, searchCmd)

	agendaCmd.Flags().BoolVar(&agendaJSON, "json", false, "print JSON")
	monthCmd.Flags().BoolVar(&monthJSON, "json", false, "print JSON")
}
