package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daybook/internal/application/commands"
	"daybook/internal/domain"
)

var (
	routineFrequency string
	routineDays      string
	routineDay       string
)

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Manage recurring time blocks",
	Long: `Add, edit, delete and list routines.

Frequency is everyday, weekdays, weekends or specific (with --days).

Examples:
  daybook-cli routine add "Standup" 09:30 09:45 --frequency weekdays
  daybook-cli routine add "Gym" 18:00 19:00 --frequency specific --days mon,thu
  daybook-cli routine delete <id> --day thu    # only drop Thursdays
  daybook-cli routine week`,
}

var routineAddCmd = &cobra.Command{
	Use:   "add <text> <start> <end>",
	Short: "Add a routine",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := commands.NewAddRoutineCommand(Session(), args[0], args[1], args[2], routineFrequency, splitList(routineDays))
		return printResult(c.Execute(cmd.Context()))
	},
}

var routineEditCmd = &cobra.Command{
	Use:   "edit <id> <text> <start> <end>",
	Short: "Replace the definition of a routine",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := commands.NewEditRoutineCommand(Session(), args[0], args[1], args[2], args[3], routineFrequency, splitList(routineDays))
		return printResult(c.Execute(cmd.Context()))
	},
}

var routineDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a routine, or one weekday of it with --day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if routineDay != "" {
			return printResult(commands.NewDeleteRoutineOccurrenceCommand(Session(), args[0], routineDay).Execute(cmd.Context()))
		}
		return printResult(commands.NewDeleteRoutineCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List routines, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		routines, err := commands.NewListRoutinesCommand(Session()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, r := range routines {
			fmt.Printf("%s %s-%s  %s  [%s]\n", r.ID, r.StartTime, r.EndTime, r.Text, r.ScheduleLabel())
		}
		return nil
	},
}

var routineWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show routines grouped by weekday",
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := commands.NewWeekRoutinesCommand(Session()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, day := range domain.AllWeekdays {
			var slots []string
			for _, r := range week[day] {
				slots = append(slots, fmt.Sprintf("%s-%s %s", r.StartTime, r.EndTime, r.Text))
			}
			if len(slots) == 0 {
				slots = []string{"-"}
			}
			fmt.Printf("%s  %s\n", day.ShortName(), strings.Join(slots, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routineCmd)
	routineCmd.AddCommand(routineAddCmd, routineEditCmd, routineDeleteCmd, routineListCmd, routineWeekCmd)

	for _, c := range []*cobra.Command{routineAddCmd, routineEditCmd} {
		c.Flags().StringVarP(&routineFrequency, "frequency", "f", "everyday", "everyday, weekdays, weekends or specific")
		c.Flags().StringVar(&routineDays, "days", "", "weekdays for specific routines, e.g. mon,thu")
	}
	routineDeleteCmd.Flags().StringVar(&routineDay, "day", "", "only remove this weekday")
}
