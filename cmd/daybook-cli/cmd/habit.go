package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/format"
	"daybook/internal/application/commands"
)

var (
	habitCategory  string
	habitFrequency string
	habitDays      string
	habitSubHabits string
	habitDate      string
	habitJSON      bool
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits and their completions",
	Long: `Add, edit, delete and check off habits.

Daily habits run on the weekdays given with --days. Weekly habits repeat
on the weekday they were created, monthly ones on the same day of month.

Examples:
  daybook-cli habit add "Run" --days mon,wed,fri
  daybook-cli habit add "Workout" --days mon,thu --sub warm-up,lift,stretch
  daybook-cli habit done <id> --date 2024-01-08
  daybook-cli habit sub <id> 1
  daybook-cli habit stats`,
}

var habitAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := commands.NewAddHabitCommand(Session(), args[0], habitCategory, habitFrequency, splitList(habitDays), splitList(habitSubHabits))
		return printResult(c.Execute(cmd.Context()))
	},
}

var habitEditCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Replace the definition of a habit, keeping its history",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := commands.NewEditHabitCommand(Session(), args[0], args[1], habitCategory, habitFrequency, splitList(habitDays), splitList(habitSubHabits))
		return printResult(c.Execute(cmd.Context()))
	},
}

var habitDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewDeleteHabitCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var habitDoneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"toggle"},
	Short:   "Toggle a habit on a day (default today)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewToggleHabitDayCommand(Session(), args[0], habitDate).Execute(cmd.Context()))
	},
}

var habitSubCmd = &cobra.Command{
	Use:   "sub <id> <index>",
	Short: "Toggle one sub-habit on a day (default today)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid sub-habit index %q", args[1])
		}
		return printResult(commands.NewToggleSubHabitCommand(Session(), args[0], habitDate, index).Execute(cmd.Context()))
	},
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		habits, err := commands.NewListHabitsCommand(Session(), habitCategory).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if habitJSON {
			return printJSON(habits)
		}
		for _, h := range habits {
			fmt.Printf("%s %s  [%s]\n", h.ID, h.Text, h.ScheduleLabel())
			for i, sub := range h.SubHabits {
				fmt.Printf("    %d. %s\n", i, sub)
			}
		}
		return nil
	},
}

var habitStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks, completion rates and the last 7 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := commands.NewHabitStatsCommand(Session(), habitCategory).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if habitJSON {
			return printJSON(stats)
		}
		fmt.Print(format.HabitStats(stats))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(habitCmd)
	habitCmd.AddCommand(habitAddCmd, habitEditCmd, habitDeleteCmd, habitDoneCmd, habitSubCmd, habitListCmd, habitStatsCmd)

	for _, c := range []*cobra.Command{habitAddCmd, habitEditCmd} {
		c.Flags().StringVarP(&habitFrequency, "frequency", "f", "daily", "daily, weekly or monthly")
		c.Flags().StringVar(&habitDays, "days", "", "weekdays for daily habits, e.g. mon,wed,fri")
		c.Flags().StringVar(&habitSubHabits, "sub", "", "comma separated sub-habits")
	}
	for _, c := range []*cobra.Command{habitAddCmd, habitEditCmd, habitListCmd, habitStatsCmd} {
		c.Flags().StringVar(&habitCategory, "category", "", "category name")
	}
	for _, c := range []*cobra.Command{habitDoneCmd, habitSubCmd} {
		c.Flags().StringVarP(&habitDate, "date", "d", "", "day (YYYY-MM-DD), default today")
	}
	for _, c := range []*cobra.Command{habitListCmd, habitStatsCmd} {
		c.Flags().BoolVar(&habitJSON, "json", false, "print JSON")
	}
}
