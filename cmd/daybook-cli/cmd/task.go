package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/format"
	"daybook/internal/application/commands"
)

var (
	taskDate     string
	taskCategory string
	taskJSON     bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long: `Add, edit, complete, delete and list tasks.

Examples:
  daybook-cli task add "File taxes" --date 2024-04-15 --category finance
  daybook-cli task toggle <id>
  daybook-cli task list --category no-category`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewAddTaskCommand(Session(), args[0], taskDate, taskCategory).Execute(cmd.Context()))
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Replace the text, date and category of a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewEditTaskCommand(Session(), args[0], args[1], taskDate, taskCategory).Execute(cmd.Context()))
	},
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip the completed flag of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewToggleTaskCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewDeleteTaskCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := commands.NewListTasksCommand(Session(), taskCategory).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if taskJSON {
			return printJSON(tasks)
		}

		for _, t := range tasks {
			fmt.Printf("%s %s %s", t.ID, format.Check(t.Completed), t.Text)
			if t.Date != "" {
				fmt.Printf("  due %s", t.Date)
			}
			if t.Category != "" {
				fmt.Printf("  #%s", t.Category)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskEditCmd, taskToggleCmd, taskDeleteCmd, taskListCmd)

	for _, c := range []*cobra.Command{taskAddCmd, taskEditCmd} {
		c.Flags().StringVarP(&taskDate, "date", "d", "", "due day (YYYY-MM-DD)")
	}
	for _, c := range []*cobra.Command{taskAddCmd, taskEditCmd, taskListCmd} {
		c.Flags().StringVar(&taskCategory, "category", "", "category name")
	}
	taskListCmd.Flags().BoolVar(&taskJSON, "json", false, "print JSON")
}
