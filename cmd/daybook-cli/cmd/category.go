package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/application/commands"
	"daybook/internal/domain"
)

var categoryColor string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories of tasks, shopping, ideas and habits",
	Long: `Each kind has fixed default categories plus custom ones.

Examples:
  daybook-cli category list ideas
  daybook-cli category add tasks garden --color "#22c55e"
  daybook-cli category delete tasks garden`,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <kind> <name>",
	Short: "Add a custom category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := domain.ParseCategoryKind(args[0])
		if err != nil {
			return err
		}
		return printResult(commands.NewAddCategoryCommand(Session(), kind, args[1], categoryColor).Execute(cmd.Context()))
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <kind> <name>",
	Short: "Delete a custom category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := domain.ParseCategoryKind(args[0])
		if err != nil {
			return err
		}
		return printResult(commands.NewDeleteCategoryCommand(Session(), kind, args[1]).Execute(cmd.Context()))
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List default and custom categories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := domain.ParseCategoryKind(args[0])
		if err != nil {
			return err
		}
		views, err := commands.NewListCategoriesCommand(Session(), kind).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range views {
			origin := "custom"
			if c.Default {
				origin = "default"
			}
			fmt.Printf("%-16s %s  %-7s  used %d\n", c.DisplayName, c.Color, origin, c.InUse)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd, categoryDeleteCmd, categoryListCmd)

	categoryAddCmd.Flags().StringVar(&categoryColor, "color", "", "hex color, e.g. #22c55e")
}
