package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/format"
	"daybook/internal/application/commands"
)

var shopCategory string

var shopCmd = &cobra.Command{
	Use:     "shop",
	Aliases: []string{"shopping"},
	Short:   "Manage the shopping list",
}

var shopAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a shopping item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewAddShoppingItemCommand(Session(), args[0], shopCategory).Execute(cmd.Context()))
	},
}

var shopEditCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Replace the text and category of a shopping item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewEditShoppingItemCommand(Session(), args[0], args[1], shopCategory).Execute(cmd.Context()))
	},
}

var shopToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a shopping item as bought or not",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewToggleShoppingItemCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var shopDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a shopping item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewDeleteShoppingItemCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shopping items, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := commands.NewListShoppingCommand(Session(), shopCategory).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, i := range items {
			fmt.Printf("%s %s %s", i.ID, format.Check(i.Completed), i.Text)
			if i.Category != "" {
				fmt.Printf("  #%s", i.Category)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shopCmd)
	shopCmd.AddCommand(shopAddCmd, shopEditCmd, shopToggleCmd, shopDeleteCmd, shopListCmd)

	for _, c := range []*cobra.Command{shopAddCmd, shopEditCmd, shopListCmd} {
		c.Flags().StringVar(&shopCategory, "category", "", "category name")
	}
}
