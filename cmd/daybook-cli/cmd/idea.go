package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/application/commands"
)

var ideaCategory string

var ideaCmd = &cobra.Command{
	Use:   "idea",
	Short: "Manage ideas",
}

var ideaAddCmd = &cobra.Command{
	Use:   "add <title> [text]",
	Short: "Add an idea",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewAddIdeaCommand(Session(), args[0], argOr(args, 1), ideaCategory).Execute(cmd.Context()))
	},
}

var ideaEditCmd = &cobra.Command{
	Use:   "edit <id> <title> [text]",
	Short: "Replace the title, text and category of an idea",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewEditIdeaCommand(Session(), args[0], args[1], argOr(args, 2), ideaCategory).Execute(cmd.Context()))
	},
}

var ideaDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewDeleteIdeaCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var ideaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ideas, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ideas, err := commands.NewListIdeasCommand(Session(), ideaCategory).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, i := range ideas {
			fmt.Printf("%s %s", i.ID, i.Title)
			if i.Category != "" {
				fmt.Printf("  #%s", i.Category)
			}
			fmt.Println()
			if i.Text != "" {
				fmt.Printf("    %s\n", i.Text)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ideaCmd)
	ideaCmd.AddCommand(ideaAddCmd, ideaEditCmd, ideaDeleteCmd, ideaListCmd)

	for _, c := range []*cobra.Command{ideaAddCmd, ideaEditCmd, ideaListCmd} {
		c.Flags().StringVar(&ideaCategory, "category", "", "category name")
	}
}

// argOr returns args[i] or an empty string
func argOr(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
