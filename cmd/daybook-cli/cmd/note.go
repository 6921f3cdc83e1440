package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/editor"
	"daybook/internal/application/commands"
)

var noteTitle string

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long: `Add, edit, show, delete and list notes.

Without a content argument the note body is written in $EDITOR.

Examples:
  daybook-cli note add "Groceries" "milk, eggs"
  daybook-cli note add "Meeting notes"     # opens $EDITOR
  daybook-cli note edit <id>               # edits the body in $EDITOR`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title> [content]",
	Short: "Add a note",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := argOr(args, 1)
		if len(args) == 1 {
			text, err := editor.NewOpener().EditText(cmd.Context(), "")
			if err != nil {
				return err
			}
			content = text
		}
		return printResult(commands.NewAddNoteCommand(Session(), args[0], content).Execute(cmd.Context()))
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <id> [content]",
	Short: "Replace the content of a note",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		note, err := commands.NewGetNoteCommand(Session(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		if note == nil {
			return fmt.Errorf("no note with ID %s", args[0])
		}

		content := argOr(args, 1)
		if len(args) == 1 {
			if content, err = editor.NewOpener().EditText(ctx, note.Content); err != nil {
				return err
			}
		}
		title := note.Title
		if noteTitle != "" {
			title = noteTitle
		}
		return printResult(commands.NewEditNoteCommand(Session(), note.ID, title, content).Execute(ctx))
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := commands.NewGetNoteCommand(Session(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if note == nil {
			return fmt.Errorf("no note with ID %s", args[0])
		}
		fmt.Printf("# %s\n\n%s\n", note.Title, note.Content)
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewDeleteNoteCommand(Session(), args[0]).Execute(cmd.Context()))
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := commands.NewListNotesCommand(Session()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, n := range notes {
			fmt.Printf("%s %s  %s\n", n.ID, n.Title, n.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd, noteEditCmd, noteShowCmd, noteDeleteCmd, noteListCmd)

	noteEditCmd.Flags().StringVarP(&noteTitle, "title", "t", "", "new title")
}
