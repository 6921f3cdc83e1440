package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/export"
	"daybook/internal/application/commands"
	"daybook/internal/ports"
)

var snapshotFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write all data as JSON or YAML (stdout without a file)",
	Long: `Export writes the whole user snapshot. The format follows the file
extension (.yaml/.yml for YAML) unless --format is given.

Examples:
  daybook-cli export backup.json
  daybook-cli export --format yaml > backup.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := argOr(args, 0)
		codec, err := codecFor(path)
		if err != nil {
			return err
		}

		out := os.Stdout
		if path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		if err := commands.NewExportCommand(Session(), codec, out).Execute(cmd.Context()); err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(os.Stderr, "Exported to %s\n", path)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data with an exported snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := codecFor(args[0])
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		return printResult(commands.NewImportCommand(Session(), codec, f).Execute(cmd.Context()))
	},
}

func codecFor(path string) (ports.SnapshotCodec, error) {
	if snapshotFormat != "" {
		return export.ForFormat(snapshotFormat)
	}
	return export.ForPath(path), nil
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	for _, c := range []*cobra.Command{exportCmd, importCmd} {
		c.Flags().StringVar(&snapshotFormat, "format", "", "json or yaml")
	}
}
