package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"daybook/internal/app"
	"daybook/internal/application"
	"daybook/internal/config"
)

// skipSession marks commands that run without loading user data
const skipSession = "skip-session"

var (
	configFile string
	verbose    bool
	v          *viper.Viper
	daybook    *app.App
)

var rootCmd = &cobra.Command{
	Use:   "daybook-cli",
	Short: "CLI for the daybook personal organizer",
	Long: `daybook-cli manages tasks, shopping, ideas, notes, events, habits
and routines from the command line.

Data is stored per user in a local JSON file, a SQLite database or a
remote PostgREST table, selected with --backend or daybook.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Annotations[skipSession] != "" {
			return nil
		}
		a, err := app.Start(cmd.Context(), v, verbose)
		if err != nil {
			return err
		}
		daybook = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if daybook == nil {
			return nil
		}
		return daybook.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		v = config.New(configFile)
		v.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
		v.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
		v.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
		v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/daybook/daybook.yaml)")
	flags.StringP("backend", "b", string(config.BackendLocal), "storage backend: local, sqlite or remote")
	flags.StringP("user", "u", config.DefaultUser, "user whose data is used")
	flags.String("data-dir", config.DefaultDataDir, "directory for the local backend")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&verbose, "verbose", false, "mirror log records to stderr")
}

// Session returns the session opened for the current command
func Session() *application.Session {
	return daybook.Session
}
