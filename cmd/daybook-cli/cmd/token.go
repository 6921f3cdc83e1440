package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/auth"
	"daybook/internal/config"
)

var (
	tokenEmail string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage identity tokens",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue <user-id>",
	Short: "Sign a token for a user with the configured token_secret",
	Long: `Issue prints an HS256 token that scopes daybook to one user.
Set it as DAYBOOK_TOKEN (or token: in daybook.yaml) on the client.`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipSession: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		if cfg.TokenSecret == "" {
			return fmt.Errorf("token_secret is not configured (DAYBOOK_TOKEN_SECRET)")
		}

		authenticator, err := auth.NewAuthenticator(cfg.TokenSecret, "daybook")
		if err != nil {
			return err
		}
		token, err := authenticator.Issue(args[0], tokenEmail, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)

	tokenIssueCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenIssueCmd.Flags().DurationVar(&tokenTTL, "ttl", auth.DefaultTTL, "token lifetime")
}
