package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Exchange the project credentials for a relay JWT",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	token, err := client.GetJWT(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get JWT: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "JWT:           %s\n", token.JWTToken)
	fmt.Fprintf(out, "Refresh token: %s\n", token.RefreshToken)

	expiresAt, err := token.ExpiresAt()
	if err != nil {
		logger.Debug().Err(err).Msg("Could not read token expiry")
		return nil
	}
	fmt.Fprintf(out, "Expires:       %s (in %s)\n", expiresAt.Format(time.RFC3339), time.Until(expiresAt).Round(time.Second))

	return nil
}
