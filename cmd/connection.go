package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/swire/signalwire"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to SignalWire",
	Long:  `Test the credentials against your SignalWire space and display basic information.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintf(out, "Testing connection to SignalWire space %q...\n", client.SpaceName())

	if err := client.TestConnection(ctx); err != nil {
		if signalwire.IsUnauthorized(err) {
			return fmt.Errorf("credentials rejected for project %s: %w", client.ProjectID(), err)
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	owned, err := client.ListOwnedNumbers(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list numbers: %w", err)
	}
	subprojects, err := client.ListSubprojects(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list subprojects: %w", err)
	}

	fmt.Fprintf(out, "\nProject %s:\n", client.ProjectID())
	fmt.Fprintf(out, "- Phone numbers (first page): %d\n", len(owned.Data))
	fmt.Fprintf(out, "- Subprojects (first page): %d\n", len(subprojects.Accounts))

	fmt.Fprintf(out, "\nSafety:\n")
	fmt.Fprintf(out, "- Dry run: %s\n", boolToStatus(cfg.Safety.DryRun))
	fmt.Fprintf(out, "- Number purchase: %s\n", boolToStatus(cfg.Safety.AllowPurchase))
	fmt.Fprintf(out, "- SMS sending: %s\n", boolToStatus(cfg.Safety.AllowSMS))
	fmt.Fprintf(out, "- Subproject deletion: %s\n", boolToStatus(cfg.Safety.AllowDelete))

	if presets := filters.ListFilters(); len(presets) > 0 {
		fmt.Fprintf(out, "\nFilter presets:\n")
		for _, name := range presets {
			f, _ := filters.GetFilter(name)
			fmt.Fprintf(out, "  • %s: %s\n", name, f.Expression())
		}
	}

	return nil
}
