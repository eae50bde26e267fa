package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/swire/filter"
	"github.com/s0up4200/swire/signalwire"
)

var (
	subprojectName   string
	subprojectStatus string
	subprojectNumber string
)

var subprojectsCmd = &cobra.Command{
	Use:     "subprojects",
	Aliases: []string{"subproject"},
	Short:   "Manage the subprojects of the project",
}

var subprojectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subprojects",
	Args:  cobra.NoArgs,
	RunE:  runSubprojectsList,
}

var subprojectsGetCmd = &cobra.Command{
	Use:   "get SID",
	Short: "Show a subproject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubprojectsGet,
}

var subprojectsCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a subproject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubprojectsCreate,
}

var subprojectsUpdateCmd = &cobra.Command{
	Use:   "update SID",
	Short: "Rename, suspend or reactivate a subproject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubprojectsUpdate,
}

var subprojectsDeleteCmd = &cobra.Command{
	Use:   "delete SID",
	Short: "Delete a subproject (requires safety.allow_delete)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubprojectsDelete,
}

var subprojectsNumbersCmd = &cobra.Command{
	Use:   "numbers SID",
	Short: "List the numbers owned by a subproject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubprojectsNumbers,
}

func init() {
	rootCmd.AddCommand(subprojectsCmd)
	subprojectsCmd.AddCommand(
		subprojectsListCmd,
		subprojectsGetCmd,
		subprojectsCreateCmd,
		subprojectsUpdateCmd,
		subprojectsDeleteCmd,
		subprojectsNumbersCmd,
	)

	subprojectsListCmd.Flags().StringVar(&subprojectName, "name", "", "match the friendly name")
	subprojectsListCmd.Flags().StringVar(&subprojectStatus, "status", "", "active, suspended or closed")

	subprojectsUpdateCmd.Flags().StringVar(&subprojectName, "name", "", "new friendly name")
	subprojectsUpdateCmd.Flags().StringVar(&subprojectStatus, "status", "", "new status")

	subprojectsNumbersCmd.Flags().StringVar(&subprojectNumber, "number", "", "match the phone number")
	subprojectsNumbersCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression or preset name")
	subprojectsNumbersCmd.Flags().BoolVar(&showDetails, "details", false, "show one block per number instead of a table")
}

func runSubprojectsList(cmd *cobra.Command, args []string) error {
	builder := signalwire.NewSubprojectParams()
	if subprojectName != "" {
		builder = builder.FriendlyName(subprojectName)
	}
	if subprojectStatus != "" {
		builder = builder.Status(subprojectStatus)
	}

	resp, err := client.ListSubprojects(cmd.Context(), builder.Build())
	if err != nil {
		return fmt.Errorf("failed to list subprojects: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(resp.Accounts) == 0 {
		fmt.Fprintln(out, "No subprojects found.")
		return nil
	}

	fmt.Fprintf(out, "%-36s %-30s %s\n", "SID", "NAME", "STATUS")
	fmt.Fprintln(out, strings.Repeat("-", 80))
	for _, sp := range resp.Accounts {
		fmt.Fprintf(out, "%-36s %-30s %s\n", sp.SID, truncate(sp.FriendlyName, 30), sp.Status)
	}
	if resp.HasMorePages() {
		fmt.Fprintf(out, "\nMore results: %s\n", *resp.NextPageURI)
	}
	return nil
}

func runSubprojectsGet(cmd *cobra.Command, args []string) error {
	sp, err := client.GetSubproject(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get subproject: %w", err)
	}
	printSubproject(cmd.OutOrStdout(), sp)
	return nil
}

func runSubprojectsCreate(cmd *cobra.Command, args []string) error {
	if cfg.Safety.DryRun {
		logger.Info().Str("name", args[0]).Msg("[DRY RUN] Would create subproject")
		return nil
	}

	sp, err := client.CreateSubproject(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to create subproject: %w", err)
	}
	logger.Info().Str("sid", sp.SID).Msg("Subproject created")
	printSubproject(cmd.OutOrStdout(), sp)
	return nil
}

func runSubprojectsUpdate(cmd *cobra.Command, args []string) error {
	builder := signalwire.NewSubprojectUpdateParams()
	if subprojectName != "" {
		builder = builder.FriendlyName(subprojectName)
	}
	if subprojectStatus != "" {
		builder = builder.Status(subprojectStatus)
	}
	params := builder.Build()
	if len(params) == 0 {
		return fmt.Errorf("nothing to update: pass --name or --status")
	}

	if cfg.Safety.DryRun {
		logger.Info().Str("sid", args[0]).Str("params", params.Encode()).Msg("[DRY RUN] Would update subproject")
		return nil
	}

	sp, err := client.UpdateSubproject(cmd.Context(), args[0], params)
	if err != nil {
		return fmt.Errorf("failed to update subproject: %w", err)
	}
	printSubproject(cmd.OutOrStdout(), sp)
	return nil
}

func runSubprojectsDelete(cmd *cobra.Command, args []string) error {
	proceed, err := guard(cfg.Safety.AllowDelete, "allow_delete", "delete subproject "+args[0])
	if err != nil || !proceed {
		return err
	}

	if err := client.DeleteSubproject(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete subproject: %w", err)
	}
	logger.Info().Str("sid", args[0]).Msg("Subproject deleted")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted subproject %s\n", args[0])
	return nil
}

func runSubprojectsNumbers(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter(filterExpr)
	if err != nil {
		return err
	}

	builder := signalwire.NewSubprojectNumberParams()
	if subprojectNumber != "" {
		builder = builder.PhoneNumber(subprojectNumber)
	}

	resp, err := client.ListSubprojectNumbers(cmd.Context(), args[0], builder.Build())
	if err != nil {
		return fmt.Errorf("failed to list subproject numbers: %w", err)
	}

	printNumbers(cmd.OutOrStdout(), filter.Apply(f, filter.SubprojectNumbers(resp)))
	return nil
}

func printSubproject(out io.Writer, sp *signalwire.Subproject) {
	fmt.Fprintf(out, "SID:     %s\n", sp.SID)
	fmt.Fprintf(out, "Name:    %s\n", sp.FriendlyName)
	fmt.Fprintf(out, "Status:  %s\n", sp.Status)
	fmt.Fprintf(out, "Type:    %s\n", sp.Type)
	fmt.Fprintf(out, "Owner:   %s\n", valueOr(sp.OwnerAccountSID, "-"))
	fmt.Fprintf(out, "Created: %s\n", sp.DateCreated)
}
