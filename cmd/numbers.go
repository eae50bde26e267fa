package cmd

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/swire/filter"
	"github.com/s0up4200/swire/signalwire"
)

var (
	// available flags
	country       string
	areaCode      string
	containsDigit string
	inRegion      string
	smsEnabled    bool
	voiceEnabled  bool
	mmsEnabled    bool

	// owned flags
	filterName   string
	filterNumber string
	pageSize     int
	allPages     bool

	// update flags
	updateName          string
	callHandler         string
	callRelayContext    string
	messageHandler      string
	messageRelayContext string

	filterExpr  string
	showDetails bool
)

var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Search, list, buy and update phone numbers",
}

var numbersAvailableCmd = &cobra.Command{
	Use:   "available",
	Short: "Search for local numbers that can be purchased",
	Args:  cobra.NoArgs,
	RunE:  runNumbersAvailable,
}

var numbersOwnedCmd = &cobra.Command{
	Use:   "owned",
	Short: "List the numbers owned by the project",
	Args:  cobra.NoArgs,
	RunE:  runNumbersOwned,
}

var numbersGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a single owned number",
	Args:  cobra.ExactArgs(1),
	RunE:  runNumbersGet,
}

var numbersBuyCmd = &cobra.Command{
	Use:   "buy NUMBER",
	Short: "Purchase a number (requires safety.allow_purchase)",
	Args:  cobra.ExactArgs(1),
	RunE:  runNumbersBuy,
}

var numbersUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Change the name or handlers of an owned number",
	Args:  cobra.ExactArgs(1),
	RunE:  runNumbersUpdate,
}

func init() {
	rootCmd.AddCommand(numbersCmd)
	numbersCmd.AddCommand(numbersAvailableCmd, numbersOwnedCmd, numbersGetCmd, numbersBuyCmd, numbersUpdateCmd)

	numbersCmd.PersistentFlags().BoolVar(&showDetails, "details", false, "show one block per number instead of a table")

	numbersAvailableCmd.Flags().StringVar(&country, "country", "US", "ISO country code")
	numbersAvailableCmd.Flags().StringVar(&areaCode, "area-code", "", "restrict to an area code")
	numbersAvailableCmd.Flags().StringVar(&containsDigit, "contains", "", "digits or letters the number must contain")
	numbersAvailableCmd.Flags().StringVar(&inRegion, "region", "", "two letter state or province")
	numbersAvailableCmd.Flags().BoolVar(&smsEnabled, "sms", false, "only SMS capable numbers")
	numbersAvailableCmd.Flags().BoolVar(&voiceEnabled, "voice", false, "only voice capable numbers")
	numbersAvailableCmd.Flags().BoolVar(&mmsEnabled, "mms", false, "only MMS capable numbers")
	numbersAvailableCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression or preset name")

	numbersOwnedCmd.Flags().StringVar(&filterName, "name", "", "server side match on the number name")
	numbersOwnedCmd.Flags().StringVar(&filterNumber, "number", "", "server side match on the number")
	numbersOwnedCmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")
	numbersOwnedCmd.Flags().BoolVar(&allPages, "all", false, "follow pagination links")
	numbersOwnedCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression or preset name")

	numbersUpdateCmd.Flags().StringVar(&updateName, "name", "", "new friendly name")
	numbersUpdateCmd.Flags().StringVar(&callHandler, "call-handler", "", "call handler, e.g. relay_context")
	numbersUpdateCmd.Flags().StringVar(&callRelayContext, "call-relay-context", "", "relay context receiving calls")
	numbersUpdateCmd.Flags().StringVar(&messageHandler, "message-handler", "", "message handler, e.g. relay_context")
	numbersUpdateCmd.Flags().StringVar(&messageRelayContext, "message-relay-context", "", "relay context receiving messages")
}

func runNumbersAvailable(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter(filterExpr)
	if err != nil {
		return err
	}

	builder := signalwire.NewAvailableNumberParams()
	if areaCode != "" {
		builder = builder.AreaCode(areaCode)
	}
	if containsDigit != "" {
		builder = builder.Contains(containsDigit)
	}
	if inRegion != "" {
		builder = builder.InRegion(inRegion)
	}
	if cmd.Flags().Changed("sms") {
		builder = builder.SmsEnabled(smsEnabled)
	}
	if cmd.Flags().Changed("voice") {
		builder = builder.VoiceEnabled(voiceEnabled)
	}
	if cmd.Flags().Changed("mms") {
		builder = builder.MmsEnabled(mmsEnabled)
	}

	resp, err := client.SearchAvailableNumbers(cmd.Context(), country, builder.Build())
	if err != nil {
		return fmt.Errorf("failed to search numbers: %w", err)
	}

	numbers := filter.Apply(f, filter.AvailableNumbers(resp))
	printNumbers(cmd.OutOrStdout(), numbers)
	return nil
}

func runNumbersOwned(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter(filterExpr)
	if err != nil {
		return err
	}

	builder := signalwire.NewOwnedNumberParams()
	if filterName != "" {
		builder = builder.FilterName(filterName)
	}
	if filterNumber != "" {
		builder = builder.FilterNumber(filterNumber)
	}
	if pageSize > 0 {
		builder = builder.PageSize(pageSize)
	}

	var numbers []filter.Number
	params := builder.Build()
	for {
		resp, err := client.ListOwnedNumbers(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list numbers: %w", err)
		}
		numbers = append(numbers, filter.OwnedNumbers(resp)...)

		if !allPages || !resp.HasMorePages() {
			break
		}
		token, err := pageToken(*resp.Links.Next)
		if err != nil {
			return err
		}
		params = builder.PageToken(token).Build()
	}

	printNumbers(cmd.OutOrStdout(), filter.Apply(f, numbers))
	return nil
}

// pageToken extracts page_token from a relay REST next link
func pageToken(next string) (string, error) {
	u, err := url.Parse(next)
	if err != nil {
		return "", fmt.Errorf("invalid next page link %q: %w", next, err)
	}
	token := u.Query().Get("page_token")
	if token == "" {
		return "", fmt.Errorf("next page link %q has no page_token", next)
	}
	return token, nil
}

func runNumbersGet(cmd *cobra.Command, args []string) error {
	number, err := client.GetOwnedNumber(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get number: %w", err)
	}
	printOwnedNumber(cmd.OutOrStdout(), number)
	return nil
}

func runNumbersBuy(cmd *cobra.Command, args []string) error {
	proceed, err := guard(cfg.Safety.AllowPurchase, "allow_purchase", "buy "+args[0])
	if err != nil || !proceed {
		return err
	}

	purchased, err := client.BuyNumber(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to buy number: %w", err)
	}

	logger.Info().Str("id", purchased.ID).Str("number", purchased.Number).Msg("Number purchased")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Purchased %s (ID: %s)\n", purchased.Number, purchased.ID)
	return nil
}

func runNumbersUpdate(cmd *cobra.Command, args []string) error {
	update := signalwire.UpdatePhoneNumberRequest{
		Name:                updateName,
		CallHandler:         callHandler,
		CallRelayContext:    callRelayContext,
		MessageHandler:      messageHandler,
		MessageRelayContext: messageRelayContext,
	}
	if update == (signalwire.UpdatePhoneNumberRequest{}) {
		return fmt.Errorf("nothing to update: pass at least one of --name, --call-handler, --call-relay-context, --message-handler, --message-relay-context")
	}

	if cfg.Safety.DryRun {
		logger.Info().Str("id", args[0]).Interface("update", update).Msg("[DRY RUN] Would update number")
		return nil
	}

	number, err := client.UpdateNumber(cmd.Context(), args[0], update)
	if err != nil {
		return fmt.Errorf("failed to update number: %w", err)
	}
	printOwnedNumber(cmd.OutOrStdout(), number)
	return nil
}

func printNumbers(out io.Writer, numbers []filter.Number) {
	fmt.Fprint(out, ConsoleFormatter{}.FormatNumberList(numbers, FormatOptions{ShowDetails: showDetails}))
}

func printOwnedNumber(out io.Writer, n *signalwire.OwnedPhoneNumber) {
	fmt.Fprintf(out, "ID:              %s\n", n.ID)
	fmt.Fprintf(out, "Number:          %s\n", n.Number)
	fmt.Fprintf(out, "Name:            %s\n", n.Name)
	fmt.Fprintf(out, "Type:            %s\n", valueOr(n.NumberType, "-"))
	fmt.Fprintf(out, "Capabilities:    %s\n", strings.Join(n.Capabilities, ", "))
	fmt.Fprintf(out, "Call handler:    %s\n", valueOr(n.CallHandler, "-"))
	fmt.Fprintf(out, "Message handler: %s\n", valueOr(n.MessageHandler, "-"))
	fmt.Fprintf(out, "Next billed:     %s\n", valueOr(n.NextBilledAt, "-"))
}
