package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/swire/signalwire"
)

// DefaultLookupConcurrency bounds the lookups in flight at once
const DefaultLookupConcurrency = 4

var (
	withCarrier       bool
	withCallerName    bool
	lookupConcurrency int
	useJWT            bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup NUMBER...",
	Short: "Look up carrier and caller name data for phone numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().BoolVar(&withCarrier, "carrier", false, "include carrier data")
	lookupCmd.Flags().BoolVar(&withCallerName, "caller-name", false, "include CNAM data")
	lookupCmd.Flags().IntVar(&lookupConcurrency, "concurrency", DefaultLookupConcurrency, "lookups to run at once")
	lookupCmd.Flags().BoolVar(&useJWT, "jwt", false, "authenticate lookups with a freshly minted JWT")
}

// lookupOutcome keeps each result at its argument position
type lookupOutcome struct {
	number string
	result *signalwire.LookupResult
	err    error
}

func runLookup(cmd *cobra.Command, args []string) error {
	builder := signalwire.NewLookupParams()
	if withCarrier {
		builder = builder.Carrier()
	}
	if withCallerName {
		builder = builder.CallerName()
	}

	api := client
	if useJWT {
		token, err := client.GetJWT(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get JWT: %w", err)
		}
		api = client.WithToken(token.JWTToken)
	}

	outcomes, err := lookupNumbers(cmd.Context(), api, args, builder.Build(), lookupConcurrency)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if o.err != nil {
			fmt.Fprintf(out, "%s: %v\n", o.number, o.err)
			continue
		}
		printLookup(out, o.result)
	}
	return nil
}

// lookupNumbers looks up every number with at most limit requests in flight.
// Unknown numbers are reported per number; any other failure aborts the run.
func lookupNumbers(ctx context.Context, api signalwire.API, numbers []string, params signalwire.Params, limit int) ([]lookupOutcome, error) {
	if limit <= 0 {
		limit = DefaultLookupConcurrency
	}

	outcomes := make([]lookupOutcome, len(numbers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, number := range numbers {
		g.Go(func() error {
			result, err := api.LookupNumber(ctx, number, params)
			if err != nil && !signalwire.IsNotFound(err) {
				return fmt.Errorf("lookup %s failed: %w", number, err)
			}
			if err != nil {
				logger.Warn().Str("number", number).Msg("Number not found")
			}
			// each goroutine owns its own index
			outcomes[i] = lookupOutcome{number: number, result: result, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func printLookup(out io.Writer, r *signalwire.LookupResult) {
	fmt.Fprintf(out, "Number:   %s\n", r.E164)
	if r.NationalNumberFormatted != "" {
		fmt.Fprintf(out, "National: %s\n", r.NationalNumberFormatted)
	}
	fmt.Fprintf(out, "Country:  %s\n", r.CountryCode)
	fmt.Fprintf(out, "Valid:    %t\n", r.ValidNumber)
	if r.Location != nil {
		fmt.Fprintf(out, "Location: %s\n", *r.Location)
	}
	if len(r.Timezones) > 0 {
		fmt.Fprintf(out, "Timezone: %s\n", strings.Join(r.Timezones, ", "))
	}
	if r.Carrier != nil {
		fmt.Fprintf(out, "Carrier:  %s (%s)\n", valueOr(r.Carrier.LEC, "unknown"), valueOr(r.Carrier.LineType, "unknown line type"))
	}
	if r.CallerName != nil {
		fmt.Fprintf(out, "CNAM:     %s\n", valueOr(r.CallerName.CallerID, "-"))
	}
}
