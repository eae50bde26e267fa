package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/swire/config"
	"github.com/s0up4200/swire/filter"
	"github.com/s0up4200/swire/signalwire"
)

// skipInit marks commands that run without configuration or credentials
const skipInit = "skip-init"

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *signalwire.Client
	filters *filter.Manager

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	dryRun   bool
	logLevel string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "swire",
	Short: "A command line client for the SignalWire REST APIs",
	Long: `swire talks to a SignalWire space over its REST APIs. It can mint relay
tokens, search for and buy phone numbers, send SMS and follow their delivery
status, manage subprojects and look up carrier and caller name data.

Credentials come from config.yaml, a .env file or SIGNALWIRE_* environment
variables. Commands that spend money or delete data are disabled until the
matching safety.allow_* setting is enabled.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build information injected by the linker
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = version
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "print what would change without calling mutating endpoints")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	if !needsConfig(cmd) {
		logger = setupLogger(config.LoggingConfig{Level: logLevel, Format: "console", Color: true})
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	opts := []signalwire.Option{
		signalwire.WithTimeout(cfg.SignalWire.Timeout),
		signalwire.WithUserAgent("swire/" + appVersion),
	}
	if cfg.SignalWire.BaseURL != "" {
		opts = append(opts, signalwire.WithBaseURL(cfg.SignalWire.BaseURL))
	}

	client, err = signalwire.NewClient(cfg.SignalWire.SpaceName, cfg.SignalWire.ProjectID, cfg.SignalWire.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SignalWire client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("space", client.SpaceName()).
		Bool("dry_run", cfg.Safety.DryRun).
		Msg("Client initialized")

	return nil
}

// needsConfig reports whether cmd talks to SignalWire
func needsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipInit] == "true" || c.Name() == "help" || c.Name() == cobra.ShellCompRequestCmd || c.Name() == "completion" {
			return false
		}
	}
	return true
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// guard enforces a safety.allow_* switch and the dry-run mode. It returns
// false without an error when the action should only be reported.
func guard(allowed bool, setting, action string) (bool, error) {
	if !allowed {
		return false, fmt.Errorf("%s is disabled: set safety.%s to true (or SIGNALWIRE_SAFETY_%s=true)",
			action, setting, strings.ToUpper(setting))
	}
	if cfg.Safety.DryRun {
		logger.Info().Str("action", action).Msg("[DRY RUN] Skipping")
		return false, nil
	}
	return true, nil
}

// resolveFilter returns nil when no filter was requested
func resolveFilter(nameOrExpression string) (filter.Filter, error) {
	if nameOrExpression == "" {
		return nil, nil
	}
	f, err := filters.Resolve(nameOrExpression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

func boolToStatus(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
