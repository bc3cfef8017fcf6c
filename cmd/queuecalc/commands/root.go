package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/panyam/queuemodels/config"
	"github.com/panyam/queuemodels/logging"
)

var (
	envFile   string
	logLevel  string
	precision int
	noColor   bool

	// resolved in PersistentPreRunE
	cfg = config.Default()

	logOutput io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "queuecalc",
	Short: "Steady-state metrics for analytical queueing models",
	Long: `queuecalc evaluates M/M/1, M/M/c, M/D/1, M/G/1 and priority M/M/c
queues from their arrival rate, service rate, server count and service-time
spread. Invalid inputs are reported as NaN, unstable systems as +Inf.`,
	SilenceUsage:      true,
	PersistentPreRunE: resolveConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file to load (default: $QUEUEMODELS_ENV_FILE or .env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off (default: $QUEUEMODELS_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", config.DefaultPrecision, "Decimal places in printed values (default: $QUEUEMODELS_PRECISION)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output (default: $QUEUEMODELS_NO_COLOR)")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// resolveConfig layers flags over env vars over defaults.
func resolveConfig(cmd *cobra.Command, args []string) error {
	path := envFile
	if path == "" {
		path = config.DefaultEnvFilePath()
	}
	if err := config.LoadEnvFile(path); err != nil {
		return err
	}

	resolved, err := config.FromEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		level, err := logging.ParseLogLevel(logLevel)
		if err != nil {
			return err
		}
		resolved.LogLevel = level
	}
	if flags.Changed("precision") {
		if precision < 0 {
			return fmt.Errorf("--precision must be >= 0, got %d", precision)
		}
		resolved.Precision = precision
	}
	if flags.Changed("no-color") {
		resolved.NoColor = noColor
	}

	if resolved.NoColor {
		color.NoColor = true
	}
	resolved.Apply(logOutput)
	cfg = resolved
	logging.Debug("config: level=%s precision=%d no-color=%v", cfg.LogLevel, cfg.Precision, cfg.NoColor)
	return nil
}
