package cli

import (
	"fmt"
	"os"

	"github.com/LeJamon/goNeoRPC/internal/config"
	"github.com/LeJamon/goNeoRPC/internal/logging"
	"github.com/LeJamon/goNeoRPC/internal/metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configFile  string
	debug       bool
	verbose     bool
	quiet       bool
	dumpMetrics bool
)

// Set by initConfig before any command runs
var (
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "neorpc",
	Short: "goNeoRPC - NEO N3 JSON-RPC data model tools",
	Long: `neorpc works with the payloads exchanged with NEO N3 JSON-RPC nodes:
it encodes and decodes method tokens in the binary wire format, validates
hashes and addresses, inspects response envelopes and keeps decoded tokens
in a local pebble store. It never talks to a node itself.`,
	Version:            "0.1.0-dev",
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  initConfig,
	PersistentPostRunE: finish,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	logger = zap.NewNop()

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path (default ./neorpc.toml if present)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable normally suppressed debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "write Prometheus metrics to stderr on exit")
}

// initConfig reads the config file and environment, then builds the logger.
func initConfig(cmd *cobra.Command, args []string) error {
	paths := config.DefaultConfigPaths()
	paths.Main = configFile

	loaded, err := config.LoadConfig(paths)
	if err != nil {
		return err
	}
	cfg = loaded

	logCfg := logging.Config{Level: cfg.Log.Level, Development: cfg.Log.Development}
	switch {
	case debug:
		logCfg.Level = "debug"
	case quiet:
		logCfg.Level = "error"
	case verbose:
		logCfg.Level = "info"
		logCfg.Development = true
	}

	l, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	logger = l.Named("cli")
	logger.Debug("configuration loaded",
		zap.String("file", cfg.ConfigPath()),
		zap.String("store", cfg.Store.Path))
	return nil
}

func finish(cmd *cobra.Command, args []string) error {
	if dumpMetrics {
		metrics.WritePrometheus(cmd.ErrOrStderr())
	}
	_ = logger.Sync()
	return nil
}
