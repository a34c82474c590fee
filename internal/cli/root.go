package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ppiankov/akkad/internal/model"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=..."
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool

	// cfg and logger are set by PersistentPreRunE before any command runs
	cfg    *model.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "akkad",
	Short: "akkad - Akkadian G-stem conjugator",
	Long: `akkad looks a verb up in a dictionary of roots and builds its
G-stem preterite paradigm and verbal adjective.

The dictionary is a directory of per-initial-letter files (p.json, n.yaml, ...)
or a SQLite database imported from them.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c

		l, err := newLogger(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of akkad.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "akkad %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := model.DefaultConfig()

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.akkad/config.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	pf.String("dict-dir", defaults.Dictionary.Dir, "directory of per-letter dictionary files")
	pf.String("backend", defaults.Dictionary.Backend, "dictionary backend (files, sqlite)")
	pf.String("db", defaults.Dictionary.DBPath, "SQLite database path")
	pf.StringP("format", "f", defaults.Output.Format, "output format (text, json, yaml, markdown)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", pf.Lookup("verbose"))
	_ = viper.BindPFlag("dictionary.dir", pf.Lookup("dict-dir"))
	_ = viper.BindPFlag("dictionary.backend", pf.Lookup("backend"))
	_ = viper.BindPFlag("dictionary.db_path", pf.Lookup("db"))
	_ = viper.BindPFlag("output.format", pf.Lookup("format"))

	setDefaults(defaults)

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// setDefaults registers every config key so env vars and Unmarshal see them
func setDefaults(d *model.Config) {
	viper.SetDefault("dictionary.dir", d.Dictionary.Dir)
	viper.SetDefault("dictionary.backend", d.Dictionary.Backend)
	viper.SetDefault("dictionary.db_path", d.Dictionary.DBPath)
	viper.SetDefault("dictionary.cache_ttl", d.Dictionary.CacheTTL)
	viper.SetDefault("concurrency.workers", d.Concurrency.Workers)
	viper.SetDefault("server.addr", d.Server.Addr)
	viper.SetDefault("server.requests_per_second", d.Server.RequestsPerSecond)
	viper.SetDefault("server.burst", d.Server.Burst)
	viper.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	viper.SetDefault("server.trusted_clients", d.Server.TrustedClients)
	viper.SetDefault("output.format", d.Output.Format)
	viper.SetDefault("output.verbose", d.Output.Verbose)
	viper.SetDefault("log.level", d.Log.Level)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".akkad"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match AKKAD_*, e.g. AKKAD_SERVER_ADDR
	viper.SetEnvPrefix("AKKAD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges flags, env, config file and defaults into a Config
func loadConfig() (*model.Config, error) {
	c := model.DefaultConfig()
	if err := viper.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.Dictionary.Backend != model.BackendFiles && c.Dictionary.Backend != model.BackendSQLite {
		return nil, fmt.Errorf("unknown dictionary backend %q (want %s or %s)",
			c.Dictionary.Backend, model.BackendFiles, model.BackendSQLite)
	}
	if c.Concurrency.Workers <= 0 {
		c.Concurrency.Workers = 1
	}
	return c, nil
}

// newLogger builds the production zap logger; --verbose forces debug level
func newLogger(c *model.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()

	level := zapcore.InfoLevel
	if c.Log.Level != "" {
		if err := level.Set(c.Log.Level); err != nil {
			return nil, fmt.Errorf("log level %q: %w", c.Log.Level, err)
		}
	}
	if c.Output.Verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
