package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var charmFilter string
	var color, verbose, showVersion bool

	flag.StringVar(&charmFilter, "c", "", "only report on log messages from this charm")
	flag.StringVar(&charmFilter, "charm-filter", "", "only report on log messages from this charm")
	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/logstats/config.yml)")
	flag.BoolVar(&color, "color", false, "style report section headers")
	flag.BoolVar(&verbose, "verbose", false, "log debug diagnostics to stderr")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("logstats - Unit Log Analyzer\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	applyFlagOverrides(&cfg, flag.CommandLine, charmFilter, color, verbose)

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: missing required logfile argument")
		flag.Usage()
		os.Exit(2)
	}
	cfg.LogFile = flag.Arg(0)

	logger := zap.NewNop()
	if cfg.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	if err := run(cfg, logger, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlagOverrides copies flag values given explicitly on the command
// line over whatever the config file and environment provided. Flags the
// user did not set leave the loaded config untouched.
func applyFlagOverrides(cfg *appConfig, fs *flag.FlagSet, charmFilter string, color, verbose bool) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "c", "charm-filter":
			cfg.CharmFilter = charmFilter
		case "color":
			cfg.Color = color
		case "verbose":
			cfg.Verbose = verbose
		}
	})
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: logstats [flags] <logfile>\n\n")
	fmt.Fprintf(out, "Analyze per-charm severity statistics in a unit log file.\n\nFlags:\n")
	flag.PrintDefaults()
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("LOGSTATS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("charm-filter", "")
	v.SetDefault("color", false)
	v.SetDefault("verbose", false)
	v.SetDefault("show-memory", defaultShowMemory)
	v.SetDefault("max-line-size", defaultMaxLineSize)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "logstats", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	if cfg.MaxLineSize <= 0 {
		return cfg, fmt.Errorf("invalid max-line-size: %d", cfg.MaxLineSize)
	}

	return cfg, nil
}
