package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"brstemmer/config"
	"brstemmer/internal/adapter/cache"
	"brstemmer/internal/adapter/rulefile"
	"brstemmer/internal/logger"
	"brstemmer/internal/port"
	"brstemmer/stemmer"
)

var (
	cfgFile   string
	rulesFile string
	logLevel  string
	cfg       *config.Config
	rootDir   string
	table     *stemmer.Table
)

var rootCmd = &cobra.Command{
	Use:   "brstemmer",
	Short: "RSLP stemmer for Portuguese",
	Long: `brstemmer reduces Portuguese words to their stems with the RSLP rule set:
plural, adverb, feminine, augmentative, noun, verb, vowel and accent reduction.

Example usage:
  brstemmer stem meninas cantando   # Stem words
  brstemmer explain professora      # Show what every step did
  brstemmer corpus ./textos         # Stem every word of a directory
  brstemmer lookup --stem cant      # Words stored under a stem`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.ApplyEnv(rootDir); err != nil {
			return err
		}
		if rulesFile != "" {
			cfg.Rules = rulesFile
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())

		table, err = loadTable(cfg.Rules)
		if err != nil {
			return err
		}
		slog.Debug("rule table loaded", "rules", table.RuleCount(), "fingerprint", table.Fingerprint())
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./brstemmer.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "YAML rule table (default is the built-in RSLP rules)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// loadTable resolves the rule table; relative paths are taken from the root directory.
func loadTable(path string) (*stemmer.Table, error) {
	if path == "" {
		return stemmer.DefaultTable(), nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(rootDir, path)
	}
	t, err := rulefile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return t, nil
}

// newStemmer returns the stemmer for the loaded table, memoized when the
// cache is enabled.
func newStemmer() port.Stemmer {
	s := stemmer.New(table)
	if !cfg.Cache.Enabled {
		return s
	}
	return cache.NewCachedStemmer(s, cache.NewStemCache(cfg.Cache.Size))
}
