// Package cmd wires the portfolio's command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	appConfig *config.Config
	logger    *zap.Logger
)

// flagKeys maps command flags onto configuration keys. Flags only win when
// set explicitly.
var flagKeys = map[string]string{
	"content":  "content.path",
	"media":    "content.media_dir",
	"port":     "http.port",
	"output":   "build.output_dir",
	"base-url": "build.base_url",
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "A single-page personal portfolio",
	Long: `portfolio renders a personal portfolio (hero, about, skills, projects,
experience, education and contact) from one content document.

It can serve the page over HTTP, export it as a static directory, or show it
in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initialize(cmd)
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("content", "", "content document (.yaml or .md); built-in when empty")
	rootCmd.PersistentFlags().String("media", "", "media directory holding profile and project images")
}

func initialize(cmd *cobra.Command) error {
	v := viper.New()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	// The terminal UI owns the screen; its logs go to a file or nowhere.
	switch {
	case cmd.Name() == "tui" && tuiLogFile == "":
		logger = zap.NewNop()
	case cmd.Name() == "tui":
		logger, err = logging.Console(tuiLogFile, verbose)
	default:
		logger, err = logging.New(cfg.Log.Level, verbose)
	}
	if err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", zap.String("path", used))
	}
	return nil
}

// loadContent reads the configured document. Missing fields are reported
// but never fatal.
func loadContent() (*content.Store, error) {
	store, err := content.Load(appConfig.Content.Path)
	if err != nil {
		return nil, err
	}
	logGaps(store)
	return store, nil
}

func logGaps(store *content.Store) {
	source := store.Source
	if source == "" {
		source = "built-in"
	}
	for _, gap := range store.Gaps() {
		logger.Warn("content field missing", zap.String("source", source), zap.String("field", gap))
	}
}
