// Package main provides the ats_tailor command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/logging"
)

var (
	configPath string
	logLevel   string
	verbose    bool

	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ats_tailor",
	Short: "Keyword-driven resume and cover letter tailoring",
	Long: `ats_tailor scores a master profile against job descriptions and selects, reorders and
rewrites its content so that generated resumes and cover letters match the posting's keywords.

Configuration can be loaded from a JSON file using --config. Command-line flags override config file values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level := logLevel
		if level == "" {
			level = os.Getenv("LOG_LEVEL")
		}
		logger = logging.New(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (defaults to LOG_LEVEL env var)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
