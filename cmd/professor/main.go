package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/professor/internal/config"
)

var (
	settings *config.Settings
	logLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "professor",
		Short:         "Ask the AI professor about any topic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load()
			if err != nil {
				return fmt.Errorf("config.Load() > %w", err)
			}
			if logLevel != "" {
				s.LogLevel = logLevel
			}
			config.InitLogger(s.LogLevel, s.LogFormat)
			settings = s
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL")

	rootCmd.AddCommand(
		newServeCmd(),
		newWebCmd(),
		newTUICmd(),
		newLectureCmd(),
	)
	return rootCmd
}
