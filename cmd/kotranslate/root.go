package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "kotranslate",
		Short:         "Translate selected text into Korean with the Gemini API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			switch {
			case debug:
				slog.SetLogLoggerLevel(slog.LevelDebug)
			case cmd.Name() != "serve" && cmd.Name() != "kotranslate":
				// One-shot commands print results, not progress.
				slog.SetLogLoggerLevel(slog.LevelWarn)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newServeCmd(), newTranslateCmd(), newKeyCmd())
	return root
}
