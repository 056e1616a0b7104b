package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/kotranslate/internal/adapter/driven/gemini"
	"github.com/ericfisherdev/kotranslate/internal/config"
)

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate text into Korean and print the result verbatim",
		Long: "Translate text into Korean. Without an argument the text is read from stdin.\n" +
			"The text is sent as-is and the translation is printed exactly as returned,\n" +
			"so line breaks and indentation survive a round trip.",
		Args: cobra.MaximumNArgs(1),
		RunE: runTranslate,
	}
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	store, err := openCredentialStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	client := gemini.NewClient(store, cfg.GeminiBaseURL, cfg.GeminiModel, nil)

	translated, err := client.Translate(ctx, text)
	if err != nil {
		pterm.Error.Println("번역 오류: " + err.Error())
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), translated)
	return err
}

// inputText returns the argument, or all of stdin when there is none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
