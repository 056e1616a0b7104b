package main

import (
	"context"
	"errors"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/kotranslate/internal/application"
	"github.com/ericfisherdev/kotranslate/internal/config"
	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the stored Gemini API key",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [value]",
		Short: "Store the API key (read from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runKeySet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether an API key is configured",
		Args:  cobra.NoArgs,
		RunE:  runKeyStatus,
	})

	return cmd
}

// withCredentials opens the configured store for the duration of fn.
func withCredentials(ctx context.Context, fn func(*application.CredentialService) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := openCredentialStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	return fn(application.NewCredentialService(store, nil))
}

func runKeySet(cmd *cobra.Command, args []string) error {
	value, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	return withCredentials(cmd.Context(), func(svc *application.CredentialService) error {
		if err := svc.Save(cmd.Context(), value); err != nil {
			if errors.Is(err, model.ErrEmptyCredential) {
				pterm.Error.Println("API 키를 입력해주세요.")
			}
			return err
		}
		pterm.Success.Println("API 키가 저장되었습니다! " + model.PreviewCredential(strings.TrimSpace(value)))
		return nil
	})
}

func runKeyStatus(cmd *cobra.Command, _ []string) error {
	return withCredentials(cmd.Context(), func(svc *application.CredentialService) error {
		status, err := svc.Status(cmd.Context())
		if err != nil {
			return err
		}

		if !status.Configured {
			pterm.Warning.Println("API 키 필요")
			return nil
		}

		rows := pterm.TableData{
			{"Property", "Value"},
			{"Status", "API 키 설정됨"},
			{"Key", status.Preview},
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	})
}
