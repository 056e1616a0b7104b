package web

import (
	vm "github.com/ericfisherdev/kotranslate/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

// User-facing status lines.
const (
	statusSaved        = "API 키가 저장되었습니다!"
	statusEmptyKey     = "API 키를 입력해주세요."
	statusSaveFailed   = "API 키를 저장하지 못했습니다."
	statusConfigured   = "API 키 설정됨"
	statusUnconfigured = "API 키 필요"
)

const optionsPath = "/options"

// toOptionsViewModel builds the options page view model. status and kind
// describe the outcome of a save and are empty on a plain page load.
func toOptionsViewModel(apiKey, csrf, status string, kind vm.StatusKind) vm.OptionsViewModel {
	return vm.OptionsViewModel{
		APIKey:     apiKey,
		CSRFToken:  csrf,
		HelpHTML:   RenderMarkdown(optionsHelp),
		Status:     status,
		StatusKind: kind,
	}
}

// toPopupViewModel maps the credential status to the popup indicator.
func toPopupViewModel(status model.CredentialStatus) vm.PopupViewModel {
	if status.Configured {
		return vm.PopupViewModel{
			Configured:  true,
			StatusText:  statusConfigured,
			StatusKind:  vm.StatusSuccess,
			OptionsPath: optionsPath,
		}
	}
	return vm.PopupViewModel{
		StatusText:  statusUnconfigured,
		StatusKind:  vm.StatusError,
		OptionsPath: optionsPath,
	}
}
