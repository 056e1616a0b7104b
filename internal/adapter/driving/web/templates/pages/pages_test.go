package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vm "github.com/ericfisherdev/kotranslate/internal/adapter/driving/web/viewmodel"
)

func renderComponent(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestOptions_EscapesValues(t *testing.T) {
	body := renderComponent(t, Options(vm.OptionsViewModel{
		APIKey:     `"><script>alert(1)</script>`,
		CSRFToken:  "tok",
		Status:     "<b>saved</b>",
		StatusKind: vm.StatusSuccess,
	}))

	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, `value="&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;"`)
	assert.Contains(t, body, "&lt;b&gt;saved&lt;/b&gt;")
	assert.Contains(t, body, `name="csrf_token" value="tok"`)
	assert.Contains(t, body, `class="status status-success"`)
	assert.NotContains(t, body, `class="help"`, "no help section without help text")
}

func TestOptions_RendersHelpHTML(t *testing.T) {
	body := renderComponent(t, Options(vm.OptionsViewModel{HelpHTML: "<p>키를 입력하세요</p>"}))

	assert.Contains(t, body, `<section class="help"><p>키를 입력하세요</p></section>`)
	assert.Contains(t, body, `<div id="status" class="status">`)
}

func TestPopup_LinksToOptions(t *testing.T) {
	body := renderComponent(t, Popup(vm.PopupViewModel{
		StatusText:  "API 키 설정됨",
		StatusKind:  vm.StatusSuccess,
		OptionsPath: "/options",
	}))

	assert.Contains(t, body, `href="/options"`)
	assert.Contains(t, body, "API 키 설정됨")
	assert.Contains(t, body, `class="status status-success"`)
}

func TestPopup_SanitizesUnsafeLink(t *testing.T) {
	body := renderComponent(t, Popup(vm.PopupViewModel{OptionsPath: "javascript:alert(1)"}))

	assert.NotContains(t, body, "javascript:")
	assert.Contains(t, body, `href="`+string(templ.FailedSanitizationURL)+`"`)
}
