// Package browser opens the options page in the user's default browser.
package browser

import (
	"fmt"
	"log/slog"

	pkgbrowser "github.com/pkg/browser"

	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.OptionsOpener = (*Opener)(nil)

// Opener implements driven.OptionsOpener. When disabled it only logs the URL,
// which suits headless hosts.
type Opener struct {
	url     string
	enabled bool
	open    func(string) error
	logger  *slog.Logger
}

// NewOpener creates an Opener for the options page at url.
func NewOpener(url string, enabled bool, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{url: url, enabled: enabled, open: pkgbrowser.OpenURL, logger: logger}
}

// OpenOptions opens the options page.
func (o *Opener) OpenOptions() error {
	if !o.enabled {
		o.logger.Info("open the options page to configure the api key", "url", o.url)
		return nil
	}
	if err := o.open(o.url); err != nil {
		return fmt.Errorf("open %s: %w", o.url, err)
	}
	o.logger.Info("options page opened", "url", o.url)
	return nil
}
