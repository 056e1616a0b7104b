package application_test

import (
	"context"
	"sync"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

type fakeStore struct {
	mu     sync.Mutex
	value  string
	getErr error
	setErr error
	sets   int
}

func (f *fakeStore) Get(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.getErr
}

func (f *fakeStore) Set(_ context.Context, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.value = value
	return nil
}

type fakeTranslator struct {
	result string
	err    error
	calls  []string
}

func (f *fakeTranslator) Translate(_ context.Context, text string) (string, error) {
	f.calls = append(f.calls, text)
	return f.result, f.err
}

type fakePages struct {
	injected   []model.TabID
	injectErr  error
	sent       []model.ReplaceSelectionRequest
	sendResp   model.ReplaceSelectionResponse
	sendErr    error
	alerts     []string
	alertErr   error
	alertedTab model.TabID
}

func (f *fakePages) EnsureInjector(_ context.Context, tab model.TabID) error {
	f.injected = append(f.injected, tab)
	return f.injectErr
}

func (f *fakePages) ReplaceSelection(_ context.Context, _ model.TabID, req model.ReplaceSelectionRequest) (model.ReplaceSelectionResponse, error) {
	f.sent = append(f.sent, req)
	return f.sendResp, f.sendErr
}

func (f *fakePages) Alert(_ context.Context, tab model.TabID, message string) error {
	f.alertedTab = tab
	f.alerts = append(f.alerts, message)
	return f.alertErr
}

type fakeMenus struct {
	items []model.ContextMenuItem
	err   error
}

func (f *fakeMenus) RegisterMenuItem(item model.ContextMenuItem) error {
	f.items = append(f.items, item)
	return f.err
}

type fakeOpener struct {
	opened int
	err    error
}

func (f *fakeOpener) OpenOptions() error {
	f.opened++
	return f.err
}
