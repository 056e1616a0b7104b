// Package tab hosts page contexts. Each open tab owns one goroutine that is
// the only code touching the tab's document, and everything else reaches the
// tab through its mailbox.
package tab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/ericfisherdev/kotranslate/internal/adapter/driven/page"
	"github.com/ericfisherdev/kotranslate/internal/domain/model"
	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.PageMessenger = (*Host)(nil)
	_ driven.MenuRegistry  = (*Host)(nil)
)

var (
	// ErrNotFound is returned for a tab id that is not open.
	ErrNotFound = errors.New("tab not found")
	// ErrClosed is returned when a tab closes while a message is in flight.
	ErrClosed = errors.New("tab closed")
	// ErrNoReceiver is returned when a message is sent to a tab whose page has
	// no injector listening.
	ErrNoReceiver = errors.New("could not establish connection: receiving end does not exist")
	// ErrDuplicateMenuItem is returned when a menu item id is registered twice.
	ErrDuplicateMenuItem = errors.New("duplicate context menu item id")
)

// Snapshot is a point-in-time view of one tab.
type Snapshot struct {
	ID            model.TabID
	HTML          string
	Alerts        []string
	HasSelection  bool
	SelectionText string
	Injected      bool
}

// pageState is owned by the tab goroutine.
type pageState struct {
	doc      *page.Document
	injector *page.Injector
	alerts   []string
}

// result carries a job's outcome back to the caller.
type result struct {
	value any
	err   error
}

// job is one unit of work delivered to a tab's mailbox. Its outcome travels
// only through done, so a caller that gives up early shares nothing with the
// tab goroutine.
type job struct {
	run  func(*pageState) (any, error)
	done chan result
}

type pageContext struct {
	id      model.TabID
	mailbox chan job
	quit    chan struct{}
	stopped chan struct{}
}

// Host owns every open tab and the registered context-menu items.
type Host struct {
	mu     sync.Mutex
	nextID model.TabID
	tabs   map[model.TabID]*pageContext
	menu   []model.ContextMenuItem
	logger *slog.Logger
}

// NewHost creates an empty Host.
func NewHost(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{
		tabs:   make(map[model.TabID]*pageContext),
		logger: logger,
	}
}

// Open loads an HTML page into a new tab and starts its page context.
func (h *Host) Open(markup string) (model.TabID, error) {
	doc, err := page.ParseString(markup)
	if err != nil {
		return 0, fmt.Errorf("open tab: %w", err)
	}

	h.mu.Lock()
	h.nextID++
	pc := &pageContext{
		id:      h.nextID,
		mailbox: make(chan job),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	h.tabs[pc.id] = pc
	h.mu.Unlock()

	go pc.run(&pageState{doc: doc})

	h.logger.Info("tab opened", "tab_id", pc.id)
	return pc.id, nil
}

// run processes jobs until the tab is closed.
func (pc *pageContext) run(state *pageState) {
	defer close(pc.stopped)
	for {
		select {
		case <-pc.quit:
			return
		case j := <-pc.mailbox:
			value, err := j.run(state)
			j.done <- result{value: value, err: err}
		}
	}
}

// Close stops the tab's page context and forgets the tab.
func (h *Host) Close(id model.TabID) error {
	h.mu.Lock()
	pc, ok := h.tabs[id]
	delete(h.tabs, id)
	h.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	close(pc.quit)
	<-pc.stopped

	h.logger.Info("tab closed", "tab_id", id)
	return nil
}

// Shutdown closes every open tab.
func (h *Host) Shutdown() {
	h.mu.Lock()
	ids := make([]model.TabID, 0, len(h.tabs))
	for id := range h.tabs {
		ids = append(ids, id)
	}
	h.mu.Unlock()

	for _, id := range ids {
		_ = h.Close(id)
	}
}

// lookup returns the page context of an open tab.
func (h *Host) lookup(id model.TabID) (*pageContext, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	pc, ok := h.tabs[id]
	return pc, ok
}

// call runs fn on the tab's goroutine and waits for its result.
func call[T any](ctx context.Context, h *Host, id model.TabID, fn func(*pageState) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	pc, ok := h.lookup(id)
	if !ok {
		return zero, ErrNotFound
	}

	j := job{
		run: func(s *pageState) (any, error) {
			return fn(s)
		},
		done: make(chan result, 1),
	}
	select {
	case pc.mailbox <- j:
	case <-pc.stopped:
		return zero, ErrClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	select {
	case r := <-j.done:
		if r.err != nil {
			return zero, r.err
		}
		return r.value.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Select sets the tab's selection and returns the selected text. An empty
// start selector clears the selection.
func (h *Host) Select(ctx context.Context, id model.TabID, target page.SelectionSpec) (string, error) {
	return call(ctx, h, id, func(s *pageState) (string, error) {
		if target.StartSelector == "" {
			s.doc.ClearSelection()
			return "", nil
		}
		return s.doc.Select(target)
	})
}

// Snapshot renders the tab's current document and state.
func (h *Host) Snapshot(ctx context.Context, id model.TabID) (Snapshot, error) {
	return call(ctx, h, id, func(s *pageState) (Snapshot, error) {
		out, err := s.doc.Render()
		if err != nil {
			return Snapshot{}, err
		}
		snap := Snapshot{
			ID:       id,
			HTML:     out,
			Alerts:   slices.Clone(s.alerts),
			Injected: s.injector != nil,
		}
		if r, ok := s.doc.Selection(); ok {
			snap.HasSelection = true
			snap.SelectionText = r.Text()
		}
		return snap, nil
	})
}

// EnsureInjector installs the page injector in the tab. A tab that already has
// one keeps it.
func (h *Host) EnsureInjector(ctx context.Context, id model.TabID) error {
	_, err := call(ctx, h, id, func(s *pageState) (struct{}, error) {
		if s.injector != nil {
			return struct{}{}, nil
		}
		fallback := page.FallbackFunc(func(message string) {
			s.alerts = append(s.alerts, message)
		})
		s.injector = page.NewInjector(s.doc, fallback, h.logger.With("tab_id", id))
		h.logger.Debug("injector installed", "tab_id", id)
		return struct{}{}, nil
	})
	return err
}

// ReplaceSelection delivers req to the tab's injector and returns its
// acknowledgement.
func (h *Host) ReplaceSelection(ctx context.Context, id model.TabID, req model.ReplaceSelectionRequest) (model.ReplaceSelectionResponse, error) {
	return call(ctx, h, id, func(s *pageState) (model.ReplaceSelectionResponse, error) {
		if s.injector == nil {
			return model.ReplaceSelectionResponse{}, ErrNoReceiver
		}
		return s.injector.Handle(req), nil
	})
}

// Alert records a blocking message shown in the tab.
func (h *Host) Alert(ctx context.Context, id model.TabID, message string) error {
	_, err := call(ctx, h, id, func(s *pageState) (struct{}, error) {
		s.alerts = append(s.alerts, message)
		return struct{}{}, nil
	})
	return err
}

// RegisterMenuItem adds a context-menu item. Ids are unique.
func (h *Host) RegisterMenuItem(item model.ContextMenuItem) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, existing := range h.menu {
		if existing.ID == item.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateMenuItem, item.ID)
		}
	}
	h.menu = append(h.menu, item)
	h.logger.Info("context menu item registered", "id", item.ID)
	return nil
}

// MenuItem looks up a registered context-menu item.
func (h *Host) MenuItem(id string) (model.ContextMenuItem, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, item := range h.menu {
		if item.ID == id {
			return item, true
		}
	}
	return model.ContextMenuItem{}, false
}

// MenuItems returns the registered context-menu items.
func (h *Host) MenuItems() []model.ContextMenuItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.menu)
}
