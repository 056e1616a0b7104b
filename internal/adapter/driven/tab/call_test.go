package tab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/kotranslate/internal/adapter/driven/page"
)

func TestCall_CanceledWhileJobRuns(t *testing.T) {
	h := NewHost(nil)
	id, err := h.Open(`<p id="a">text</p>`)
	require.NoError(t, err)
	t.Cleanup(h.Shutdown)

	started := make(chan struct{})
	release := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	type outcome struct {
		value string
		err   error
	}
	outcomes := make(chan outcome, 1)
	go func() {
		v, err := call(ctx, h, id, func(*pageState) (string, error) {
			close(started)
			<-release
			return "late", nil
		})
		outcomes <- outcome{value: v, err: err}
	}()

	<-started
	cancel()
	got := <-outcomes
	close(release)

	assert.ErrorIs(t, got.err, context.Canceled)
	assert.Empty(t, got.value)

	// The late result is discarded and the tab keeps serving.
	text, err := h.Select(context.Background(), id, page.SelectionSpec{StartSelector: "#a", StartOffset: 0, EndOffset: 4})
	require.NoError(t, err)
	assert.Equal(t, "text", text)
}

func TestCall_ReturnsJobResult(t *testing.T) {
	h := NewHost(nil)
	id, err := h.Open(`<p id="a">text</p>`)
	require.NoError(t, err)
	t.Cleanup(h.Shutdown)

	n, err := call(context.Background(), h, id, func(s *pageState) (int, error) {
		return len(s.alerts) + 1, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
