package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenOptions_Enabled(t *testing.T) {
	o := NewOpener("http://127.0.0.1:8080/options", true, nil)
	var opened []string
	o.open = func(url string) error {
		opened = append(opened, url)
		return nil
	}

	require.NoError(t, o.OpenOptions())
	assert.Equal(t, []string{"http://127.0.0.1:8080/options"}, opened)
}

func TestOpenOptions_Disabled(t *testing.T) {
	o := NewOpener("http://127.0.0.1:8080/options", false, nil)
	o.open = func(string) error {
		t.Fatal("browser must not be launched when disabled")
		return nil
	}

	assert.NoError(t, o.OpenOptions())
}

func TestOpenOptions_Error(t *testing.T) {
	o := NewOpener("http://x/options", true, nil)
	o.open = func(string) error { return errors.New("no display") }

	err := o.OpenOptions()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
}
