package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddr(t *testing.T) {
	tests := map[string]string{
		"":               "127.0.0.1:8080",
		"garbage":        "127.0.0.1:8080",
		":9000":          "127.0.0.1:9000",
		"0.0.0.0:9000":   "127.0.0.1:9000",
		"[::]:9000":      "127.0.0.1:9000",
		"127.0.0.1:8081": "127.0.0.1:8081",
	}

	for raw, want := range tests {
		assert.Equal(t, want, normalizeAddr(raw), raw)
	}
}

func TestCheck(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != healthPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	assert.Equal(t, 0, check(strings.TrimPrefix(healthy.URL, "http://")))
	assert.Equal(t, 1, check(strings.TrimPrefix(failing.URL, "http://")))
}
