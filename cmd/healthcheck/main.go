// Command healthcheck probes the service's health endpoint and exits non-zero
// when it is unreachable. It is meant for container HEALTHCHECK directives.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

const (
	defaultAddr = "127.0.0.1:8080"
	healthPath  = "/api/v1/health"
	timeout     = 2 * time.Second
)

func main() {
	os.Exit(check(normalizeAddr(os.Getenv("KOTRANSLATE_LISTEN_ADDR"))))
}

func check(addr string) int {
	client := &http.Client{Timeout: timeout}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://%s%s", addr, healthPath), nil)
	if err != nil {
		return 1
	}

	resp, err := client.Do(req)
	if err != nil {
		return 1
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 1
	}

	return 0
}

// normalizeAddr points the probe at loopback when the service binds every
// interface, since the probe runs inside the same container.
func normalizeAddr(raw string) string {
	if raw == "" {
		return defaultAddr
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return defaultAddr
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
