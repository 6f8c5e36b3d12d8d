package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"
)

func startMetrics(t *testing.T, hook func(net.Conn, http.ConnState)) (*http.Server, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	srv := newMetricsServer(ln.Addr().String())
	srv.ConnState = hook
	go srv.Serve(ln)
	t.Cleanup(func() { srv.Close() })
	return srv, ln.Addr().String()
}

func TestMetricsServer(t *testing.T) {
	_, addr := startMetrics(t, nil)

	resp, err := http.Get("http://" + addr + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("expected default Go collectors in /metrics output")
	}
}

func TestShutdownMetrics(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		srv, _ := startMetrics(t, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := shutdownMetrics(ctx, srv); err != nil {
			t.Errorf("shutdownMetrics failed: %v", err)
		}
	})

	t.Run("failure is logged", func(t *testing.T) {
		var logs bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
		t.Cleanup(func() { slog.SetDefault(prev) })

		accepted := make(chan struct{}, 1)
		srv, addr := startMetrics(t, func(_ net.Conn, state http.ConnState) {
			if state == http.StateNew {
				accepted <- struct{}{}
			}
		})

		// A connection that never sends a request keeps the server busy.
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			t.Fatalf("failed to dial: %v", err)
		}
		defer conn.Close()

		select {
		case <-accepted:
		case <-time.After(5 * time.Second):
			t.Fatal("server never accepted the connection")
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err = shutdownMetrics(ctx, srv)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if !strings.Contains(logs.String(), "Failed to shut down metrics server") {
			t.Errorf("expected warning in logs, got %q", logs.String())
		}
	})
}
