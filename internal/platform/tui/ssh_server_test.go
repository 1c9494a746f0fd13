package tui

import (
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestListenAndServeReturnsWhenAddressInUse(t *testing.T) {
	held, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	defer held.Close()

	cfg := DefaultSSHServerConfig()
	cfg.Address = held.Addr().String()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("ListenAndServe() = nil, want listen error")
		}
		if !strings.Contains(err.Error(), cfg.Address) {
			t.Errorf("error %q should name the address %s", err, cfg.Address)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() still blocked after the address was taken")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, want :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, want 30m", cfg.IdleTimeout)
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game config invalid: %v", err)
	}
}

func TestSessionConfigUsesGameFrameRate(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Game.Gameplay.FrameRate = 30
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}

	rc := srv.sessionConfig(100, 40)
	if rc.ScreenW != 100 || rc.ScreenH != 40 || rc.TickRate != 30 {
		t.Errorf("sessionConfig() = %+v, want 100x40 at 30", rc)
	}
}
