package compose

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

// fakeBinary writes an executable shell script standing in for docker.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "docker")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestService_Up(t *testing.T) {
	trace := filepath.Join(t.TempDir(), "trace")
	bin := fakeBinary(t, `echo "$PWD $@" > `+trace+`
`)
	service := NewService(Config{Binary: bin}, zaptest.NewLogger(t))

	dir := t.TempDir()
	if err := service.Up(context.Background(), dir); err != nil {
		t.Fatalf("Up failed: %v", err)
	}

	data, err := os.ReadFile(trace)
	if err != nil {
		t.Fatal(err)
	}

	got := strings.TrimSpace(string(data))
	if !strings.HasSuffix(got, "compose up --detach") {
		t.Errorf("Unexpected invocation: %q", got)
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, resolved) {
		t.Errorf("Expected working directory %q in %q", resolved, got)
	}
}

func TestService_DownFailureCarriesStderr(t *testing.T) {
	bin := fakeBinary(t, `echo "no compose file" >&2
exit 1
`)
	service := NewService(Config{Binary: bin}, zaptest.NewLogger(t))

	err := service.Down(context.Background(), t.TempDir())
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Expected ErrCommandFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "no compose file") {
		t.Errorf("Expected stderr in error, got %q", err.Error())
	}
}

func TestService_MissingBinary(t *testing.T) {
	service := NewService(Config{
		Binary: filepath.Join(t.TempDir(), "does-not-exist"),
	}, zaptest.NewLogger(t))

	err := service.Up(context.Background(), t.TempDir())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}
}
