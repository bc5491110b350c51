package deps

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"seqenc/internal/testsupport"
)

func TestCheckFFmpegPrefersSidecar(t *testing.T) {
	tmp := t.TempDir()
	selfPath := filepath.Join(tmp, executableName("seqenc"))
	ffmpegPath := filepath.Join(tmp, executableName("ffmpeg"))
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(selfPath, script, 0o755); err != nil {
		t.Fatalf("write self stub: %v", err)
	}
	if err := os.WriteFile(ffmpegPath, script, 0o755); err != nil {
		t.Fatalf("write ffmpeg sidecar: %v", err)
	}
	stubExecutable(t, selfPath, nil)
	t.Setenv("PATH", "")

	status := CheckFFmpeg("")
	if !status.Available {
		t.Fatalf("expected ffmpeg sidecar to be available, got detail %q", status.Detail)
	}
	if status.Command != ffmpegPath {
		t.Fatalf("expected ffmpeg command %q, got %q", ffmpegPath, status.Command)
	}
	if status.Source != SourceSidecar {
		t.Fatalf("expected sidecar source, got %q", status.Source)
	}
	if ResolveFFmpeg("") != ffmpegPath {
		t.Fatalf("expected ResolveFFmpeg to match CheckFFmpeg")
	}
}

func TestCheckFFmpegPathFallback(t *testing.T) {
	tmp := t.TempDir()
	stubExecutable(t, filepath.Join(tmp, executableName("seqenc")), nil)

	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries(executableName("ffmpeg")))
	ffmpegPath := testsupport.StubPath(cfg, executableName("ffmpeg"))

	status := CheckFFmpeg("")
	if !status.Available {
		t.Fatalf("expected ffmpeg fallback to be available, got detail %q", status.Detail)
	}
	if status.Command != ffmpegPath {
		t.Fatalf("expected ffmpeg command %q, got %q", ffmpegPath, status.Command)
	}
	if status.Source != SourcePath {
		t.Fatalf("expected PATH source, got %q", status.Source)
	}
}

func TestCheckFFmpegSkipsNonExecutableSidecar(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits are not checked on windows")
	}
	tmp := t.TempDir()
	stubExecutable(t, filepath.Join(tmp, executableName("seqenc")), nil)
	if err := os.WriteFile(filepath.Join(tmp, executableName("ffmpeg")), []byte("data"), 0o644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}

	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries(executableName("ffmpeg")))
	status := CheckFFmpeg("")
	if status.Source != SourcePath || status.Command != testsupport.StubPath(cfg, executableName("ffmpeg")) {
		t.Fatalf("expected PATH ffmpeg over a non-executable sidecar, got %#v", status)
	}
}

func TestCheckFFmpegNotFound(t *testing.T) {
	stubExecutable(t, "", errors.New("no executable"))
	t.Setenv("PATH", "")

	status := CheckFFmpeg("")
	if status.Available {
		t.Fatal("expected ffmpeg resolution to fail")
	}
	if status.Command != FFmpegName {
		t.Fatalf("expected bare command name, got %q", status.Command)
	}
	if status.Source != SourceNone {
		t.Fatalf("expected unresolved source, got %q", status.Source)
	}
	if status.Detail != "no ffmpeg next to seqenc or on PATH" {
		t.Fatalf("unexpected detail %q", status.Detail)
	}
}

func TestCheckFFmpegConfiguredBinary(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "my-ffmpeg")
	if err := os.WriteFile(custom, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	status := CheckFFmpeg(custom)
	if !status.Available || status.Command != custom || status.Source != SourceConfig {
		t.Fatalf("expected configured binary to be used, got %#v", status)
	}

	missing := CheckFFmpeg(filepath.Join(tmp, "absent"))
	if missing.Available {
		t.Fatal("expected missing configured binary to be unavailable")
	}
	if missing.Command != filepath.Join(tmp, "absent") {
		t.Fatalf("expected configured command to be kept, got %q", missing.Command)
	}
}

func stubExecutable(t *testing.T, path string, err error) {
	t.Helper()
	original := executablePath
	executablePath = func() (string, error) {
		return path, err
	}
	t.Cleanup(func() {
		executablePath = original
	})
}
