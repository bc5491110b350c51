package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"seqenc/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(tempHome, ".config", "seqenc", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "seqenc", "logs")
	if cfg.Logging.Dir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Logging.Dir, wantLogDir)
	}
	if cfg.LogPath() != filepath.Join(wantLogDir, "seqenc.log") {
		t.Fatalf("unexpected log path: %q", cfg.LogPath())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Logging.Console {
		t.Fatal("expected console logging disabled by default")
	}
	if cfg.Encoder.Binary != "" {
		t.Fatalf("expected empty encoder binary, got %q", cfg.Encoder.Binary)
	}
	if !cfg.Encoder.ShowMetadata {
		t.Fatal("expected metadata display enabled by default")
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(wantLogDir)
	if err != nil {
		t.Fatalf("expected directory %q to exist: %v", wantLogDir, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be directory", wantLogDir)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)
	if err := os.WriteFile(filepath.Join(project, "seqenc.toml"), []byte("[encoder]\nshow_metadata = false\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if filepath.Base(resolved) != "seqenc.toml" {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Encoder.ShowMetadata {
		t.Fatal("expected show_metadata override from project config")
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "seqenc.toml")

	type payload struct {
		Encoder struct {
			Binary string `toml:"binary"`
		} `toml:"encoder"`
		Logging struct {
			Format  string `toml:"format"`
			Level   string `toml:"level"`
			Dir     string `toml:"dir"`
			Console bool   `toml:"console"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Encoder.Binary = "~/bin/ffmpeg"
	custom.Logging.Format = " JSON "
	custom.Logging.Level = "Warning"
	custom.Logging.Dir = ""
	custom.Logging.Console = true
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Encoder.Binary != filepath.Join(tempHome, "bin", "ffmpeg") {
		t.Fatalf("expected expanded binary path, got %q", cfg.Encoder.Binary)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected warn level, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Dir != "" || cfg.LogPath() != "" {
		t.Fatalf("expected file logging disabled, got dir %q", cfg.Logging.Dir)
	}
	if !cfg.Logging.Console {
		t.Fatal("expected console logging enabled")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
}

func TestLoadKeepsBareBinaryName(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "seqenc.toml")
	if err := os.WriteFile(configPath, []byte("[encoder]\nbinary = \" ffmpeg7 \"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Encoder.Binary != "ffmpeg7" {
		t.Fatalf("expected bare binary name to be kept, got %q", cfg.Encoder.Binary)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false")
	}
	if resolved != missing {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected defaults, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	dir := t.TempDir()

	badLevel := filepath.Join(dir, "level.toml")
	if err := os.WriteFile(badLevel, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(badLevel); err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected logging.level error, got %v", err)
	}

	badFormat := filepath.Join(dir, "format.toml")
	if err := os.WriteFile(badFormat, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(badFormat); err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}

	unknown := filepath.Join(dir, "unknown.toml")
	if err := os.WriteFile(unknown, []byte("[encoder]\nbinary_path = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(unknown); err == nil {
		t.Fatal("expected error for unknown key")
	}

	malformed := filepath.Join(dir, "malformed.toml")
	if err := os.WriteFile(malformed, []byte("[encoder\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(malformed); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[encoder]") {
		t.Fatalf("sample config missing encoder section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !cfg.Encoder.ShowMetadata {
		t.Fatal("expected sample to enable show_metadata")
	}

	loaded, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to be loaded from disk")
	}
	if loaded.Logging.Format != "console" || loaded.Logging.Level != "info" {
		t.Fatalf("unexpected sample logging values: %+v", loaded.Logging)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown level")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown format")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadWithoutHomeFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", "")
	t.Chdir(t.TempDir())

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected no config file")
	}
	if cfg.Logging.Dir != "" || cfg.LogPath() != "" {
		t.Fatalf("expected file logging disabled without HOME, got %q", cfg.Logging.Dir)
	}
	if !cfg.Encoder.ShowMetadata {
		t.Fatal("expected remaining defaults to apply")
	}
}

func TestLoadWithoutHomeStillReadsProjectConfig(t *testing.T) {
	t.Setenv("HOME", "")
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "seqenc.toml"), []byte("[encoder]\nshow_metadata = false\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || cfg.Encoder.ShowMetadata {
		t.Fatalf("expected project config to load, exists=%v cfg=%+v", exists, cfg.Encoder)
	}
}

func TestLoadWithoutHomeRejectsExplicitHomeRelativeLogDir(t *testing.T) {
	t.Setenv("HOME", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[logging]\ndir = \"~/my-logs\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "logging.dir") {
		t.Fatalf("expected logging.dir error, got %v", err)
	}
}
