package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OEmbedEndpoint != "http://vimeo.com/api/oembed.xml" {
		t.Errorf("default endpoint = %q", cfg.OEmbedEndpoint)
	}
	if cfg.OEmbedWidth != 640 {
		t.Errorf("default width = %d, want 640", cfg.OEmbedWidth)
	}
	if !cfg.Autoplay {
		t.Error("default autoplay should be true")
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("default timeout = %v, want 10s", cfg.Timeout())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"https endpoint", func(c *Config) { c.OEmbedEndpoint = "https://vimeo.com/api/oembed.xml" }, false},
		{"relative endpoint", func(c *Config) { c.OEmbedEndpoint = "/api/oembed.xml" }, true},
		{"empty endpoint", func(c *Config) { c.OEmbedEndpoint = "" }, true},
		{"zero width", func(c *Config) { c.OEmbedWidth = 0 }, true},
		{"huge width", func(c *Config) { c.OEmbedWidth = 10000 }, true},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }, true},
		{"long timeout", func(c *Config) { c.TimeoutSeconds = 600 }, true},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, true},
		{"max concurrency", func(c *Config) { c.Concurrency = 32 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv(PathEnv, "")
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "vidembed")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromTOML(t *testing.T) {
	writeConfig(t, `
oembed_endpoint = "https://vimeo.example/api/oembed.xml"
oembed_width = 1280
autoplay = false
timeout_seconds = 3
concurrency = 8
debug = true
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.OEmbedEndpoint != "https://vimeo.example/api/oembed.xml" {
		t.Errorf("endpoint = %q", cfg.OEmbedEndpoint)
	}
	if cfg.OEmbedWidth != 1280 {
		t.Errorf("width = %d, want 1280", cfg.OEmbedWidth)
	}
	if cfg.Autoplay {
		t.Error("autoplay should be false")
	}
	if cfg.Timeout() != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.Timeout())
	}
	if cfg.Concurrency != 8 {
		t.Errorf("concurrency = %d, want 8", cfg.Concurrency)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	writeConfig(t, `debug = true`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Autoplay {
		t.Error("autoplay should keep its default")
	}
	if cfg.OEmbedWidth != 640 {
		t.Errorf("width = %d, want default 640", cfg.OEmbedWidth)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad syntax", `timeout_seconds = `},
		{"wrong type", `autoplay = "yes"`},
		{"out of range", `concurrency = 0`},
		{"unknown key", `oembed_widht = 800`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.content)
			if _, err := Load(); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if cfg.OEmbedWidth != 640 {
		t.Errorf("missing file should return defaults, got width = %d", cfg.OEmbedWidth)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error: %v", err)
	}
	if want := filepath.Join("/xdg", "vidembed", "config.toml"); path != want {
		t.Errorf("ConfigPath() = %q, want %q", path, want)
	}

	t.Setenv(PathEnv, "/etc/vidembed.toml")
	if path, _ := ConfigPath(); path != "/etc/vidembed.toml" {
		t.Errorf("ConfigPath() with %s = %q", PathEnv, path)
	}
}

func TestLoadFromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("concurrency = 12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(PathEnv, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Concurrency != 12 {
		t.Errorf("concurrency = %d, want 12", cfg.Concurrency)
	}
}
