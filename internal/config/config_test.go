package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestConfig is a helper that writes a TOML config file to a temp directory
// and returns its path.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
[server]
port = 9090
session_secret = "super-secret"

[ai]
provider = "anthropic"
api_key = "sk-test-key-123"
model = "claude-haiku-4-5"
`
	path := writeTestConfig(t, content)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.SessionSecret != "super-secret" {
		t.Errorf("Server.SessionSecret = %q, want %q", cfg.Server.SessionSecret, "super-secret")
	}
	if cfg.AI.Provider != "anthropic" {
		t.Errorf("AI.Provider = %q, want %q", cfg.AI.Provider, "anthropic")
	}
	if cfg.AI.APIKey != "sk-test-key-123" {
		t.Errorf("AI.APIKey = %q, want %q", cfg.AI.APIKey, "sk-test-key-123")
	}
	if cfg.AI.Model != "claude-haiku-4-5" {
		t.Errorf("AI.Model = %q, want %q", cfg.AI.Model, "claude-haiku-4-5")
	}
}

func TestLoad_MissingFile_CreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default config file to be created: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default %d", cfg.Server.Port, 8080)
	}
	if cfg.AI.Provider != "openai" {
		t.Errorf("AI.Provider = %q, want default %q", cfg.AI.Provider, "openai")
	}
	if cfg.AI.Model != "gpt-5-nano" {
		t.Errorf("AI.Model = %q, want default %q", cfg.AI.Model, "gpt-5-nano")
	}
}

func TestLoad_DefaultsAppliedToPartialConfig(t *testing.T) {
	content := `
[ai]
api_key = "sk-partial"
`
	path := writeTestConfig(t, content)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default %d", cfg.Server.Port, 8080)
	}
	if cfg.AI.Model != "gpt-5-nano" {
		t.Errorf("AI.Model = %q, want default %q", cfg.AI.Model, "gpt-5-nano")
	}
	if cfg.AI.APIKey != "sk-partial" {
		t.Errorf("AI.APIKey = %q, want %q", cfg.AI.APIKey, "sk-partial")
	}
}

func TestLoad_InvalidProvider(t *testing.T) {
	content := `
[ai]
provider = "hal9000"
`
	path := writeTestConfig(t, content)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid provider, got nil")
	}
}

func TestLoad_ExplicitZeroPort(t *testing.T) {
	content := `
[server]
port = 0
`
	path := writeTestConfig(t, content)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for port = 0, got nil")
	}
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	content := `
[ai]
provider = "openai"
api_key = "from-file"
`
	path := writeTestConfig(t, content)

	t.Setenv("AI_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.AI.APIKey != "from-env" {
		t.Errorf("AI.APIKey = %q, want env override %q", cfg.AI.APIKey, "from-env")
	}
}

func TestLoad_ProviderSpecificEnvVar(t *testing.T) {
	content := `
[ai]
provider = "openai"
`
	path := writeTestConfig(t, content)

	t.Setenv("OPENAI_API_KEY", "sk-openai-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.AI.APIKey != "sk-openai-env" {
		t.Errorf("AI.APIKey = %q, want %q", cfg.AI.APIKey, "sk-openai-env")
	}
}

func TestLoad_SessionSecretEnvOverride(t *testing.T) {
	content := `
[server]
session_secret = "from-file"
`
	path := writeTestConfig(t, content)

	t.Setenv("SESSION_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.Server.SessionSecret != "from-env" {
		t.Errorf("Server.SessionSecret = %q, want env override %q", cfg.Server.SessionSecret, "from-env")
	}
}
