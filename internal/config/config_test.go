package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if cfg.Learner != "" || cfg.LLM.Provider != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
learner: ada
data_dir: /tmp/mentor-data
llm:
  provider: openai
  openai:
    model: gpt-4o
    base_url: https://openrouter.ai/api/v1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Learner != "ada" {
		t.Errorf("learner = %q", cfg.Learner)
	}
	if cfg.LLM.OpenAI.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("base url = %q", cfg.LLM.OpenAI.BaseURL)
	}
	if cfg.ProfileDir() != filepath.Join("/tmp/mentor-data", "learners") {
		t.Errorf("profile dir = %q", cfg.ProfileDir())
	}
	if cfg.DBPath() != filepath.Join("/tmp/mentor-data", "mentor.db") {
		t.Errorf("db path = %q", cfg.DBPath())
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := writeConfig(t, "llm: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLLMConfig_FileThenEnvLayering(t *testing.T) {
	path := writeConfig(t, `
llm:
  provider: openai
  openai:
    api_key: file-key
    model: gpt-4o
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("MENTOR_OPENAI_MODEL", "gpt-4.1")
	t.Setenv("MENTOR_OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	out := cfg.LLMConfig()
	if out.Provider != "openai" {
		t.Errorf("provider = %q", out.Provider)
	}
	if out.OpenAI.APIKey != "file-key" {
		t.Errorf("api key = %q, file value should survive", out.OpenAI.APIKey)
	}
	if out.OpenAI.Model != "gpt-4.1" {
		t.Errorf("model = %q, env must override the file", out.OpenAI.Model)
	}
}
