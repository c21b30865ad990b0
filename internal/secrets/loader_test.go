package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  file-secret\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COMPASS_TEST_KEY", "env-secret")

	got, err := Load(Source{Name: "api key", File: path, Env: "COMPASS_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "file-secret" {
		t.Fatalf("expected file to win, got %q", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COMPASS_TEST_KEY", " env-secret ")

	got, err := Load(Source{Name: "api key", Env: "COMPASS_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "env-secret" {
		t.Fatalf("unexpected secret %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COMPASS_TEST_KEY", "")

	cases := map[string]Source{
		"missing file": {File: filepath.Join(t.TempDir(), "nope")},
		"empty file":   {File: empty},
		"empty env":    {Env: "COMPASS_TEST_KEY"},
		"nothing":      {},
	}

	for name, src := range cases {
		if _, err := Load(src); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
