package cliparse

import "testing"

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("VOTE_CATALOG", "")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	if cfg.Port != 3327 {
		t.Errorf("Expected default port 3327, got %d", cfg.Port)
	}
	if cfg.CatalogPath != "votes.yaml" {
		t.Errorf("Expected default catalog votes.yaml, got %q", cfg.CatalogPath)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("VOTE_CATALOG", "catalog/weekly.yaml")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080 from env, got %d", cfg.Port)
	}
	if cfg.CatalogPath != "catalog/weekly.yaml" {
		t.Errorf("Expected catalog from env, got %q", cfg.CatalogPath)
	}
}

func TestParseFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("VOTE_CATALOG", "catalog/weekly.yaml")

	cfg, err := ParseFlags([]string{"-p", "9000", "-c", "other.yaml"})
	if err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Expected flag to override env port, got %d", cfg.Port)
	}
	if cfg.CatalogPath != "other.yaml" {
		t.Errorf("Expected flag to override env catalog, got %q", cfg.CatalogPath)
	}
}

func TestParseFlagsInvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error for non-numeric PORT")
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	if _, err := ParseFlags([]string{"-unknown"}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}
