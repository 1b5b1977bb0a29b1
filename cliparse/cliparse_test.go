// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// noEnvFile keeps a developer's .env out of the tests
func noEnvFile(t *testing.T) []string {
	return []string{"-env-file", filepath.Join(t.TempDir(), "missing.env")}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags(noEnvFile(t))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected 2h TTL, got %v", cfg.SessionTTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug log level, got %s", cfg.Log.Level)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")

	cfg, err := ParseFlags(noEnvFile(t))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %s", cfg.DatabaseType)
	}
	if cfg.AdminPassword != "queen123" {
		t.Errorf("unexpected default admin password %q", cfg.AdminPassword)
	}
	if cfg.SessionTTL != 168*time.Hour {
		t.Errorf("expected 168h TTL, got %v", cfg.SessionTTL)
	}
	if cfg.Log.MaxSizeMB != 100 || cfg.Log.MaxBackups != 3 || cfg.Log.MaxAgeDays != 30 {
		t.Errorf("unexpected log rotation defaults %+v", cfg.Log)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_SECRET", "from-env")

	args := append(noEnvFile(t), "-p", "8080", "-d", "file:test.db", "-admin-password", "pw", "-session-secret", "from-cli")
	cfg, err := ParseFlags(args)
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.SessionSecret != "from-cli" {
		t.Errorf("CLI should override env: got %s", cfg.SessionSecret)
	}
	if cfg.AdminPassword != "pw" {
		t.Errorf("expected admin password from CLI, got %s", cfg.AdminPassword)
	}
}

func TestParseFlags_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SESSION_SECRET=from-file\nPORT=7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "7100")
	// t.Setenv restores the original value; the variable must be absent for godotenv to fill it
	t.Setenv("SESSION_SECRET", "")
	os.Unsetenv("SESSION_SECRET")

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.SessionSecret != "from-file" {
		t.Errorf("expected secret from .env, got %q", cfg.SessionSecret)
	}
	// the real environment wins over the file
	if cfg.Port != 7100 {
		t.Errorf("expected env port 7100, got %d", cfg.Port)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing session secret", map[string]string{}},
		{"bad database type", map[string]string{"SESSION_SECRET": "s", "DATABASE_TYPE": "mysql"}},
		{"bad port", map[string]string{"SESSION_SECRET": "s", "PORT": "eighty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(noEnvFile(t)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLocation(t *testing.T) {
	loc, err := Config{}.Location()
	if err != nil || loc != time.Local {
		t.Errorf("empty timezone should be local, got %v, %v", loc, err)
	}

	if _, err := (Config{Timezone: "Not/AZone"}).Location(); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
