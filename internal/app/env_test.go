package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	t.Setenv("QUIZ_TEST_FOO", "")
	t.Setenv("QUIZ_TEST_BAR", "")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.test")
	content := "\n# sample dotenv file\nQUIZ_TEST_FOO=alpha\nexport QUIZ_TEST_BAR=\"beta gamma\"\nmalformed\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := LoadEnvFiles(envPath); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("QUIZ_TEST_FOO"); got != "alpha" {
		t.Fatalf("QUIZ_TEST_FOO=%q, want alpha", got)
	}
	if got := os.Getenv("QUIZ_TEST_BAR"); got != "beta gamma" {
		t.Fatalf("QUIZ_TEST_BAR=%q, want 'beta gamma'", got)
	}
}

// Later files override earlier ones; missing files are skipped.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
	t.Setenv("QUIZ_TEST_K", "")
	dir := t.TempDir()
	a := filepath.Join(dir, ".env.a")
	b := filepath.Join(dir, ".env.b")
	if err := os.WriteFile(a, []byte("QUIZ_TEST_K=first\n"), 0o600); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(b, []byte("QUIZ_TEST_K=second\n"), 0o600); err != nil {
		t.Fatalf("write b: %v", err)
	}
	if err := LoadEnvFiles(a, filepath.Join(dir, "missing"), b); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("QUIZ_TEST_K"); got != "second" {
		t.Fatalf("override order failed: got %q, want second", got)
	}
}

func TestParseDotenv(t *testing.T) {
	data := "QUIZ_COOKIE=uf=1; vc3=abc\r\nQUIZ_UA='Mozilla 5.0' \nQUIZ_OUTPUT=out.txt # report\n=novalue\n"
	got := parseDotenv(data)
	want := []envPair{
		{Key: "QUIZ_COOKIE", Value: "uf=1; vc3=abc"},
		{Key: "QUIZ_UA", Value: "Mozilla 5.0"},
		{Key: "QUIZ_OUTPUT", Value: "out.txt"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseDotenv = %+v, want %+v", got, want)
	}
}

func TestApplyEnvToConfig_FillsUnset(t *testing.T) {
	t.Setenv("QUIZ_URL", "https://mooc1.chaoxing.com/work/view")
	t.Setenv("QUIZ_COOKIE", "uf=1")
	t.Setenv("QUIZ_OUTPUT", "from-env.txt")
	t.Setenv("QUIZ_CACHE_DIR", "")
	t.Setenv("CACHE_DIR", "/tmp/pages")
	t.Setenv("CACHE_MAX_AGE", "36h")
	t.Setenv("QUIZ_COPY", "yes")
	t.Setenv("QUIZ_UA", "ua-from-env")

	cfg := Config{OutputPath: "from-flag.txt", UserAgent: DefaultUserAgent}
	ApplyEnvToConfig(&cfg)

	if cfg.URL != "https://mooc1.chaoxing.com/work/view" || cfg.Cookie != "uf=1" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.OutputPath != "from-flag.txt" {
		t.Fatalf("explicit value overridden: %q", cfg.OutputPath)
	}
	if cfg.CacheDir != "/tmp/pages" || cfg.CacheMaxAge != 36*time.Hour {
		t.Fatalf("cache settings %q %v", cfg.CacheDir, cfg.CacheMaxAge)
	}
	if !cfg.Copy {
		t.Fatalf("QUIZ_COPY=yes should enable copy")
	}
	if cfg.UserAgent != "ua-from-env" {
		t.Fatalf("user agent %q", cfg.UserAgent)
	}
}
