package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/wellness"
	"github.com/fatih/color"
)

// runCLI executes a fresh command tree against a temporary data dir.
func runCLI(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("GREENBITE_DATA_DIR", "")
	t.Setenv("GREENBITE_PLAN_SIZE", "")
	t.Setenv("GREENBITE_EXERCISE_SECONDS", "")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dataDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func decodeJSON(t *testing.T, out string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(out), v); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
}

func TestLoadEnvCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	env, err := loadEnv(&globalOptions{dataDir: dir})
	if err != nil {
		t.Fatalf("loadEnv failed: %v", err)
	}
	defer env.Close()

	if env.dataDir != dir {
		t.Fatalf("dataDir = %q, want %q", env.dataDir, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected data dir to exist: %v", err)
	}
	if got := env.dbPath(); filepath.Dir(got) != dir {
		t.Fatalf("dbPath = %q, expected it inside %q", got, dir)
	}
}

func TestLoadEnvReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("plan_size: 2\nexercise_seconds: 45\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	env, err := loadEnv(&globalOptions{dataDir: dir, configPath: path})
	if err != nil {
		t.Fatalf("loadEnv failed: %v", err)
	}
	defer env.Close()

	if env.cfg.PlanSize != 2 || env.cfg.ExerciseSeconds != 45 {
		t.Fatalf("config not applied: %+v", env.cfg)
	}
}

func TestLoadEnvRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("plan_size: [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := loadEnv(&globalOptions{dataDir: dir, configPath: path}); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Fatalf("version output = %q, want %q", out, version)
	}
}

func TestFormatError(t *testing.T) {
	color.NoColor = true
	if got := FormatError(os.ErrNotExist); got != "Error: file does not exist" {
		t.Fatalf("FormatError = %q", got)
	}
}

func TestTUIOptionsShareBell(t *testing.T) {
	var bell bytes.Buffer
	opts := tuiOptions(config.Defaults(), &bell)
	if opts.Player == nil || opts.Ambience == nil {
		t.Fatalf("expected players with sound enabled: %+v", opts)
	}
	if err := opts.Ambience.Play(wellness.SoundRain); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if bell.String() != "\a" {
		t.Fatalf("expected a bell, got %q", bell.String())
	}

	off := false
	cfg := config.Defaults()
	cfg.Sound = &off
	opts = tuiOptions(cfg, &bell)
	if opts.Player != nil || opts.Ambience != nil {
		t.Fatalf("expected silence with sound disabled")
	}
}
