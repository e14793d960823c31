package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"dataextract/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataextract.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load(config.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Strict || cfg.Verbose || cfg.Output != "" || cfg.Remote() {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
strict: true
output: results.jsonl
smb:
  host: fileserver
  share: Library
  username: arthur
`)
	t.Setenv("DATAEXTRACT_OUTPUT", "env.jsonl")
	t.Setenv("DATAEXTRACT_SMB_DOMAIN", "EARTH")

	cfg, err := config.Load(config.New(), path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Strict {
		t.Error("expected strict from file")
	}
	if cfg.Output != "env.jsonl" {
		t.Errorf("expected env to override file, got %q", cfg.Output)
	}
	if cfg.SMB.Host != "fileserver" || cfg.SMB.Share != "Library" || cfg.SMB.Username != "arthur" {
		t.Errorf("smb = %+v", cfg.SMB)
	}
	if cfg.SMB.Domain != "EARTH" {
		t.Errorf("expected nested env override, got %q", cfg.SMB.Domain)
	}
	if !cfg.Remote() {
		t.Error("expected remote config")
	}
}

func TestFlagOverridesEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATAEXTRACT_STRICT", "false")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("strict", false, "")
	if err := flags.Parse([]string{"--strict"}); err != nil {
		t.Fatal(err)
	}

	v := config.New()
	if err := v.BindPFlag("strict", flags.Lookup("strict")); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(v, "")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Strict {
		t.Error("expected flag to win over env")
	}
}

func TestErrors(t *testing.T) {
	if _, err := config.Load(config.New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for an explicit missing config file")
	}

	path := writeConfig(t, "strict: [not, a, bool]\n")
	if _, err := config.Load(config.New(), path); err == nil {
		t.Error("expected error for a value that does not fit the config type")
	}
}

func TestHostWithoutShare(t *testing.T) {
	path := writeConfig(t, "smb:\n  host: fileserver\n")
	cfg, err := config.Load(config.New(), path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Remote() || cfg.SMB.Share != "" {
		t.Errorf("smb = %+v", cfg.SMB)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
