package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/niri-layout/internal/config"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := xdg.ConfigHome
	xdg.ConfigHome = dir
	t.Cleanup(func() { xdg.ConfigHome = old })
	return dir
}

func TestLoadWritesDefaultWhenNoFileExists(t *testing.T) {
	withConfigHome(t)

	opts, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Gaps != options.Default().Gaps {
		t.Errorf("Gaps = %v, want default %v", opts.Gaps, options.Default().Gaps)
	}

	p, err := config.Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Errorf("expected config file to be written at %s: %v", p, err)
	}
}

func TestLoadOverridesOnlyFieldsPresentInFile(t *testing.T) {
	dir := withConfigHome(t)
	path := filepath.Join(dir, "niri-layout", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}

	data, err := toml.Marshal(map[string]any{"gaps": 20.0})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	opts, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Gaps != 20 {
		t.Errorf("Gaps = %v, want 20 (overridden)", opts.Gaps)
	}
	if opts.Animations.WindowOpen.DurationMS != options.Default().Animations.WindowOpen.DurationMS {
		t.Errorf("WindowOpen duration should keep its default when the file omits it")
	}
}
