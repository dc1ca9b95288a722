package scenario

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const s1TOML = `
name = "add-consume-expel"

[setup]
gaps = 0
animations_off = true

[[setup.outputs]]
name = "primary"
width = 1280
height = 720

[[ops]]
op = "add_window"
window_id = 1
width = 100
height = 100

[[ops]]
op = "add_window"
window_id = 2
width = 200
height = 200

[[ops]]
op = "focus_column_left"

[[ops]]
op = "consume_or_expel_window_right"
`

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "s1.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing scenario fixture: %v", err)
	}
	return path
}

func TestLoadAndRunConsumeScenario(t *testing.T) {
	path := writeScenario(t, s1TOML)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Name != "add-consume-expel" {
		t.Errorf("expected decoded name, got %q", sc.Name)
	}
	if len(sc.Ops) != 4 {
		t.Fatalf("expected 4 ops, got %d", len(sc.Ops))
	}

	res := sc.Run()
	if res.Err != nil {
		t.Fatalf("Run: %v", res.Err)
	}
	if !res.Passed {
		t.Errorf("expected scenario with no expect_snapshot to pass trivially")
	}
	if !strings.Contains(res.Snapshot, "Column[0]") {
		t.Errorf("expected a rendered column in the snapshot, got:\n%s", res.Snapshot)
	}
}

func TestRunAllOrdersResultsByInputOrder(t *testing.T) {
	p1 := writeScenario(t, s1TOML)
	p2 := writeScenario(t, strings.Replace(s1TOML, "add-consume-expel", "second", 1))

	results, err := RunAll(context.Background(), []string{p1, p2})
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "add-consume-expel" || results[1].Name != "second" {
		t.Errorf("expected results in input order, got %q then %q", results[0].Name, results[1].Name)
	}
}

func TestUnknownOpIsReportedAsError(t *testing.T) {
	bad := strings.Replace(s1TOML, `op = "focus_column_left"`, `op = "teleport_window"`, 1)
	path := writeScenario(t, bad)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	res := sc.Run()
	if res.Err == nil {
		t.Errorf("expected an error for an unrecognized op")
	}
}
