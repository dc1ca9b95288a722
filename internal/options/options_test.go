package options

import "testing"

func TestBuildAnimationOffReturnsNil(t *testing.T) {
	cfg := AnimationConfig{Off: true}
	if a := BuildAnimation(cfg, 0, 0, 10, 0); a != nil {
		t.Fatal("expected nil animation when Off")
	}
}

func TestBuildAnimationEasingReachesTarget(t *testing.T) {
	cfg := AnimationConfig{Kind: KindEasing, DurationMS: 100, Curve: CurveLinear}
	a := BuildAnimation(cfg, 0, 0, 10, 0)
	a.SetCurrentTime(100_000_000) // 100ms in ns
	if !a.IsDone() {
		t.Fatal("expected done at full duration")
	}
	if a.Value() != 10 {
		t.Errorf("expected value 10, got %v", a.Value())
	}
}

func TestDefaultOptionsHasSaneGaps(t *testing.T) {
	o := Default()
	if o.Gaps < 0 {
		t.Errorf("gaps should be non-negative, got %v", o.Gaps)
	}
	if len(o.Layout.PresetColumnWidths) == 0 {
		t.Error("expected default preset column widths")
	}
}
