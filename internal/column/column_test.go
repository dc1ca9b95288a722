package column

import (
	"testing"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

func newTestColumn(t *testing.T, sizes ...float64) (*Column, []*wire.FakeWindow) {
	t.Helper()
	opts := options.Default()
	opts.Border.Off = true
	clk := clock.New()
	var col *Column
	var wins []*wire.FakeWindow
	for i, h := range sizes {
		w := wire.NewFakeWindow(100, h)
		wins = append(wins, w)
		tl := tile.New(w, clk, opts, 1)
		if i == 0 {
			col = New(tl, ProportionWidth(0.5), opts)
		} else {
			col.InsertTile(i, tl, AutoHeight(1))
		}
	}
	return col, wins
}

func TestLoneTileAutoWeightResetToOne(t *testing.T) {
	col, _ := newTestColumn(t, 100)
	pol := col.HeightPolicyAt(0)
	if pol.Kind != HeightAuto || pol.Weight != 1 {
		t.Errorf("expected lone tile auto weight 1, got %+v", pol)
	}
}

func TestAtMostOneNonAutoHeightPolicy(t *testing.T) {
	col, _ := newTestColumn(t, 100, 100, 100)
	col.SetHeightPolicyAt(0, FixedHeight(50))
	col.SetHeightPolicyAt(1, FixedHeight(80))
	nonAuto := 0
	for i := 0; i < col.Len(); i++ {
		if col.HeightPolicyAt(i).Kind != HeightAuto {
			nonAuto++
		}
	}
	if nonAuto != 1 {
		t.Errorf("expected exactly one non-auto policy, got %d", nonAuto)
	}
	if col.HeightPolicyAt(1).Kind != HeightFixed {
		t.Error("expected the most recently set Fixed policy to win")
	}
}

func TestUpdateTileHeightsEvenSplit(t *testing.T) {
	col, _ := newTestColumn(t, 100, 100)
	heights := col.UpdateTileHeights(720, 0)
	if len(heights) != 2 {
		t.Fatalf("expected 2 heights, got %d", len(heights))
	}
	sum := heights[0] + heights[1]
	if sum < 719 || sum > 721 {
		t.Errorf("expected heights to roughly fill working area, got sum=%v", sum)
	}
	if diff := heights[0] - heights[1]; diff > 1 || diff < -1 {
		t.Errorf("expected roughly even split, got %v and %v", heights[0], heights[1])
	}
}

func TestUpdateTileHeightsFixedPlusAuto(t *testing.T) {
	col, _ := newTestColumn(t, 100, 200)
	col.SetHeightPolicyAt(1, FixedHeight(200))
	heights := col.UpdateTileHeights(720, 0)
	// tile 1 fixed at 200, tile 0 auto gets the remainder.
	if heights[1] != 200 {
		t.Errorf("expected fixed tile height 200, got %v", heights[1])
	}
	if heights[0] != 520 {
		t.Errorf("expected auto tile height 520 (720-200), got %v", heights[0])
	}
}

func TestUpdateTileHeightsPromotesUndersizedAuto(t *testing.T) {
	col, wins := newTestColumn(t, 50, 50, 50)
	wins[2].SetMinSize(100, 300) // tile 2 cannot shrink below 300
	heights := col.UpdateTileHeights(720, 0)
	if heights[2] < 300 {
		t.Errorf("expected tile 2 promoted to at least its min height 300, got %v", heights[2])
	}
	sum := heights[0] + heights[1] + heights[2]
	if sum > 721 {
		t.Errorf("expected total height to still respect working area (weaker bound), got %v", sum)
	}
}

func TestRemoveTileAtAdjustsActiveIdx(t *testing.T) {
	col, _ := newTestColumn(t, 100, 100, 100)
	col.SetActiveTileIdx(2)
	col.RemoveTileAt(0)
	if col.ActiveTileIdx() != 1 {
		t.Errorf("expected active idx to shift down by 1 after removing an earlier tile, got %d", col.ActiveTileIdx())
	}
	if col.Len() != 2 {
		t.Errorf("expected 2 tiles remaining, got %d", col.Len())
	}
}

func TestWidthPxClampsToTileMin(t *testing.T) {
	col, wins := newTestColumn(t, 100)
	wins[0].SetMinSize(900, 100)
	w := col.WidthPx(1280, 1280, 0, false)
	if w < 900 {
		t.Errorf("expected width clamped up to tile min 900, got %v", w)
	}
}
