package column

import (
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
)

// tabBandHeight is the height reserved for the tab bar in Tabbed display
// mode, read from the tab indicator config (position Top reserves height;
// position Left reserves width, handled by WidthPx instead).
func (c *Column) tabBandHeight() float64 {
	if c.displayMode != DisplayTabbed {
		return 0
	}
	ti := c.opts.TabIndicator
	if ti.Off || ti.Position == options.TabIndicatorLeft {
		return 0
	}
	if ti.Width > 0 {
		return ti.Width
	}
	return 0
}

func (c *Column) tabBandWidth() float64 {
	if c.displayMode != DisplayTabbed {
		return 0
	}
	ti := c.opts.TabIndicator
	if ti.Off || ti.Position != options.TabIndicatorLeft {
		return 0
	}
	return ti.Width
}

// resolvePreset turns a PresetSize into an absolute pixel value against a
// basis (working-area height or width minus gaps, as appropriate).
func resolvePreset(p options.PresetSize, basis float64) float64 {
	if p.Kind == options.PresetFixed {
		return float64(p.Fixed)
	}
	return basis * p.Proportion / 100
}

// WidthPx computes the column's width in logical pixels given the working
// area width and gap, clamped to [max tile min width, min tile max width
// where set]. Fullscreen columns ignore gaps/working area and use
// parentWidth directly (handled by the caller passing parentWidth and
// isFullscreenLayout=true).
func (c *Column) WidthPx(workingAreaWidth, parentWidth, gap float64, isFullscreenLayout bool) float64 {
	if isFullscreenLayout {
		return parentWidth
	}

	var raw float64
	if c.isFullWidth {
		raw = workingAreaWidth
	} else {
		switch c.width.Kind {
		case WidthFixed:
			raw = c.width.Fixed
		case WidthPreset:
			idx := geometry.ClampInt(c.width.PresetIdx, 0, len(c.opts.Layout.PresetColumnWidths)-1)
			if idx >= 0 && len(c.opts.Layout.PresetColumnWidths) > 0 {
				raw = resolvePreset(c.opts.Layout.PresetColumnWidths[idx], workingAreaWidth)
			} else {
				raw = workingAreaWidth / 2
			}
		default: // WidthProportion
			p := c.width.Proportion
			if p <= 0 {
				p = 0.5
			}
			raw = workingAreaWidth * p
		}
	}

	raw += c.tabBandWidth()

	minW, maxW := 0.0, -1.0
	for _, t := range c.tiles {
		ts := t.MinSize()
		if ts.W > minW {
			minW = ts.W
		}
		tm := t.MaxSize()
		if tm.W > 0 {
			if maxW < 0 || tm.W < maxW {
				maxW = tm.W
			}
		}
	}
	if c.opts.Border.Off {
		// No-border adjustment: tiles with borders off contribute no
		// extra chrome, so the requested width already matches the
		// window width with no further deduction needed here — the
		// delta lives entirely in Tile's decorationDelta.
	}
	raw = geometry.Clamp(raw, minW, maxW)
	return raw
}

// UpdateTileHeights runs the height-resolution algorithm: resolves every tile's
// height policy against the available working-area height H and gap g and
// caches the resulting tile heights; it sends nothing to the windows
// (ApplyLayout does that). It returns the per-tile resolved tile-heights
// in tile order.
func (c *Column) UpdateTileHeights(workingAreaHeight, gap float64) []float64 {
	n := len(c.tiles)
	result := make([]float64, n)
	if n == 0 {
		return result
	}

	usable := workingAreaHeight - c.tabBandHeight()
	autoIdx := make([]int, 0, n)
	fixedWindowH := make([]float64, n)
	isFixed := make([]bool, n)

	// Step 1: resolve Fixed/Preset policies; defer Auto.
	for i, t := range c.tiles {
		pol := c.data[i].policy
		switch pol.Kind {
		case HeightFixed, HeightPreset:
			var px float64
			if pol.Kind == HeightPreset && len(c.opts.Layout.PresetWindowHeights) > 0 {
				idx := geometry.ClampInt(pol.PresetIdx, 0, len(c.opts.Layout.PresetWindowHeights)-1)
				px = resolvePreset(c.opts.Layout.PresetWindowHeights[idx], usable-gap*float64(n+1))
			} else {
				px = pol.Fixed
			}
			if px < 1 {
				px = 1
			}
			if n > 1 {
				sumOtherMin := 0.0
				for j, ot := range c.tiles {
					if j == i {
						continue
					}
					sumOtherMin += ot.MinSize().H
				}
				maxNonAuto := usable - gap*float64(n+1) - sumOtherMin
				if maxNonAuto < 1 {
					maxNonAuto = 1
				}
				if px > maxNonAuto {
					px = maxNonAuto
				}
			}
			tileH := t.TileHeightForWindowHeight(px)
			fixedWindowH[i] = px
			isFixed[i] = true
			result[i] = tileH
		default:
			autoIdx = append(autoIdx, i)
		}
	}

	fixedSum := 0.0
	for i := range c.tiles {
		if isFixed[i] {
			fixedSum += result[i]
		}
	}
	remainder := usable - gap*float64(n+1) - fixedSum
	if remainder < 0 {
		remainder = 0
	}

	totalWeight := 0.0
	for _, i := range autoIdx {
		totalWeight += c.data[i].policy.Weight
	}

	// Step 3: iteratively promote undersized Auto tiles to Fixed(min).
	for {
		promoted := -1
		if totalWeight <= 0 || len(autoIdx) == 0 {
			break
		}
		for _, i := range autoIdx {
			if isFixed[i] {
				continue
			}
			w := c.data[i].policy.Weight
			tentative := geometry.Round(remainder * w / totalWeight)
			windowH := c.tiles[i].WindowHeightForTileHeight(tentative)
			windowH = c.tiles[i].TileHeightForWindowHeight(windowH) // round-trip per spec
			minH := c.tiles[i].MinSize().H
			if windowH < minH {
				promoted = i
				break
			}
		}
		if promoted < 0 {
			break
		}
		minWindowH := c.tiles[promoted].MinSize().H
		minTileH := c.tiles[promoted].TileHeightForWindowHeight(minWindowH)
		result[promoted] = minTileH
		isFixed[promoted] = true
		remainder -= minTileH
		if remainder < 0 {
			remainder = 0
		}
		totalWeight -= c.data[promoted].policy.Weight
	}

	// Step 4: distribute remaining R by weight across tiles still Auto.
	if totalWeight > 0 {
		for _, i := range autoIdx {
			if isFixed[i] {
				continue
			}
			w := c.data[i].policy.Weight
			tentative := geometry.Round(remainder * w / totalWeight)
			result[i] = tentative
		}
	}

	for i, t := range c.tiles {
		_ = t
		c.data[i].size.H = result[i]
	}
	return result
}

// ApplyLayout runs UpdateTileHeights and then pushes each tile's resolved
// width (columnWidth) and height to the underlying Window via
// Tile.RequestTileSize. In Tabbed mode, only the active tile is sent a
// size (the rest stay hidden and keep their last geometry).
func (c *Column) ApplyLayout(workingAreaHeight, columnWidth, gap float64, animate bool, txn any) {
	heights := c.UpdateTileHeights(workingAreaHeight, gap)
	for i, t := range c.tiles {
		if c.displayMode == DisplayTabbed && i != c.activeTileIdx {
			continue
		}
		t.RequestTileSize(geometry.Size{W: columnWidth, H: heights[i]}, animate, txn)
		c.data[i].size = geometry.Size{W: columnWidth, H: heights[i]}
	}
}
