// Package options defines the already-validated configuration snapshot the
// layout engine receives. It never parses files itself — see
// internal/scenario for the TOML decoding layer used by tests and the CLI.
package options

// Options is the full set of recognized configuration fields. It is
// always handled by pointer and is never mutated in place: a config reload
// builds a new *Options and every layer down the tree swaps its reference,
// per the "shared mutable config" design note.
type Options struct {
	Gaps         float64             `toml:"gaps"`
	Struts       Struts              `toml:"struts"`
	Layout       LayoutOptions       `toml:"layout"`
	Border       BorderConfig        `toml:"border"`
	FocusRing    FocusRingConfig     `toml:"focus_ring"`
	Shadow       ShadowConfig        `toml:"shadow"`
	TabIndicator TabIndicatorConfig  `toml:"tab_indicator"`
	InsertHint   InsertHintConfig    `toml:"insert_hint"`
	Animations   AnimationsConfig    `toml:"animations"`

	DisableResizeThrottling bool `toml:"disable_resize_throttling"`
	DisableTransactions     bool `toml:"disable_transactions"`
}

// Struts is extra working-area inset, e.g. reserved for a layer-shell bar.
type Struts struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

// CenterFocusedColumn controls when the active column is kept centered in
// the working area.
type CenterFocusedColumn int

const (
	CenterNever CenterFocusedColumn = iota
	CenterAlways
	CenterOnOverflow
)

// ColumnDisplayMode mirrors column.DisplayMode; kept here too since it's a
// default picked by config, independent of any particular column.
type ColumnDisplayMode int

const (
	DisplayNormal ColumnDisplayMode = iota
	DisplayTabbed
)

// LayoutOptions groups the column/workspace-shaping knobs.
type LayoutOptions struct {
	PresetColumnWidths       []PresetSize        `toml:"preset_column_widths"`
	DefaultColumnWidth       *PresetSize         `toml:"default_column_width"`
	PresetWindowHeights      []PresetSize        `toml:"preset_window_heights"`
	CenterFocusedColumn      CenterFocusedColumn `toml:"center_focused_column"`
	AlwaysCenterSingleColumn bool                `toml:"always_center_single_column"`
	EmptyWorkspaceAboveFirst bool                `toml:"empty_workspace_above_first"`
	DefaultColumnDisplay     ColumnDisplayMode   `toml:"default_column_display"`
}

// PresetSizeKind distinguishes a proportional preset from a fixed-pixel one.
type PresetSizeKind int

const (
	PresetProportion PresetSizeKind = iota
	PresetFixed
)

// PresetSize is one entry in preset_column_widths / preset_window_heights.
// Proportion is a percentage in [0,100]; Fixed is pixels in [1,100000].
type PresetSize struct {
	Kind       PresetSizeKind `toml:"kind"`
	Proportion float64        `toml:"proportion"`
	Fixed      int            `toml:"fixed"`
}

func Proportion(pct float64) PresetSize { return PresetSize{Kind: PresetProportion, Proportion: pct} }
func Fixed(px int) PresetSize           { return PresetSize{Kind: PresetFixed, Fixed: px} }

// BorderConfig, FocusRingConfig, ShadowConfig are decoration geometry; the
// core only needs their width contribution to tile_size.
type BorderConfig struct {
	Off   bool    `toml:"off"`
	Width float64 `toml:"width"`
}

type FocusRingConfig struct {
	Off   bool    `toml:"off"`
	Width float64 `toml:"width"`
}

type ShadowConfig struct {
	On bool `toml:"on"`
}

type TabIndicatorPosition int

const (
	TabIndicatorTop TabIndicatorPosition = iota
	TabIndicatorLeft
)

type TabIndicatorConfig struct {
	Off      bool                 `toml:"off"`
	Position TabIndicatorPosition `toml:"position"`
	Width    float64              `toml:"width"`
	Length   float64              `toml:"length"` // proportion of tile width/height reserved per tab
}

type InsertHintConfig struct {
	Off   bool   `toml:"off"`
	Color string `toml:"color"`
}

// AnimationsConfig groups the per-category animation configs.
type AnimationsConfig struct {
	WindowOpen                  AnimationConfig `toml:"window_open"`
	WindowClose                 AnimationConfig `toml:"window_close"`
	WindowMovement               AnimationConfig `toml:"window_movement"`
	WindowResize                 AnimationConfig `toml:"window_resize"`
	HorizontalViewMovement       AnimationConfig `toml:"horizontal_view_movement"`
	WorkspaceSwitch              AnimationConfig `toml:"workspace_switch"`
	ConfigNotificationOpenClose  AnimationConfig `toml:"config_notification_open_close"`
}

// AnimationKind distinguishes an eased, fixed-duration animation from a
// spring.
type AnimationKind int

const (
	KindEasing AnimationKind = iota
	KindSpring
)

type CurveKind int

const (
	CurveLinear CurveKind = iota
	CurveEaseOutCubic
	CurveEaseOutExpo
	CurveEaseOutQuad
	CurveCubicBezier
)

// AnimationConfig is one animation category's full configuration: off
// entirely, or a Kind with its parameters.
type AnimationConfig struct {
	Off  bool          `toml:"off"`
	Kind AnimationKind `toml:"kind"`

	// Easing fields.
	DurationMS int       `toml:"duration_ms"`
	Curve      CurveKind `toml:"curve"`
	BezierA    float64   `toml:"bezier_a"`
	BezierB    float64   `toml:"bezier_b"`
	BezierC    float64   `toml:"bezier_c"`
	BezierD    float64   `toml:"bezier_d"`

	// Spring fields.
	DampingRatio float64 `toml:"damping_ratio"`
	Stiffness    float64 `toml:"stiffness"`
	Epsilon      float64 `toml:"epsilon"`
}

// Default returns a reasonable baseline: every animation category eases
// with EaseOutCubic, over 150ms to 500ms depending on the category.
func Default() *Options {
	easing := func(ms int) AnimationConfig {
		return AnimationConfig{Kind: KindEasing, DurationMS: ms, Curve: CurveEaseOutCubic}
	}
	return &Options{
		Gaps: 8,
		Layout: LayoutOptions{
			PresetColumnWidths:  []PresetSize{Proportion(33.33), Proportion(50), Proportion(66.67)},
			PresetWindowHeights: []PresetSize{Proportion(50), Proportion(100)},
			CenterFocusedColumn: CenterNever,
			DefaultColumnDisplay: DisplayNormal,
		},
		Border:    BorderConfig{Off: true, Width: 4},
		FocusRing: FocusRingConfig{Width: 4},
		Animations: AnimationsConfig{
			WindowOpen:             easing(150),
			WindowClose:            easing(150),
			WindowMovement:         easing(250),
			WindowResize:           easing(200),
			HorizontalViewMovement: easing(250),
			WorkspaceSwitch:        easing(250),
			ConfigNotificationOpenClose: easing(500),
		},
	}
}
