package options

import (
	"time"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
)

func curveFunc(cfg AnimationConfig) clock.Curve {
	switch cfg.Curve {
	case CurveLinear:
		return clock.Linear
	case CurveEaseOutExpo:
		return clock.EaseOutExpo
	case CurveEaseOutQuad:
		return clock.EaseOutQuad
	case CurveCubicBezier:
		return clock.CubicBezier(cfg.BezierA, cfg.BezierB, cfg.BezierC, cfg.BezierD)
	default:
		return clock.EaseOutCubic
	}
}

// BuildAnimation constructs a clock.Animation from cfg, starting at `start`
// (a clock time, not an elapsed duration), going from `from` to `to`, with
// `initialVelocity` honored by spring kinds (and ignored by easing — an
// eased animation handing off from a gesture instead keeps its duration but
// shifts its "from" to the current value, which callers do before calling
// this). Returns nil when cfg.Off, signaling "snap instantly" to the
// caller.
func BuildAnimation(cfg AnimationConfig, start time.Duration, from, to, initialVelocity float64) clock.Animation {
	if cfg.Off {
		return nil
	}
	switch cfg.Kind {
	case KindSpring:
		return clock.NewSpring(from, to, initialVelocity, cfg.DampingRatio, cfg.Stiffness, cfg.Epsilon)
	default:
		return clock.NewEasing(start, time.Duration(cfg.DurationMS)*time.Millisecond, from, to, curveFunc(cfg))
	}
}
