package domain

import (
	"fmt"
	"strings"
)

// NarrowWidthPx is the viewport width below which the layout is treated as mobile.
const NarrowWidthPx = 768

// LowEndCores is the processor count below which a device is treated as low-end.
const LowEndCores = 4

type Tier int

const (
	TierMinimal Tier = iota
	TierLow
	TierMedium
	TierHigh
)

var tierNames = [...]string{"minimal", "low", "medium", "high"}

func (t Tier) String() string {
	if t < TierMinimal || t > TierHigh {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

func ParseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Tier(i), nil
		}
	}
	return TierMinimal, fmt.Errorf("unknown tier %q", s)
}

type EffectiveType string

const (
	NetworkUnknown EffectiveType = ""
	NetworkSlow2G  EffectiveType = "slow-2g"
	Network2G      EffectiveType = "2g"
	Network3G      EffectiveType = "3g"
	Network4G      EffectiveType = "4g"
)

func ParseEffectiveType(s string) EffectiveType {
	switch t := EffectiveType(strings.ToLower(strings.TrimSpace(s))); t {
	case NetworkSlow2G, Network2G, Network3G, Network4G:
		return t
	}
	return NetworkUnknown
}

// Slow reports the effective types that count as a slow connection.
func (e EffectiveType) Slow() bool {
	return e == NetworkSlow2G || e == Network2G || e == Network3G
}

func (e EffectiveType) String() string {
	if e == NetworkUnknown {
		return "unknown"
	}
	return string(e)
}

// Signals is a read-only snapshot of the environment. Cores == 0 means the
// processor count could not be read.
type Signals struct {
	ViewportWidth   int
	Cores           int
	Network         EffectiveType
	ReducedMotion   bool
	FeaturesPresent bool
	HoverPointer    bool
}

func (s Signals) Narrow() bool { return s.ViewportWidth < NarrowWidthPx }

// LowEnd is false when the processor count is unknown.
func (s Signals) LowEnd() bool { return s.Cores > 0 && s.Cores < LowEndCores }

// Classify maps signals to a tier. Rules are evaluated in order and the first
// match wins.
func Classify(s Signals) Tier {
	switch {
	case s.ReducedMotion || !s.FeaturesPresent:
		return TierMinimal
	case s.Narrow() && (s.LowEnd() || s.Network.Slow()):
		return TierLow
	case s.Narrow() || s.LowEnd():
		return TierMedium
	default:
		return TierHigh
	}
}

// AmbientEnabled reports whether the app shell mounts the background effect.
func AmbientEnabled(t Tier) bool { return t != TierMinimal }

// CursorEnabled reports whether the pointer-tracking overlay is mounted.
func CursorEnabled(t Tier, s Signals) bool { return t == TierHigh && s.HoverPointer }
