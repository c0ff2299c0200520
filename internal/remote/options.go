package remote

import (
	"math"

	"github.com/1broseidon/winbridge/internal/platform"
)

// PosUnset marks a position field that was never set. It is distinct from 0,
// which is a legitimate screen coordinate.
const PosUnset = math.MinInt32

// Host-side defaults, filled in when an explicit position forces the full
// wire representation.
const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Options configures a window or view creation request. Zero/nil fields count
// as unset and are left to the host's own defaults. Use NewOptions to get the
// position fields initialized to their unset state.
type Options struct {
	Width  int // 0 = unset
	Height int // 0 = unset
	X      int // PosUnset = unset
	Y      int // PosUnset = unset

	Title string // "" = unset

	Show        *bool // host default: true
	Resizable   *bool // host default: true
	Frame       *bool // host default: true
	AlwaysOnTop *bool // host default: false
}

// NewOptions returns Options with every field unset.
func NewOptions() Options {
	return Options{X: PosUnset, Y: PosUnset}
}

// positionSet reports whether either coordinate was explicitly requested.
func (o Options) positionSet() bool {
	return o.X != PosUnset || o.Y != PosUnset
}

// compensated applies the host's frame-misrender correction: the affected
// platform draws window chrome into the requested geometry, so requested
// sizes are padded and an explicit X is shifted back by the added border.
// Unset fields and other platforms are untouched.
func (o Options) compensated(host platform.Info) Options {
	if !host.FrameMisrendered() {
		return o
	}
	if o.Width != 0 {
		o.Width += platform.FrameWidthPad
	}
	if o.Height != 0 {
		o.Height += platform.FrameHeightPad
	}
	if o.X != PosUnset {
		o.X -= platform.FrameXOffset
	}
	return o
}

// encode builds the wire representation. Without an explicit position, unset
// fields are omitted entirely so the host's defaults (including its
// auto-placement of the window) apply. With an explicit position, every field
// is present with the host defaults filled in, so the emitted geometry is
// fully determined.
func (o Options) encode() map[string]interface{} {
	if !o.positionSet() {
		return o.encodeSparse()
	}
	return o.encodeFull()
}

func (o Options) encodeSparse() map[string]interface{} {
	m := make(map[string]interface{})
	if o.Width != 0 {
		m["width"] = o.Width
	}
	if o.Height != 0 {
		m["height"] = o.Height
	}
	if o.Title != "" {
		m["title"] = o.Title
	}
	if o.Show != nil {
		m["show"] = *o.Show
	}
	if o.Resizable != nil {
		m["resizable"] = *o.Resizable
	}
	if o.Frame != nil {
		m["frame"] = *o.Frame
	}
	if o.AlwaysOnTop != nil {
		m["alwaysOnTop"] = *o.AlwaysOnTop
	}
	return m
}

func (o Options) encodeFull() map[string]interface{} {
	return map[string]interface{}{
		"width":       intOr(o.Width, defaultWidth),
		"height":      intOr(o.Height, defaultHeight),
		"x":           coordOr(o.X, 0),
		"y":           coordOr(o.Y, 0),
		"title":       o.Title,
		"show":        boolOr(o.Show, true),
		"resizable":   boolOr(o.Resizable, true),
		"frame":       boolOr(o.Frame, true),
		"alwaysOnTop": boolOr(o.AlwaysOnTop, false),
	}
}

func intOr(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func coordOr(v, def int) int {
	if v == PosUnset {
		return def
	}
	return v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
