package platform

import "strings"

// Info identifies the platform the UI host runs on. The host reports its
// operating system and release as separate fields; nothing here parses
// free-form description strings.
type Info struct {
	OS      string `json:"os" yaml:"os"`           // "windows", "darwin", "linux"
	Release string `json:"release" yaml:"release"` // kernel/NT release, e.g. "10.0.19045"
}

// Frame compensation constants for hosts that misrender window chrome:
// the reported outer size loses part of the frame, and an extra border is
// added on the left edge.
const (
	FrameWidthPad  = 14
	FrameHeightPad = 7
	FrameXOffset   = 7
)

// FrameMisrendered reports whether the host platform draws window chrome
// into the requested geometry. Known affected: the Windows 10 release line.
func (p Info) FrameMisrendered() bool {
	if !strings.EqualFold(p.OS, "windows") {
		return false
	}
	return p.Release == "10" || strings.HasPrefix(p.Release, "10.")
}
