package shell

import "sync/atomic"

// DebugOverrides force-enable layers for every shell in the process, independent of
// Options. All flags start false. Writes are last-write-wins and are picked up on the
// next rebuild.
type DebugOverrides struct {
	performanceOverlay atomic.Bool
	inspector          atomic.Bool
	banner             atomic.Bool
}

// Overrides is the process-wide override set.
var Overrides DebugOverrides

func (d *DebugOverrides) SetPerformanceOverlay(v bool) { d.performanceOverlay.Store(v) }
func (d *DebugOverrides) SetInspector(v bool)          { d.inspector.Store(v) }
func (d *DebugOverrides) SetBanner(v bool)             { d.banner.Store(v) }

func (d *DebugOverrides) PerformanceOverlay() bool { return d.performanceOverlay.Load() }
func (d *DebugOverrides) Inspector() bool          { return d.inspector.Load() }
func (d *DebugOverrides) Banner() bool             { return d.banner.Load() }
