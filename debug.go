package tempo

// SetDebug enables or disables debug diagnostics for this timeline and its
// descendants. When enabled, AddChild logs warnings for unusually deep trees
// and unusually wide nodes.
func (tl *Timeline) SetDebug(enabled bool) {
	tl.debug = enabled
}

// debugEnabled reports whether this timeline or any ancestor has debug on.
func (tl *Timeline) debugEnabled() bool {
	for p := tl; p != nil; p = p.parent {
		if p.debug {
			return true
		}
	}
	return false
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(tl *Timeline) {
	if depth := tl.Depth(); depth > debugMaxTreeDepth {
		tl.Logger().Warn("tempo: tree depth exceeds threshold",
			"timeline", tl.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if a timeline has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(tl *Timeline) {
	if n := len(tl.children); n > debugMaxChildCount {
		tl.Logger().Warn("tempo: child count exceeds threshold",
			"timeline", tl.Name, "children", n, "threshold", debugMaxChildCount)
	}
}
