package tempo

import (
	"log/slog"
	"reflect"
)

// Default clock settings for new timelines.
const (
	DefaultFramerate = 60.0
	DefaultTimeScale = 1.0
)

// Timeline is a node in a tree of independent time contexts. A root timeline
// is driven by Update(dt); a child follows its parent's current time,
// translated by its own start offset and time scale. Attached targets receive
// the timeline's local time on every update and seek.
//
// Timeline is not safe for concurrent use. Hosts with several goroutines must
// serialize every call on a tree.
type Timeline struct {
	Name string

	// Hierarchy
	parent   *Timeline
	children []*Timeline
	objects  []Target

	// Clock configuration
	startTime   float64
	duration    float64 // 0 means unset
	framerate   float64
	timeScale   float64
	loop        bool
	repeatCount int // 0 means infinite when loop is set

	// Playback state
	currentTime float64
	currentLoop int
	playing     bool
	paused      bool
	complete    bool
	finished    bool // stopped by completion, re-armed when the parent wraps back

	logger *slog.Logger
	debug  bool
	events Events
}

// NewTimeline creates a stopped timeline with no duration, the default
// framerate and a time scale of 1.
func NewTimeline(name string) *Timeline {
	tl := &Timeline{
		Name:      name,
		framerate: DefaultFramerate,
		timeScale: DefaultTimeScale,
	}
	tl.events.bind(tl.Logger)
	return tl
}

// Events returns the timeline's event channels.
func (tl *Timeline) Events() *Events {
	return &tl.events
}

// --- Tree manipulation ---

// AddChild appends child to this timeline's children. If child already has a
// parent it is first removed from that parent, which emits ChildRemoved
// there. Panics if child is nil or is an ancestor of this timeline.
func (tl *Timeline) AddChild(child *Timeline) {
	if child == nil {
		panic("tempo: cannot add nil child")
	}
	if isAncestor(child, tl) {
		panic("tempo: adding child would create a cycle")
	}
	child.RemoveFromParent()
	child.parent = tl
	tl.children = append(tl.children, child)
	tl.Logger().Debug("tempo: child added", "timeline", tl.Name, "child", child.Name)
	if tl.debugEnabled() {
		debugCheckTreeDepth(child)
		debugCheckChildCount(tl)
	}
	emit(tl, &tl.events.ChildAdded, ChildAddedEvent{Timeline: tl, Child: child})
}

// RemoveChild detaches child from this timeline. It is a no-op when child is
// not one of its children.
func (tl *Timeline) RemoveChild(child *Timeline) {
	if child == nil || child.parent != tl {
		return
	}
	tl.removeChildByPtr(child)
	child.parent = nil
	tl.Logger().Debug("tempo: child removed", "timeline", tl.Name, "child", child.Name)
	emit(tl, &tl.events.ChildRemoved, ChildRemovedEvent{Timeline: tl, Child: child})
}

// RemoveFromParent detaches this timeline from its parent.
// No-op if it has no parent.
func (tl *Timeline) RemoveFromParent() {
	if tl.parent == nil {
		return
	}
	tl.parent.RemoveChild(tl)
}

// Parent returns the parent timeline, or nil for a root.
func (tl *Timeline) Parent() *Timeline {
	return tl.parent
}

// Root returns the topmost ancestor, which is tl itself for a root.
func (tl *Timeline) Root() *Timeline {
	r := tl
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (tl *Timeline) Children() []*Timeline {
	return tl.children
}

// NumChildren returns the number of direct children.
func (tl *Timeline) NumChildren() int {
	return len(tl.children)
}

// ChildAt returns the child at the given index.
func (tl *Timeline) ChildAt(index int) *Timeline {
	return tl.children[index]
}

// TotalChildCount returns the number of descendants.
func (tl *Timeline) TotalChildCount() int {
	n := len(tl.children)
	for _, c := range tl.children {
		n += c.TotalChildCount()
	}
	return n
}

// Depth returns the number of ancestors; a root has depth 0.
func (tl *Timeline) Depth() int {
	d := 0
	for p := tl.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// --- Targets ---

// AddObject attaches a target that receives this timeline's local time. The
// timeline does not own the target. Adding a target twice is a no-op.
// Targets are matched with ==, so a target of a non-comparable type, such as
// a func adapter, is never treated as a duplicate and cannot be removed with
// RemoveObject.
func (tl *Timeline) AddObject(obj Target) {
	if obj == nil || tl.hasObject(obj) {
		return
	}
	tl.objects = append(tl.objects, obj)
	emit(tl, &tl.events.ObjectAdded, ObjectAddedEvent{Timeline: tl, Target: obj})
}

// RemoveObject detaches a target. It is a no-op when obj is not attached.
func (tl *Timeline) RemoveObject(obj Target) {
	for i, o := range tl.objects {
		if sameTarget(o, obj) {
			copy(tl.objects[i:], tl.objects[i+1:])
			tl.objects[len(tl.objects)-1] = nil
			tl.objects = tl.objects[:len(tl.objects)-1]
			emit(tl, &tl.events.ObjectRemoved, ObjectRemovedEvent{Timeline: tl, Target: obj})
			return
		}
	}
}

// Objects returns the attached targets. The returned slice MUST NOT be
// mutated by the caller.
func (tl *Timeline) Objects() []Target {
	return tl.objects
}

// NumObjects returns the number of targets attached directly.
func (tl *Timeline) NumObjects() int {
	return len(tl.objects)
}

// TotalObjectCount returns the number of targets attached to this timeline
// and all of its descendants.
func (tl *Timeline) TotalObjectCount() int {
	n := len(tl.objects)
	for _, c := range tl.children {
		n += c.TotalObjectCount()
	}
	return n
}

func (tl *Timeline) hasObject(obj Target) bool {
	for _, o := range tl.objects {
		if sameTarget(o, obj) {
			return true
		}
	}
	return false
}

// sameTarget compares targets without panicking on non-comparable types.
func sameTarget(a, b Target) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

// --- Helpers ---

// isAncestor reports whether candidate is tl or an ancestor of tl.
func isAncestor(candidate, tl *Timeline) bool {
	for p := tl; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from tl.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (tl *Timeline) removeChildByPtr(child *Timeline) {
	for i, c := range tl.children {
		if c == child {
			copy(tl.children[i:], tl.children[i+1:])
			tl.children[len(tl.children)-1] = nil
			tl.children = tl.children[:len(tl.children)-1]
			return
		}
	}
}
