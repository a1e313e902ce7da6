package tempo

import "math"

// frameEpsilon absorbs floating-point error when converting times that sit
// exactly on a frame boundary.
const frameEpsilon = 1e-9

// PlaybackState is the playback state machine's current state.
type PlaybackState uint8

const (
	Stopped PlaybackState = iota // initial state; also after Stop or completion
	Playing                      // advancing on Update
	Paused                       // halted by Pause, resumable with Play
)

// String returns the state name.
func (s PlaybackState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// --- Clock configuration ---

// SetStartTime sets the offset of this timeline's zero point on its parent's
// axis. It has no effect on a root.
func (tl *Timeline) SetStartTime(t float64) {
	tl.startTime = t
}

// StartTime returns the offset on the parent's axis.
func (tl *Timeline) StartTime() float64 {
	return tl.startTime
}

// SetFramerate sets the frames per second used by the frame conversions.
// Non-positive values are ignored. It does not affect timing.
func (tl *Timeline) SetFramerate(fps float64) {
	if !(fps > 0) || fps == tl.framerate {
		return
	}
	old := tl.framerate
	tl.framerate = fps
	emit(tl, &tl.events.FramerateChanged, FramerateChangedEvent{Timeline: tl, Old: old, New: fps})
}

// Framerate returns the frames per second.
func (tl *Timeline) Framerate() float64 {
	return tl.framerate
}

// SetTimeScale sets the speed multiplier applied to elapsed time on a root
// and to the parent's time on a child.
func (tl *Timeline) SetTimeScale(s float64) {
	if s == tl.timeScale {
		return
	}
	old := tl.timeScale
	tl.timeScale = s
	emit(tl, &tl.events.TimeScaleChanged, TimeScaleChangedEvent{Timeline: tl, Old: old, New: s})
}

// TimeScale returns the speed multiplier.
func (tl *Timeline) TimeScale() float64 {
	return tl.timeScale
}

// --- Frames ---

// TimeToFrame converts seconds to a whole frame index at this timeline's
// framerate.
func (tl *Timeline) TimeToFrame(t float64) int {
	return int(math.Floor(t*tl.framerate + frameEpsilon))
}

// FrameToTime converts a frame index to seconds at this timeline's framerate.
func (tl *Timeline) FrameToTime(frame int) float64 {
	return float64(frame) / tl.framerate
}

// CurrentFrame returns the frame index of the current time.
func (tl *Timeline) CurrentFrame() int {
	return tl.TimeToFrame(tl.currentTime)
}

// --- Queries ---

// CurrentTime returns the local time within the current pass.
func (tl *Timeline) CurrentTime() float64 {
	return tl.currentTime
}

// IsPlaying reports whether the timeline advances on Update.
func (tl *Timeline) IsPlaying() bool {
	return tl.playing
}

// State returns the playback state.
func (tl *Timeline) State() PlaybackState {
	switch {
	case tl.playing:
		return Playing
	case tl.paused:
		return Paused
	default:
		return Stopped
	}
}

// LocalTime converts a time on the parent's axis to this timeline's local
// time: the start offset is subtracted before scaling and negative results
// clamp to zero.
func (tl *Timeline) LocalTime(parentTime float64) float64 {
	return math.Max(0, (parentTime-tl.startTime)*tl.timeScale)
}

// --- Playback control ---

// Play starts or resumes this timeline and all descendants. A completed
// timeline restarts from zero.
func (tl *Timeline) Play() {
	if !tl.playing {
		if tl.complete {
			tl.rewind()
		}
		tl.playing = true
		tl.paused = false
		tl.finished = false
		tl.Logger().Debug("tempo: play", "timeline", tl.Name, "time", tl.currentTime)
		emit(tl, &tl.events.Play, PlayEvent{Timeline: tl, Time: tl.currentTime})
	}
	for _, c := range tl.children {
		c.Play()
	}
}

// Pause halts this timeline and all descendants, keeping their times.
func (tl *Timeline) Pause() {
	tl.finished = false
	if tl.playing {
		tl.playing = false
		tl.paused = true
		tl.Logger().Debug("tempo: pause", "timeline", tl.Name, "time", tl.currentTime)
		emit(tl, &tl.events.Pause, PauseEvent{Timeline: tl, Time: tl.currentTime})
	}
	for _, c := range tl.children {
		c.Pause()
	}
}

// Stop halts this timeline and all descendants and seeks back to zero.
func (tl *Timeline) Stop() {
	tl.halt()
	tl.Seek(0)
}

func (tl *Timeline) halt() {
	tl.playing = false
	tl.paused = false
	tl.finished = false
	tl.Logger().Debug("tempo: stop", "timeline", tl.Name)
	emit(tl, &tl.events.Stop, StopEvent{Timeline: tl})
	for _, c := range tl.children {
		c.halt()
	}
}

// Seek moves the clock to the unwrapped local time t, resolving loops, then
// seeks every child to its local equivalent and updates attached targets.
// Seek never changes whether the timeline is playing, except that reaching
// completion while playing stops it.
func (tl *Timeline) Seek(t float64) {
	from := tl.currentTime
	tl.resolve(t)
	tl.Logger().Debug("tempo: seek", "timeline", tl.Name, "from", from, "to", tl.currentTime)
	for _, c := range tl.children {
		c.Seek(c.LocalTime(tl.currentTime))
	}
	for _, o := range tl.objects {
		o.Update(tl.currentTime)
	}
	emit(tl, &tl.events.Seek, SeekEvent{Timeline: tl, From: from, To: tl.currentTime})
}

// SeekFrame seeks to the start of the given frame.
func (tl *Timeline) SeekFrame(frame int) {
	tl.Seek(tl.FrameToTime(frame))
}

// Update advances a root timeline by dt seconds of host time, scaled by its
// time scale, when playing. Whether or not it advanced, it then pushes its
// current time to every child and target and emits TimeUpdate.
func (tl *Timeline) Update(dt float64) {
	if tl.playing {
		tl.resolve(tl.elapsed() + dt*tl.timeScale)
	}
	tl.propagate()
}

// updateFromParent follows the parent's current time. A child that stopped
// by completing keeps following, and resumes playing once the parent's time
// maps back inside its span.
func (tl *Timeline) updateFromParent(parentTime float64) {
	if tl.playing || tl.finished {
		tl.resolve(tl.LocalTime(parentTime))
	}
	if tl.finished && !tl.complete {
		tl.finished = false
		tl.playing = true
		tl.Logger().Debug("tempo: resumed by parent", "timeline", tl.Name, "time", tl.currentTime)
		emit(tl, &tl.events.Play, PlayEvent{Timeline: tl, Time: tl.currentTime})
	}
	tl.propagate()
}

// propagate updates children before targets, and both before observers see
// TimeUpdate for this tick.
func (tl *Timeline) propagate() {
	for _, c := range tl.children {
		c.updateFromParent(tl.currentTime)
	}
	for _, o := range tl.objects {
		o.Update(tl.currentTime)
	}
	emit(tl, &tl.events.TimeUpdate, TimeUpdateEvent{Timeline: tl, Time: tl.currentTime, Loop: tl.currentLoop})
}

func (tl *Timeline) rewind() {
	tl.currentTime = 0
	tl.currentLoop = 0
	tl.complete = false
}
