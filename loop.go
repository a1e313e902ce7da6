package tempo

import "math"

// SetDuration sets the length of one pass in seconds. Non-positive values
// unset the duration, which makes the timeline unbounded and disables
// looping. The current time is re-resolved against the new duration.
func (tl *Timeline) SetDuration(d float64) {
	if !(d > 0) {
		d = 0
	}
	old := tl.duration
	if old == d {
		return
	}
	tl.duration = d
	if d == 0 {
		tl.loop = false
		tl.repeatCount = 0
	}
	emit(tl, &tl.events.DurationChanged, DurationChangedEvent{Timeline: tl, Old: old, New: d})
	tl.resolve(tl.elapsed())
}

// ClearDuration unsets the duration.
func (tl *Timeline) ClearDuration() {
	tl.SetDuration(0)
}

// Duration returns the length of one pass in seconds, or 0 when unset.
func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// HasDuration reports whether a duration is set.
func (tl *Timeline) HasDuration() bool {
	return tl.duration > 0
}

// SetInfiniteLoop makes the timeline repeat forever. It returns
// ErrNoDuration when no duration is set.
func (tl *Timeline) SetInfiniteLoop() error {
	if !tl.HasDuration() {
		return ErrNoDuration
	}
	tl.loop = true
	tl.repeatCount = 0
	return nil
}

// SetFiniteLoop makes the timeline play n passes and then complete. It
// returns ErrNoDuration when no duration is set and ErrInvalidRepeatCount
// when n < 1.
func (tl *Timeline) SetFiniteLoop(n int) error {
	if !tl.HasDuration() {
		return ErrNoDuration
	}
	if n < 1 {
		return ErrInvalidRepeatCount
	}
	tl.loop = true
	tl.repeatCount = n
	return nil
}

// DisableLoop reverts to a single clamped pass. The current time is left as
// is; the loop index resets to zero.
func (tl *Timeline) DisableLoop() {
	tl.loop = false
	tl.repeatCount = 0
	tl.currentLoop = 0
}

// IsLooping reports whether looping is enabled.
func (tl *Timeline) IsLooping() bool {
	return tl.loop
}

// IsInfiniteLoop reports whether the timeline loops without end.
func (tl *Timeline) IsInfiniteLoop() bool {
	return tl.loop && tl.repeatCount == 0 && tl.HasDuration()
}

// RepeatCount returns the configured number of passes; 0 means infinite
// when looping is enabled.
func (tl *Timeline) RepeatCount() int {
	return tl.repeatCount
}

// CurrentLoop returns the zero-based index of the pass in progress.
func (tl *Timeline) CurrentLoop() int {
	return tl.currentLoop
}

// IsComplete reports whether a bounded timeline has reached its end.
// Unbounded and infinitely looping timelines never complete.
func (tl *Timeline) IsComplete() bool {
	return tl.complete
}

// CurrentLoopProgress returns the position within the current pass in
// [0, 1]. It is 0 when no duration is set.
func (tl *Timeline) CurrentLoopProgress() float64 {
	if !tl.HasDuration() {
		return 0
	}
	return tl.currentTime / tl.duration
}

// TotalProgress returns the position across all passes in [0, 1]. ok is
// false when no duration is set or the timeline loops forever.
func (tl *Timeline) TotalProgress() (progress float64, ok bool) {
	if !tl.HasDuration() || tl.IsInfiniteLoop() {
		return 0, false
	}
	passes := 1
	if tl.loop {
		passes = tl.repeatCount
	}
	total := tl.duration * float64(passes)
	return (float64(tl.currentLoop)*tl.duration + tl.currentTime) / total, true
}

// elapsed returns the unwrapped position across passes.
func (tl *Timeline) elapsed() float64 {
	if tl.loop && tl.HasDuration() {
		return float64(tl.currentLoop)*tl.duration + tl.currentTime
	}
	return tl.currentTime
}

// resolve maps a candidate unwrapped time onto the clock according to the
// duration and loop settings, auto-stopping playback on completion.
func (tl *Timeline) resolve(tau float64) {
	prevLoop := tl.currentLoop
	wasComplete := tl.complete
	d := tl.duration

	switch {
	case d <= 0:
		tl.currentTime = math.Max(0, tau)
		tl.currentLoop = 0
		tl.complete = false

	case !tl.loop:
		tl.currentTime = math.Max(0, math.Min(tau, d))
		tl.currentLoop = 0
		tl.complete = tl.currentTime >= d

	case tl.repeatCount == 0:
		t := math.Max(0, tau)
		tl.currentLoop = int(math.Floor(t / d))
		tl.currentTime = math.Mod(t, d)
		tl.complete = false

	default:
		n := tl.repeatCount
		if tau >= d*float64(n) {
			tl.currentLoop = n - 1
			tl.currentTime = d
			tl.complete = true
			break
		}
		t := math.Max(0, tau)
		tl.currentLoop = int(math.Floor(t / d))
		tl.currentTime = t - float64(tl.currentLoop)*d
		tl.complete = false
	}

	if tl.currentLoop != prevLoop {
		emit(tl, &tl.events.Loop, LoopEvent{Timeline: tl, From: prevLoop, To: tl.currentLoop})
	}
	if tl.complete && !wasComplete {
		if tl.playing {
			tl.playing = false
			tl.paused = false
			tl.finished = true
			tl.Logger().Debug("tempo: complete, playback stopped", "timeline", tl.Name, "time", tl.currentTime)
		}
		emit(tl, &tl.events.Complete, CompleteEvent{Timeline: tl, Time: tl.currentTime})
	}
}
