package tempo

import "log/slog"

// EventKind identifies a kind of timeline event.
type EventKind uint8

const (
	EventPlay             EventKind = iota // playback started or resumed
	EventPause                             // playback paused
	EventStop                              // playback stopped and rewound
	EventSeek                              // current time set explicitly
	EventTimeUpdate                        // fires once per Update, after children were updated
	EventLoop                              // current loop index changed
	EventComplete                          // a finite timeline reached its end
	EventChildAdded                        // a child timeline was attached
	EventChildRemoved                      // a child timeline was detached
	EventObjectAdded                       // a target was attached
	EventObjectRemoved                     // a target was detached
	EventDurationChanged                   // duration changed
	EventFramerateChanged                  // framerate changed
	EventTimeScaleChanged                  // time scale changed
)

var eventKindNames = [...]string{
	EventPlay:             "play",
	EventPause:            "pause",
	EventStop:             "stop",
	EventSeek:             "seek",
	EventTimeUpdate:       "timeUpdate",
	EventLoop:             "loop",
	EventComplete:         "complete",
	EventChildAdded:       "childAdded",
	EventChildRemoved:     "childRemoved",
	EventObjectAdded:      "objectAdded",
	EventObjectRemoved:    "objectRemoved",
	EventDurationChanged:  "durationChanged",
	EventFramerateChanged: "framerateChanged",
	EventTimeScaleChanged: "timeScaleChanged",
}

// String returns the event name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is implemented by every timeline event type. Switch on the concrete
// type, or on Kind, to tell them apart.
type Event interface {
	Kind() EventKind
	Source() *Timeline
}

// PlayEvent fires when a timeline starts or resumes playing.
type PlayEvent struct {
	Timeline *Timeline
	Time     float64
}

// PauseEvent fires when a playing timeline is paused.
type PauseEvent struct {
	Timeline *Timeline
	Time     float64
}

// StopEvent fires when a timeline is stopped and rewound.
type StopEvent struct {
	Timeline *Timeline
}

// SeekEvent carries the current time before and after a seek.
type SeekEvent struct {
	Timeline *Timeline
	From, To float64
}

// TimeUpdateEvent reports the time a timeline settled on for one update.
type TimeUpdateEvent struct {
	Timeline *Timeline
	Time     float64
	Loop     int
}

// LoopEvent carries the loop index before and after it changed.
type LoopEvent struct {
	Timeline *Timeline
	From, To int
}

// CompleteEvent fires when a timeline with a finite span reaches its end.
type CompleteEvent struct {
	Timeline *Timeline
	Time     float64
}

// ChildAddedEvent fires on the parent when a child is attached.
type ChildAddedEvent struct {
	Timeline *Timeline
	Child    *Timeline
}

// ChildRemovedEvent fires on the parent when a child is detached.
type ChildRemovedEvent struct {
	Timeline *Timeline
	Child    *Timeline
}

// ObjectAddedEvent fires when a target is attached.
type ObjectAddedEvent struct {
	Timeline *Timeline
	Target   Target
}

// ObjectRemovedEvent fires when a target is detached.
type ObjectRemovedEvent struct {
	Timeline *Timeline
	Target   Target
}

// DurationChangedEvent carries the old and new duration; 0 means unset.
type DurationChangedEvent struct {
	Timeline *Timeline
	Old, New float64
}

// FramerateChangedEvent carries the old and new framerate.
type FramerateChangedEvent struct {
	Timeline *Timeline
	Old, New float64
}

// TimeScaleChangedEvent carries the old and new time scale.
type TimeScaleChangedEvent struct {
	Timeline *Timeline
	Old, New float64
}

func (e PlayEvent) Kind() EventKind             { return EventPlay }
func (e PauseEvent) Kind() EventKind            { return EventPause }
func (e StopEvent) Kind() EventKind             { return EventStop }
func (e SeekEvent) Kind() EventKind             { return EventSeek }
func (e TimeUpdateEvent) Kind() EventKind       { return EventTimeUpdate }
func (e LoopEvent) Kind() EventKind             { return EventLoop }
func (e CompleteEvent) Kind() EventKind         { return EventComplete }
func (e ChildAddedEvent) Kind() EventKind       { return EventChildAdded }
func (e ChildRemovedEvent) Kind() EventKind     { return EventChildRemoved }
func (e ObjectAddedEvent) Kind() EventKind      { return EventObjectAdded }
func (e ObjectRemovedEvent) Kind() EventKind    { return EventObjectRemoved }
func (e DurationChangedEvent) Kind() EventKind  { return EventDurationChanged }
func (e FramerateChangedEvent) Kind() EventKind { return EventFramerateChanged }
func (e TimeScaleChangedEvent) Kind() EventKind { return EventTimeScaleChanged }

func (e PlayEvent) Source() *Timeline             { return e.Timeline }
func (e PauseEvent) Source() *Timeline            { return e.Timeline }
func (e StopEvent) Source() *Timeline             { return e.Timeline }
func (e SeekEvent) Source() *Timeline             { return e.Timeline }
func (e TimeUpdateEvent) Source() *Timeline       { return e.Timeline }
func (e LoopEvent) Source() *Timeline             { return e.Timeline }
func (e CompleteEvent) Source() *Timeline         { return e.Timeline }
func (e ChildAddedEvent) Source() *Timeline       { return e.Timeline }
func (e ChildRemovedEvent) Source() *Timeline     { return e.Timeline }
func (e ObjectAddedEvent) Source() *Timeline      { return e.Timeline }
func (e ObjectRemovedEvent) Source() *Timeline    { return e.Timeline }
func (e DurationChangedEvent) Source() *Timeline  { return e.Timeline }
func (e FramerateChangedEvent) Source() *Timeline { return e.Timeline }
func (e TimeScaleChangedEvent) Source() *Timeline { return e.Timeline }

// Events holds one channel per timeline event, plus All, which receives every
// event after its dedicated channel.
//
// Events are observational only; listeners must not expect their side
// effects to alter the tick in progress.
type Events struct {
	All Channel[Event]

	Play       Channel[PlayEvent]
	Pause      Channel[PauseEvent]
	Stop       Channel[StopEvent]
	Seek       Channel[SeekEvent]
	TimeUpdate Channel[TimeUpdateEvent]
	Loop       Channel[LoopEvent]
	Complete   Channel[CompleteEvent]

	ChildAdded    Channel[ChildAddedEvent]
	ChildRemoved  Channel[ChildRemovedEvent]
	ObjectAdded   Channel[ObjectAddedEvent]
	ObjectRemoved Channel[ObjectRemovedEvent]

	DurationChanged  Channel[DurationChangedEvent]
	FramerateChanged Channel[FramerateChangedEvent]
	TimeScaleChanged Channel[TimeScaleChangedEvent]
}

// bind points every channel's panic logging at the owning timeline.
func (ev *Events) bind(logger func() *slog.Logger) {
	ev.All.owner = logger
	ev.Play.owner = logger
	ev.Pause.owner = logger
	ev.Stop.owner = logger
	ev.Seek.owner = logger
	ev.TimeUpdate.owner = logger
	ev.Loop.owner = logger
	ev.Complete.owner = logger
	ev.ChildAdded.owner = logger
	ev.ChildRemoved.owner = logger
	ev.ObjectAdded.owner = logger
	ev.ObjectRemoved.owner = logger
	ev.DurationChanged.owner = logger
	ev.FramerateChanged.owner = logger
	ev.TimeScaleChanged.owner = logger
}

// emit delivers e on its dedicated channel, then on All.
func emit[E Event](tl *Timeline, ch *Channel[E], e E) {
	ch.Emit(e)
	tl.events.All.Emit(e)
}
