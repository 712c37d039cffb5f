package core

import "fmt"

// Event is one contiguous interval of CPU ownership.
type Event struct {
	ProcessID int  `json:"process_id" yaml:"process_id"`
	Idle      bool `json:"idle" yaml:"idle"`
	Start     int  `json:"start" yaml:"start"`
	Duration  int  `json:"duration" yaml:"duration"`
}

// End is the first tick after the event.
func (e Event) End() int {
	return e.Start + e.Duration
}

// Label is "Idle" or the owning process label.
func (e Event) Label() string {
	if e.Idle {
		return "Idle"
	}
	return fmt.Sprintf("P%d", e.ProcessID)
}

func (e Event) sameOwner(o Event) bool {
	return e.Idle == o.Idle && (e.Idle || e.ProcessID == o.ProcessID)
}

// Timeline is the append-only Gantt chart of a single run.
type Timeline struct {
	events []Event
}

func NewTimeline() *Timeline {
	return &Timeline{events: make([]Event, 0)}
}

// Run records that process id held the CPU for d ticks starting at start.
func (t *Timeline) Run(id, start, d int) {
	t.append(Event{ProcessID: id, Start: start, Duration: d})
}

// Idle records d ticks with nothing to run.
func (t *Timeline) Idle(start, d int) {
	t.append(Event{Idle: true, Start: start, Duration: d})
}

func (t *Timeline) append(e Event) {
	if e.Duration <= 0 {
		return
	}
	if n := len(t.events); n > 0 && e.Start < t.events[n-1].End() {
		panic(fmt.Sprintf("timeline: event at %d overlaps previous ending at %d", e.Start, t.events[n-1].End()))
	}
	t.events = append(t.events, e)
}

// Events returns the recorded events in start order.
func (t *Timeline) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Len is the number of recorded events.
func (t *Timeline) Len() int {
	return len(t.events)
}

// Merged returns the events with adjacent same-owner intervals joined.
func (t *Timeline) Merged() []Event {
	return Merge(t.events)
}

// End is the tick at which the last event finishes.
func (t *Timeline) End() int {
	if len(t.events) == 0 {
		return 0
	}
	return t.events[len(t.events)-1].End()
}

// BusyTicks sums the durations of non-idle events.
func (t *Timeline) BusyTicks() int {
	busy := 0
	for _, e := range t.events {
		if !e.Idle {
			busy += e.Duration
		}
	}
	return busy
}

// Fragments counts the distinct execution intervals of a process after merging.
func (t *Timeline) Fragments(id int) int {
	n := 0
	for _, e := range t.Merged() {
		if !e.Idle && e.ProcessID == id {
			n++
		}
	}
	return n
}

// Merge joins adjacent events that share an owner and touch.
func Merge(events []Event) []Event {
	merged := make([]Event, 0, len(events))
	for _, e := range events {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.sameOwner(e) && last.End() == e.Start {
				last.Duration += e.Duration
				continue
			}
		}
		merged = append(merged, e)
	}
	return merged
}
