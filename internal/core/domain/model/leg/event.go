package leg

import "time"

// Event is one immutable entry of a leg's history. Sequence starts at 1 with
// the creation event and equals the leg version the event was produced at.
type Event struct {
	sequence int
	status   Status
	note     string
	at       time.Time
}

// RestoreEvent rebuilds a persisted event.
func RestoreEvent(sequence int, status Status, note string, at time.Time) Event {
	return Event{sequence: sequence, status: status, note: note, at: at}
}

func (e Event) Sequence() int  { return e.sequence }
func (e Event) Status() Status { return e.status }
func (e Event) Note() string   { return e.note }
func (e Event) At() time.Time  { return e.at }
