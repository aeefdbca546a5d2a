package dnd

import (
	"log/slog"

	"github.com/google/uuid"
)

// session is the single live drag. It exists from a successful lift until the
// drop event has been dispatched.
type session[S any] struct {
	id      uuid.UUID
	adapter *Adapter[S]
	source  S
	state   SessionState

	initial  Location
	previous []*DropTargetRecord
	current  Location

	start frameTask
	drag  frameTask

	// monitors admitted by CanMonitor for this drag.
	monitors map[Handle]struct{}
	finished bool
}

func newSession[S any](a *Adapter[S], source S) *session[S] {
	frames := a.mgr.frames
	return &session[S]{
		id:       uuid.New(),
		adapter:  a,
		source:   source,
		start:    frameTask{frames: frames, oneShot: true},
		drag:     frameTask{frames: frames},
		monitors: make(map[Handle]struct{}),
	}
}

func (s *session[S]) logger() *slog.Logger {
	return s.adapter.mgr.logger.With("drag", s.id.String(), "type", s.adapter.dragType)
}

func (s *session[S]) info() SessionInfo {
	return SessionInfo{
		ID:    s.id,
		Type:  s.adapter.dragType,
		State: s.state,
		Location: LocationHistory{
			Initial:  s.initial,
			Previous: PreviousLocation{DropTargets: s.previous},
			Current:  s.current,
		},
	}
}

// begin resolves the initial chain from origin, admits monitors, publishes
// the preview event and defers the start event by one frame.
func (s *session[S]) begin(origin *Node, input Input) {
	s.initial = Location{
		Input:       input,
		DropTargets: s.adapter.resolve(origin, input, s.source, nil),
	}
	s.current = s.initial
	s.state = StateStarting
	for _, reg := range s.adapter.monitors.Snapshot() {
		s.considerMonitor(reg)
	}
	s.logger().Debug("dnd: drag lifted", nodeAttr(origin), "targets", len(s.initial.DropTargets))
	s.publish(EventGenerateDragPreview, s.current, s.source)
	if !s.finished {
		s.start.schedule(s.fireStart)
	}
}

// considerMonitor evaluates CanMonitor once and admits the monitor for the
// rest of the drag.
func (s *session[S]) considerMonitor(reg *Registration[MonitorOptions[S]]) {
	if reg == nil || s.finished {
		return
	}
	if fn := reg.Options.CanMonitor; fn != nil {
		if !fn(MonitorFeedback[S]{Initial: s.initial, Source: s.source}) {
			return
		}
	}
	s.monitors[reg.Handle] = struct{}{}
}

func (s *session[S]) fireStart() {
	if s.finished {
		return
	}
	s.state = StateActive
	s.publish(EventDragStart, s.current, s.source)
}

func (s *session[S]) fireDrag() {
	if s.finished {
		return
	}
	s.start.flush()
	if s.finished {
		return
	}
	s.publish(EventDrag, s.current, s.source)
}

// update re-resolves the chain for a new sample. A changed chain is published
// at once; a changed input only schedules a throttled drag event; an
// identical sample does nothing.
func (s *session[S]) update(hit *Node, input Input) {
	if s.finished {
		return
	}
	next := s.adapter.resolve(hit, input, s.source, s.current.DropTargets)
	if !sameTargets(s.current.DropTargets, next) {
		s.start.flush()
		s.drag.cancel()
		if s.finished {
			return
		}
		s.current = Location{Input: input, DropTargets: next}
		s.publish(EventDropTargetChange, s.current, s.source)
		return
	}

	changed := false
	if !sameStickiness(s.current.DropTargets, next) {
		s.current.DropTargets = next
		changed = true
	}
	if input != s.current.Input {
		s.current.Input = input
		changed = true
	}
	if changed {
		s.drag.schedule(s.fireDrag)
	}
}

// drop publishes the drop over the last published chain. Stickiness flips
// still waiting on a drag event are discarded with it.
func (s *session[S]) drop(input Input) {
	s.dropWithSource(input, s.source)
}

func (s *session[S]) dropWithSource(input Input, source S) {
	if s.finished {
		return
	}
	defer s.finish()
	s.start.flush()
	s.drag.cancel()
	if s.finished {
		return
	}
	s.current = Location{Input: input, DropTargets: s.previous}
	s.logger().Debug("dnd: drop", "targets", len(s.current.DropTargets))
	s.publish(EventDrop, s.current, source)
}

// cancel empties the chain (if needed) and publishes a drop with no targets.
func (s *session[S]) cancel() {
	if s.finished {
		return
	}
	defer s.finish()
	s.start.flush()
	s.drag.cancel()
	if s.finished {
		return
	}
	if len(s.previous) > 0 {
		s.current = Location{Input: s.current.Input, DropTargets: []*DropTargetRecord{}}
		s.publish(EventDropTargetChange, s.current, s.source)
		if s.finished {
			return
		}
	}
	s.logger().Debug("dnd: drag cancelled")
	s.publish(EventDrop, s.current, s.source)
}

func (s *session[S]) finish() {
	if s.finished {
		return
	}
	s.finished = true
	s.state = StateIdle
	s.start.cancel()
	s.drag.cancel()
	s.monitors = nil
	s.adapter.ended(s)
}
