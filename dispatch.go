package dnd

// publish dispatches one event to the source, then drop targets in bubble
// order, then monitors in registration order, and records its chain as the
// previous chain of the next event.
func (s *session[S]) publish(t EventType, current Location, source S) {
	a := s.adapter
	ev := Event[S]{
		Type:     t,
		DragID:   s.id,
		DragType: a.dragType,
		Source:   source,
		Location: LocationHistory{
			Initial:  s.initial,
			Previous: PreviousLocation{DropTargets: s.previous},
			Current:  current,
		},
	}
	s.previous = current.DropTargets

	if a.sourceHook != nil {
		a.sourceHook(ev)
	}
	a.dispatchTargets(ev)
	s.dispatchMonitors(ev)
	a.mgr.afterDispatch(t)
}

// targetCall is one drop target callback resolved before a dispatch pass.
type targetCall[S any] struct {
	handle Handle
	fn     func(DropTargetEvent[S])
	self   *DropTargetRecord
}

// dispatchTargets delivers ev to the drop targets it concerns. Calls are
// collected before any runs; a target unregistered by an earlier callback of
// the same pass is skipped.
func (a *Adapter[S]) dispatchTargets(ev Event[S]) {
	var calls []targetCall[S]
	if ev.Type == EventDropTargetChange {
		calls = a.changeCalls(ev.Location.Previous.DropTargets, ev.Location.Current.DropTargets)
	} else {
		for _, rec := range ev.Location.Current.DropTargets {
			reg, ok := a.targets.Lookup(rec.Node)
			if !ok {
				continue
			}
			if fn := reg.Options.handler(ev.Type); fn != nil {
				calls = append(calls, targetCall[S]{handle: reg.Handle, fn: fn, self: rec})
			}
		}
	}
	for _, c := range calls {
		if !a.targets.Alive(c.handle) {
			continue
		}
		c.fn(DropTargetEvent[S]{Event: ev, Self: c.self})
	}
}

// changeCalls orders the callbacks of a chain change: previous targets first
// (change, then leave if they are gone), then targets that joined (change,
// then enter). Both walks are innermost first.
func (a *Adapter[S]) changeCalls(previous, current []*DropTargetRecord) []targetCall[S] {
	var calls []targetCall[S]
	add := func(h Handle, fn func(DropTargetEvent[S]), self *DropTargetRecord) {
		if fn != nil {
			calls = append(calls, targetCall[S]{handle: h, fn: fn, self: self})
		}
	}
	for _, rec := range previous {
		reg, ok := a.targets.Lookup(rec.Node)
		if !ok {
			continue
		}
		add(reg.Handle, reg.Options.OnDropTargetChange, rec)
		if indexOfNode(current, rec.Node) < 0 {
			add(reg.Handle, reg.Options.OnDragLeave, rec)
		}
	}
	for _, rec := range current {
		if indexOfNode(previous, rec.Node) >= 0 {
			continue
		}
		reg, ok := a.targets.Lookup(rec.Node)
		if !ok {
			continue
		}
		add(reg.Handle, reg.Options.OnDropTargetChange, rec)
		add(reg.Handle, reg.Options.OnDragEnter, rec)
	}
	return calls
}

// dispatchMonitors delivers ev to admitted monitors in registration order.
// The list is copied first: monitors added by a callback wait for the next
// event, monitors removed by a callback are skipped.
func (s *session[S]) dispatchMonitors(ev Event[S]) {
	if len(s.monitors) == 0 {
		return
	}
	var active []*Registration[MonitorOptions[S]]
	for _, reg := range s.adapter.monitors.Snapshot() {
		if _, ok := s.monitors[reg.Handle]; ok {
			active = append(active, reg)
		}
	}
	for _, reg := range active {
		if _, ok := s.monitors[reg.Handle]; !ok {
			continue
		}
		if !s.adapter.monitors.Alive(reg.Handle) {
			continue
		}
		if fn := reg.Options.handler(ev.Type); fn != nil {
			fn(ev)
		}
	}
}
