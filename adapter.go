package dnd

// Adapter is the engine for one drag type. It owns the drop target and
// monitor registries of that type and the session while one of its drags is
// active. ElementAdapter, ExternalAdapter and TextSelectionAdapter embed it
// and add the matching way to start a drag.
type Adapter[S any] struct {
	mgr      *Manager
	dragType DragType
	targets  *Registry[DropTargetOptions[S]]
	monitors *Registry[MonitorOptions[S]]
	session  *session[S]

	// sourceHook delivers events to the drag source before drop targets.
	// Only element drags have a registered source.
	sourceHook func(Event[S])
}

func newAdapter[S any](m *Manager, t DragType) *Adapter[S] {
	return &Adapter[S]{
		mgr:      m,
		dragType: t,
		targets:  NewRegistry[DropTargetOptions[S]](KindTarget, m.logger),
		monitors: NewRegistry[MonitorOptions[S]](KindMonitor, m.logger),
	}
}

// Manager returns the coordinator the adapter starts sessions on.
func (a *Adapter[S]) Manager() *Manager {
	return a.mgr
}

// DragType returns the drag type this adapter handles.
func (a *Adapter[S]) DragType() DragType {
	return a.dragType
}

// DropTarget registers opts.Node as a drop target for this drag type.
// A target registered during a drag becomes eligible on the next update.
func (a *Adapter[S]) DropTarget(opts DropTargetOptions[S]) CleanupFunc {
	return a.targets.Register(opts.Node, opts)
}

// Monitor registers an observer of every drag of this type. A monitor
// registered during a drag is considered for that drag right away but is not
// called for the event being dispatched.
func (a *Adapter[S]) Monitor(opts MonitorOptions[S]) CleanupFunc {
	reg, _ := a.monitors.add(nil, opts)
	if a.session != nil {
		a.session.considerMonitor(reg)
	}
	h := reg.Handle
	return func() {
		a.monitors.remove(h)
		if a.session != nil {
			delete(a.session.monitors, h)
		}
	}
}

// Dragging reports whether a drag of this type is active and returns its source.
func (a *Adapter[S]) Dragging() (S, bool) {
	if a.session == nil {
		var zero S
		return zero, false
	}
	return a.session.source, true
}

// start claims the manager for a new drag and publishes the preview event.
// The initial chain is resolved from origin's ancestors.
func (a *Adapter[S]) start(source S, origin *Node, input Input) bool {
	if a.busy(origin) {
		return false
	}
	s := newSession(a, source)
	if !a.mgr.claim(s) {
		return false
	}
	a.session = s
	s.begin(origin, input)
	return true
}

// busy reports, with a warning, that another drag holds the manager.
func (a *Adapter[S]) busy(origin *Node) bool {
	if a.mgr.CanStart() {
		return false
	}
	a.mgr.logger.Warn("dnd: a drag is already active; ignoring lift",
		"type", a.dragType, nodeAttr(origin))
	return true
}

// ended is called by a session on its way out.
func (a *Adapter[S]) ended(s *session[S]) {
	if a.session == s {
		a.session = nil
	}
	a.mgr.release(s)
}
