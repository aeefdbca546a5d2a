package dnd

import (
	"log/slog"

	"github.com/google/uuid"
)

// SessionState is the state of the drag lifecycle.
type SessionState uint8

const (
	StateIdle     SessionState = iota // no drag
	StateStarting                     // lifted; the start event is waiting for a frame
	StateActive                       // started; updates flow until drop or cancel
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Config configures a Manager.
type Config struct {
	// Frames is the next-frame primitive. Defaults to a FrameQueue that the
	// owner advances with Manager.Tick.
	Frames FrameSource
	// Logger receives misuse diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// SessionInfo describes the active drag.
type SessionInfo struct {
	ID       uuid.UUID
	Type     DragType
	State    SessionState
	Location LocationHistory
}

// activeSession is the type-erased view of a session[S] the Manager holds.
type activeSession interface {
	info() SessionInfo
	update(hit *Node, input Input)
	drop(input Input)
	cancel()
}

type postDispatchHook struct {
	id uint32
	fn func(EventType)
}

// Manager coordinates drags across all drag types. It holds the only active
// session (or none) and the frame source every session defers work to.
//
// A Manager is not safe for concurrent use; drive it from one goroutine, such
// as an ebiten Update loop.
type Manager struct {
	frames FrameSource
	queue  *FrameQueue // non-nil when frames was defaulted
	logger *slog.Logger
	active activeSession

	hooks    []postDispatchHook
	nextHook uint32
}

// NewManager creates a Manager.
func NewManager(cfg Config) *Manager {
	m := &Manager{frames: cfg.Frames, logger: cfg.Logger}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.frames == nil {
		m.queue = NewFrameQueue()
		m.frames = m.queue
	}
	return m
}

// Logger returns the diagnostic logger.
func (m *Manager) Logger() *slog.Logger {
	return m.logger
}

// Tick advances the default frame queue. It is a no-op when Config.Frames
// was supplied; that source is advanced by its owner.
func (m *Manager) Tick() {
	if m.queue != nil {
		m.queue.Tick()
	}
}

// CanStart reports whether a new drag may claim the current gesture.
func (m *Manager) CanStart() bool {
	return m.active == nil
}

// IsDragging reports whether a drag is in progress.
func (m *Manager) IsDragging() bool {
	return m.active != nil
}

// State returns the lifecycle state of the active drag, or StateIdle.
func (m *Manager) State() SessionState {
	if m.active == nil {
		return StateIdle
	}
	return m.active.info().State
}

// Active returns a description of the active drag.
func (m *Manager) Active() (SessionInfo, bool) {
	if m.active == nil {
		return SessionInfo{}, false
	}
	return m.active.info(), true
}

// Update feeds a pointer sample with the node the host hit-tested under it.
// hit may be nil when the pointer is over empty space.
func (m *Manager) Update(hit *Node, input Input) {
	if m.active == nil {
		return
	}
	m.active.update(hit, input)
}

// Drop ends the active drag over the last published drop targets.
func (m *Manager) Drop(input Input) {
	if m.active == nil {
		m.logger.Debug("dnd: drop without an active drag")
		return
	}
	m.active.drop(input)
}

// Cancel aborts the active drag. Drop targets first see the chain empty,
// then the drop event with no targets.
func (m *Manager) Cancel() {
	if m.active == nil {
		return
	}
	m.active.cancel()
}

// OnPostDispatch registers fn to run after every dispatch pass with the type
// of the event just published.
func (m *Manager) OnPostDispatch(fn func(EventType)) CleanupFunc {
	m.nextHook++
	id := m.nextHook
	m.hooks = append(m.hooks, postDispatchHook{id: id, fn: fn})
	return func() {
		for i := range m.hooks {
			if m.hooks[i].id == id {
				copy(m.hooks[i:], m.hooks[i+1:])
				m.hooks[len(m.hooks)-1] = postDispatchHook{}
				m.hooks = m.hooks[:len(m.hooks)-1]
				return
			}
		}
	}
}

func (m *Manager) afterDispatch(t EventType) {
	if len(m.hooks) == 0 {
		return
	}
	hooks := make([]postDispatchHook, len(m.hooks))
	copy(hooks, m.hooks)
	for _, h := range hooks {
		h.fn(t)
	}
}

// claim makes s the active session. Fails when another session is active.
func (m *Manager) claim(s activeSession) bool {
	if m.active != nil {
		return false
	}
	m.active = s
	return true
}

// release clears s if it is still the active session.
func (m *Manager) release(s activeSession) {
	if m.active == s {
		m.active = nil
	}
}
