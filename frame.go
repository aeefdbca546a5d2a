package dnd

// FrameID identifies a pending frame callback.
type FrameID uint64

// FrameSource is the "next frame" primitive the engine defers work to. The
// Scene ticks a FrameQueue once per Update; tests tick one by hand.
type FrameSource interface {
	// RequestFrame schedules fn for the next frame boundary.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending callback. Unknown or already run ids are ignored.
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a manually ticked FrameSource.
type FrameQueue struct {
	pending []frameRequest
	nextID  FrameID
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Tick.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a queued callback.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.pending {
		if q.pending[i].id == id {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = frameRequest{}
			q.pending = q.pending[:len(q.pending)-1]
			return
		}
	}
}

// Tick runs every callback queued before the call, in request order.
// Callbacks requested while ticking run on the following Tick; callbacks
// cancelled while ticking do not run.
func (q *FrameQueue) Tick() {
	if len(q.pending) == 0 {
		return
	}
	last := q.nextID
	for len(q.pending) > 0 && q.pending[0].id <= last {
		req := q.pending[0]
		copy(q.pending, q.pending[1:])
		q.pending[len(q.pending)-1] = frameRequest{}
		q.pending = q.pending[:len(q.pending)-1]
		req.fn()
	}
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// taskState is the lifecycle of a frameTask.
type taskState uint8

const (
	taskIdle      taskState = iota // nothing scheduled
	taskScheduled                  // waiting for a frame
	taskFlushed                    // ran (one-shot tasks stay here)
)

// frameTask defers a callback to the next frame and lets the engine run it
// early (flush) or drop it (cancel). A one-shot task runs at most once; a
// re-armable task returns to idle after running and keeps only the latest
// callback while scheduled, which is what throttles drag events to one per
// frame.
type frameTask struct {
	frames  FrameSource
	oneShot bool
	state   taskState
	id      FrameID
	fn      func()
}

// schedule arms the task. While scheduled, a new fn replaces the pending one
// without requesting another frame. One-shot tasks ignore calls after they
// ran.
func (t *frameTask) schedule(fn func()) {
	switch t.state {
	case taskScheduled:
		t.fn = fn
		return
	case taskFlushed:
		if t.oneShot {
			return
		}
	}
	t.fn = fn
	t.state = taskScheduled
	t.id = t.frames.RequestFrame(t.run)
}

// run is the frame callback.
func (t *frameTask) run() {
	if t.state != taskScheduled {
		return
	}
	t.complete()
}

// flush runs a scheduled callback now and withdraws its frame request.
func (t *frameTask) flush() {
	if t.state != taskScheduled {
		return
	}
	t.frames.CancelFrame(t.id)
	t.complete()
}

// cancel withdraws a scheduled callback without running it.
func (t *frameTask) cancel() {
	if t.state != taskScheduled {
		return
	}
	t.frames.CancelFrame(t.id)
	t.fn = nil
	t.state = taskIdle
}

// pending reports whether a callback is waiting for a frame.
func (t *frameTask) pending() bool {
	return t.state == taskScheduled
}

func (t *frameTask) complete() {
	fn := t.fn
	t.fn = nil
	if t.oneShot {
		t.state = taskFlushed
	} else {
		t.state = taskIdle
	}
	fn()
}
