// Package progress streams one JSON frame per completed cube-evaluation
// dispatch over an optional websocket connection. This is purely
// additive instrumentation around the evaluator's completion signal
// (spec SS4.5/SS5's "observable finished signal"); with no connection
// supplied, the evaluator behaves exactly as spec'd and this package
// does nothing.
//
// Grounded on worldgenerator_go's server.go, which guards a
// *websocket.Conn with its own sync.Mutex and calls conn.WriteJSON
// directly rather than running a write pump -- the same shape fits
// here since goqube only ever sends one frame per dispatch, never a
// stream the caller needs to read back.
package progress

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Frame is one completion notification: how many of the cube's points
// were evaluated, and how many there are in total (always equal today,
// since this engine reports only start-to-finish dispatches, never
// partial progress).
type Frame struct {
	Kind       string `json:"kind"` // "mo" or "density"
	PointsDone int    `json:"pointsDone"`
	PointsTotal int   `json:"pointsTotal"`
}

// Reporter streams Frames over a websocket connection supplied by the
// embedding program. The zero value (nil Conn) is a valid no-op
// reporter.
type Reporter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewReporter wraps an already-established connection. Passing nil
// yields a Reporter whose Send calls are no-ops.
func NewReporter(conn *websocket.Conn) *Reporter {
	return &Reporter{conn: conn}
}

// Send writes one frame, ignoring write errors beyond dropping the
// connection -- a lost progress frame never affects the underlying
// cube computation, which has already completed by the time Send is
// called.
func (r *Reporter) Send(f Frame) {
	if r == nil || r.conn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.conn.WriteJSON(f); err != nil {
		r.conn = nil
	}
}
