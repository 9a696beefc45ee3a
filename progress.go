package goqube

import (
	"github.com/gorilla/websocket"

	"github.com/mirzaeva/goqube/internal/progress"
)

// ProgressFrame is one completion notification an EvalOptions.Progress
// reporter sends after a ComputeMO/ComputeDensity dispatch finishes.
type ProgressFrame = progress.Frame

// ProgressReporter streams ProgressFrames over a websocket connection
// supplied by the embedding program. The zero value (from
// NewProgressReporter(nil)) is a valid no-op reporter.
type ProgressReporter = progress.Reporter

// NewProgressReporter wraps an already-established websocket connection.
// Passing nil yields a reporter whose Send calls are no-ops.
func NewProgressReporter(conn *websocket.Conn) *ProgressReporter {
	return progress.NewReporter(conn)
}
