package lifecycle

import "go.uber.org/atomic"

// BootState is the stage of the boot sequence the server is in
type BootState int32

const (
	Starting BootState = iota
	ListeningDBPending
	ListeningDBReady
	ListeningDBFailed
)

func (s BootState) String() string {
	switch s {
	case Starting:
		return "Starting"
	case ListeningDBPending:
		return "Listening-DBPending"
	case ListeningDBReady:
		return "Listening-DBReady"
	case ListeningDBFailed:
		return "Listening-DBFailed"
	default:
		return "Unknown"
	}
}

// Tracker holds the current BootState. It is safe for concurrent use.
type Tracker struct {
	state *atomic.Int32
}

func NewTracker() *Tracker {
	return &Tracker{
		state: atomic.NewInt32(int32(Starting)),
	}
}

func (t *Tracker) Current() BootState {
	return BootState(t.state.Load())
}

func (t *Tracker) Set(state BootState) {
	t.state.Store(int32(state))
}
