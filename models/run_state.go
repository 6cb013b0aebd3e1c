package models

// RunState is the position of a sync run in its lifecycle.
type RunState int

const (
	RunInitializing RunState = iota
	RunFetchingBoth
	RunReconciling
	RunTransforming
	RunPushing
	RunPersisting
	RunFlushing
	RunDone
	RunFailed
)

var runStateNames = [...]string{
	RunInitializing: "initializing",
	RunFetchingBoth: "fetching",
	RunReconciling:  "reconciling",
	RunTransforming: "transforming",
	RunPushing:      "pushing",
	RunPersisting:   "persisting",
	RunFlushing:     "flushing",
	RunDone:         "done",
	RunFailed:       "failed",
}

func (s RunState) String() string {
	if s < 0 || int(s) >= len(runStateNames) {
		return "unknown"
	}
	return runStateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s RunState) Terminal() bool {
	return s == RunDone || s == RunFailed
}
