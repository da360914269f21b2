package export

import "time"

// AddressState is a step of the per-address processing lifecycle.
type AddressState string

const (
	StatePending    AddressState = "pending"
	StateFetching   AddressState = "fetching"
	StateEnriching  AddressState = "enriching"
	StateFinalizing AddressState = "finalizing"
	StatePersisted  AddressState = "persisted"
	StateFailed     AddressState = "failed"
)

// terminal reports whether no further transition is allowed from s.
func (s AddressState) terminal() bool {
	return s == StatePersisted || s == StateFailed
}

// addressProcessingState tracks the lifecycle of a single address inside a run:
// its position in the input, the current state, when each state was entered,
// what was found in the record source and the finalized result.
//
// A state is owned by one goroutine at a time: the address worker until the
// state is handed to the ordering stage, then the ordering stage.
type addressProcessingState struct {
	index     int                        // position of the address in the normalized input
	address   string                     // normalized address
	state     AddressState               // current lifecycle step
	enteredAt map[AddressState]time.Time // when each state was entered
	count     int                        // capped number of matching records
	truncated bool                       // more records exist than the retrieval limit
	lastError error                      // reason of the failure, if any
	result    AddressResult              // finalized result (set in StateFinalizing)
	enriched  int                        // decoded transactions in result
	failed    int                        // failure markers in result
}

// newAddressProcessingState creates a pending state for the address at index.
func newAddressProcessingState(index int, address string) *addressProcessingState {
	return &addressProcessingState{
		index:     index,
		address:   address,
		state:     StatePending,
		enteredAt: map[AddressState]time.Time{StatePending: time.Now().UTC()},
	}
}

// transition moves the state forward. It is a no-op once the state is terminal.
func (s *addressProcessingState) transition(to AddressState) {
	if s.state.terminal() {
		return
	}

	s.state = to
	s.enteredAt[to] = time.Now().UTC()
}

// recordCount stores what the record source reported for the address.
func (s *addressProcessingState) recordCount(count int, truncated bool) {
	s.count = count
	s.truncated = truncated
}

// fail moves the state to StateFailed, recording err.
// It is a no-op once the state is terminal.
func (s *addressProcessingState) fail(err error) {
	if s.state.terminal() {
		return
	}

	s.lastError = err
	s.transition(StateFailed)
}

// finalize stores the completed result and moves the state to StateFinalizing.
func (s *addressProcessingState) finalize(result AddressResult) {
	if s.state.terminal() {
		return
	}

	s.result = result
	s.enriched, s.failed = result.Counts()
	s.transition(StateFinalizing)
}

// finalized reports whether the result is complete and waiting to be persisted.
func (s *addressProcessingState) finalized() bool {
	return s.state == StateFinalizing
}

// asReport converts the state into the externally visible AddressReport.
func (s *addressProcessingState) asReport() AddressReport {
	report := AddressReport{
		Address:   s.address,
		State:     s.state,
		Count:     s.count,
		Truncated: s.truncated,
		Enriched:  s.enriched,
		Failed:    s.failed,
		Err:       s.lastError,
		StartedAt: s.enteredAt[StatePending],
	}

	if s.state.terminal() {
		report.FinishedAt = s.enteredAt[s.state]
	}

	return report
}

// markPersisted moves a finalized state to StatePersisted.
func (s *addressProcessingState) markPersisted() {
	if !s.finalized() {
		return
	}

	s.transition(StatePersisted)
}
