package export

import (
	"context"
	"time"
)

// AddressReport describes how a single address went through a run.
type AddressReport struct {
	Address    string       // normalized address
	State      AddressState // StatePersisted or StateFailed once the run is over
	Count      int          // matching records, capped at the retrieval limit
	Truncated  bool         // the store holds more records than the retrieval limit
	Enriched   int          // transactions decoded successfully
	Failed     int          // transactions recorded as failure markers
	Err        error        // reason of the failure when State is StateFailed
	StartedAt  time.Time
	FinishedAt time.Time
}

// Report summarizes a whole run. Addresses follows the normalized input order.
type Report struct {
	RunID      string
	NoInput    bool
	Addresses  []AddressReport
	StartedAt  time.Time
	FinishedAt time.Time
}

// AddressesProcessed returns how many address results were persisted.
func (r Report) AddressesProcessed() int {
	return r.StateCounts()[StatePersisted]
}

// AddressesFailed returns how many addresses ended without a persisted result.
func (r Report) AddressesFailed() int {
	return len(r.Addresses) - r.AddressesProcessed()
}

// TransactionsWritten returns the number of decoded transactions in persisted results.
func (r Report) TransactionsWritten() int {
	var total int
	for _, a := range r.Addresses {
		if a.State == StatePersisted {
			total += a.Enriched
		}
	}
	return total
}

// TransactionsFailed returns the number of failure markers in persisted results.
func (r Report) TransactionsFailed() int {
	var total int
	for _, a := range r.Addresses {
		if a.State == StatePersisted {
			total += a.Failed
		}
	}
	return total
}

// StateCounts returns how many addresses ended in each state.
func (r Report) StateCounts() map[AddressState]int {
	counts := make(map[AddressState]int)
	for _, a := range r.Addresses {
		counts[a.State]++
	}
	return counts
}

// Observer receives progress events emitted during a run.
//
// Observers are notified from several goroutines when addresses are processed
// concurrently and must be safe for concurrent use. They must not block for
// long, and they never influence the outcome of the run.
type Observer interface {
	// AddressStarted is called when an address starts being processed.
	// index is the position of the address in the normalized input of size total.
	AddressStarted(ctx context.Context, address string, index, total int)

	// RecordsCounted is called once the number of records to enrich is known.
	RecordsCounted(ctx context.Context, address string, count int, truncated bool)

	// RecordEnriched is called for every transaction processed, including failure markers.
	RecordEnriched(ctx context.Context, address string, tx DecodedTransaction)

	// AddressFinished is called once the address reached a terminal state.
	AddressFinished(ctx context.Context, report AddressReport)
}

// nopObserver ignores every event.
type nopObserver struct{}

func (nopObserver) AddressStarted(context.Context, string, int, int) {}
func (nopObserver) RecordsCounted(context.Context, string, int, bool) {}
func (nopObserver) RecordEnriched(context.Context, string, DecodedTransaction) {}
func (nopObserver) AddressFinished(context.Context, AddressReport) {}

// observers fans events out to several observers, in order.
type observers []Observer

// Observers combines several observers into one. Nil entries are skipped.
func Observers(obs ...Observer) Observer {
	combined := make(observers, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			combined = append(combined, o)
		}
	}

	switch len(combined) {
	case 0:
		return nopObserver{}
	case 1:
		return combined[0]
	default:
		return combined
	}
}

func (o observers) AddressStarted(ctx context.Context, address string, index, total int) {
	for _, obs := range o {
		obs.AddressStarted(ctx, address, index, total)
	}
}

func (o observers) RecordsCounted(ctx context.Context, address string, count int, truncated bool) {
	for _, obs := range o {
		obs.RecordsCounted(ctx, address, count, truncated)
	}
}

func (o observers) RecordEnriched(ctx context.Context, address string, tx DecodedTransaction) {
	for _, obs := range o {
		obs.RecordEnriched(ctx, address, tx)
	}
}

func (o observers) AddressFinished(ctx context.Context, report AddressReport) {
	for _, obs := range o {
		obs.AddressFinished(ctx, report)
	}
}

var (
	_ Observer = nopObserver{}
	_ Observer = observers{}
)
