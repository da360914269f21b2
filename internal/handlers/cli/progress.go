package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gabapcia/txexport/internal/export"

	"github.com/briandowns/spinner"
)

// progressObserver renders the progress of a run as a terminal spinner.
// On outputs that are not terminals the spinner stays silent.
type progressObserver struct {
	mu       sync.Mutex
	spinner  *spinner.Spinner
	total    int
	done     int
	failed   int
	enriched int
	current  string
}

var _ export.Observer = (*progressObserver)(nil)

func (p *progressObserver) AddressStarted(_ context.Context, address string, _, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.current = address
	p.spinner.Start()
	p.refresh()
}

func (p *progressObserver) RecordsCounted(context.Context, string, int, bool) {}

func (p *progressObserver) RecordEnriched(context.Context, string, export.DecodedTransaction) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enriched++
	p.refresh()
}

func (p *progressObserver) AddressFinished(_ context.Context, report export.AddressReport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	if report.State == export.StateFailed {
		p.failed++
	}

	if p.done >= p.total {
		p.spinner.Stop()
		return
	}
	p.refresh()
}

// Stop halts the spinner if it is still running.
func (p *progressObserver) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.spinner.Stop()
}

// summary describes the progress made so far.
func (p *progressObserver) summary() string {
	return fmt.Sprintf(" %d/%d addresses (%d failed), %d transactions decoded, current %s",
		p.done, p.total, p.failed, p.enriched, p.current)
}

// refresh updates the spinner suffix. Callers hold p.mu.
func (p *progressObserver) refresh() {
	p.spinner.Lock()
	p.spinner.Suffix = p.summary()
	p.spinner.Unlock()
}

func newProgressObserver(w io.Writer) *progressObserver {
	return &progressObserver{
		spinner: spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w)),
	}
}
