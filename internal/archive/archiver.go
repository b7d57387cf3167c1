// Package archive downloads deck artwork into a single ZIP archive.
package archive

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"ygodeck/internal/deck"
	"ygodeck/internal/diag"
)

// Defaults for the download pool
const (
	DefaultWorkers          = 3
	DefaultConfirmThreshold = 10
)

// Failure records one image that could not be added
type Failure struct {
	Name string
	URL  string
	Err  error
}

// Report summarises a finished download
type Report struct {
	Filename string
	Copies   int
	Added    int
	Failed   []Failure
}

// Option configures an Archiver
type Option func(*Archiver)

// WithWorkers sets the pool size. It never exceeds DefaultWorkers.
func WithWorkers(n int) Option {
	return func(a *Archiver) {
		if n > 0 {
			a.workers = min(n, DefaultWorkers)
		}
	}
}

// WithConfirmThreshold sets how many images may be fetched without asking
func WithConfirmThreshold(n int) Option {
	return func(a *Archiver) { a.threshold = n }
}

// WithConfirmer sets who is asked above the threshold. Without one, large
// downloads are cancelled.
func WithConfirmer(c Confirmer) Option {
	return func(a *Archiver) { a.confirm = c }
}

// WithBuilder replaces the ZIP builder factory
func WithBuilder(newBuilder func() Builder) Option {
	return func(a *Archiver) { a.newBuilder = newBuilder }
}

// Archiver fetches every copy in a deck and hands the archive to a sink
type Archiver struct {
	fetcher    Fetcher
	sink       Sink
	confirm    Confirmer
	newBuilder func() Builder
	workers    int
	threshold  int

	busy atomic.Bool
}

// New creates an Archiver
func New(fetcher Fetcher, sink Sink, opts ...Option) *Archiver {
	a := &Archiver{
		fetcher:    fetcher,
		sink:       sink,
		newBuilder: NewZipBuilder,
		workers:    DefaultWorkers,
		threshold:  DefaultConfirmThreshold,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NeedsConfirmation reports whether downloading copies images must be
// confirmed first
func (a *Archiver) NeedsConfirmation(copies int) bool {
	return copies > a.threshold
}

type job struct {
	entry deck.Entry
}

// Download fetches one image per copy in entries and delivers the archive
// as deck_<mode>_images.zip. Individual failures are collected in the
// report; they never stop the other workers.
func (a *Archiver) Download(ctx context.Context, mode deck.Mode, entries []deck.Entry) (*Report, error) {
	copies := deck.Copies(entries)
	if len(copies) == 0 {
		return nil, deck.EmptyDeckError()
	}

	if !a.busy.CompareAndSwap(false, true) {
		return nil, diag.New(ErrBusy, diag.MsgDownloadBusy)
	}
	defer a.busy.Store(false)

	if a.NeedsConfirmation(len(copies)) {
		if a.confirm == nil || !a.confirm.Confirm(len(copies)) {
			log.Printf("🚫 %s deck image download cancelled (%d images)", mode, len(copies))
			return nil, diag.New(ErrCancelled, diag.MsgCancelled)
		}
	}

	queue := make(chan job, len(copies))
	for _, e := range copies {
		queue <- job{entry: e}
	}
	close(queue)

	builder := a.newBuilder()
	report := &Report{
		Filename: "deck_" + string(mode) + "_images.zip",
		Copies:   len(copies),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	workers := min(a.workers, len(copies))
	log.Printf("📦 Downloading %d images for %s deck with %d workers", len(copies), mode, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				e := j.entry
				data, err := a.fetch(ctx, e)
				mu.Lock()
				if err == nil {
					err = builder.Add(EntryPath(e.Name, e.ImageURL), data)
				}
				if err != nil {
					log.Printf("⚠️ failed to fetch image for %s: %v", e.Name, err)
					report.Failed = append(report.Failed, Failure{Name: e.Name, URL: e.ImageURL, Err: err})
				} else {
					report.Added++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := builder.Finalize()
	if err != nil {
		return nil, err
	}
	if err := a.sink.Deliver(report.Filename, data); err != nil {
		return nil, err
	}

	if len(report.Failed) > 0 {
		log.Printf("⚠️ %d of %d images failed for %s deck", len(report.Failed), report.Copies, mode)
	} else {
		log.Printf("✅ %s written with %d images", report.Filename, report.Added)
	}
	return report, nil
}

func (a *Archiver) fetch(ctx context.Context, e deck.Entry) ([]byte, error) {
	if e.ImageURL == "" {
		return nil, ErrMissingURL
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.fetcher.Fetch(ctx, e.ImageURL)
}

// Summary is the user message for a report with failures, or "" when
// every image was added
func (r *Report) Summary() string {
	if r == nil || len(r.Failed) == 0 {
		return ""
	}
	return fmt.Sprintf(diag.MsgPartialFail, len(r.Failed))
}
