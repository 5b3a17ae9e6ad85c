package cluster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrCompute marks unexpected faults during the clustering computation,
// including cancellation of the surrounding context.
var ErrCompute = errors.New("clustering computation failed")

// ProgressInfo reports pairwise-scan progress to an optional callback.
// Current counts completed outer rows of the triangular scan.
type ProgressInfo struct {
	Phase   string // "pairwise"
	Current int
	Total   int
}

// Options configure a Clusterer. The zero value runs a serial scan with a
// discarded logger and no progress reporting.
type Options struct {
	// Concurrency partitions the pairwise scan across workers when > 1.
	// Unions are always applied serially; this never changes the result.
	Concurrency int
	Logger      *slog.Logger
	OnProgress  func(ProgressInfo)
}

// Clusterer computes relationship sets for a static set of file records.
type Clusterer struct {
	thresholds Thresholds
	opts       Options
	log        *slog.Logger
}

func New(thresholds Thresholds, opts Options) *Clusterer {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Clusterer{
		thresholds: thresholds,
		opts:       opts,
		log:        log,
	}
}

// edge is one adjacency observation between two file keys.
type edge struct {
	a, b     int
	time     bool
	location bool
}

// Run evaluates every distinct pair, builds the transitive closures, and
// composes the event candidates. Input records must have dense keys 0..n-1
// in slice order.
func (c *Clusterer) Run(ctx context.Context, files []FileRecord) (*Result, error) {
	n := len(files)
	timeUF := newUnionFind(n)
	locUF := newUnionFind(n)

	c.log.Info("starting pairwise scan",
		slog.Int("files", n),
		slog.Float64("time_threshold_seconds", c.thresholds.TimeSeconds),
		slog.Float64("location_threshold_km", c.thresholds.LocationKm),
	)

	var err error
	if c.opts.Concurrency > 1 {
		err = c.scanParallel(ctx, files, timeUF, locUF)
	} else {
		err = c.scanSerial(ctx, files, timeUF, locUF)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files:           files,
		TimeClasses:     timeUF.classes(),
		LocationClasses: locUF.classes(),
	}
	result.EventClasses = composeEvents(result.TimeClasses, result.LocationClasses)
	result.Stats = collectStatistics(files, result)

	c.log.Info("clustering finished",
		slog.Int("time_sets", result.Stats.TimeSets),
		slog.Int("location_sets", result.Stats.LocationSets),
		slog.Int("event_sets", result.Stats.EventSets),
	)

	return result, nil
}

func (c *Clusterer) reportProgress(current, total int) {
	if c.opts.OnProgress != nil {
		c.opts.OnProgress(ProgressInfo{Phase: "pairwise", Current: current, Total: total})
	}
}

// scanSerial walks the n*(n-1)/2 triangle in one goroutine.
func (c *Clusterer) scanSerial(ctx context.Context, files []FileRecord, timeUF, locUF *unionFind) error {
	n := len(files)
	for i := range n {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrCompute, err)
		}
		for j := i + 1; j < n; j++ {
			if TimeEdge(files[i], files[j], c.thresholds.TimeSeconds) {
				timeUF.union(i, j)
			}
			if LocationEdge(files[i], files[j], c.thresholds.LocationKm) {
				locUF.union(i, j)
			}
		}
		c.reportProgress(i+1, n)
	}
	return nil
}

// scanParallel partitions the outer index across workers that only evaluate
// predicates; the collected edges are unioned serially afterwards per row.
func (c *Clusterer) scanParallel(ctx context.Context, files []FileRecord, timeUF, locUF *unionFind) error {
	n := len(files)
	workers := c.opts.Concurrency
	if workers > n {
		workers = n
	}

	rows := make(chan int, workers)
	batches := make(chan []edge, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				var found []edge
				for j := i + 1; j < n; j++ {
					e := edge{
						a:        i,
						b:        j,
						time:     TimeEdge(files[i], files[j], c.thresholds.TimeSeconds),
						location: LocationEdge(files[i], files[j], c.thresholds.LocationKm),
					}
					if e.time || e.location {
						found = append(found, e)
					}
				}
				select {
				case batches <- found:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(rows)
		for i := range n {
			select {
			case rows <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(batches)
	}()

	done := 0
	for batch := range batches {
		for _, e := range batch {
			if e.time {
				timeUF.union(e.a, e.b)
			}
			if e.location {
				locUF.union(e.a, e.b)
			}
		}
		done++
		c.reportProgress(done, n)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCompute, err)
	}
	return nil
}
