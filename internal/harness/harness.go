// Package harness fires many independent decode-and-convert calls at once and
// waits for all of them, the way the host's offline-music screen does when a
// device syncs several playlists together.
package harness

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Call is one invocation. The id correlates its log lines.
type Call func(ctx context.Context, id uuid.UUID) error

// Report tallies the outcome of a Run. Individual results are not kept.
type Report struct {
	Invocations int
	Succeeded   int
	Failed      int
	// Skipped counts calls never started because ctx was done.
	Skipped int
	// Err is the first error returned by a call, if any.
	Err error
}

// Run starts invocations calls, at most limit at a time (limit < 1 means no
// bound), and returns once every started call has finished. A failing call
// does not cancel the others; once ctx is done no further calls start.
func Run(ctx context.Context, invocations, limit int, call Call) Report {
	var (
		g         errgroup.Group
		succeeded atomic.Int64
		failed    atomic.Int64
		started   int
	)
	if limit > 0 {
		g.SetLimit(limit)
	}
	invocations = max(invocations, 0)

	for ; started < invocations; started++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			id := uuid.New()
			if err := call(ctx, id); err != nil {
				log.Printf("[harness] call %s failed: %v", id, err)
				failed.Add(1)
				return err
			}
			succeeded.Add(1)
			return nil
		})
	}
	err := g.Wait()

	if skipped := invocations - started; skipped > 0 {
		log.Printf("[harness] context done, skipped %d calls", skipped)
	}

	return Report{
		Invocations: invocations,
		Succeeded:   int(succeeded.Load()),
		Failed:      int(failed.Load()),
		Skipped:     invocations - started,
		Err:         err,
	}
}
