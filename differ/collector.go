package differ

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/specdiff/schemadiff"
)

// collector gathers differences in walk order. Schema comparisons are not
// run during the walk: each one reserves an output slot and runs in flush.
type collector struct {
	slots [][]Difference
	jobs  []scopeJob
	// open reports whether the last slot accepts direct additions.
	open bool
}

func (c *collector) add(d Difference) {
	if !c.open {
		c.slots = append(c.slots, nil)
		c.open = true
	}
	last := len(c.slots) - 1
	c.slots[last] = append(c.slots[last], d)
}

// deferScope reserves the next slot for a schema comparison.
func (c *collector) deferScope(job scopeJob) {
	job.slot = len(c.slots)
	c.slots = append(c.slots, nil)
	c.jobs = append(c.jobs, job)
	c.open = false
}

// flush runs the deferred comparisons with at most limit in flight and
// returns all differences in walk order. The first failure cancels the
// remaining comparisons and no differences are returned.
func (c *collector) flush(ctx context.Context, oracle schemadiff.Oracle, limit int) ([]Difference, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, job := range c.jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			diffs, err := job.run(gctx, oracle)
			if err != nil {
				return err
			}
			c.slots[job.slot] = diffs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, s := range c.slots {
		total += len(s)
	}
	out := make([]Difference, 0, total)
	for _, s := range c.slots {
		out = append(out, s...)
	}
	return out, nil
}
