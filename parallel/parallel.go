package parallel

import (
	"context"
	"fmt"
	"sync"

	"github.com/nileshpatra/gubbins/align"
	"github.com/nileshpatra/gubbins/pattern"
	"github.com/nileshpatra/gubbins/reconstruct"
)

// Run distributes table's patterns across workers goroutines, each
// built by newWorker, reconstructing every pattern's ancestral states
// into aln. Patterns write disjoint column ranges, so no matrix locking
// is required. It returns the combined per-branch SNP map once every
// pattern has been processed, or the first error any worker observed.
func Run(ctx context.Context, aln *align.Matrix, table *pattern.Table, newWorker func() *reconstruct.Worker, workers int) (map[string]int, error) {
	if workers < 1 {
		return nil, ErrNoWorkers
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan pattern.Pattern)
	partials := make([]map[string]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for slot := 0; slot < workers; slot++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			worker := newWorker()
			local := make(map[string]int)
			for pat := range jobs {
				snps, err := worker.Reconstruct(aln, pat)
				if err != nil {
					errs[slot] = fmt.Errorf("parallel: pattern at column %d: %w", pat.Columns[0], err)
					cancel()
					return
				}
				for label, n := range snps {
					local[label] += n
				}
			}
			partials[slot] = local
		}(slot)
	}

feed:
	for _, pat := range table.Patterns {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- pat:
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	total := make(map[string]int)
	for _, local := range partials {
		for label, n := range local {
			total[label] += n
		}
	}
	return total, nil
}
