package tsp

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// searchParallel splits the candidates into n−1 blocks by the city visited
// right after the start and searches up to workers blocks at a time.
//
// Each block keeps its own best; the blocks are then reduced in index order
// with strict "<", which is exactly the order the sequential search visits
// them in, so both searches return the same tour.
func searchParallel(ctx context.Context, dist *mat.Dense, workers int) (candidate, error) {
	n, _ := dist.Dims()
	results := make([]candidate, n-1)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for b := range results {
		b := b
		eg.Go(func() error {
			c, err := searchBlock(gctx, dist, b+1)
			if err != nil {
				return err
			}
			results[b] = c

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return candidate{}, err
	}

	var best candidate
	for _, c := range results {
		if c.ok && (!best.ok || c.dist < best.dist) {
			best = c
		}
	}

	return best, nil
}
