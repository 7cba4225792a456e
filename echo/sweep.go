package echo

import "sync"

// Sweep evaluates Amplitude(theta, δ) for every δ in deltas and returns
// the (δ, amplitude) pairs in input order.
//
// Failure policy: the sweep is atomic. theta and every δ are validated
// up front; any non-finite angle aborts the whole sweep with
// qubit.ErrNonFiniteAngle and no partial results, so a plotted curve can
// never silently contain holes.
//
// Each per-δ evaluation is an independent pure computation. With
// opts.Workers == 1 (the default, and the reference semantics) samples
// are evaluated strictly sequentially; with Workers > 1 they are fanned
// out over that many goroutines, each writing to its own result slot,
// which produces output identical to the sequential run.
//
// A nil opts is equivalent to DefaultOptions(). Invalid options return
// ErrBadWorkers. An empty deltas slice yields an empty, non-nil result.
//
// Complexity: O(len(deltas)) with constant work per sample.
func Sweep(theta float64, deltas []float64, opts *Options) ([]Point, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Workers < 1 {
		return nil, ErrBadWorkers
	}

	// Validate everything before evaluating anything: abort-whole-sweep.
	if _, err := ForwardEvolution(theta); err != nil {
		return nil, err
	}
	for _, d := range deltas {
		if _, err := Perturbation(d); err != nil {
			return nil, err
		}
	}

	points := make([]Point, len(deltas))
	if cfg.Workers == 1 || len(deltas) <= 1 {
		for i, d := range deltas {
			amp, err := Amplitude(theta, d)
			if err != nil {
				// Unreachable after up-front validation; kept so a future
				// failure mode cannot slip through silently.
				return nil, err
			}
			points[i] = Point{Delta: d, Amplitude: amp}
		}

		return points, nil
	}

	workers := cfg.Workers
	if workers > len(deltas) {
		workers = len(deltas)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	next := make(chan int)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				amp, err := Amplitude(theta, deltas[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()

					continue
				}
				points[i] = Point{Delta: deltas[i], Amplitude: amp}
			}
		}()
	}
	for i := range deltas {
		next <- i
	}
	close(next)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return points, nil
}
