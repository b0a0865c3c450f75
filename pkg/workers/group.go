package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

type Worker interface {
	Name() string
	Start(ctx context.Context) error
}

type Group []Worker

// Start runs all workers and blocks until they stop. The first failure
// cancels the rest; all failures are reported together.
func (g Group) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result *multierror.Error
	)

	for _, w := range g {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Start(ctx); err != nil {
				mu.Lock()
				result = multierror.Append(result, fmt.Errorf("worker %s: %w", w.Name(), err))
				mu.Unlock()
				cancel()
			}
		}()
	}

	wg.Wait()
	return result.ErrorOrNil()
}
