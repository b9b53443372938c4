package match

import (
	"runtime"
	"sync"

	"github.com/grantspass-gis/addrpoint/internal/progress"
)

// mapConcurrent partitions subjects across a worker pool and concatenates
// the per-subject fragments in subject input order. Workers read the shared
// inputs immutably and write only their own result slot, so no
// synchronization beyond the final join is needed.
func mapConcurrent[S, R any](subjects []S, workers int, rep progress.Reporter, task string, fn func(*S) []R) []R {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	rep.Start(task, len(subjects))

	results := make([][]R, len(subjects))
	jobs := make(chan int, len(subjects))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fn(&subjects[i])
				rep.Tick()
			}
		}()
	}
	for i := range subjects {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var out []R
	for _, r := range results {
		out = append(out, r...)
	}
	rep.Done(task)
	return out
}

// eq compares two optional values; two absent values are equal.
func eq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
