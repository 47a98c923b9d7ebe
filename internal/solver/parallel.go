package solver

import (
	"context"
	"runtime"
	"sync"

	"github.com/joshreed13/the-crew/internal/objective"
	"github.com/joshreed13/the-crew/internal/play"
)

// rootJob is one candidate first trick, dispatched to a worker.
type rootJob struct {
	play play.Play
}

// rootResult is what a worker reports back for its job.
type rootResult struct {
	witness Witness
	ok      bool
}

// SolveParallel behaves exactly like Solve but fans the first trick out
// over a pool of workers: every legal first trick is generated up front
// and handed to a worker that then runs the remainder of the search
// sequentially. The first witness any worker reports is returned;
// outstanding workers are cancelled via ctx and told to stop between
// tricks.
//
// workers <= 0 means "use runtime.NumCPU()". Results arrive in
// whatever order workers finish in; two runs over the same input may
// return different, equally valid witnesses.
func SolveParallel(ctx context.Context, state State, workers int) (Witness, bool) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := len(state.Hands)
	rotated := rotateToLeader(state.Hands, state.Leader)

	var roots []play.Play
	for p := range play.Generate(rotated, nil) {
		roots = append(roots, p)
	}
	if len(roots) == 0 {
		return nil, false
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan rootJob, len(roots))
	results := make(chan rootResult, len(roots))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go rootWorker(ctx, &wg, jobs, results, state.Objectives, state.Leader, n)
	}

	for _, p := range roots {
		jobs <- rootJob{play: p}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		if res.ok {
			cancel()
			return res.witness, true
		}
	}
	return nil, false
}

// rootWorker processes root-level tricks off jobs until the channel is
// drained or ctx is cancelled by a sibling finding a witness first.
func rootWorker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan rootJob, results chan<- rootResult, objectives []objective.TaskObjective, leader, n int) {
	defer wg.Done()

	for job := range jobs {
		if ctx.Err() != nil {
			results <- rootResult{ok: false}
			continue
		}
		witness, ok := tryPlay(ctx, leader, n, objectives, job.play)
		results <- rootResult{witness: witness, ok: ok}
	}
}
