package walker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/vk/bulldag"
	"github.com/vk/bulldag/internal/ctxlog"
)

// DefaultWorkers is the worker-pool size used when Options.Workers is not
// set to a positive value.
const DefaultWorkers = 10

// Vertex states while a walk is in flight. A node moves from pending to
// exactly one terminal owner: the worker that claims it, or the skip
// cascade of a failed upstream node.
const (
	statePending int32 = iota
	stateRunning
	stateDone
	stateFailed
)

// errSkipped marks vertices that never ran because something upstream
// failed. Skips are symptoms, not causes, and are filtered out of the
// returned error.
var errSkipped = errors.New("skipped due to upstream failure")

// VisitFunc is the per-vertex callback. Returning an error cancels the
// walk context and skips everything downstream of the vertex.
type VisitFunc[T any, Ix bulldag.Index] func(ctx context.Context, v *bulldag.Vertex[T, Ix]) error

// Options configures a walk.
type Options struct {
	// Workers is the number of concurrent workers. Values below 1 fall
	// back to DefaultWorkers.
	Workers int
}

// node wraps one vertex with the walk's scheduling state: an atomic count
// of unfinished sources and the resolved dependent nodes to unlock.
type node[T any, Ix bulldag.Index] struct {
	vertex     *bulldag.Vertex[T, Ix]
	deps       atomic.Int32
	state      atomic.Int32
	err        error
	dependents []*node[T, Ix]
}

// claim moves the node out of pending. Exactly one caller wins, and only
// the winner may record the node's outcome and release the wait group.
func (n *node[T, Ix]) claim(to int32) bool {
	return n.state.CompareAndSwap(statePending, to)
}

type walk[T any, Ix bulldag.Index] struct {
	nodes map[Ix]*node[T, Ix]
	fn    VisitFunc[T, Ix]
	wg    sync.WaitGroup
}

// Walk visits every vertex of g exactly once, each after all of its
// sources, spreading the callback across a worker pool. If any callback
// fails the walk context is canceled, all transitive dependents are
// skipped, and the failures are returned joined, each naming its vertex.
//
// The graph is only read; Walk keeps its own scheduling state.
func Walk[T any, Ix bulldag.Index](ctx context.Context, g *bulldag.BullDag[T, Ix], fn VisitFunc[T, Ix], opts Options) error {
	logger := ctxlog.FromContext(ctx)
	if g.IsEmpty() {
		return nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}

	w := &walk[T, Ix]{
		nodes: make(map[Ix]*node[T, Ix], g.Len()),
		fn:    fn,
	}
	for _, v := range g.Vertices() {
		n := &node[T, Ix]{vertex: v}
		n.deps.Store(int32(v.NumSources()))
		w.nodes[v.Index()] = n
	}
	for _, v := range g.Vertices() {
		n := w.nodes[v.Index()]
		for _, ref := range v.References() {
			n.dependents = append(n.dependents, w.nodes[ref])
		}
	}

	// Every node passes through the ready channel at most once, so the
	// buffer holds the whole graph and sends can never block a worker.
	ready := make(chan *node[T, Ix], len(w.nodes))
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	rootCount := 0
	for _, n := range w.nodes {
		if n.deps.Load() == 0 {
			ready <- n
			rootCount++
		}
	}
	logger.Debug("starting walk", "vertices", len(w.nodes), "roots", rootCount, "workers", workers)

	w.wg.Add(len(w.nodes))
	for i := 0; i < workers; i++ {
		go w.worker(runCtx, ready, cancel, i)
	}
	w.wg.Wait()
	close(ready)

	var errs []error
	for _, n := range w.nodes {
		if n.state.Load() != stateFailed || n.err == nil {
			continue
		}
		if errors.Is(n.err, errSkipped) || errors.Is(n.err, context.Canceled) {
			continue
		}
		errs = append(errs, fmt.Errorf("vertex %v: %w", n.vertex.Index(), n.err))
	}
	return errors.Join(errs...)
}

// worker is the processing loop for one concurrent worker.
func (w *walk[T, Ix]) worker(ctx context.Context, ready chan *node[T, Ix], cancel context.CancelFunc, workerID int) {
	logger := ctxlog.FromContext(ctx)

	for n := range ready {
		if !n.claim(stateRunning) {
			// A skip cascade got here first and already released it.
			continue
		}

		if ctx.Err() != nil {
			n.state.Store(stateFailed)
			n.err = ctx.Err()
			w.wg.Done()
			w.skipDependents(ctx, n)
			continue
		}

		if err := w.fn(ctx, n.vertex); err != nil {
			logger.Error("vertex callback failed",
				"workerID", workerID, "vertex", fmt.Sprint(n.vertex.Index()), "error", err)
			n.state.Store(stateFailed)
			n.err = err
			cancel()
			w.wg.Done()
			w.skipDependents(ctx, n)
			continue
		}

		n.state.Store(stateDone)
		for _, dep := range n.dependents {
			if dep.deps.Add(-1) == 0 {
				ready <- dep
			}
		}
		w.wg.Done()
	}
}

// skipDependents transitively marks everything downstream of a failed node
// as failed without running it. Only nodes still pending are claimed;
// anything a worker already owns is left to that worker.
func (w *walk[T, Ix]) skipDependents(ctx context.Context, n *node[T, Ix]) {
	logger := ctxlog.FromContext(ctx)
	for _, dep := range n.dependents {
		if !dep.claim(stateFailed) {
			continue
		}
		logger.Warn("skipping vertex, upstream failed",
			"vertex", fmt.Sprint(dep.vertex.Index()),
			"failed_dependency", fmt.Sprint(n.vertex.Index()),
		)
		dep.err = fmt.Errorf("%w: %v", errSkipped, n.vertex.Index())
		w.wg.Done()
		w.skipDependents(ctx, dep)
	}
}
