package shortestpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/flightgrid/skyroute/airgraph"
)

// Find computes the minimum-total-distance path from sourceID to targetID in
// the weighted, undirected graph g, or reports why no path exists.
//
// Returns:
//
//   - PathResult with StatusFound and the ordered path plus total distance;
//   - PathResult with StatusInvalidEndpoint (empty path, zero distance) when
//     sourceID or targetID is not a known airport — this is a degenerate
//     result, not an error;
//   - PathResult with StatusUnreachable (empty path, zero distance) when both
//     endpoints exist but are not connected;
//   - a non-nil error only for contract violations: ErrEmptyAirportID,
//     ErrNilGraph, or ErrNegativeDistance.
//
// A self-query (sourceID == targetID) for an existing airport yields a
// single-element path with distance 0; the loop invariant produces this
// without special-casing, since distance-to-self initializes to 0 and the
// source is popped first.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Find(g *airgraph.Graph, sourceID, targetID string, opts ...Option) (PathResult, error) {
	// 1) Build and apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the call contract. Contract violations return the zero
	//    PathResult, whose StatusUnknown marks it as unusable.
	if sourceID == "" || targetID == "" {
		return PathResult{}, ErrEmptyAirportID
	}
	if g == nil {
		return PathResult{}, ErrNilGraph
	}

	// 3) Unknown endpoints are a reportable condition, not an abort: return
	//    the degenerate result and let the caller decide how loudly to say so.
	if !g.HasAirport(sourceID) || !g.HasAirport(targetID) {
		return PathResult{Status: StatusInvalidEndpoint}, nil
	}

	// 4) Seed per-query working state from the airport catalog.
	r := newRunner(g, cfg)
	r.init(sourceID)

	// 5) Run the main loop to (at most) the target's finalization.
	if err := r.process(targetID); err != nil {
		return PathResult{}, err
	}

	// 6) Reconstruct the path from the predecessor chain.
	return r.result(targetID), nil
}

// runner holds the transient working state for a single Find execution.
// Nothing here is shared across calls.
type runner struct {
	g    *airgraph.Graph
	opts Options

	// dist maps each airport to its best-known distance from the source;
	// +Inf is the "unvisited" sentinel.
	dist map[string]float64

	// prev maps each airport to its predecessor on the best-known path;
	// "" means none.
	prev map[string]string

	pq itemHeap
}

func newRunner(g *airgraph.Graph, cfg Options) *runner {
	v := g.AirportCount()

	return &runner{
		g:    g,
		opts: cfg,
		dist: make(map[string]float64, v),
		prev: make(map[string]string, v),
		pq:   make(itemHeap, 0, v),
	}
}

// init sets every known airport's tentative distance to +Inf and predecessor
// to none, then seeds the heap with (source, 0).
func (r *runner) init(sourceID string) {
	for _, id := range r.g.AirportIDs() {
		r.dist[id] = math.Inf(1)
		r.prev[id] = ""
	}
	r.dist[sourceID] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &heapItem{id: sourceID, dist: 0})
}

// process repeatedly extracts the minimum-distance entry and relaxes its
// routes, stopping when the heap drains or the target is popped with a
// finalized distance.
func (r *runner) process(targetID string) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*heapItem)

		// Stale entry under lazy decrease-key: a shorter path to this
		// airport was already recorded after this entry was pushed.
		if item.dist > r.dist[item.id] {
			continue
		}

		// The target's distance is final once popped fresh; all remaining
		// entries are at least as far.
		if item.id == targetID {
			break
		}

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each route leaving u and records any strictly shorter path
// to its neighbor, pushing a new heap entry per improvement.
//
// Assumes r.dist[u] is final when called.
func (r *runner) relax(u string) error {
	for _, route := range r.g.Routes(u) {
		if route.Distance < 0 {
			return fmt.Errorf("%w: route %s→%s distance=%v", ErrNegativeDistance, u, route.To, route.Distance)
		}

		candidate := r.dist[u] + route.Distance
		if candidate > r.opts.MaxDistance {
			continue
		}
		if candidate >= r.dist[route.To] {
			continue
		}

		r.dist[route.To] = candidate
		r.prev[route.To] = u
		heap.Push(&r.pq, &heapItem{id: route.To, dist: candidate})
	}

	return nil
}

// result walks the predecessor chain backward from the target, reverses it,
// and tags the outcome. The chain always terminates at the source, whose
// predecessor stays "".
func (r *runner) result(targetID string) PathResult {
	// An infinite recorded distance means the target was never reached.
	if math.IsInf(r.dist[targetID], 1) {
		return PathResult{Status: StatusUnreachable}
	}

	path := make([]string, 0, 4)
	for cur := targetID; cur != ""; cur = r.prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return PathResult{
		Path:          path,
		TotalDistance: r.dist[targetID],
		Status:        StatusFound,
	}
}

// heapItem pairs an airport with its tentative distance at push time.
type heapItem struct {
	id   string
	dist float64
}

// itemHeap is a min-heap of *heapItem ordered by ascending distance. Under
// lazy decrease-key, outdated entries remain in the heap and are discarded
// when popped.
type itemHeap []*heapItem

func (h itemHeap) Len() int           { return len(h) }
func (h itemHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h itemHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push adds x onto the heap; called by heap.Push.
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*heapItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
