// Package shortestpath implements Dijkstra's shortest-path algorithm over an
// airgraph.Graph, answering single-source/single-target route queries.
//
// Overview:
//
//   - Find computes the minimum-total-distance path between two airports in
//     a static, fully built graph with non-negative route distances.
//   - It processes airports in order of increasing tentative distance using a
//     min-heap priority queue with the "lazy decrease-key" strategy: shorter
//     rediscoveries push duplicate heap entries, and stale entries are
//     discarded when popped by comparing against the best-known distance.
//   - The search terminates early once the target is popped with a finalized
//     distance; correctness holds with or without the early exit because all
//     remaining heap entries carry distances ≥ the target's.
//
// Results:
//
//   - PathResult carries the ordered airport sequence from source to target
//     (inclusive), the total distance, and a Status tag.
//   - Status removes the ambiguity of an empty path: StatusInvalidEndpoint
//     means the source or target is not in the graph, StatusUnreachable means
//     both exist but no connecting path does. Both yield an empty path and a
//     zero total distance.
//   - Degenerate outcomes are not errors: Find returns a nil error for them.
//     The error return is reserved for contract violations (nil graph, empty
//     airport ID, a negative distance encountered during relaxation); the
//     result accompanying a non-nil error is the zero PathResult, tagged
//     StatusUnknown.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each airport is finalized at most once and
//     each relaxation may push one heap entry.
//   - Space: O(V + E) — distance/predecessor maps plus worst-case heap size
//     under lazy decrease-key.
//
// Options:
//
//   - WithMaxDistance(x): airports whose tentative distance exceeds x are not
//     explored; a target beyond the cap reports StatusUnreachable.
//
// Thread safety:
//
//   - Each Find call owns its transient working state, so concurrent queries
//     against the same immutable Graph are safe. The package performs no
//     locking of its own; do not mutate the graph during queries.
package shortestpath
