// Package bfs provides breadth-first search over a circuit core.Graph,
// returning hop distances, parent links, the component used to reach each
// node, and the visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (component count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: node → distance from start
//   - Parent: node → its predecessor in the BFS tree
//   - Via: node → component that reached it
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows skipping individual components via WithFilterComponent or
//     WithoutComponents.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Reachable answers a single source→target connectivity question.
//
// Why
//
//   - The reducer uses Reachable to tell a disconnected query from an
//     irreducible one, and to confirm that a single remaining terminal
//     component is the only source→target path.
//   - Pruning uses the visited set to find islands that cannot carry current.
//
// Determinism
//
//	core.Graph.Incident returns components in ascending ComponentID order and
//	BFS enqueues far ends in that order, so the visit sequence is fully
//	reproducible. Parallel components reach the same far node once.
//
// Complexity (N = nodes, C = components)
//
//   - Time:   O(N + C)
//   - Memory: O(N)       (queue, Depth, Parent, Via, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, src)
//	if err != nil {
//		// ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, ErrNeighbors, or hook errors
//	}
//	path, err := res.PathTo(dst)
//
//	ok, err := bfs.Reachable(g, src, dst, bfs.WithoutComponents(direct))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if the graph changes under the walk.
//   - ErrNoPath               from PathTo/ComponentsTo for unreached nodes.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
