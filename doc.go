// Package steptrace turns classic graph searches into replayable stories:
// every run of BFS, DFS, Dijkstra or A* records a deterministic trace of
// steps you can inspect, serialize and play back one at a time.
//
// 🚀 What is steptrace?
//
//	A small family of packages built around one idea: a search is not just
//	its answer, it is the sequence of decisions that produced it.
//		• core/    - weighted graphs with insertion-ordered adjacency
//		• grid/    - 2D mazes (4- or 8-connected) that convert to graphs
//		• search/  - BFS, DFS, Dijkstra and A* over one shared Step schema
//		• replay/  - cursor-style navigation over recorded traces
//		• builder/ - deterministic graph fixtures for tests and benchmarks
//
// ✨ Why record steps?
//
//   - Determinism: same graph, same options, same trace, every time
//   - Teaching and debugging: watch the frontier evolve pop by pop
//   - Portability: the JSON schema feeds renderers, UIs and replay sessions
//
// Beyond the library, cmd/steptraced serves the engine over HTTP and
// WebSocket (grid sessions, one-shot searches, live replay), and
// cmd/steptrace drives it from the terminal, maze demo included.
//
// Quick ASCII example:
//
//	S * * .
//	# # * G
//
//	a 4x2 maze: the recorded trace shows exactly how the search threaded
//	the gap, which cells it tried first, and where the wall turned it back.
package steptrace
