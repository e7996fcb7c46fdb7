// Package pancake is the module root of a pancake-sorting solver: given a
// stack of N distinct-sized pancakes, find the fewest prefix flips that
// leave it sorted largest-at-the-bottom.
//
// 🚀 What is inside?
//
//	A small, dependency-light search engine that brings together:
//		• State space: stacks, flips, the goal test and the GAP heuristic
//		• Frontier: an indexed min-priority queue with decrease-key
//		• Search: uniform-cost search and A* over the flip graph
//		• Telemetry: Prometheus counters fed by search hooks
//		• CLI: solve given or random stacks, report as text, JSON or TOML
//
// ✨ Why this layout?
//
//   - Each layer is usable on its own: frontier knows nothing about pancakes
//   - Searches are steppable, so callers can watch every expansion
//   - Hooks (OnPush, OnPop, OnExpand) for tracing and metrics
//
// Everything is organized under these packages:
//
//	pancake/          Stack, Flip, Gap, State and successor generation
//	frontier/         generic keyed priority queue with lazy deletion
//	search/           best-first driver, strategies, Stepper and Outcome
//	telemetry/        Prometheus collector wired through search options
//	internal/config   viper-backed settings with validation
//	internal/cli      cobra commands: solve, random
//	cmd/pancake       the executable
//
// Quick example:
//
//	[3 4 1 2] ─flip 3→ [1 4 3 2] ─flip 4→ [2 3 4 1] ─flip 3→ [4 3 2 1]
//
//	go install github.com/katalvlaran/pancake/cmd/pancake@latest
//	pancake solve 3 4 1 2
package pancake
