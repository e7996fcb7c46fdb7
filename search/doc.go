// Package search solves pancake stacks with best-first graph search over the
// implicit flip graph: uniform-cost search (priority g) and A* (priority
// f = g + h). Both share one driver and differ only in the priority function.
//
// What
//
//   - Search(initial, strategy, opts...) runs to completion and returns an
//     Outcome: Succeeded with the goal state (parent links lead back to the
//     initial stack), or Failed when the frontier is exhausted.
//   - Stepper exposes the same driver one expansion at a time for tracing
//     and UIs. Its state machine is Running → Succeeded | Failed.
//
// Driver
//
//  1. Seed the frontier with the initial state at P(initial).
//  2. If the frontier is empty, stop with Failed.
//  3. Pop the minimum-priority state c. If c is the goal, stop with Succeeded.
//  4. Mark c's stack visited.
//  5. For each successor s of c: drop it if its stack was visited; push it
//     if its stack is not in the frontier; otherwise replace the frontier
//     entry according to the ReplacePolicy.
//
// Visited stacks are never re-opened. With a consistent heuristic (both GAP
// variants are) and ReplaceIfBetter, both strategies return optimal paths.
// ReplaceAlways reproduces "last write wins" and may return longer paths.
//
// Options
//
//   - WithContext(ctx):           cancellation, checked once per expansion.
//   - WithHeuristic(h):           pancake.Gap (default) or pancake.GapWithPlate.
//   - WithReplacePolicy(p):       ReplaceIfBetter (default) or ReplaceAlways.
//   - WithMaxExpansions(n):       stop with ErrExpansionLimit after n expansions.
//   - WithOnPush / WithOnPop / WithOnExpand: observation hooks.
//
// Errors
//
//   - ErrUnknownStrategy   for an unrecognised Strategy.
//   - ErrOptionViolation   for invalid options.
//   - ErrExpansionLimit    when MaxExpansions is exceeded.
//   - ErrInternal          if the driver ever pops an empty frontier.
//   - context errors and errors returned by OnExpand.
//
// Failed is an outcome, not an error: err is nil and Outcome.Status == Failed.
//
// Search does not validate its input; run pancake.Validate on untrusted stacks.
//
// Thread safety
//
//	Each call owns its frontier and visited set; concurrent searches are
//	independent. A single Stepper must not be shared between goroutines.
package search
