// Package telemetry exports search statistics as Prometheus metrics.
//
// A Collector registers its metrics on a caller-supplied
// prometheus.Registerer and plugs into a search run through Options, which
// returns the search hooks that feed it. Observe records the final Outcome.
//
// Metrics (namespace "pancake", subsystem "search"):
//
//   - expanded_total{strategy}          states expanded
//   - pushed_total{strategy,kind}       frontier insertions, kind=fresh|replace
//   - outcomes_total{strategy,status}   finished runs by terminal status
//   - solution_flips{strategy}          histogram of solution lengths
//   - max_frontier{strategy}            largest frontier of the last run
package telemetry
