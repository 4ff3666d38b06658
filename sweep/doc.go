// Package sweep drives the builder over a grid of (size, density)
// configurations and writes one graph file per configuration, named with
// the random_<size>_<density>.txt contract, plus a manifest.json listing
// every configuration and its outcome.
//
// Configurations run in parallel on a bounded worker pool. Every job owns
// its RNG: seeded sweeps derive a per-job seed from (seed, size, density),
// so the output of a configuration does not depend on scheduling or on the
// other configurations in the grid.
//
// Failure policy:
//
//	FailFast = true   the first failing configuration cancels the sweep and
//	                  Run returns its error; no manifest is written.
//	FailFast = false  the failure is logged and recorded in the manifest;
//	                  the remaining configurations still run.
//
// A failed configuration never leaves a partial file.
package sweep
