// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// They cover the hot paths of the utilities:
//   - Count parsing
//   - The head scanner policies and the cat transcoder
//   - Configuration loading
//   - Script execution and the end-to-end utility pipeline
//
// To generate a profile, run:
//
//	go test ./internal/benchmark -run '^$' -bench . -cpuprofile default.pgo
package benchmark
