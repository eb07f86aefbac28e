// SPDX-License-Identifier: MPL-2.0

// Package builtin implements the utilities: cat, head, true and false.
//
// Every utility is a Command registered in DefaultRegistry. A Command reads
// its standard streams, working directory, environment, logger and settings
// from the HandlerContext stored in its context.Context, so the same code
// serves the standalone binaries, the multi-call binary and the embedded
// POSIX shell, where the context comes from mvdan.cc/sh.
//
// Commands never print their own errors. Main runs a command, reports any
// error GNU-style on standard error and returns the exit status.
package builtin
