// SPDX-License-Identifier: MPL-2.0

// Package app is the composition root shared by every binary: it loads the
// configuration, builds the logger, and runs one utility from the builtin
// registry against a HandlerContext.
package app
