// SPDX-License-Identifier: MPL-2.0

// Command false is the standalone false utility.
package main

import (
	"os"

	"github.com/invowk/coreutils/internal/app"
)

func main() {
	os.Exit(app.Main("false", os.Args[1:]))
}
