// SPDX-License-Identifier: MPL-2.0

// Command true is the standalone true utility.
package main

import (
	"os"

	"github.com/invowk/coreutils/internal/app"
)

func main() {
	os.Exit(app.Main("true", os.Args[1:]))
}
