// SPDX-License-Identifier: MPL-2.0

// Command cat is the standalone cat utility.
package main

import (
	"os"

	"github.com/invowk/coreutils/internal/app"
)

func main() {
	os.Exit(app.Main("cat", os.Args[1:]))
}
