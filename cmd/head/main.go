// SPDX-License-Identifier: MPL-2.0

// Command head is the standalone head utility.
package main

import (
	"os"

	"github.com/invowk/coreutils/internal/app"
)

func main() {
	os.Exit(app.Main("head", os.Args[1:]))
}
