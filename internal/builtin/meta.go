// SPDX-License-Identifier: MPL-2.0

package builtin

import "github.com/invowk/coreutils/internal/usage"

const (
	// Project is printed in --version output.
	Project = "invowk coreutils"
	// Authors is credited in --version output.
	Authors = "the Invowk authors"
)

// Version is the release string, set at build time with
// -ldflags "-X github.com/invowk/coreutils/internal/builtin.Version=...".
var Version = "dev"

// metaFor returns the --version metadata of the named utility.
func metaFor(name string) usage.Meta {
	return usage.Meta{
		Name:    name,
		Project: Project,
		Version: Version,
		Authors: Authors,
	}
}
