// SPDX-License-Identifier: MPL-2.0

// Package config loads the optional settings shared by the utilities using
// Viper with CUE as the file format.
//
// The file is $XDG_CONFIG_HOME/coreutils/config.cue on Linux (the platform
// equivalent elsewhere), or whatever COREUTILS_CONFIG names. It is validated
// against the embedded config_schema.cue. COREUTILS_* environment variables
// override file values. Configuration is only ever read.
package config
