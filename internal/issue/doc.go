// SPDX-License-Identifier: MPL-2.0

// Package issue defines the errors the utilities report to users.
//
// ParseError covers everything wrong with a command line and is always
// detected before any output is produced. IOError tags a read or write
// failure with the path involved. ActionableError adds an operation and
// suggestions to failures of the supporting layers, such as loading the
// configuration file.
package issue
