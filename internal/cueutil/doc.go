// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents validated against an embedded
// schema:
//
//  1. Compile the schema and look up its root definition
//  2. Compile the document and unify it with the definition
//  3. Validate and decode into a Go value
//
// Errors name the file and the JSON path of the offending field.
package cueutil
