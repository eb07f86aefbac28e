// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"io/fs"
	"unicode"
	"unicode/utf8"
)

// IOError is a read or write failure on a named path. Path is what the user
// typed, or "standard input"/"standard output".
type IOError struct {
	Path string
	Err  error
}

// Error renders "path: Reason", dropping the operation and path that
// *fs.PathError would repeat.
func (e *IOError) Error() string {
	return e.Path + ": " + Describe(e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Describe returns the bare reason of err with its first letter in upper
// case, e.g. "No such file or directory".
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
