// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
)

const (
	exitOK    = 0
	exitUsage = 1
	exitData  = 2
)

// exitError attaches a process exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func usageError(err error) error { return &exitError{code: exitUsage, err: err} }

func dataError(err error) error { return &exitError{code: exitData, err: err} }

// exitCode returns the code carried by err. Errors raised by cobra itself
// (unknown flags, wrong argument count) are usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return exitUsage
}
