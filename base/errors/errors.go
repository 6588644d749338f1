// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides the standard errors API plus logging helpers,
// so that a single import covers both.
package errors

import (
	"errors"

	"github.com/plotkit/plotkit/base/logx"
)

// New returns an error with the given text, per [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target, per [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree matching target, per [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join wraps the given errors per [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Log logs the given error if it is non-nil and returns it unchanged,
// so it can be used inline in a return statement.
func Log(err error) error {
	if err != nil {
		logx.Error(err.Error())
	}
	return err
}

// Log1 logs the error if non-nil and returns the value, for wrapping
// two-return calls where only the value is needed.
func Log1[T any](v T, err error) T {
	if err != nil {
		logx.Error(err.Error())
	}
	return v
}

// Must panics if the given error is non-nil. It is for cases that are
// logically incapable of failing, such as parsing embedded assets.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 is a one-return-value version of [Must].
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 ignores the error and returns the value.
// It documents that the error is intentionally discarded.
func Ignore1[T any](v T, _ error) T {
	return v
}
