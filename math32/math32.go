// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based scalar and 2D vector math package
// for the chart rendering pipeline. The scalar functions are mostly
// thin wrappers around chewxy/math32, which has optimized
// implementations.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	// Pi is the float64 circle constant, for direct float32 conversion.
	Pi = math.Pi

	// Infinity is positive infinity.
	Infinity = float32(math.MaxFloat32)
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 { return math32.Ceil(x) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return math32.Floor(x) }

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Log10 returns the decimal logarithm of x.
func Log10(x float32) float32 { return math32.Log10(x) }

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 { return math32.Pow(x, y) }

// Pow10 returns 10**n, the base-10 exponential of n.
func Pow10(n int) float32 { return float32(math.Pow10(n)) }

// Mod returns the floating-point remainder of x/y, with the sign of x.
func Mod(x, y float32) float32 { return math32.Mod(x, y) }

// Max returns the larger of x or y.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Min returns the smaller of x or y.
func Min(x, y float32) float32 { return math32.Min(x, y) }

// IsNaN reports whether x is a "not-a-number" value.
func IsNaN(x float32) bool { return math32.IsNaN(x) }

// IsInf reports whether x is an infinity, according to sign.
func IsInf(x float32, sign int) bool { return math32.IsInf(x, sign) }

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
