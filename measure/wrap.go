// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

// ellipsis is appended to truncated text.
const ellipsis = "…"

// Wrapper truncates single-line text to a maximum width, appending an
// ellipsis when truncation occurs. Axis labels use it so that long
// formatted values degrade instead of colliding.
type Wrapper struct {
	m *Measurer
}

// NewWrapper returns a [Wrapper] measuring with the given measurer.
func NewWrapper(m *Measurer) *Wrapper {
	return &Wrapper{m: m}
}

// Wrap returns the given text truncated to maxWidth pixels. Text that
// already fits is returned unchanged. If not even the ellipsis fits,
// the empty string is returned.
func (w *Wrapper) Wrap(text string, maxWidth float32) string {
	if w.m.Measure(text).Width <= maxWidth {
		return text
	}
	if w.m.Measure(ellipsis).Width > maxWidth {
		return ""
	}
	runes := []rune(text)
	// Binary search the longest prefix whose width plus the ellipsis fits.
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if w.m.Measure(string(runes[:mid])+ellipsis).Width <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + ellipsis
}
