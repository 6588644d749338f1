// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// BlendLab blends the two given colors in the CIE L*a*b* color space,
// which gives a perceptually even transition. t = 0 returns a, t = 1
// returns b. Alpha is interpolated linearly and reapplied afterwards,
// since Lab blending operates on opaque colors.
func BlendLab(a, b color.Color, t float32) color.RGBA {
	t = Clamp01(t)
	an := color.NRGBAModel.Convert(a).(color.NRGBA)
	bn := color.NRGBAModel.Convert(b).(color.NRGBA)
	ac, _ := colorful.MakeColor(color.NRGBA{R: an.R, G: an.G, B: an.B, A: 255})
	bc, _ := colorful.MakeColor(color.NRGBA{R: bn.R, G: bn.G, B: bn.B, A: 255})
	m := ac.BlendLab(bc, float64(t)).Clamped()
	r, g, bb := m.RGB255()
	alpha := uint8(float32(an.A) + t*(float32(bn.A)-float32(an.A)))
	return FromNRGBA(r, g, bb, alpha)
}
