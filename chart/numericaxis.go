// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/plotkit/plotkit/base/logx"
	"github.com/plotkit/plotkit/colors"
	"github.com/plotkit/plotkit/math32"
	"github.com/plotkit/plotkit/measure"
	"github.com/plotkit/plotkit/render"
	"github.com/plotkit/plotkit/scale"
)

// NumericAxis renders tick marks and formatted tick labels for a
// [scale.Quantitative]. It measures its labels to request layout
// space, re-renders or re-lays-out when the scale updates, and
// resolves label overlap with a deterministic interval-skipping pass.
type NumericAxis struct {
	ComponentBase

	// TickLength is the length of each tick mark in pixels.
	TickLength float32

	// LabelPadding is the gap between tick marks and labels, and the
	// base padding unit for overlap resolution.
	LabelPadding float32

	// Margin is the width slack a vertical axis tolerates before a
	// scale update forces a structural re-layout.
	Margin float32

	// ShowEndTickLabels controls whether the first and last tick
	// labels are shown. Off by default, matching the common case of
	// end labels colliding with neighboring components.
	ShowEndTickLabels bool

	// LineColor is the color of the baseline and tick marks.
	LineColor color.RGBA

	// TextColor is the tick label color.
	TextColor color.RGBA

	scale     scale.Quantitative
	orient    Orientation
	formatter Formatter

	// labelPos is the tick-label position mode; LabelCenter or one of
	// the orientation-compatible edge modes.
	labelPos string

	// approxText selects approximate text measurement: rune count
	// times a reference glyph width. Faster than shaping each label
	// but over-estimates, which shows up as extra whitespace.
	approxText bool

	measurer *measure.Measurer
	wrapper  *measure.Wrapper

	// maxLabelWidth truncates labels wider than this; zero disables.
	maxLabelWidth float32

	scaleSub int

	baseline *render.Element
	marks    *render.Element
	labels   *render.Element
	markEls  map[string]*render.Element
	labelEls map[string]*render.Element
}

// tickLabel is the per-render working state for one tick.
type tickLabel struct {
	value   float64
	text    string
	pos     float32
	rect    math32.Box2
	visible bool
}

// NewNumericAxis returns an axis for the given scale and orientation.
// The axis subscribes to scale updates until destroyed.
func NewNumericAxis(s scale.Quantitative, orient Orientation) *NumericAxis {
	ax := &NumericAxis{
		TickLength:   5,
		LabelPadding: 10,
		Margin:       15,
		LineColor:    colors.Black,
		TextColor:    colors.Black,
		scale:        s,
		orient:       orient,
		formatter:    DefaultFormatter,
		labelPos:     LabelCenter,
		measurer:     measure.New(12),
	}
	ax.Init(ax)
	ax.class = "numeric-axis"
	ax.wrapper = measure.NewWrapper(ax.measurer)
	ax.scaleSub = s.OnUpdate(ax.rescale)
	return ax
}

// Orient returns the axis orientation.
func (ax *NumericAxis) Orient() Orientation {
	return ax.orient
}

// Scale returns the scale this axis presents.
func (ax *NumericAxis) Scale() scale.Quantitative {
	return ax.scale
}

// SetFormatter sets the tick label formatter and triggers a redraw.
func (ax *NumericAxis) SetFormatter(f Formatter) *NumericAxis {
	if f != nil {
		ax.formatter = f
		ax.Redraw()
	}
	return ax
}

// TickLabelPosition returns the current tick-label position mode.
func (ax *NumericAxis) TickLabelPosition() string {
	return ax.labelPos
}

// SetTickLabelPosition sets where labels sit relative to their tick
// marks. Horizontal axes accept center, left, and right; vertical
// axes accept center, top, and bottom. An invalid position for the
// axis's orientation is a hard error and changes no state.
func (ax *NumericAxis) SetTickLabelPosition(pos string) error {
	if ax.orient.IsHorizontal() {
		if pos != LabelCenter && pos != LabelLeft && pos != LabelRight {
			return fmt.Errorf("chart: tick label position %q is not valid for a horizontal axis", pos)
		}
	} else {
		if pos != LabelCenter && pos != LabelAbove && pos != LabelBelow {
			return fmt.Errorf("chart: tick label position %q is not valid for a vertical axis", pos)
		}
	}
	ax.labelPos = pos
	ax.Redraw()
	return nil
}

// SetUseApproxText toggles approximate text measurement and discards
// measurements derived under the previous mode.
func (ax *NumericAxis) SetUseApproxText(approx bool) *NumericAxis {
	if ax.approxText != approx {
		ax.approxText = approx
		ax.measurer.InvalidateCache()
		ax.Redraw()
	}
	return ax
}

// SetMaxLabelWidth truncates labels wider than the given width with an
// ellipsis; zero disables truncation.
func (ax *NumericAxis) SetMaxLabelWidth(w float32) *NumericAxis {
	ax.maxLabelWidth = w
	ax.Redraw()
	return ax
}

// Measurer returns the axis's text measurer.
func (ax *NumericAxis) Measurer() *measure.Measurer {
	return ax.measurer
}

// measureLabel measures one formatted label, exactly or approximately
// per the configured mode.
func (ax *NumericAxis) measureLabel(text string) measure.Size {
	if ax.approxText {
		return ax.measurer.ApproxMeasure(text)
	}
	return ax.measurer.Measure(text)
}

// tickValues returns the scale's ticks filtered to the normalized
// domain interval, handling domains set in either order.
func (ax *NumericAxis) tickValues() []float64 {
	lo, hi := ax.scale.Domain()
	if lo > hi {
		lo, hi = hi, lo
	}
	all := ax.scale.Ticks()
	vals := make([]float64, 0, len(all))
	for _, v := range all {
		if v >= lo && v <= hi {
			vals = append(vals, v)
		}
	}
	return vals
}

// computeWidth returns the width a vertical axis needs: tick length,
// label padding, and the widest measured label.
func (ax *NumericAxis) computeWidth() float32 {
	maxW := float32(0)
	for _, v := range ax.tickValues() {
		maxW = math32.Max(maxW, ax.measureLabel(ax.formatter(v)).Width)
	}
	return ax.TickLength + ax.LabelPadding + maxW
}

// computeHeight returns the height a horizontal axis needs: tick
// length, label padding, and the label line height.
func (ax *NumericAxis) computeHeight() float32 {
	return ax.TickLength + ax.LabelPadding + ax.measurer.LineHeight()
}

// RequestedSpace implements [Component].
func (ax *NumericAxis) RequestedSpace(availWidth, availHeight float32) SpaceRequest {
	if ax.orient.IsHorizontal() {
		return SpaceRequest{MinHeight: math32.Min(ax.computeHeight(), availHeight)}
	}
	return SpaceRequest{MinWidth: math32.Min(ax.computeWidth(), availWidth)}
}

// rescale reacts to a scale update. A vertical axis re-checks its
// required width: growth past the allocation, or shrinkage below
// (allocation − Margin), forces a structural re-layout; otherwise it
// re-renders in place. Horizontal axes always just re-render, since
// label height is stable across domain changes.
func (ax *NumericAxis) rescale() {
	if !ax.anchored {
		return
	}
	if !ax.orient.IsHorizontal() {
		req := ax.computeWidth()
		cur := ax.size.X
		if req > cur || req < cur-ax.Margin {
			ax.Relayout()
			return
		}
	}
	ax.Redraw()
}

// InvalidateCache implements [Component], discarding memoized text
// measurements. Call paths that change font, content, or container
// size must reach this, or stale measurements silently produce
// incorrect widths.
func (ax *NumericAxis) InvalidateCache() {
	ax.measurer.InvalidateCache()
}

// Destroy implements [Component], dropping the scale subscription.
func (ax *NumericAxis) Destroy() {
	if ax.destroyed {
		return
	}
	ax.scale.OffUpdate(ax.scaleSub)
	ax.ComponentBase.Destroy()
}

// RenderImmediately implements [Component].
func (ax *NumericAxis) RenderImmediately() {
	if ax.group != nil {
		ax.renderRetained()
		return
	}
	if cv, ok := ax.surface.(*render.Canvas); ok {
		ax.renderImmediate(cv)
	}
}

// buildTicks formats, measures, and positions the current tick set.
func (ax *NumericAxis) buildTicks() []tickLabel {
	vals := ax.tickValues()
	ticks := make([]tickLabel, 0, len(vals))
	for _, v := range vals {
		text := ax.formatter(v)
		if ax.maxLabelWidth > 0 {
			text = ax.wrapper.Wrap(text, ax.maxLabelWidth)
		}
		sz := ax.measureLabel(text)
		pos := ax.scale.Scale(v)
		ticks = append(ticks, tickLabel{
			value:   v,
			text:    text,
			pos:     pos,
			rect:    ax.labelRect(pos, sz),
			visible: true,
		})
	}
	return ticks
}

// labelRect returns the label box, in axis-local coordinates, for a
// label of the given size at the given scale position.
func (ax *NumericAxis) labelRect(pos float32, sz measure.Size) math32.Box2 {
	w, h := ax.size.X, ax.size.Y
	tl, pad := ax.TickLength, ax.LabelPadding
	var x0, y0 float32
	if ax.orient.IsHorizontal() {
		switch ax.labelPos {
		case LabelLeft:
			x0 = pos - pad - sz.Width
		case LabelRight:
			x0 = pos + pad
		default:
			x0 = pos - sz.Width/2
		}
		if ax.orient == Bottom {
			y0 = tl + pad
		} else {
			y0 = h - tl - pad - sz.Height
		}
	} else {
		switch ax.labelPos {
		case LabelAbove:
			y0 = pos - pad - sz.Height
		case LabelBelow:
			y0 = pos + pad
		default:
			y0 = pos - sz.Height/2
		}
		if ax.orient == Left {
			x0 = w - tl - pad - sz.Width
		} else {
			x0 = tl + pad
		}
	}
	return math32.B2(x0, y0, x0+sz.Width, y0+sz.Height)
}

// markLine returns the tick mark endpoints, in axis-local coordinates,
// for the given scale position.
func (ax *NumericAxis) markLine(pos float32) (p0, p1 math32.Vector2) {
	w, h := ax.size.X, ax.size.Y
	tl := ax.TickLength
	switch ax.orient {
	case Bottom:
		return math32.Vec2(pos, 0), math32.Vec2(pos, tl)
	case Top:
		return math32.Vec2(pos, h-tl), math32.Vec2(pos, h)
	case Left:
		return math32.Vec2(w-tl, pos), math32.Vec2(w, pos)
	default:
		return math32.Vec2(0, pos), math32.Vec2(tl, pos)
	}
}

// baselineLine returns the baseline endpoints in axis-local
// coordinates: the edge adjacent to the plot area.
func (ax *NumericAxis) baselineLine() (p0, p1 math32.Vector2) {
	w, h := ax.size.X, ax.size.Y
	switch ax.orient {
	case Bottom:
		return math32.Vec2(0, 0), math32.Vec2(w, 0)
	case Top:
		return math32.Vec2(0, h), math32.Vec2(w, h)
	case Left:
		return math32.Vec2(w, 0), math32.Vec2(w, h)
	default:
		return math32.Vec2(0, 0), math32.Vec2(0, h)
	}
}

// resolveVisibility runs the label visibility passes in order: end
// labels, bounding-box overflow, then overlap resolution.
func (ax *NumericAxis) resolveVisibility(ticks []tickLabel) {
	if len(ticks) == 0 {
		return
	}
	if !ax.ShowEndTickLabels {
		ticks[0].visible = false
		ticks[len(ticks)-1].visible = false
	}
	bounds := math32.B2(0, 0, ax.size.X, ax.size.Y)
	for i := range ticks {
		if ticks[i].visible && !bounds.ContainsBox(ticks[i].rect) {
			ticks[i].visible = false
		}
	}
	idx := []int{}
	rects := []math32.Box2{}
	for i := range ticks {
		if ticks[i].visible {
			idx = append(idx, i)
			rects = append(rects, ticks[i].rect)
		}
	}
	padding := ax.LabelPadding
	if ax.labelPos != LabelCenter {
		padding *= 3
	}
	keep := resolveLabelOverlaps(rects, padding)
	for j, i := range idx {
		ticks[i].visible = keep[j]
	}
}

// resolveLabelOverlaps finds the smallest interval such that every
// pair of label rects interval apart, each expanded by padding on all
// sides, is non-overlapping, then keeps only rects at indices that are
// multiples of that interval. If no interval below len(rects)
// satisfies the test, only the first rect survives. The pass is
// deterministic and depends on tick order.
func resolveLabelOverlaps(rects []math32.Box2, padding float32) []bool {
	n := len(rects)
	visible := make([]bool, n)
	if n == 0 {
		return visible
	}
	expanded := make([]math32.Box2, n)
	for i, r := range rects {
		expanded[i] = r.ExpandByScalar(padding)
	}
	interval := 1
	for ; interval < n; interval++ {
		ok := true
		for i := 0; i+interval < n; i++ {
			if expanded[i].Intersects(expanded[i+interval]) {
				ok = false
				break
			}
		}
		if ok {
			break
		}
	}
	for i := 0; i < n; i += interval {
		visible[i] = true
	}
	return visible
}

// tickKey identifies a tick element by its value, so ticks whose
// labels format identically still bind distinct marks and labels.
func tickKey(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (ax *NumericAxis) renderRetained() {
	g := ax.group
	if ax.baseline == nil {
		ax.baseline = g.NewChild("line").SetAttr("class", "baseline")
		ax.marks = g.NewChild("g").SetAttr("class", "tick-marks")
		ax.labels = g.NewChild("g").SetAttr("class", "tick-labels")
		ax.markEls = map[string]*render.Element{}
		ax.labelEls = map[string]*render.Element{}
	}
	lineColor := colors.AsHex(ax.LineColor)
	b0, b1 := ax.baselineLine()
	ax.baseline.SetFloatAttr("x1", b0.X).SetFloatAttr("y1", b0.Y).
		SetFloatAttr("x2", b1.X).SetFloatAttr("y2", b1.Y).
		SetAttr("stroke", lineColor)

	ticks := ax.buildTicks()
	ax.resolveVisibility(ticks)

	seen := map[string]bool{}
	for i := range ticks {
		tk := &ticks[i]
		key := tickKey(tk.value)
		seen[key] = true

		mark, ok := ax.markEls[key]
		if !ok {
			mark = ax.marks.NewChild("line")
			ax.markEls[key] = mark
		}
		p0, p1 := ax.markLine(tk.pos)
		mark.SetFloatAttr("x1", p0.X).SetFloatAttr("y1", p0.Y).
			SetFloatAttr("x2", p1.X).SetFloatAttr("y2", p1.Y).
			SetAttr("stroke", lineColor)
		// In center mode marks stand on their own; in edge modes a
		// mark without a visible label is hidden with it.
		if ax.labelPos != LabelCenter && !tk.visible {
			mark.SetAttr("visibility", "hidden")
		} else {
			mark.SetAttr("visibility", "")
		}

		label, ok := ax.labelEls[key]
		if !ok {
			label = ax.labels.NewChild("text")
			ax.labelEls[key] = label
		}
		label.Text = tk.text
		label.SetFloatAttr("x", tk.rect.Min.X).
			SetFloatAttr("y", tk.rect.Min.Y).
			SetAttr("dominant-baseline", "hanging").
			SetAttr("fill", colors.AsHex(ax.TextColor)).
			SetFloatAttr("font-size", ax.measurer.FontSize())
		if tk.visible {
			label.SetAttr("visibility", "")
		} else {
			label.SetAttr("visibility", "hidden")
		}
	}
	for key, el := range ax.markEls {
		if !seen[key] {
			el.Remove()
			delete(ax.markEls, key)
		}
	}
	for key, el := range ax.labelEls {
		if !seen[key] {
			el.Remove()
			delete(ax.labelEls, key)
		}
	}
}

// renderImmediate draws the baseline and tick marks on a raster
// canvas. Label glyph rasterization is not available on the canvas
// surface; labels are skipped with a debug note.
func (ax *NumericAxis) renderImmediate(cv *render.Canvas) {
	off := ax.AbsoluteOrigin()
	b0, b1 := ax.baselineLine()
	cv.StrokePath([]math32.Vector2{b0.Add(off), b1.Add(off)}, ax.LineColor, 1)
	for _, v := range ax.tickValues() {
		p0, p1 := ax.markLine(ax.scale.Scale(v))
		cv.StrokePath([]math32.Vector2{p0.Add(off), p1.Add(off)}, ax.LineColor, 1)
	}
	logx.Debug("chart: axis labels are not drawn on canvas surfaces", "orient", ax.orient)
}

// Detach implements [Component], releasing the retained label and mark
// elements so a later re-anchor rebuilds them.
func (ax *NumericAxis) Detach() {
	ax.baseline = nil
	ax.marks = nil
	ax.labels = nil
	ax.markEls = nil
	ax.labelEls = nil
	if ax.group != nil {
		ax.group.Clear()
	}
	ax.ComponentBase.Detach()
}
