package slate

import (
	"fmt"
	"math"
)

// Direction selects the axis a Layout splits along.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// constraintKind tags the Constraint variant.
type constraintKind uint8

const (
	constraintLength constraintKind = iota
	constraintPercentage
	constraintRatio
	constraintMin
	constraintMax
	constraintFill
)

// Constraint is a typed sizing request for one segment of a split. A
// constraint has no identity beyond its position in the input list: the
// i-th constraint produces the i-th output rect.
type Constraint struct {
	kind constraintKind
	a    int // length, percentage, bound, numerator or weight
	b    int // ratio denominator
}

// Length requests exactly n columns or rows.
func Length(n int) Constraint {
	return Constraint{kind: constraintLength, a: max(n, 0)}
}

// Percentage requests p percent of the usable axis length.
func Percentage(p int) Constraint {
	return Constraint{kind: constraintPercentage, a: max(p, 0)}
}

// Ratio requests num/den of the usable axis length.
func Ratio(num, den int) Constraint {
	return Constraint{kind: constraintRatio, a: max(num, 0), b: max(den, 0)}
}

// Min requests at least n; the segment grows to absorb slack before
// fixed-size segments do.
func Min(n int) Constraint {
	return Constraint{kind: constraintMin, a: max(n, 0)}
}

// Max requests at most n; the segment takes up to n and never more.
func Max(n int) Constraint {
	return Constraint{kind: constraintMax, a: max(n, 0)}
}

// Fill requests a share of the space left after all non-Fill segments,
// proportional to weight among all Fill constraints.
func Fill(weight int) Constraint {
	return Constraint{kind: constraintFill, a: max(weight, 0)}
}

// String implements fmt.Stringer.
func (c Constraint) String() string {
	switch c.kind {
	case constraintLength:
		return fmt.Sprintf("Length(%d)", c.a)
	case constraintPercentage:
		return fmt.Sprintf("Percentage(%d)", c.a)
	case constraintRatio:
		return fmt.Sprintf("Ratio(%d,%d)", c.a, c.b)
	case constraintMin:
		return fmt.Sprintf("Min(%d)", c.a)
	case constraintMax:
		return fmt.Sprintf("Max(%d)", c.a)
	case constraintFill:
		return fmt.Sprintf("Fill(%d)", c.a)
	}
	return "Constraint(?)"
}

// growable reports whether the flex policies may grow this segment past
// its tentative size. Length is fixed and Max is capped; everything else
// can take slack.
func (c Constraint) growable() bool {
	switch c.kind {
	case constraintLength, constraintMax:
		return false
	}
	return true
}

// Flex is the policy for distributing leftover space when the hard
// constraints don't exactly fill the axis and no Fill segment exists.
type Flex uint8

const (
	// FlexStart packs segments at the start, slack after the last.
	FlexStart Flex = iota
	// FlexEnd packs segments at the end, slack before the first.
	FlexEnd
	// FlexCenter splits slack evenly before and after the segments.
	FlexCenter
	// FlexSpaceBetween spreads slack into the gaps between segments.
	FlexSpaceBetween
	// FlexSpaceAround spreads slack into the gaps around every segment,
	// including before the first and after the last.
	FlexSpaceAround
	// FlexStretch grows all growable segments evenly to consume slack.
	FlexStretch
	// FlexStretchLast grows only the last growable segment.
	FlexStretchLast
)

// Layout is a reusable, stateless split configuration. Applying it to a
// Rect is a pure function: identical inputs always produce identical
// output, one rect per constraint, in input order.
type Layout struct {
	Direction   Direction
	Constraints []Constraint
	Margin      Margin
	Spacing     int
	Flex        Flex
}

// NewVertical returns a layout that splits an area top to bottom.
func NewVertical(constraints ...Constraint) Layout {
	return Layout{Direction: Vertical, Constraints: constraints}
}

// NewHorizontal returns a layout that splits an area left to right.
func NewHorizontal(constraints ...Constraint) Layout {
	return Layout{Direction: Horizontal, Constraints: constraints}
}

// WithMargin returns the layout with a uniform margin on all sides.
func (l Layout) WithMargin(m uint16) Layout {
	l.Margin = Margin{Horizontal: m, Vertical: m}
	return l
}

// WithSpacing returns the layout with a gap between adjacent segments.
func (l Layout) WithSpacing(n int) Layout {
	l.Spacing = max(n, 0)
	return l
}

// WithFlex returns the layout with the given slack policy.
func (l Layout) WithFlex(f Flex) Layout {
	l.Flex = f
	return l
}

// Split partitions area along the layout's axis, one rect per
// constraint. Segments are non-overlapping, ordered to match the input,
// never negative in length, and gap-free unless spacing or a
// space-distributing flex policy was requested. Zero constraints yield
// an empty slice; a zero-length axis yields all-zero-length rects.
func (l Layout) Split(area Rect) []Rect {
	n := len(l.Constraints)
	if n == 0 {
		return nil
	}

	inner := area.Inner(l.Margin)
	total := int(inner.Width)
	if l.Direction == Vertical {
		total = int(inner.Height)
	}
	spacingTotal := l.Spacing * (n - 1)
	usable := max(total-spacingTotal, 0)

	sizes := l.resolveSizes(usable)

	// Leftover space after all segments are sized.
	allocated := 0
	for _, s := range sizes {
		allocated += s
	}
	slack := usable - allocated

	offset, gaps := l.placeSlack(slack, sizes)

	rects := make([]Rect, n)
	pos := int(inner.X)
	if l.Direction == Vertical {
		pos = int(inner.Y)
	}
	pos += offset
	for i, size := range sizes {
		if l.Direction == Horizontal {
			rects[i] = Rect{X: uint16(pos), Y: inner.Y, Width: uint16(size), Height: inner.Height}
		} else {
			rects[i] = Rect{X: inner.X, Y: uint16(pos), Width: inner.Width, Height: uint16(size)}
		}
		pos += size
		if i < n-1 {
			pos += l.Spacing + gaps[i]
		}
	}
	return rects
}

// resolveSizes computes segment lengths against the usable axis length,
// in the priority order of the resolution policy: hard sizes first
// (Length, Percentage, Ratio, with drift-free rounding), then Min/Max
// bounds, then sequential clamping so over-constrained input collapses
// trailing segments to zero instead of going negative, then Fill shares.
func (l Layout) resolveSizes(usable int) []int {
	n := len(l.Constraints)
	sizes := make([]int, n)

	var fracIdx []int // Percentage/Ratio segments, for drift correction
	var fillIdx []int
	fracExact := 0.0
	fracRounded := 0

	for i, c := range l.Constraints {
		switch c.kind {
		case constraintLength:
			sizes[i] = c.a
		case constraintPercentage:
			exact := float64(usable) * float64(c.a) / 100
			sizes[i] = int(math.RoundToEven(exact))
			fracExact += exact
			fracRounded += sizes[i]
			fracIdx = append(fracIdx, i)
		case constraintRatio:
			if c.b == 0 {
				continue
			}
			exact := float64(usable) * float64(c.a) / float64(c.b)
			sizes[i] = int(math.RoundToEven(exact))
			fracExact += exact
			fracRounded += sizes[i]
			fracIdx = append(fracIdx, i)
		case constraintMin:
			sizes[i] = c.a
		case constraintMax:
			sizes[i] = min(c.a, usable)
		case constraintFill:
			fillIdx = append(fillIdx, i)
		}
	}

	// Individually rounded fractions can drift off the rounded group
	// total; the earliest fractional segments absorb the difference so
	// percentages summing to 100 cover the axis exactly.
	drift := int(math.RoundToEven(fracExact)) - fracRounded
	for _, i := range fracIdx {
		if drift == 0 {
			break
		}
		if drift > 0 {
			sizes[i]++
			drift--
		} else if sizes[i] > 0 {
			sizes[i]--
			drift++
		}
	}

	// Sequential clamp: each segment gets at most what is still
	// unallocated, so the sum never exceeds usable and no segment goes
	// negative when the input is over-constrained.
	remaining := usable
	for i := range sizes {
		sizes[i] = min(sizes[i], remaining)
		remaining -= sizes[i]
	}

	if len(fillIdx) > 0 && remaining > 0 {
		l.distributeFills(sizes, fillIdx, remaining)
	}
	return sizes
}

// distributeFills hands remaining space to the Fill segments in
// proportion to their weights. Integer division leftovers go to the
// earliest Fill segments, one unit each. All-zero weights split equally.
func (l Layout) distributeFills(sizes, fillIdx []int, remaining int) {
	totalWeight := 0
	for _, i := range fillIdx {
		totalWeight += l.Constraints[i].a
	}
	if totalWeight == 0 {
		share := remaining / len(fillIdx)
		extra := remaining % len(fillIdx)
		for k, i := range fillIdx {
			sizes[i] += share
			if k < extra {
				sizes[i]++
			}
		}
		return
	}
	given := 0
	for _, i := range fillIdx {
		portion := remaining * l.Constraints[i].a / totalWeight
		sizes[i] += portion
		given += portion
	}
	for _, i := range fillIdx {
		if given >= remaining {
			break
		}
		if l.Constraints[i].a > 0 {
			sizes[i]++
			given++
		}
	}
}

// placeSlack applies the flex policy to leftover space. It may grow
// segments in place, and returns the offset of the first segment plus
// any extra per-gap spacing. With a Fill constraint present slack has
// already been consumed and every policy degenerates to Start.
func (l Layout) placeSlack(slack int, sizes []int) (offset int, gaps []int) {
	n := len(sizes)
	gaps = make([]int, max(n-1, 0))
	if slack <= 0 {
		return 0, gaps
	}

	switch l.Flex {
	case FlexStart:
		// Slack stays after the last segment.
	case FlexEnd:
		offset = slack
	case FlexCenter:
		offset = slack / 2
	case FlexSpaceBetween:
		if n == 1 {
			offset = slack / 2 // nothing between a single segment
			break
		}
		base := slack / (n - 1)
		extra := slack % (n - 1)
		for i := range gaps {
			gaps[i] = base
			if i < extra {
				gaps[i]++
			}
		}
	case FlexSpaceAround:
		base := slack / (n + 1)
		extra := slack % (n + 1)
		offset = base
		if extra > 0 {
			offset++
			extra--
		}
		for i := range gaps {
			gaps[i] = base
			if i < extra {
				gaps[i]++
			}
		}
	case FlexStretch:
		var grow []int
		for i, c := range l.Constraints {
			if c.growable() {
				grow = append(grow, i)
			}
		}
		if len(grow) == 0 {
			break // all segments fixed, slack trails as with Start
		}
		share := slack / len(grow)
		extra := slack % len(grow)
		for k, i := range grow {
			sizes[i] += share
			if k < extra {
				sizes[i]++
			}
		}
	case FlexStretchLast:
		for i := n - 1; i >= 0; i-- {
			if l.Constraints[i].growable() {
				sizes[i] += slack
				break
			}
		}
	}
	return offset, gaps
}
