package slate

import "testing"

// widths extracts the horizontal segment lengths from a split result.
func widths(rects []Rect) []int {
	out := make([]int, len(rects))
	for i, r := range rects {
		out[i] = int(r.Width)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkContiguous verifies the segments are ordered, non-overlapping and
// separated by exactly the configured spacing.
func checkContiguous(t *testing.T, rects []Rect, spacing int) {
	t.Helper()
	for i := 1; i < len(rects); i++ {
		gap := int(rects[i].X) - int(rects[i-1].Right())
		if gap != spacing {
			t.Errorf("gap between segment %d and %d is %d, want %d", i-1, i, gap, spacing)
		}
	}
}

func TestLayoutSplit(t *testing.T) {
	area := NewRect(10, 10)

	t.Run("LengthsExactCover", func(t *testing.T) {
		rects := NewHorizontal(Length(2), Length(3), Length(5)).Split(area)
		if !equalInts(widths(rects), []int{2, 3, 5}) {
			t.Errorf("got %v", widths(rects))
		}
		checkContiguous(t, rects, 0)
		if rects[0].X != 0 || rects[2].Right() != 10 {
			t.Errorf("segments must cover [0,10), got %v", rects)
		}
	})

	t.Run("VerticalUsesHeight", func(t *testing.T) {
		rects := NewVertical(Length(4), Length(6)).Split(area)
		if rects[0].Height != 4 || rects[1].Height != 6 {
			t.Errorf("got heights %d,%d", rects[0].Height, rects[1].Height)
		}
		if rects[0].Width != 10 || rects[1].Y != 4 {
			t.Errorf("cross axis must span the area, got %v", rects)
		}
	})

	t.Run("PercentagesSumExactly", func(t *testing.T) {
		rects := NewHorizontal(Percentage(33), Percentage(33), Percentage(34)).Split(NewRect(7, 1))
		total := 0
		for _, w := range widths(rects) {
			total += w
		}
		if total != 7 {
			t.Errorf("percentages summing to 100 must cover exactly, got %v (total %d)", widths(rects), total)
		}
		checkContiguous(t, rects, 0)
	})

	t.Run("PercentageDriftAbsorbedByFirstSegments", func(t *testing.T) {
		// Each half rounds to even individually; the first segment takes
		// the missing unit.
		rects := NewHorizontal(Percentage(50), Percentage(50)).Split(NewRect(5, 1))
		got := widths(rects)
		if got[0]+got[1] != 5 {
			t.Fatalf("must cover exactly, got %v", got)
		}
		if got[0] < got[1] {
			t.Errorf("first segment absorbs the extra unit, got %v", got)
		}
	})

	t.Run("Ratio", func(t *testing.T) {
		rects := NewHorizontal(Ratio(1, 3), Ratio(1, 3), Ratio(1, 3)).Split(NewRect(9, 1))
		if !equalInts(widths(rects), []int{3, 3, 3}) {
			t.Errorf("got %v", widths(rects))
		}
		// Zero denominator degrades to a zero-length segment.
		rects = NewHorizontal(Ratio(1, 0), Length(4)).Split(area)
		if !equalInts(widths(rects), []int{0, 4}) {
			t.Errorf("got %v", widths(rects))
		}
	})

	t.Run("FillSplitsRemainder", func(t *testing.T) {
		rects := NewHorizontal(Length(3), Fill(1), Fill(1)).Split(area)
		got := widths(rects)
		if got[0] != 3 || got[1]+got[2] != 7 {
			t.Fatalf("got %v", got)
		}
		// The earliest Fill takes the integer division leftover.
		if !equalInts(got, []int{3, 4, 3}) {
			t.Errorf("remainder must go to the earliest fill, got %v", got)
		}
		checkContiguous(t, rects, 0)
	})

	t.Run("FillWeights", func(t *testing.T) {
		rects := NewHorizontal(Fill(1), Fill(3)).Split(NewRect(8, 1))
		if !equalInts(widths(rects), []int{2, 6}) {
			t.Errorf("got %v", widths(rects))
		}
	})

	t.Run("FillZeroWeightsSplitEqually", func(t *testing.T) {
		rects := NewHorizontal(Fill(0), Fill(0)).Split(area)
		if !equalInts(widths(rects), []int{5, 5}) {
			t.Errorf("got %v", widths(rects))
		}
	})

	t.Run("OverConstrainedNeverNegative", func(t *testing.T) {
		rects := NewHorizontal(Min(6), Min(6), Min(6)).Split(area)
		got := widths(rects)
		total := 0
		for _, w := range got {
			if w < 0 {
				t.Fatalf("negative segment in %v", got)
			}
			total += w
		}
		if total != 10 {
			t.Errorf("over-constrained still covers the axis, got %v", got)
		}
		if !equalInts(got, []int{6, 4, 0}) {
			t.Errorf("trailing segments collapse first, got %v", got)
		}
	})

	t.Run("OverConstrainedFillCollapsesToZero", func(t *testing.T) {
		rects := NewHorizontal(Length(12), Fill(1)).Split(area)
		if !equalInts(widths(rects), []int{10, 0}) {
			t.Errorf("got %v", widths(rects))
		}
	})

	t.Run("MaxCapsSegment", func(t *testing.T) {
		rects := NewHorizontal(Max(4), Fill(1)).Split(area)
		if !equalInts(widths(rects), []int{4, 6}) {
			t.Errorf("got %v", widths(rects))
		}
	})

	t.Run("MinGrowsUnderStretch", func(t *testing.T) {
		rects := NewHorizontal(Length(4), Min(2)).WithFlex(FlexStretch).Split(area)
		if !equalInts(widths(rects), []int{4, 6}) {
			t.Errorf("min segment should take the slack, got %v", widths(rects))
		}
	})

	t.Run("ZeroConstraints", func(t *testing.T) {
		if rects := NewHorizontal().Split(area); len(rects) != 0 {
			t.Errorf("expected no rects, got %v", rects)
		}
	})

	t.Run("ZeroLengthAxis", func(t *testing.T) {
		rects := NewHorizontal(Length(3), Fill(1)).Split(NewRect(0, 5))
		if !equalInts(widths(rects), []int{0, 0}) {
			t.Errorf("got %v", widths(rects))
		}
	})

	t.Run("Margin", func(t *testing.T) {
		rects := NewHorizontal(Fill(1)).WithMargin(2).Split(area)
		want := Rect{X: 2, Y: 2, Width: 6, Height: 6}
		if rects[0] != want {
			t.Errorf("got %s, want %s", rects[0], want)
		}
	})

	t.Run("Spacing", func(t *testing.T) {
		rects := NewHorizontal(Fill(1), Fill(1)).WithSpacing(2).Split(area)
		if !equalInts(widths(rects), []int{4, 4}) {
			t.Errorf("got %v", widths(rects))
		}
		checkContiguous(t, rects, 2)
	})

	t.Run("Deterministic", func(t *testing.T) {
		l := NewHorizontal(Percentage(33), Fill(2), Min(1)).WithSpacing(1)
		first := l.Split(area)
		for range 5 {
			if next := l.Split(area); len(next) != len(first) || next[0] != first[0] || next[1] != first[1] || next[2] != first[2] {
				t.Fatal("repeated splits with identical input must be identical")
			}
		}
	})
}

func TestLayoutFlex(t *testing.T) {
	area := NewRect(10, 1)
	segments := []Constraint{Length(2), Length(3)} // 5 columns of slack

	t.Run("Start", func(t *testing.T) {
		rects := NewHorizontal(segments...).WithFlex(FlexStart).Split(area)
		if rects[0].X != 0 || rects[1].Right() != 5 {
			t.Errorf("slack should trail, got %v", rects)
		}
	})

	t.Run("End", func(t *testing.T) {
		rects := NewHorizontal(segments...).WithFlex(FlexEnd).Split(area)
		if rects[0].X != 5 || rects[1].Right() != 10 {
			t.Errorf("slack should lead, got %v", rects)
		}
	})

	t.Run("Center", func(t *testing.T) {
		rects := NewHorizontal(segments...).WithFlex(FlexCenter).Split(area)
		if rects[0].X != 2 || rects[1].Right() != 7 {
			t.Errorf("slack should split around, got %v", rects)
		}
	})

	t.Run("SpaceBetween", func(t *testing.T) {
		rects := NewHorizontal(segments...).WithFlex(FlexSpaceBetween).Split(area)
		if rects[0].X != 0 || rects[1].Right() != 10 {
			t.Errorf("first and last segments should touch the edges, got %v", rects)
		}
		if gap := int(rects[1].X) - int(rects[0].Right()); gap != 5 {
			t.Errorf("slack should sit between segments, got gap %d", gap)
		}
	})

	t.Run("SpaceAround", func(t *testing.T) {
		// 5 slack over 3 gaps: 2,2,1 leading to trailing.
		rects := NewHorizontal(segments...).WithFlex(FlexSpaceAround).Split(area)
		if rects[0].X != 2 {
			t.Errorf("leading gap should be 2, got %d", rects[0].X)
		}
		if gap := int(rects[1].X) - int(rects[0].Right()); gap != 2 {
			t.Errorf("middle gap should be 2, got %d", gap)
		}
		if trailing := 10 - int(rects[1].Right()); trailing != 1 {
			t.Errorf("trailing gap should be 1, got %d", trailing)
		}
	})

	t.Run("StretchLast", func(t *testing.T) {
		rects := NewHorizontal(Min(2), Min(3)).WithFlex(FlexStretchLast).Split(area)
		if !equalInts(widths(rects), []int{2, 8}) {
			t.Errorf("last growable segment takes all slack, got %v", widths(rects))
		}
	})

	t.Run("Stretch", func(t *testing.T) {
		rects := NewHorizontal(Min(2), Min(3), Min(1)).WithFlex(FlexStretch).Split(area)
		// 4 slack over 3 growable segments: 2,1,1 from the front.
		if !equalInts(widths(rects), []int{4, 4, 2}) {
			t.Errorf("got %v", widths(rects))
		}
	})

	t.Run("StretchWithOnlyFixedSegmentsLeavesSlack", func(t *testing.T) {
		rects := NewHorizontal(Length(2), Length(3)).WithFlex(FlexStretch).Split(area)
		if !equalInts(widths(rects), []int{2, 3}) {
			t.Errorf("fixed segments must not grow, got %v", widths(rects))
		}
	})

	t.Run("SpaceBetweenSingleSegmentCenters", func(t *testing.T) {
		rects := NewHorizontal(Length(4)).WithFlex(FlexSpaceBetween).Split(area)
		if rects[0].X != 3 {
			t.Errorf("single segment should center, got %v", rects)
		}
	})
}

func BenchmarkLayoutSplit(b *testing.B) {
	l := NewHorizontal(Length(10), Percentage(25), Ratio(1, 4), Min(5), Max(20), Fill(1), Fill(2))
	area := NewRect(200, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Split(area)
	}
}
