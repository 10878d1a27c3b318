package floatmenu

import "testing"

func TestColumnLayoutTwoColumns(t *testing.T) {
	// Five items, uniform height, varying widths, two columns, padding 6.
	// Column 0 owns indices 0-2 (width 30), column 1 owns 3-4 (width 30).
	sizes := []Vec2{
		{X: 20, Y: 10},
		{X: 30, Y: 10},
		{X: 20, Y: 10},
		{X: 30, Y: 10},
		{X: 20, Y: 10},
	}

	res := columnLayout(sizes, 2, 6)

	wantPositions := []Vec2{
		{X: 0, Y: 0},
		{X: 0, Y: 16},
		{X: 0, Y: 32},
		{X: 42, Y: 0},
		{X: 42, Y: 16},
	}
	if len(res.Positions) != len(wantPositions) {
		t.Fatalf("expected %d positions, got %d", len(wantPositions), len(res.Positions))
	}
	for i, want := range wantPositions {
		if res.Positions[i] != want {
			t.Errorf("Positions[%d] = %v, want %v", i, res.Positions[i], want)
		}
	}

	if res.Content.X != 84 {
		t.Errorf("Content.X = %v, want 84", res.Content.X)
	}
	if res.Content.Y != 42 {
		t.Errorf("Content.Y = %v, want 42", res.Content.Y)
	}
}

func TestColumnLayoutSingleColumn(t *testing.T) {
	sizes := []Vec2{
		{X: 100, Y: 20},
		{X: 80, Y: 20},
		{X: 90, Y: 20},
	}

	res := columnLayout(sizes, 1, 6)

	for i, want := range []Vec2{{X: 0, Y: 0}, {X: 0, Y: 26}, {X: 0, Y: 52}} {
		if res.Positions[i] != want {
			t.Errorf("Positions[%d] = %v, want %v", i, res.Positions[i], want)
		}
	}

	// Column width is the widest item, plus a gutter on each side
	if res.Content.X != 112 {
		t.Errorf("Content.X = %v, want 112", res.Content.X)
	}
	// Three items with two inner gaps, no trailing padding row
	if res.Content.Y != 72 {
		t.Errorf("Content.Y = %v, want 72", res.Content.Y)
	}
}

func TestColumnLayoutMoreColumnsThanItems(t *testing.T) {
	sizes := []Vec2{
		{X: 50, Y: 10},
		{X: 50, Y: 10},
	}

	// perColumn is 1, so items land in separate columns
	res := columnLayout(sizes, 4, 2)

	if res.Positions[0] != (Vec2{X: 0, Y: 0}) {
		t.Errorf("Positions[0] = %v", res.Positions[0])
	}
	if res.Positions[1] != (Vec2{X: 54, Y: 0}) {
		t.Errorf("Positions[1] = %v, want {54 0}", res.Positions[1])
	}
	// Only occupied columns contribute to content width
	if res.Content.X != 108 {
		t.Errorf("Content.X = %v, want 108", res.Content.X)
	}
	if res.Content.Y != 10 {
		t.Errorf("Content.Y = %v, want 10", res.Content.Y)
	}
}

func TestColumnLayoutEmpty(t *testing.T) {
	res := columnLayout(nil, 2, 6)
	if len(res.Positions) != 0 {
		t.Errorf("expected no positions, got %d", len(res.Positions))
	}
	if res.Content != (Vec2{}) {
		t.Errorf("expected zero content, got %v", res.Content)
	}
}

func TestColumnLayoutClampsArguments(t *testing.T) {
	sizes := []Vec2{
		{X: 10, Y: 10},
		{X: 10, Y: 10},
	}

	// columns below 1 behaves as a single column
	res := columnLayout(sizes, 0, 6)
	if res.Positions[1].X != 0 {
		t.Errorf("zero columns should collapse to one, got X=%v", res.Positions[1].X)
	}

	// negative padding behaves as zero
	res = columnLayout(sizes, 1, -5)
	if res.Positions[1].Y != 10 {
		t.Errorf("negative padding should clamp to 0, got Y=%v", res.Positions[1].Y)
	}
	if res.Content != (Vec2{X: 10, Y: 20}) {
		t.Errorf("Content = %v, want {10 20}", res.Content)
	}
}
