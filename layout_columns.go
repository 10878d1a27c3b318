package floatmenu

// columnLayoutResult holds the output of a column layout pass. Positions are
// relative to the content origin; the scroll viewport translates them.
type columnLayoutResult struct {
	Positions []Vec2
	Content   Vec2
}

// columnLayout distributes items of the given sizes across columns in
// column-major order: with n items and c columns each column owns
// ceil(n/c) consecutive indices, the list exhausted top to bottom in one
// column before moving to the next, the last column possibly short.
// Every column is as wide as its widest item, items stack vertically with
// padding between them, and each column carries a padding-wide gutter on
// both sides, so content width is the sum of colWidth+2*padding per
// occupied column. Content height is the tallest column, without a
// trailing padding row.
//
// columns below 1 is treated as 1 and negative padding as 0. Zero sizes
// yields no positions and zero content.
func columnLayout(sizes []Vec2, columns int, padding float32) columnLayoutResult {
	if columns < 1 {
		columns = 1
	}
	if padding < 0 {
		padding = 0
	}
	n := len(sizes)
	if n == 0 {
		return columnLayoutResult{Positions: nil, Content: Vec2{}}
	}

	perColumn := (n + columns - 1) / columns

	positions := make([]Vec2, n)
	var columnX, contentW, contentH float32
	for col := 0; col < columns; col++ {
		start := col * perColumn
		if start >= n {
			break
		}
		end := start + perColumn
		if end > n {
			end = n
		}

		var colWidth float32
		for i := start; i < end; i++ {
			colWidth = maxf(colWidth, sizes[i].X)
		}

		var runningY float32
		for i := start; i < end; i++ {
			positions[i] = Vec2{X: columnX, Y: runningY}
			runningY += sizes[i].Y + padding
		}

		columnX += colWidth + 2*padding
		contentW += colWidth + 2*padding
		contentH = maxf(contentH, runningY-padding)
	}

	return columnLayoutResult{Positions: positions, Content: Vec2{X: contentW, Y: contentH}}
}
