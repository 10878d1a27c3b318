package floatmenu

// ScrollState tracks a scroll viewport's position between frames.
type ScrollState struct {
	ScrollY       float32 // Current scroll position
	TargetScrollY float32 // Target for smooth scrolling
	ContentHeight float32 // Total content height
}

// UpdateSmooth smoothly interpolates scroll position toward target.
// Call this each frame with the frame's delta time.
// Returns true if still animating.
func (s *ScrollState) UpdateSmooth(deltaTime float32) bool {
	const smoothSpeed = 15.0 // Higher = faster convergence
	const threshold = 0.5    // Stop animating when this close

	diff := s.TargetScrollY - s.ScrollY
	if absf32(diff) < threshold {
		s.ScrollY = s.TargetScrollY
		return false
	}

	s.ScrollY += diff * deltaTime * smoothSpeed
	return true
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// TextFieldState tracks the search field between frames.
type TextFieldState struct {
	// Cursor position (in runes, not bytes)
	CursorPos int

	// Cursor blink state (managed internally)
	CursorBlinkTime float32
}

// filteredItem is one surviving entry of a filter pass: the item plus the
// display string its Match reported (highlighted label for text items).
type filteredItem struct {
	item    Item
	display string
}
