package floatmenu

// scrollAreaState tracks one scroll viewport between frames.
type scrollAreaState struct {
	ScrollState
	Dragging     bool
	DragStartY   float32
	DragStartScr float32
}

// scrollStore is the type-safe store for scroll viewport state.
var scrollStore = NewFrameStore[scrollAreaState]()

// ScrollArea clips rendering to viewport and scrolls content of the given
// virtual height inside it. The content closure receives the current scroll
// offset and draws at viewport.Y-offset. Wheel, scrollbar drag, track
// clicks, and PageUp/PageDown/Home/End all move the view; the offset eases
// toward its target over a few frames.
//
// Returns the offset used this frame, so callers can hit-test against the
// same positions they drew at.
func (ctx *Context) ScrollArea(id ID, viewport Rect, contentHeight float32, contents func(offset float32)) float32 {
	state := scrollStore.Get(id, scrollAreaState{})
	state.ContentHeight = contentHeight

	maxScroll := maxf(0, contentHeight-viewport.H)

	showScrollbar := contentHeight > viewport.H
	barW := float32(0)
	if showScrollbar {
		barW = ctx.style.ScrollbarSize
	}
	barX := viewport.X + viewport.W - barW

	hovered := ctx.isHovered(viewport)

	// Wheel and keyboard input move the target; the view eases after it
	if ctx.Input != nil && hovered {
		if ctx.Input.MouseWheelY != 0 {
			state.TargetScrollY = clampf(state.TargetScrollY-ctx.Input.MouseWheelY*30, 0, maxScroll)
		}

		pageAmount := viewport.H * 0.8
		if ctx.Input.KeyPressed(KeyPageDown) {
			state.TargetScrollY = clampf(state.TargetScrollY+pageAmount, 0, maxScroll)
		}
		if ctx.Input.KeyPressed(KeyPageUp) {
			state.TargetScrollY = clampf(state.TargetScrollY-pageAmount, 0, maxScroll)
		}
		if ctx.Input.KeyPressed(KeyHome) {
			state.TargetScrollY = 0
		}
		if ctx.Input.KeyPressed(KeyEnd) {
			state.TargetScrollY = maxScroll
		}
	}

	// Content may have shrunk (e.g. filter narrowed) since last frame
	state.TargetScrollY = clampf(state.TargetScrollY, 0, maxScroll)
	state.UpdateSmooth(ctx.DeltaTime)
	state.ScrollY = clampf(state.ScrollY, 0, maxScroll)

	thumbRect := Rect{}
	if showScrollbar {
		scrollRatio := viewport.H / contentHeight
		thumbH := maxf(20, viewport.H*scrollRatio)
		thumbPos := float32(0)
		if maxScroll > 0 {
			thumbPos = (state.ScrollY / maxScroll) * (viewport.H - thumbH)
		}
		thumbRect = Rect{X: barX, Y: viewport.Y + thumbPos, W: barW, H: thumbH}

		if ctx.Input != nil {
			thumbHovered := ctx.isHovered(thumbRect)

			if thumbHovered && ctx.Input.MouseClicked(MouseButtonLeft) {
				state.Dragging = true
				state.DragStartY = ctx.Input.MouseY
				state.DragStartScr = state.ScrollY
			}

			if state.Dragging {
				if ctx.Input.MouseDown(MouseButtonLeft) {
					track := viewport.H - thumbRect.H
					if track > 0 {
						delta := (ctx.Input.MouseY - state.DragStartY) * (maxScroll / track)
						state.ScrollY = clampf(state.DragStartScr+delta, 0, maxScroll)
						state.TargetScrollY = state.ScrollY
					}
				} else {
					state.Dragging = false
				}
			}

			// Click on track (above or below thumb) to page scroll
			barRect := Rect{X: barX, Y: viewport.Y, W: barW, H: viewport.H}
			if !thumbHovered && ctx.isHovered(barRect) && ctx.Input.MouseClicked(MouseButtonLeft) {
				if ctx.Input.MouseY < thumbRect.Y {
					state.TargetScrollY = clampf(state.TargetScrollY-viewport.H, 0, maxScroll)
				} else if ctx.Input.MouseY > thumbRect.Y+thumbRect.H {
					state.TargetScrollY = clampf(state.TargetScrollY+viewport.H, 0, maxScroll)
				}
			}
		}
	}

	// Clip content to the viewport, minus the scrollbar gutter
	ctx.DrawList.PushClipRect(viewport.X, viewport.Y, viewport.X+viewport.W-barW, viewport.Y+viewport.H)
	contents(state.ScrollY)
	ctx.DrawList.PopClipRect()

	if showScrollbar {
		ctx.DrawList.AddRect(barX, viewport.Y, barW, viewport.H, ctx.style.ScrollbarBgColor)

		thumbColor := ctx.style.ScrollbarGrabColor
		if state.Dragging || ctx.isHovered(thumbRect) {
			thumbColor = ctx.style.ScrollbarGrabHovered
		}
		ctx.DrawList.AddRect(thumbRect.X, thumbRect.Y, thumbRect.W, thumbRect.H, thumbColor)
	}

	return state.ScrollY
}
