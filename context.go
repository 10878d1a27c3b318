package floatmenu

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
// Using a dedicated type avoids type assertions and map lookups,
// providing better performance and type safety.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // For tooltips and overlays (drawn on top)

	// Styling
	style Style

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2
	DPIScale    float32

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Widget with keyboard focus (the search field claims this while open)
	focusedID ID

	// Font texture ID (set by renderer) for the built-in font
	FontTextureID uint32

	// Input capture flags (output from GUI to application)
	// These tell the application whether GUI wants to consume input.
	WantCaptureMouse    bool // True if mouse is over any GUI element
	WantCaptureKeyboard bool // True if a text input has focus

	// Per-frame text measurement cache.
	// Avoids redundant MeasureText calls for the same text within a frame.
	textMeasureCache map[string]Vec2

	// Deferred tooltip, drawn last so it sits above every menu
	tooltipText string
	tooltipRect Rect
	tooltipSet  bool
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
		DPIScale:         1.0,
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	// Reset input capture flags - widgets will set these during the frame
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false

	// Clear text measurement cache (valid only for current frame)
	clear(ctx.textMeasureCache)

	ctx.tooltipSet = false
}

// Helper methods for widget interaction

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && menuVerbose() {
		if hovered {
			menuLogger.Debug("click detected",
				"rect", rect,
				"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		} else {
			menuLogger.Debug("click missed - not hovered",
				"rect", rect,
				"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		}
	}

	return hovered && clicked
}

// IsClicked returns true if the widget was clicked this frame (public API).
func (ctx *Context) IsClicked(rect Rect) bool {
	return ctx.isClicked(rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetFocused sets the focused widget.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

// IsFocused returns true if the widget has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return ctx.focusedID == id
}

// ClearFocus removes keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// MeasureText returns the size of rendered text.
// Inline color tags are excluded from the measurement.
// Results are cached per-frame to avoid redundant measurements.
func (ctx *Context) MeasureText(text string) Vec2 {
	if ctx.textMeasureCache != nil {
		if cached, ok := ctx.textMeasureCache[text]; ok {
			return cached
		}
	}

	charW := ctx.style.CharWidth * ctx.style.FontScale
	charH := ctx.style.CharHeight * ctx.style.FontScale
	result := Vec2{X: float32(visibleLen(text)) * charW, Y: charH}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}

	return result
}

// AddTextTo draws text to a specific DrawList.
// This is useful for drawing to the foreground/overlay layer.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// AddText draws text with current style (public API).
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// DrawImage draws a textured rect with a tint, then restores the untextured
// batch state.
func (ctx *Context) DrawImage(textureID uint32, rect Rect, tint uint32) {
	ctx.DrawList.AddImage(textureID, rect.X, rect.Y, rect.W, rect.H, tint)
	ctx.DrawList.SetTexture(0)
}

// TooltipAt schedules hover text for the given widget rect. The tooltip is
// drawn at end of frame on the foreground layer, so it wins over anything the
// menus draw afterwards. The last caller in a frame wins.
func (ctx *Context) TooltipAt(rect Rect, text string) {
	if text == "" || !ctx.isHovered(rect) {
		return
	}
	ctx.tooltipText = text
	ctx.tooltipRect = rect
	ctx.tooltipSet = true
}

// flushTooltip renders the deferred tooltip, if any. Called from GUI.End.
func (ctx *Context) flushTooltip() {
	if !ctx.tooltipSet || ctx.ForegroundDrawList == nil {
		return
	}

	textSize := ctx.MeasureText(ctx.tooltipText)
	pad := ctx.style.TooltipPadding

	pos := Vec2{
		X: ctx.Input.MouseX + 12,
		Y: ctx.Input.MouseY + 16,
	}
	w := textSize.X + 2*pad
	h := textSize.Y + 2*pad

	// Keep the tooltip on screen
	if pos.X+w > ctx.DisplaySize.X {
		pos.X = ctx.DisplaySize.X - w
	}
	if pos.Y+h > ctx.DisplaySize.Y {
		pos.Y = ctx.tooltipRect.Y - h - 2
	}

	dl := ctx.ForegroundDrawList
	dl.AddRect(pos.X, pos.Y, w, h, ctx.style.TooltipBgColor)
	dl.AddRectOutline(pos.X, pos.Y, w, h, ctx.style.TooltipBorderColor, 1)
	ctx.AddTextTo(dl, pos.X+pad, pos.Y+pad, ctx.tooltipText, ctx.style.TooltipTextColor)
}
