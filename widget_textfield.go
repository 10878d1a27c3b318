package floatmenu

// fieldStore is the type-safe store for text field state.
var fieldStore = NewFrameStore[TextFieldState]()

// TextField renders an editable single-line field in rect and returns the
// (possibly edited) text. Clicking the field focuses it; while focused it
// consumes typed characters and editing keys and sets WantCaptureKeyboard.
// placeholder is shown dimmed while text is empty.
func (ctx *Context) TextField(id ID, rect Rect, text string, placeholder string) string {
	state := fieldStore.Get(id, TextFieldState{})

	if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		if ctx.isHovered(rect) {
			ctx.SetFocused(id)
		} else if ctx.IsFocused(id) {
			ctx.ClearFocus()
		}
	}
	focused := ctx.IsFocused(id)

	runes := []rune(text)
	if state.CursorPos > len(runes) {
		state.CursorPos = len(runes)
	}

	if focused && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true

		for _, ch := range ctx.Input.InputChars {
			if ch < 32 {
				continue
			}
			runes = append(runes[:state.CursorPos], append([]rune{ch}, runes[state.CursorPos:]...)...)
			state.CursorPos++
			state.CursorBlinkTime = 0
		}

		if ctx.Input.KeyRepeated(KeyBackspace) && state.CursorPos > 0 {
			runes = append(runes[:state.CursorPos-1], runes[state.CursorPos:]...)
			state.CursorPos--
			state.CursorBlinkTime = 0
		}
		if ctx.Input.KeyRepeated(KeyDelete) && state.CursorPos < len(runes) {
			runes = append(runes[:state.CursorPos], runes[state.CursorPos+1:]...)
			state.CursorBlinkTime = 0
		}
		if ctx.Input.KeyRepeated(KeyLeft) && state.CursorPos > 0 {
			state.CursorPos--
			state.CursorBlinkTime = 0
		}
		if ctx.Input.KeyRepeated(KeyRight) && state.CursorPos < len(runes) {
			state.CursorPos++
			state.CursorBlinkTime = 0
		}
		if ctx.Input.KeyPressed(KeyHome) {
			state.CursorPos = 0
		}
		if ctx.Input.KeyPressed(KeyEnd) {
			state.CursorPos = len(runes)
		}
	}

	// Background and border
	bg := ctx.style.InputBgColor
	if focused {
		bg = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.InputBorderColor, ctx.style.BorderSize)

	charW := ctx.style.CharWidth * ctx.style.FontScale
	textX := rect.X + SpaceSM
	textY := rect.Y + (rect.H-ctx.LineHeight())*0.5

	edited := string(runes)
	switch {
	case edited != "":
		shown := TextWidthEllipsis(ctx, edited, rect.W-2*SpaceSM)
		ctx.AddText(textX, textY, shown, ctx.style.TextColor)
	case placeholder != "" && !focused:
		shown := TextWidthEllipsis(ctx, placeholder, rect.W-2*SpaceSM)
		ctx.AddText(textX, textY, shown, ctx.style.TextDisabledColor)
	}

	// Blinking cursor
	if focused {
		state.CursorBlinkTime += ctx.DeltaTime
		if int(state.CursorBlinkTime*2)%2 == 0 {
			cursorX := textX + float32(state.CursorPos)*charW
			if cursorX < rect.X+rect.W-SpaceSM {
				ctx.DrawList.AddRect(cursorX, textY, 1, ctx.LineHeight(), ctx.style.TextColor)
			}
		}
	}

	return edited
}
