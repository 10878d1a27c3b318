package floatmenu_test

import (
	"testing"

	"github.com/go-theft-auto/floatmenu"
)

func TestScrollAreaWheelScrolls(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	viewport := floatmenu.Rect{X: 0, Y: 0, W: 100, H: 100}
	input.SetMousePos(50, 50)

	scroll := func() float32 {
		ctx := ui.Begin(input, floatmenu.Vec2{X: 800, Y: 600}, 0.016)
		var offset float32
		ctx.ScrollArea(floatmenu.ID(1), viewport, 400, func(o float32) { offset = o })
		_ = ui.End()
		return offset
	}

	if got := scroll(); got != 0 {
		t.Fatalf("expected no scroll before input, got %v", got)
	}

	// One wheel notch down moves the target 30px; the view eases after it
	input.Reset()
	input.SetMouseWheel(0, -1)
	first := scroll()
	if first <= 0 {
		t.Fatalf("wheel should start scrolling, got %v", first)
	}

	// Let the easing converge
	input.Reset()
	var last float32
	for i := 0; i < 60; i++ {
		last = scroll()
	}
	if last != 30 {
		t.Errorf("expected scroll to settle at 30, got %v", last)
	}
}

func TestScrollAreaClampsToContent(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	viewport := floatmenu.Rect{X: 0, Y: 0, W: 100, H: 100}
	input.SetMousePos(50, 50)

	scroll := func(contentH float32) float32 {
		ctx := ui.Begin(input, floatmenu.Vec2{X: 800, Y: 600}, 0.016)
		var offset float32
		ctx.ScrollArea(floatmenu.ID(2), viewport, contentH, func(o float32) { offset = o })
		_ = ui.End()
		return offset
	}

	// Jump to the bottom
	input.SetKey(floatmenu.KeyEnd, true)
	scroll(400)
	input.Reset()
	input.SetKey(floatmenu.KeyEnd, false)

	var last float32
	for i := 0; i < 60; i++ {
		last = scroll(400)
	}
	if last != 300 {
		t.Fatalf("expected bottom at contentH-viewportH=300, got %v", last)
	}

	// Content shrinks (filter narrowed): the offset clamps back down
	input.Reset()
	if got := scroll(150); got > 50 {
		t.Errorf("offset should clamp to new max 50, got %v", got)
	}
}

func TestScrollAreaNoScrollWhenContentFits(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	viewport := floatmenu.Rect{X: 0, Y: 0, W: 100, H: 100}
	input.SetMousePos(50, 50)
	input.SetMouseWheel(0, -1)

	ctx := ui.Begin(input, floatmenu.Vec2{X: 800, Y: 600}, 0.016)
	var offset float32
	ctx.ScrollArea(floatmenu.ID(3), viewport, 80, func(o float32) { offset = o })
	_ = ui.End()

	if offset != 0 {
		t.Errorf("content shorter than the viewport should never scroll, got %v", offset)
	}
}

func TestTextFieldTyping(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	rect := floatmenu.Rect{X: 0, Y: 0, W: 120, H: 20}
	id := floatmenu.ID(10)

	field := func(text string) string {
		ctx := ui.Begin(input, floatmenu.Vec2{X: 800, Y: 600}, 0.016)
		out := ctx.TextField(id, rect, text, "Search..")
		_ = ui.End()
		return out
	}

	// Click into the field to focus it
	input.SetMousePos(10, 10)
	input.SetMouseButton(floatmenu.MouseButtonLeft, true)
	text := field("")
	if text != "" {
		t.Fatalf("click alone should not edit, got %q", text)
	}

	// Typed characters append at the cursor
	input.Reset()
	input.AddInputChar('h')
	input.AddInputChar('i')
	text = field(text)
	if text != "hi" {
		t.Fatalf("expected %q, got %q", "hi", text)
	}
	if !ui.Context().WantCaptureKeyboard {
		t.Error("focused field should capture the keyboard")
	}

	// Control characters are ignored
	input.Reset()
	input.AddInputChar('\t')
	text = field(text)
	if text != "hi" {
		t.Errorf("control characters should be dropped, got %q", text)
	}

	// Clicking outside unfocuses; typing no longer edits
	input.Reset()
	input.SetMouseButton(floatmenu.MouseButtonLeft, false)
	text = field(text)

	input.Reset()
	input.SetMousePos(400, 300)
	input.SetMouseButton(floatmenu.MouseButtonLeft, true)
	text = field(text)

	input.Reset()
	input.AddInputChar('x')
	text = field(text)
	if text != "hi" {
		t.Errorf("unfocused field should ignore typing, got %q", text)
	}
}

func TestTextFieldBackspace(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	rect := floatmenu.Rect{X: 0, Y: 0, W: 120, H: 20}
	id := floatmenu.ID(11)

	field := func(text string) string {
		ctx := ui.Begin(input, floatmenu.Vec2{X: 800, Y: 600}, 0.016)
		ctx.SetFocused(id)
		out := ctx.TextField(id, rect, text, "")
		_ = ui.End()
		return out
	}

	// Move the cursor to the end first; a fresh field starts at position 0
	input.SetKey(floatmenu.KeyEnd, true)
	got := field("ban")

	input.Reset()
	input.SetKey(floatmenu.KeyEnd, false)
	input.SetKey(floatmenu.KeyBackspace, true)
	got = field(got)
	if got != "ba" {
		t.Errorf("backspace should delete before the cursor, got %q", got)
	}
}
