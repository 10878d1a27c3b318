/*
Package floatmenu implements a searchable, multi-column "float menu"
selection widget in the immediate-mode style: menus are rebuilt and drawn
every frame from a lightweight Context, and the host renders the resulting
DrawList. It uses a dedicated Context type (not context.Context) because
every call happens on the render thread of a single frame.

# Overview

A float menu is a floating window that lays items out column-major across a
fixed number of columns, optionally with a search field that filters items
and highlights the matched portion of each label. Menus are opened onto a
WindowStack and stay open across frames until an item is selected, Escape is
pressed, or the user clicks outside the menu.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1920, 1080)
	ui := floatmenu.New(renderer, floatmenu.WithStyle(floatmenu.GTAStyle()))

	// Open a menu (once, e.g. on a hotkey)
	items := floatmenu.BuildItems(vehicles, func(v Vehicle) floatmenu.Item {
	    return &floatmenu.TextItem{
	        Label:    v.Name,
	        ItemSize: floatmenu.Vec2{X: 180, Y: 22},
	        Data:     floatmenu.NewPayload(v),
	    }
	})
	ui.Open("Spawn Vehicle", items, func(it floatmenu.Item) {
	    v, err := floatmenu.PayloadAs[Vehicle](it)
	    ...
	})

	// Game loop
	for !window.ShouldClose() {
	    input := pollInput(window)
	    ui.Begin(input, floatmenu.Vec2{X: 1920, Y: 1080}, deltaTime)
	    ui.End()
	    window.SwapBuffers()
	}

# Items

Two built-in item kinds cover the common cases:

	TextItem    Label with optional leading icon and tooltip. Sorts by label.
	IconItem    Icon-only tile with optional background and tooltip.

Custom item kinds implement the Item interface. Select payloads are carried
as type-erased Payload values and recovered with the generic PayloadAs[T],
which reports *PayloadTypeError on a type mismatch.

# Menu Options

Open accepts functional options:

	WithID(id string)               Explicit stable ID (use when reopening)
	WithColumns(n int)              Column count, default 2
	WithPadding(px float32)         Cell padding, default 6
	WithSearchable(on bool)         Search field, default on
	WithCloseOnSelected(on bool)    Close after selection, default on
	WithFilterPlaceholder(text)     Search placeholder, default "Search.."
	WithPosition(pos Vec2)          Fixed top-left, default centered
	WithMaxHeight(h float32)        Viewport cap, default 80% of display

# Keyboard and Mouse

	Type characters  Filter items (when searchable)
	Backspace        Delete filter character
	Escape           Close the top menu
	Click outside    Close the menu
	Mouse Wheel      Scroll the item viewport
	Page Up/Down     Scroll by 80% of viewport height
	Home / End       Scroll to top / bottom

# Rich Text

Labels may embed color spans using the markup

	<c=#RRGGBBAA>span</c>

Spans nest; measurement and truncation skip the tags, so highlighted labels
line up with plain ones. Search highlighting wraps the first match in a span
of DefaultHighlightColor.

# Performance

  - sync.Pool for DrawList buffer reuse
  - Batched rendering by texture
  - Per-frame text measurement cache
  - Filter results cached until the search text or item set changes
  - Off-viewport items are skipped before hit-testing and drawing
*/
package floatmenu
