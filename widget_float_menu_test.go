package floatmenu_test

import (
	"testing"

	"github.com/go-theft-auto/floatmenu"
)

// Menu geometry used below, with DefaultStyle and the menu pinned at the
// origin: the title bar is 20px tall, the optional search row 26px, and
// items start one padding (6px) inside the viewport.

func TestMenuEmptyItemsCloses(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	menu := ui.Open("Empty", nil, func(floatmenu.Item) {
		t.Fatal("onSelected must not fire for an empty menu")
	})

	frame(t, ui, input)

	if menu.IsOpen() {
		t.Error("menu with no items should close on its first frame")
	}
	if ui.Windows().Len() != 0 {
		t.Errorf("closed menu should leave the stack, got %d", ui.Windows().Len())
	}

	// And it stays closed
	frame(t, ui, input)
	if menu.IsOpen() {
		t.Error("closed menu reopened")
	}
}

func TestMenuClickSelectsAndCloses(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	var selected []string
	menu := ui.Open("Menu", textItems("Alpha", "Beta", "Gamma"),
		func(it floatmenu.Item) {
			selected = append(selected, it.(*floatmenu.TextItem).Label)
		},
		floatmenu.WithPosition(floatmenu.Vec2{}),
		floatmenu.WithSearchable(false),
		floatmenu.WithColumns(1),
	)

	// First item occupies (6,26)-(106,46)
	input.SetMousePos(50, 30)
	input.SetMouseButton(floatmenu.MouseButtonLeft, true)
	frame(t, ui, input)

	if len(selected) != 1 || selected[0] != "Alpha" {
		t.Fatalf("expected one selection of Alpha, got %v", selected)
	}
	if menu.IsOpen() {
		t.Error("menu should close after selection by default")
	}
	if ui.Windows().Len() != 0 {
		t.Errorf("stack should be empty, got %d", ui.Windows().Len())
	}
}

func TestMenuSelectsAtMostOncePerClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	count := 0
	menu := ui.Open("Menu", textItems("Alpha", "Beta"),
		func(floatmenu.Item) { count++ },
		floatmenu.WithPosition(floatmenu.Vec2{}),
		floatmenu.WithSearchable(false),
		floatmenu.WithColumns(1),
		floatmenu.WithCloseOnSelected(false),
	)

	input.SetMousePos(50, 30)
	input.SetMouseButton(floatmenu.MouseButtonLeft, true)
	frame(t, ui, input)

	if count != 1 {
		t.Fatalf("expected 1 selection after click, got %d", count)
	}
	if !menu.IsOpen() {
		t.Fatal("menu should stay open with WithCloseOnSelected(false)")
	}

	// Button held down: no fresh click, no new selection
	input.Reset()
	frame(t, ui, input)
	if count != 1 {
		t.Errorf("held button fired a second selection, count=%d", count)
	}

	// Release and click again: a second selection
	input.Reset()
	input.SetMouseButton(floatmenu.MouseButtonLeft, false)
	frame(t, ui, input)

	input.Reset()
	input.SetMouseButton(floatmenu.MouseButtonLeft, true)
	frame(t, ui, input)
	if count != 2 {
		t.Errorf("expected 2 selections after second click, got %d", count)
	}
}

func TestMenuEscapeCloses(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	menu := ui.Open("Menu", textItems("Alpha"), nil,
		floatmenu.WithPosition(floatmenu.Vec2{}),
		floatmenu.WithSearchable(false),
	)

	frame(t, ui, input)
	if !menu.IsOpen() {
		t.Fatal("menu should be open before escape")
	}

	input.Reset()
	input.SetKey(floatmenu.KeyEscape, true)
	frame(t, ui, input)

	if menu.IsOpen() {
		t.Error("escape should close the menu")
	}
}

func TestMenuOutsideClickCloses(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	menu := ui.Open("Menu", textItems("Alpha"), nil,
		floatmenu.WithPosition(floatmenu.Vec2{}),
		floatmenu.WithSearchable(false),
	)

	input.SetMousePos(700, 500)
	input.SetMouseButton(floatmenu.MouseButtonLeft, true)
	frame(t, ui, input)

	if menu.IsOpen() {
		t.Error("click outside the window should close the menu")
	}
}

func TestMenuSearchFilters(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	var selected []string
	menu := ui.Open("Menu", textItems("Apple", "Banana"),
		func(it floatmenu.Item) {
			selected = append(selected, it.(*floatmenu.TextItem).Label)
		},
		floatmenu.WithPosition(floatmenu.Vec2{}),
		floatmenu.WithColumns(1),
	)

	menu.SetSearch("ban")
	frame(t, ui, input)

	if !menu.IsOpen() {
		t.Fatal("menu should stay open while filtered")
	}

	// With only Banana surviving the filter, the first item slot below the
	// search row is (6,52)-(106,72)
	input.Reset()
	input.SetMousePos(50, 56)
	input.SetMouseButton(floatmenu.MouseButtonLeft, true)
	frame(t, ui, input)

	if len(selected) != 1 || selected[0] != "Banana" {
		t.Fatalf("expected filtered selection of Banana, got %v", selected)
	}
}

func TestMenuSearchMissKeepsMenuOpen(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	menu := ui.Open("Menu", textItems("Apple", "Banana"), nil,
		floatmenu.WithPosition(floatmenu.Vec2{}),
	)

	// No item survives, but the item list itself is not empty
	menu.SetSearch("zzz")
	frame(t, ui, input)

	if !menu.IsOpen() {
		t.Error("a filter with no hits should not close the menu")
	}
}

func TestMenuTypedSearch(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	menu := ui.Open("Menu", textItems("Apple", "Banana"), nil,
		floatmenu.WithPosition(floatmenu.Vec2{}),
	)

	// First frame focuses the search field
	frame(t, ui, input)

	input.Reset()
	for _, ch := range "ban" {
		input.AddInputChar(ch)
	}
	frame(t, ui, input)

	if menu.Search() != "ban" {
		t.Errorf("typed characters should land in the search field, got %q", menu.Search())
	}
	if !ui.Context().WantCaptureKeyboard {
		t.Error("focused search field should capture the keyboard")
	}
}

func TestMenuSetItemsRefilters(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	menu := ui.Open("Menu", textItems("Apple"), nil,
		floatmenu.WithPosition(floatmenu.Vec2{}),
		floatmenu.WithSearchable(false),
	)
	frame(t, ui, input)

	// Replacing the items with an empty list closes on the next frame
	menu.SetItems(nil)
	frame(t, ui, input)

	if menu.IsOpen() {
		t.Error("menu should close after its items are cleared")
	}
}

func TestWindowStack(t *testing.T) {
	renderer := &mockRenderer{}
	ui := floatmenu.New(renderer)
	input := floatmenu.NewInputState()

	first := ui.Open("First", textItems("A"), nil, floatmenu.WithPosition(floatmenu.Vec2{}))
	second := ui.Open("Second", textItems("B"), nil, floatmenu.WithPosition(floatmenu.Vec2{X: 400, Y: 0}))

	if ui.Windows().Len() != 2 {
		t.Fatalf("expected 2 open menus, got %d", ui.Windows().Len())
	}
	if ui.Windows().Top() != second {
		t.Error("Top should be the most recently opened menu")
	}

	ui.Windows().CloseAll()
	frame(t, ui, input)

	if ui.Windows().Len() != 0 {
		t.Errorf("CloseAll should empty the stack, got %d", ui.Windows().Len())
	}
	if first.IsOpen() || second.IsOpen() {
		t.Error("CloseAll left a menu open")
	}
}
