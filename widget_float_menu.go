package floatmenu

import "strings"

// FloatMenu is a searchable, multi-column selection window. It is created
// through WindowStack.Open and drawn each frame until it closes; the handle
// stays usable afterwards for inspection.
//
// Each frame the menu normalizes its search string, re-filters its sorted
// item list when needed, lays the filtered items out in columns, and
// hit-tests them against the mouse. Selection fires onSelected at most once
// per click.
type FloatMenu struct {
	id              ID
	title           string
	items           []Item
	onSelected      func(Item)
	columns         int
	padding         float32
	canSearch       bool
	closeOnSelected bool
	placeholder     string
	pos             Vec2
	hasPos          bool
	maxHeight       float32

	search string

	// Filtered view over items, rebuilt when the search string or the item
	// count changes (every frame while the search field is enabled, so the
	// latest edit always wins).
	filtered       []filteredItem
	filteredSearch string
	filteredCount  int
	filteredValid  bool

	open       bool
	justOpened bool
}

// minMenuWidth keeps near-empty menus wide enough to grab.
const minMenuWidth = float32(120)

// Close closes the menu. The window stack drops it at the end of the frame.
func (m *FloatMenu) Close() {
	if m.open {
		menuLogger.Debug("menu closed", "title", m.title)
	}
	m.open = false
}

// IsOpen reports whether the menu is still on the window stack.
func (m *FloatMenu) IsOpen() bool {
	return m.open
}

// Title returns the menu's title.
func (m *FloatMenu) Title() string {
	return m.title
}

// Search returns the current search string.
func (m *FloatMenu) Search() string {
	return m.search
}

// SetSearch replaces the search string, as if typed.
func (m *FloatMenu) SetSearch(s string) {
	m.search = s
}

// SetItems replaces the menu's item list. The filtered view rebuilds on the
// next draw.
func (m *FloatMenu) SetItems(items []Item) {
	m.items = items
	m.filteredValid = false
}

// refilter rebuilds the filtered view for the given normalized search.
// An empty search keeps every item with its default display.
func (m *FloatMenu) refilter(search string) {
	m.filtered = m.filtered[:0]
	if search == "" {
		for _, item := range m.items {
			m.filtered = append(m.filtered, filteredItem{item: item})
		}
	} else {
		for _, item := range m.items {
			if display, ok := item.Match(search); ok {
				m.filtered = append(m.filtered, filteredItem{item: item, display: display})
			}
		}
	}
	m.filteredSearch = search
	m.filteredCount = len(m.items)
	m.filteredValid = true
}

// draw runs one frame of the menu: filter, layout, render, hit-test.
func (m *FloatMenu) draw(ctx *Context) {
	if !m.open {
		return
	}

	// An empty item list is terminal: log and close.
	if len(m.items) == 0 {
		menuLogger.Info("closing menu with no items", "title", m.title)
		m.Close()
		return
	}

	style := ctx.Style()

	search := strings.TrimSpace(m.search)
	if !m.canSearch {
		search = ""
	}

	// While searching is enabled the cache rebuilds every frame so the
	// field's latest edit is always respected.
	if !m.filteredValid || m.canSearch || search != m.filteredSearch || len(m.items) != m.filteredCount {
		m.refilter(search)
	}

	sizes := make([]Vec2, len(m.filtered))
	for i, fi := range m.filtered {
		sizes[i] = fi.item.Size()
	}
	layout := columnLayout(sizes, m.columns, m.padding)

	// Window geometry: title bar, optional search row, then the item
	// viewport. The viewport scrolls when content exceeds its height.
	titleH := style.TitleHeight
	searchH := float32(0)
	if m.canSearch {
		searchH = style.SearchHeight + 2*SpaceSM
	}

	viewportH := layout.Content.Y + m.padding
	maxH := m.maxHeight
	if maxH <= 0 {
		maxH = ctx.DisplaySize.Y * 0.8
	}
	maxViewportH := maxH - titleH - searchH
	if viewportH > maxViewportH {
		viewportH = maxViewportH
	}
	scrolls := layout.Content.Y+m.padding > viewportH

	winW := maxf(layout.Content.X, minMenuWidth)
	winW = maxf(winW, ctx.MeasureText(m.title).X+2*SpaceMD)
	if scrolls {
		winW += style.ScrollbarSize
	}
	winH := titleH + searchH + viewportH

	var winPos Vec2
	if m.hasPos {
		winPos = m.pos
	} else {
		winPos = Vec2{
			X: (ctx.DisplaySize.X - winW) * 0.5,
			Y: (ctx.DisplaySize.Y - winH) * 0.5,
		}
	}
	winRect := Rect{X: winPos.X, Y: winPos.Y, W: winW, H: winH}

	if ctx.isHovered(winRect) {
		ctx.WantCaptureMouse = true
	}

	// Window chrome
	dl := ctx.DrawList
	dl.AddRect(winRect.X, winRect.Y, winRect.W, winRect.H, style.MenuBgColor)
	dl.AddRectOutline(winRect.X, winRect.Y, winRect.W, winRect.H, style.MenuBorderColor, style.BorderSize)

	dl.AddRect(winRect.X, winRect.Y, winRect.W, titleH, style.TitleBgColor)
	titleColor := style.TitleTextColor
	if titleColor == 0 {
		titleColor = style.TextColor
	}
	ctx.AddText(winRect.X+SpaceMD, winRect.Y+(titleH-ctx.LineHeight())*0.5, m.title, titleColor)

	// Search field
	if m.canSearch {
		fieldID := m.id + 1
		if m.justOpened {
			ctx.SetFocused(fieldID)
		}
		fieldRect := Rect{
			X: winRect.X + SpaceSM,
			Y: winRect.Y + titleH + SpaceSM,
			W: winRect.W - 2*SpaceSM,
			H: style.SearchHeight,
		}
		m.search = ctx.TextField(fieldID, fieldRect, m.search, m.placeholder)
	}
	m.justOpened = false

	// Item viewport
	viewport := Rect{
		X: winRect.X,
		Y: winRect.Y + titleH + searchH,
		W: winRect.W,
		H: viewportH,
	}
	selected := false
	ctx.ScrollArea(m.id+2, viewport, layout.Content.Y+m.padding, func(offset float32) {
		m.drawItems(ctx, layout, viewport, offset, &selected)
	})

	// Escape or a click outside the window closes the menu. A click that
	// just selected an item is not "outside".
	if ctx.Input != nil && m.open {
		if ctx.Input.KeyPressed(KeyEscape) {
			m.Close()
		}
		if !selected && ctx.Input.MouseClicked(MouseButtonLeft) && !ctx.isHovered(winRect) {
			m.Close()
		}
	}
}

// drawItems renders the filtered items at their layout positions and
// dispatches at most one selection. Items scrolled out of the viewport are
// neither drawn nor hit-tested.
func (m *FloatMenu) drawItems(ctx *Context, layout columnLayoutResult, viewport Rect, offset float32, selected *bool) {
	n := len(m.filtered)
	if n == 0 {
		return
	}

	originX := viewport.X + m.padding
	originY := viewport.Y + m.padding - offset
	clipRect := Rect{X: viewport.X, Y: viewport.Y, W: viewport.W, H: viewport.H}

	perColumn := (n + m.columns - 1) / m.columns
	for col := 0; col < m.columns; col++ {
		start := col * perColumn
		if start >= n {
			break
		}
		end := start + perColumn
		if end > n {
			end = n
		}

		for i := start; i < end; i++ {
			fi := m.filtered[i]
			size := fi.item.Size()
			pos := Vec2{
				X: originX + layout.Positions[i].X,
				Y: originY + layout.Positions[i].Y,
			}
			itemRect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

			if !itemRect.Intersects(clipRect) {
				continue
			}

			hovered := ctx.isHovered(itemRect) && ctx.isHovered(clipRect)
			if hovered {
				ctx.DrawList.AddRect(itemRect.X, itemRect.Y, itemRect.W, itemRect.H, ctx.Style().HoveredBgColor)
			}

			fi.item.Draw(ctx, pos, fi.display, hovered)

			if boxColor, boxThickness := fi.item.Box(); boxThickness > 0 {
				ctx.DrawList.AddRectOutline(itemRect.X, itemRect.Y, itemRect.W, itemRect.H, boxColor, boxThickness)
			}

			if hovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) && !*selected {
				*selected = true
				menuLogger.Debug("item selected", "title", m.title, "index", i)
				if m.onSelected != nil {
					m.onSelected(fi.item)
				}
				if m.closeOnSelected {
					m.Close()
					// Skip the rest of this column; the menu is closing.
					// Later columns still render this final frame but
					// cannot select again: the click is consumed.
					break
				}
			}
		}
	}
}
