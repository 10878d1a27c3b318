package floatmenu

import "fmt"

// WindowStack owns every open float menu. Menus are pushed by Open, drawn
// back-to-front each frame, and dropped when they close. The stack is plain
// state held by the GUI, so callers can inspect or clear it; there is no
// global registry.
type WindowStack struct {
	menus   []*FloatMenu
	nextSeq uint64
}

// NewWindowStack creates an empty window stack.
func NewWindowStack() *WindowStack {
	return &WindowStack{}
}

// Open builds a float menu from the given items and pushes it onto the
// stack. The returned handle stays valid after the menu closes; check IsOpen.
//
// onSelected fires at most once per click. Defaults: 2 columns, padding 6,
// searchable, close on selection; override with options.
func (ws *WindowStack) Open(title string, items []Item, onSelected func(Item), opts ...Option) *FloatMenu {
	o := applyOptions(opts)

	ws.nextSeq++
	idLabel := GetOpt(o, OptID)
	if idLabel == "" {
		idLabel = fmt.Sprintf("floatmenu:%s#%d", title, ws.nextSeq)
	}

	columns := GetOpt(o, OptColumns)
	if columns < 1 {
		columns = 1
	}
	padding := GetOpt(o, OptPadding)
	if padding < 0 {
		padding = 0
	}

	m := &FloatMenu{
		id:              stableID(idLabel),
		title:           title,
		items:           items,
		onSelected:      onSelected,
		columns:         columns,
		padding:         padding,
		canSearch:       GetOpt(o, OptSearchable),
		closeOnSelected: GetOpt(o, OptCloseOnSelected),
		placeholder:     GetOpt(o, OptFilterPlaceholder),
		pos:             GetOpt(o, OptPosition),
		hasPos:          HasOpt(o, OptPosition),
		maxHeight:       GetOpt(o, OptMaxHeight),
		open:            true,
		justOpened:      true,
	}

	ws.menus = append(ws.menus, m)
	menuLogger.Debug("menu opened", "title", title, "items", len(items), "columns", columns)
	return m
}

// draw renders every open menu in stack order and drops closed ones.
func (ws *WindowStack) draw(ctx *Context) {
	for _, m := range ws.menus {
		m.draw(ctx)
	}

	kept := ws.menus[:0]
	for _, m := range ws.menus {
		if m.open {
			kept = append(kept, m)
		}
	}
	// Clear the tail so closed menus can be collected
	for i := len(kept); i < len(ws.menus); i++ {
		ws.menus[i] = nil
	}
	ws.menus = kept
}

// Len returns the number of open menus.
func (ws *WindowStack) Len() int {
	return len(ws.menus)
}

// Top returns the most recently opened menu, or nil if none are open.
func (ws *WindowStack) Top() *FloatMenu {
	if len(ws.menus) == 0 {
		return nil
	}
	return ws.menus[len(ws.menus)-1]
}

// CloseAll closes every open menu.
func (ws *WindowStack) CloseAll() {
	for _, m := range ws.menus {
		m.Close()
	}
}
