package floatmenu

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode menu system. It owns the window stack:
// menus are opened through it and drawn every frame until closed.
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context
	stack    *WindowStack
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
		stack:    NewWindowStack(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.FrameCount++

	// Acquire draw lists from the pool
	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList() // For tooltips (drawn on top)

	// Set frame state
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()

	// Reset per-frame state
	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End draws all open menus, finishes the frame, and renders the UI.
// Call this after all other UI drawing is complete.
func (g *GUI) End() error {
	if g.ctx.DrawList == nil {
		return nil
	}

	g.stack.draw(g.ctx)
	g.ctx.flushTooltip()

	// Render main draw list
	err := g.renderer.Render(g.ctx.DrawList)
	if err != nil {
		return err
	}

	// Render foreground draw list (tooltips) on top
	if g.ctx.ForegroundDrawList != nil && len(g.ctx.ForegroundDrawList.CmdBuffer) > 0 {
		err = g.renderer.Render(g.ctx.ForegroundDrawList)
	}

	// Release draw lists back to pool
	ReleaseDrawList(g.ctx.DrawList)
	g.ctx.DrawList = nil
	if g.ctx.ForegroundDrawList != nil {
		ReleaseDrawList(g.ctx.ForegroundDrawList)
		g.ctx.ForegroundDrawList = nil
	}

	return err
}

// Open pushes a new float menu onto the window stack and returns its handle.
// The menu draws every frame from End until it closes.
func (g *GUI) Open(title string, items []Item, onSelected func(Item), opts ...Option) *FloatMenu {
	return g.stack.Open(title, items, onSelected, opts...)
}

// Windows returns the window stack for direct inspection.
func (g *GUI) Windows() *WindowStack {
	return g.stack
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
