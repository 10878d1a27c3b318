package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/floatmenu"
)

// GLFWInputAdapter adapts GLFW input to floatmenu.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *floatmenu.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  floatmenu.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *floatmenu.InputState {
	a.input.Reset()

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	// Update modifiers
	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *floatmenu.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	menuKey := glfwKeyToMenuKey(key)
	if menuKey == floatmenu.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(menuKey, true)
	case glfw.Release:
		a.input.SetKey(menuKey, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	menuButton := glfwMouseButtonToMenu(button)
	if menuButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(menuButton, true)
	case glfw.Release:
		a.input.SetMouseButton(menuButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToMenuKey maps GLFW keys to floatmenu keys.
func glfwKeyToMenuKey(key glfw.Key) floatmenu.Key {
	switch key {
	case glfw.KeyTab:
		return floatmenu.KeyTab
	case glfw.KeyLeft:
		return floatmenu.KeyLeft
	case glfw.KeyRight:
		return floatmenu.KeyRight
	case glfw.KeyUp:
		return floatmenu.KeyUp
	case glfw.KeyDown:
		return floatmenu.KeyDown
	case glfw.KeyPageUp:
		return floatmenu.KeyPageUp
	case glfw.KeyPageDown:
		return floatmenu.KeyPageDown
	case glfw.KeyHome:
		return floatmenu.KeyHome
	case glfw.KeyEnd:
		return floatmenu.KeyEnd
	case glfw.KeyInsert:
		return floatmenu.KeyInsert
	case glfw.KeyDelete:
		return floatmenu.KeyDelete
	case glfw.KeyBackspace:
		return floatmenu.KeyBackspace
	case glfw.KeySpace:
		return floatmenu.KeySpace
	case glfw.KeyEnter:
		return floatmenu.KeyEnter
	case glfw.KeyEscape:
		return floatmenu.KeyEscape
	case glfw.KeyI:
		return floatmenu.KeyI
	case glfw.KeyM:
		return floatmenu.KeyM
	case glfw.KeyF1:
		return floatmenu.KeyF1
	case glfw.KeyF2:
		return floatmenu.KeyF2
	default:
		return floatmenu.KeyNone
	}
}

// glfwMouseButtonToMenu maps GLFW mouse buttons to floatmenu mouse buttons.
func glfwMouseButtonToMenu(button glfw.MouseButton) floatmenu.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return floatmenu.MouseButtonLeft
	case glfw.MouseButtonRight:
		return floatmenu.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return floatmenu.MouseButtonMiddle
	default:
		return -1
	}
}
