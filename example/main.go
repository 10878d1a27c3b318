// Example demonstrates the float menu against a live OpenGL window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window and wires two menus to hotkeys:
//
//	M    searchable vehicle spawn menu (TextItem, two columns)
//	I    weapon picker laid out as an icon grid (IconItem, four columns)
//	F1   toggle verbose logging
//	F2   close all menus
//
// Settings are read from example/demo.toml when present.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/floatmenu"
	"github.com/go-theft-auto/floatmenu/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

// Vehicle is the payload carried by the spawn menu items.
type Vehicle struct {
	Name  string
	Model string
	Seats int
}

var vehicles = []Vehicle{
	{Name: "Banshee", Model: "banshee", Seats: 2},
	{Name: "Cheetah", Model: "cheetah", Seats: 2},
	{Name: "Infernus", Model: "infernus", Seats: 2},
	{Name: "Patriot", Model: "patriot", Seats: 4},
	{Name: "Sanchez", Model: "sanchez", Seats: 2},
	{Name: "Taxi", Model: "taxi", Seats: 4},
	{Name: "Rhino", Model: "rhino", Seats: 1},
	{Name: "BF Injection", Model: "bfinject", Seats: 2},
	{Name: "Stallion", Model: "stallion", Seats: 2},
	{Name: "Coach", Model: "coach", Seats: 8},
	{Name: "Bobcat", Model: "bobcat", Seats: 2},
	{Name: "Mule", Model: "mule", Seats: 2},
}

// Weapon is the payload carried by the icon grid items.
type Weapon struct {
	Name string
	Ammo int
}

var weapons = []Weapon{
	{Name: "Pistol", Ammo: 120},
	{Name: "Shotgun", Ammo: 40},
	{Name: "Uzi", Ammo: 300},
	{Name: "AK-47", Ammo: 150},
	{Name: "Sniper Rifle", Ammo: 20},
	{Name: "Flamethrower", Ammo: 200},
	{Name: "Rocket Launcher", Ammo: 8},
	{Name: "Grenades", Ammo: 10},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig("example/demo.toml")
	if err != nil {
		return err
	}
	style, err := styleFor(cfg.Style)
	if err != nil {
		return err
	}
	floatmenu.SetVerbose(cfg.Verbose)

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the renderer (takes initial viewport size) and input adapter.
	renderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("menu renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := floatmenu.New(renderer, floatmenu.WithStyle(style))

	// Generate one solid-color swatch texture per weapon so the icon grid
	// has something to show without shipping image assets.
	weaponIcons := make([]uint32, len(weapons))
	for i := range weapons {
		tex, err := makeSwatch(renderer, swatchColor(i))
		if err != nil {
			return err
		}
		weaponIcons[i] = tex
		defer renderer.DeleteTexture(tex)
	}

	verbose := cfg.Verbose

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		// Hotkeys only apply when no menu wants the keyboard.
		if !ui.Context().WantCaptureKeyboard {
			switch {
			case input.KeyPressed(floatmenu.KeyM):
				openVehicleMenu(ui, cfg.Menu)
			case input.KeyPressed(floatmenu.KeyI):
				openWeaponMenu(ui, weaponIcons)
			case input.KeyPressed(floatmenu.KeyF1):
				verbose = !verbose
				floatmenu.SetVerbose(verbose)
			case input.KeyPressed(floatmenu.KeyF2):
				ui.Windows().CloseAll()
			}
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := floatmenu.Vec2{X: float32(w), Y: float32(h)}
		ui.Begin(input, displaySize, 1.0/60.0)

		if err := ui.End(); err != nil {
			return fmt.Errorf("menu render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func openVehicleMenu(ui *floatmenu.GUI, cfg MenuConfig) {
	items := floatmenu.BuildItems(vehicles, func(v Vehicle) floatmenu.Item {
		return &floatmenu.TextItem{
			Label:    v.Name,
			Tooltip:  fmt.Sprintf("%s (%d seats)", v.Model, v.Seats),
			ItemSize: floatmenu.Vec2{X: 180, Y: 22},
			Data:     floatmenu.NewPayload(v),
		}
	})

	ui.Open("Spawn Vehicle", items, func(it floatmenu.Item) {
		v, err := floatmenu.PayloadAs[Vehicle](it)
		if err != nil {
			fmt.Fprintln(os.Stderr, "vehicle payload:", err)
			return
		}
		fmt.Printf("spawn %s (model %s)\n", v.Name, v.Model)
	},
		floatmenu.WithID("spawn-vehicle"),
		floatmenu.WithColumns(cfg.Columns),
		floatmenu.WithPadding(cfg.Padding),
		floatmenu.WithSearchable(cfg.Searchable),
		floatmenu.WithMaxHeight(cfg.MaxHeight),
	)
}

func openWeaponMenu(ui *floatmenu.GUI, icons []uint32) {
	items := make([]floatmenu.Item, 0, len(weapons))
	for i, wpn := range weapons {
		items = append(items, &floatmenu.IconItem{
			Icon:     icons[i],
			Tooltip:  wpn.Name,
			ItemSize: floatmenu.Vec2{X: 48, Y: 48},
			Data:     floatmenu.NewPayload(wpn),
		})
	}

	ui.Open("Weapons", items, func(it floatmenu.Item) {
		wpn, err := floatmenu.PayloadAs[Weapon](it)
		if err != nil {
			fmt.Fprintln(os.Stderr, "weapon payload:", err)
			return
		}
		fmt.Printf("give %s (%d rounds)\n", wpn.Name, wpn.Ammo)
	},
		floatmenu.WithID("weapons"),
		floatmenu.WithColumns(4),
		floatmenu.WithCloseOnSelected(false),
	)
}

// makeSwatch uploads a 16x16 solid-color RGBA texture.
func makeSwatch(renderer *opengl.Renderer, color [4]byte) (uint32, error) {
	const side = 16
	pixels := make([]byte, side*side*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i+0] = color[0]
		pixels[i+1] = color[1]
		pixels[i+2] = color[2]
		pixels[i+3] = color[3]
	}
	tex, err := renderer.LoadTextureRGBA(side, side, pixels)
	if err != nil {
		return 0, fmt.Errorf("swatch texture: %w", err)
	}
	return tex, nil
}

func swatchColor(i int) [4]byte {
	palette := [][4]byte{
		{230, 80, 80, 255},
		{80, 200, 120, 255},
		{90, 140, 230, 255},
		{230, 200, 80, 255},
		{200, 100, 220, 255},
		{90, 210, 210, 255},
		{230, 140, 70, 255},
		{160, 160, 160, 255},
	}
	return palette[i%len(palette)]
}
