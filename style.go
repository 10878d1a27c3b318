package floatmenu

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
	Space2XL  float32 = 24 // 2x extra large
)

// Style defines the visual appearance of menus.
type Style struct {
	// Text colors
	TextColor         uint32
	TextDisabledColor uint32

	// Menu window
	MenuBgColor     uint32
	MenuBorderColor uint32
	TitleBgColor    uint32
	TitleTextColor  uint32 // 0 = use TextColor

	// Item feedback
	HoveredBgColor uint32

	// Search field
	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Tooltip
	TooltipBgColor     uint32
	TooltipBorderColor uint32
	TooltipTextColor   uint32

	// Sizing
	FontScale      float32
	CharWidth      float32
	CharHeight     float32
	TitleHeight    float32
	SearchHeight   float32
	TooltipPadding float32

	// Border
	BorderSize float32

	// Scrollbar
	ScrollbarSize float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		MenuBgColor:     RGBA(20, 20, 20, 220),
		MenuBorderColor: RGBA(80, 80, 80, 255),
		TitleBgColor:    RGBA(40, 40, 45, 255),
		TitleTextColor:  0, // Use TextColor

		HoveredBgColor: RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		TooltipBgColor:     RGBA(25, 25, 25, 250),
		TooltipBorderColor: RGBA(100, 100, 100, 255),
		TooltipTextColor:   ColorWhite,

		FontScale:      1.0,
		CharWidth:      8,
		CharHeight:     8,
		TitleHeight:    20,
		SearchHeight:   18,
		TooltipPadding: SpaceSM,

		BorderSize: 1,

		ScrollbarSize: 12,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: RGBA(128, 128, 128, 255),

		MenuBgColor:     RGBA(0, 0, 0, 230),
		MenuBorderColor: RGBA(100, 100, 100, 255),
		TitleBgColor:    RGBA(0, 60, 90, 255),   // GTA cyan tinted
		TitleTextColor:  RGBA(255, 200, 0, 255), // GTA yellow

		HoveredBgColor: RGBA(50, 70, 90, 255),

		InputBgColor:        RGBA(20, 20, 20, 255),
		InputFocusedBgColor: RGBA(30, 40, 50, 255),
		InputBorderColor:    RGBA(0, 150, 200, 255),

		ScrollbarBgColor:     RGBA(20, 20, 20, 255),
		ScrollbarGrabColor:   RGBA(0, 100, 150, 255),
		ScrollbarGrabHovered: RGBA(0, 150, 200, 255),

		TooltipBgColor:     RGBA(10, 10, 10, 250),
		TooltipBorderColor: RGBA(0, 150, 200, 255),
		TooltipTextColor:   ColorWhite,

		// Sizing (slightly larger for GTA feel)
		FontScale:      1.5,
		CharWidth:      8,
		CharHeight:     8,
		TitleHeight:    26,
		SearchHeight:   24,
		TooltipPadding: SpaceSM,

		BorderSize: 1,

		ScrollbarSize: 14,
	}
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.MenuBgColor = RGBA(25, 25, 25, 240)
	s.TitleBgColor = RGBA(35, 35, 40, 255)
	s.HoveredBgColor = RGBA(65, 105, 225, 255) // Royal blue
	return s
}
