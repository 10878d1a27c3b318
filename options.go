package floatmenu

// Option configures a menu.
type Option func(*options)

// options holds all menu configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for menu options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = floatmenu.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	gui.Open("title", items, onSelected, floatmenu.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := floatmenu.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Menu defaults. Columns and padding below the valid range are clamped
// (columns to 1, padding to 0) rather than rejected.
const (
	DefaultColumns = 2
	DefaultPadding = float32(6)
)

// --- Built-in Option Keys ---
var (
	OptID                = NewOptKey("id", "")
	OptColumns           = NewOptKey("columns", DefaultColumns)
	OptPadding           = NewOptKey("padding", DefaultPadding)
	OptSearchable        = NewOptKey("searchable", true)
	OptCloseOnSelected   = NewOptKey("closeOnSelected", true)
	OptFilterPlaceholder = NewOptKey("filterPlaceholder", "Search..")
	OptPosition          = NewOptKey("position", Vec2{})
	OptMaxHeight         = NewOptKey[float32]("maxHeight", 0)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithID sets an explicit ID for the menu instead of deriving it from the title.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithColumns sets the number of item columns.
func WithColumns(n int) Option { return WithOpt(OptColumns, n) }

// WithPadding sets the padding around and between items.
func WithPadding(px float32) Option { return WithOpt(OptPadding, px) }

// WithSearchable toggles the search field.
func WithSearchable(on bool) Option { return WithOpt(OptSearchable, on) }

// WithCloseOnSelected controls whether the menu closes after a selection.
func WithCloseOnSelected(close bool) Option { return WithOpt(OptCloseOnSelected, close) }

// WithFilterPlaceholder sets the search field's placeholder text.
func WithFilterPlaceholder(text string) Option { return WithOpt(OptFilterPlaceholder, text) }

// WithPosition places the menu's top-left corner. Unset menus are centered.
func WithPosition(pos Vec2) Option { return WithOpt(OptPosition, pos) }

// WithMaxHeight caps the item viewport height; taller content scrolls.
func WithMaxHeight(h float32) Option { return WithOpt(OptMaxHeight, h) }
