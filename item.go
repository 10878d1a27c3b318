package floatmenu

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultHighlightColor marks search hits inside text item labels.
var DefaultHighlightColor = RGBA(255, 160, 0, 255)

// Payload carries opaque user data attached to an item, retrieved with
// PayloadAs after selection.
type Payload struct {
	value any
}

// NewPayload wraps a value for attachment to an item.
func NewPayload(v any) Payload {
	return Payload{value: v}
}

// Value returns the wrapped value without a type check.
func (p Payload) Value() any {
	return p.value
}

// ErrPayloadType is the sentinel wrapped by PayloadTypeError, so callers can
// errors.Is against it.
var ErrPayloadType = errors.New("payload type mismatch")

// PayloadTypeError reports a payload retrieved as the wrong type. This is a
// programmer error: it is returned immediately, never retried.
type PayloadTypeError struct {
	Want string // Requested Go type
	Got  string // Stored Go type
}

func (e *PayloadTypeError) Error() string {
	return fmt.Sprintf("payload type mismatch: want %s, got %s", e.Want, e.Got)
}

func (e *PayloadTypeError) Unwrap() error {
	return ErrPayloadType
}

// PayloadAs returns the item's payload as T. If the stored value is not a T,
// it returns a PayloadTypeError naming both types.
func PayloadAs[T any](item Item) (T, error) {
	var zero T
	v, ok := item.Payload().value.(T)
	if !ok {
		return zero, &PayloadTypeError{
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", item.Payload().value),
		}
	}
	return v, nil
}

// Item is the unit of selectable menu content. Implementations are fixed-size
// leaf nodes: Size never depends on the current search or frame.
//
// Match reports whether the item survives filtering by search, and returns
// the display string to draw while the filter is active (for text items, the
// label with the matched span wrapped in highlight markup; empty means "draw
// your default content"). Draw receives that display string back.
type Item interface {
	Size() Vec2
	Compare(other Item) int
	Match(search string) (display string, ok bool)
	Draw(ctx *Context, pos Vec2, display string, hovered bool)
	Payload() Payload
	Box() (color uint32, thickness float32)
}

// TextItem is a labeled menu entry, optionally with an icon left of the
// label and a hover tooltip.
type TextItem struct {
	Label     string
	Tooltip   string
	Icon      uint32 // Texture handle, 0 = no icon
	IconColor uint32 // Tint for the icon, 0 = white
	ItemSize  Vec2
	Data      Payload

	BoxColor     uint32
	BoxThickness float32
}

// Size returns the item's fixed size.
func (t *TextItem) Size() Vec2 {
	return t.ItemSize
}

// Compare orders text items byte-wise by label. Items of another concrete
// kind compare equal, so mixed lists group by kind under a stable sort
// instead of failing.
func (t *TextItem) Compare(other Item) int {
	o, ok := other.(*TextItem)
	if !ok {
		return 0
	}
	return strings.Compare(t.Label, o.Label)
}

// Match tests search against the label and returns the label with the first
// hit wrapped in highlight markup.
func (t *TextItem) Match(search string) (string, bool) {
	return Highlight(t.Label, search, DefaultHighlightColor)
}

// Draw renders the icon and label inside the item's rect at pos.
// display is the highlighted label while a search is active; empty falls
// back to the plain label.
func (t *TextItem) Draw(ctx *Context, pos Vec2, display string, hovered bool) {
	rect := Rect{X: pos.X, Y: pos.Y, W: t.ItemSize.X, H: t.ItemSize.Y}

	textX := pos.X + SpaceSM
	if t.Icon != 0 {
		side := t.ItemSize.Y - 2*iconInset
		tint := t.IconColor
		if tint == 0 {
			tint = ColorWhite
		}
		ctx.DrawImage(t.Icon, Rect{X: textX, Y: pos.Y + iconInset, W: side, H: side}, tint)
		textX += side + SpaceSM
	}

	label := display
	if label == "" {
		label = t.Label
	}
	label = TextWidthEllipsis(ctx, label, rect.X+rect.W-SpaceSM-textX)

	textY := pos.Y + (t.ItemSize.Y-ctx.LineHeight())*0.5
	ctx.AddRichText(textX, textY, label, ctx.Style().TextColor)

	if hovered {
		ctx.TooltipAt(rect, t.Tooltip)
	}
}

// Payload returns the attached user data.
func (t *TextItem) Payload() Payload {
	return t.Data
}

// Box returns the item's border description.
func (t *TextItem) Box() (uint32, float32) {
	return t.BoxColor, t.BoxThickness
}

// iconInset keeps icons off the item border.
const iconInset = 2

// IconItem is an image-only menu entry: a tinted texture over a background
// fill. It has no label; searching matches its tooltip, if any.
type IconItem struct {
	Icon            uint32 // Texture handle
	Color           uint32 // Tint, 0 = white
	BackgroundColor uint32
	Tooltip         string
	ItemSize        Vec2
	Data            Payload

	BoxColor     uint32
	BoxThickness float32
}

// Size returns the item's fixed size.
func (ic *IconItem) Size() Vec2 {
	return ic.ItemSize
}

// Compare always reports equal: icon items keep insertion order under the
// stable sort.
func (ic *IconItem) Compare(other Item) int {
	return 0
}

// Match keeps icon items visible when they have no text to search; with a
// tooltip set, the tooltip is matched without highlight markup.
func (ic *IconItem) Match(search string) (string, bool) {
	if ic.Tooltip == "" {
		return "", true
	}
	return "", Match(ic.Tooltip, search)
}

// Draw renders the background fill and the tinted icon.
func (ic *IconItem) Draw(ctx *Context, pos Vec2, display string, hovered bool) {
	rect := Rect{X: pos.X, Y: pos.Y, W: ic.ItemSize.X, H: ic.ItemSize.Y}

	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ic.BackgroundColor)

	tint := ic.Color
	if tint == 0 {
		tint = ColorWhite
	}
	ctx.DrawImage(ic.Icon, Rect{
		X: rect.X + iconInset,
		Y: rect.Y + iconInset,
		W: rect.W - 2*iconInset,
		H: rect.H - 2*iconInset,
	}, tint)

	if hovered {
		ctx.TooltipAt(rect, ic.Tooltip)
	}
}

// Payload returns the attached user data.
func (ic *IconItem) Payload() Payload {
	return ic.Data
}

// Box returns the item's border description.
func (ic *IconItem) Box() (uint32, float32) {
	return ic.BoxColor, ic.BoxThickness
}
