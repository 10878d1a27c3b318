package floatmenu

import (
	"fmt"
	"strings"
)

// Match reports whether search occurs in label, ignoring case.
func Match(label, search string) bool {
	return strings.Contains(strings.ToLower(label), strings.ToLower(search))
}

// Highlight finds the first case-insensitive occurrence of search in label
// and wraps it in an inline color tag (see richtext.go), preserving the
// label's original casing. It returns the marked-up label and true on a hit,
// or the unchanged label and false on a miss.
//
// Only the first occurrence is highlighted. An empty search matches at the
// start of the label; callers normally guard against that before filtering.
func Highlight(label, search string, color uint32) (string, bool) {
	idx := strings.Index(strings.ToLower(label), strings.ToLower(search))
	if idx < 0 {
		return label, false
	}
	end := idx + len(search)
	var b strings.Builder
	b.Grow(len(label) + len(colorTagFor(color)) + len(colorTagClose))
	b.WriteString(label[:idx])
	b.WriteString(colorTagFor(color))
	b.WriteString(label[idx:end])
	b.WriteString(colorTagClose)
	b.WriteString(label[end:])
	return b.String(), true
}

// colorTagFor formats an opening inline color tag for a packed RGBA color.
func colorTagFor(color uint32) string {
	r, g, b, a := UnpackRGBA(color)
	return fmt.Sprintf("<c=#%02X%02X%02X%02X>", r, g, b, a)
}
