package floatmenu

import (
	"strings"
	"unicode/utf8"
)

// Inline color markup, as produced by Highlight: the matched span of a label
// is wrapped in <c=#RRGGBBAA>...</c>. The closing tag restores whatever color
// was in effect before the opening tag. Unknown or malformed tags are drawn
// literally.

const colorTagClose = "</c>"

const colorTagPrefix = "<c=#"

// textSegment is a run of visible characters with one resolved color.
type textSegment struct {
	text  string
	color uint32
}

// parseColorSpans splits text into colored segments. baseColor applies to
// text outside any tag. The segment slice is appended to buf and returned,
// so callers can reuse a scratch buffer.
func parseColorSpans(text string, baseColor uint32, buf []textSegment) []textSegment {
	colorStack := []uint32{baseColor}
	cur := baseColor
	start := 0

	flush := func(end int) {
		if end > start {
			buf = append(buf, textSegment{text: text[start:end], color: cur})
		}
	}

	for i := 0; i < len(text); {
		if text[i] != '<' {
			i++
			continue
		}
		if strings.HasPrefix(text[i:], colorTagClose) {
			flush(i)
			if n := len(colorStack); n > 1 {
				colorStack = colorStack[:n-1]
				cur = colorStack[len(colorStack)-1]
			}
			i += len(colorTagClose)
			start = i
			continue
		}
		if c, tagLen, ok := parseColorTag(text[i:]); ok {
			flush(i)
			colorStack = append(colorStack, c)
			cur = c
			i += tagLen
			start = i
			continue
		}
		i++
	}
	flush(len(text))
	return buf
}

// parseColorTag parses a leading <c=#RRGGBBAA> tag. Returns the packed color,
// the tag's byte length, and whether the parse succeeded.
func parseColorTag(s string) (uint32, int, bool) {
	if !strings.HasPrefix(s, colorTagPrefix) {
		return 0, 0, false
	}
	rest := s[len(colorTagPrefix):]
	if len(rest) < 9 || rest[8] != '>' {
		return 0, 0, false
	}
	var r, g, b, a uint8
	for i, dst := range []*uint8{&r, &g, &b, &a} {
		hi, ok1 := hexNibble(rest[i*2])
		lo, ok2 := hexNibble(rest[i*2+1])
		if !ok1 || !ok2 {
			return 0, 0, false
		}
		*dst = hi<<4 | lo
	}
	return RGBA(r, g, b, a), len(colorTagPrefix) + 9, true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// visibleLen counts the characters of text that actually render, skipping
// color tags. Measurement and truncation both work on this count.
func visibleLen(text string) int {
	n := 0
	for i := 0; i < len(text); {
		if text[i] == '<' {
			if strings.HasPrefix(text[i:], colorTagClose) {
				i += len(colorTagClose)
				continue
			}
			if _, tagLen, ok := parseColorTag(text[i:]); ok {
				i += tagLen
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		n++
	}
	return n
}

// AddRichText draws text that may contain inline color tags. Plain text takes
// the same path as AddText. Each colored segment advances the pen by its
// visible width.
func (ctx *Context) AddRichText(x, y float32, text string, baseColor uint32) {
	if !strings.Contains(text, colorTagPrefix) {
		ctx.AddText(x, y, text, baseColor)
		return
	}

	charW := ctx.style.CharWidth * ctx.style.FontScale
	segments := parseColorSpans(text, baseColor, nil)
	penX := x
	for _, seg := range segments {
		ctx.AddText(penX, y, seg.text, seg.color)
		penX += float32(visibleLen(seg.text)) * charW
	}
}
