package floatmenu

import "strings"

// Menu items are fixed-size: labels are truncated to fit, never wrapped or
// re-measured. MeasureText already skips inline color tags, so these helpers
// only have to avoid cutting a tag in half.

// TruncateText truncates text to fit within maxWidth, adding ellipsis if needed.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	return TruncateTextWithSuffix(ctx, text, maxWidth, "..")
}

// TruncateTextWithSuffix truncates text and adds a custom suffix.
// Text containing inline color tags is truncated segment-wise so the markup
// stays well formed.
func TruncateTextWithSuffix(ctx *Context, text string, maxWidth float32, suffix string) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	suffixWidth := ctx.MeasureText(suffix).X
	targetWidth := maxWidth - suffixWidth
	if targetWidth < 0 {
		targetWidth = 0
	}

	if strings.Contains(text, colorTagPrefix) {
		return truncateTagged(ctx, text, targetWidth) + suffix
	}

	runes := []rune(text)
	for len(runes) > 0 {
		if ctx.MeasureText(string(runes)).X <= targetWidth {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}

// truncateTagged drops visible characters from the end of tagged text until
// it fits targetWidth, re-emitting the surviving segments with their tags.
func truncateTagged(ctx *Context, text string, targetWidth float32) string {
	charW := ctx.style.CharWidth * ctx.style.FontScale
	budget := 0
	if charW > 0 {
		budget = int(targetWidth / charW)
	}

	// baseColor 0 marks untagged segments; real tags always carry alpha bits
	segments := parseColorSpans(text, 0, nil)
	var b strings.Builder
	for _, seg := range segments {
		if budget <= 0 {
			break
		}
		runes := []rune(seg.text)
		if len(runes) > budget {
			runes = runes[:budget]
		}
		budget -= len(runes)

		if seg.color != 0 {
			b.WriteString(colorTagFor(seg.color))
			b.WriteString(string(runes))
			b.WriteString(colorTagClose)
		} else {
			b.WriteString(string(runes))
		}
	}
	return b.String()
}

// TextWidthEllipsis returns text that fits within maxWidth, with ellipsis.
// Unlike TruncateText, this also works with very small widths.
func TextWidthEllipsis(ctx *Context, text string, maxWidth float32) string {
	if maxWidth <= 0 {
		return ""
	}

	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	result := TruncateTextWithSuffix(ctx, text, maxWidth, "..")
	if ctx.MeasureText(result).X <= maxWidth {
		return result
	}

	result = TruncateTextWithSuffix(ctx, text, maxWidth, ".")
	if ctx.MeasureText(result).X <= maxWidth {
		return result
	}

	return ""
}
