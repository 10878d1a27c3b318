package floatmenu

import (
	"strings"
	"testing"
)

func TestParseColorSpans(t *testing.T) {
	base := RGBA(255, 255, 255, 255)
	gold := RGBA(255, 160, 0, 255)

	segs := parseColorSpans("B<c=#FFA000FF>an</c>shee", base, nil)

	want := []textSegment{
		{text: "B", color: base},
		{text: "an", color: gold},
		{text: "shee", color: base},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %v", len(want), len(segs), segs)
	}
	for i, w := range want {
		if segs[i] != w {
			t.Errorf("segment %d = %+v, want %+v", i, segs[i], w)
		}
	}
}

func TestParseColorSpansNested(t *testing.T) {
	base := RGBA(1, 1, 1, 255)
	red := RGBA(255, 0, 0, 255)
	blue := RGBA(0, 0, 255, 255)

	segs := parseColorSpans("a<c=#FF0000FF>b<c=#0000FFFF>c</c>d</c>e", base, nil)

	want := []textSegment{
		{text: "a", color: base},
		{text: "b", color: red},
		{text: "c", color: blue},
		{text: "d", color: red},
		{text: "e", color: base},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %v", len(want), len(segs), segs)
	}
	for i, w := range want {
		if segs[i] != w {
			t.Errorf("segment %d = %+v, want %+v", i, segs[i], w)
		}
	}
}

func TestParseColorSpansMalformedTag(t *testing.T) {
	base := RGBA(255, 255, 255, 255)

	// A malformed tag renders literally as part of the text
	segs := parseColorSpans("a <c=#XYZ> b", base, nil)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %v", len(segs), segs)
	}
	if segs[0].text != "a <c=#XYZ> b" {
		t.Errorf("malformed tag should render literally, got %q", segs[0].text)
	}
}

func TestParseColorTag(t *testing.T) {
	color, tagLen, ok := parseColorTag("<c=#FFA000FF>rest")
	if !ok {
		t.Fatal("expected a valid tag")
	}
	if color != RGBA(255, 160, 0, 255) {
		t.Errorf("color = %08X", color)
	}
	if tagLen != len("<c=#FFA000FF>") {
		t.Errorf("tagLen = %d", tagLen)
	}

	for _, bad := range []string{"<c=#FFA000F>", "<c=#GGA000FF>", "<c=FFA000FF>", "<b>", "<c=#FFA000FF"} {
		if _, _, ok := parseColorTag(bad); ok {
			t.Errorf("parseColorTag(%q) should fail", bad)
		}
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"B<c=#FFA000FF>an</c>shee", 7},
		{"<c=#FF0000FF></c>", 0},
		{"héllo", 5}, // runes, not bytes
		{"a <b> c", 7},
	}
	for _, tt := range tests {
		if got := visibleLen(tt.text); got != tt.want {
			t.Errorf("visibleLen(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestTruncateTextPlain(t *testing.T) {
	ctx := NewContext()
	ctx.SetStyle(DefaultStyle()) // 8px per character

	// Fits untouched
	if got := TruncateText(ctx, "short", 100); got != "short" {
		t.Errorf("fitting text should pass through, got %q", got)
	}

	got := TruncateText(ctx, "a rather long label", 80)
	if !strings.HasSuffix(got, "..") {
		t.Errorf("truncated text should end in ellipsis, got %q", got)
	}
	if ctx.MeasureText(got).X > 80 {
		t.Errorf("truncated text %q exceeds max width", got)
	}
}

func TestTruncateTextTagged(t *testing.T) {
	ctx := NewContext()
	ctx.SetStyle(DefaultStyle())

	text := "Ban<c=#FFA000FF>shee in orange</c> tail"
	got := TruncateText(ctx, text, 80)

	if ctx.MeasureText(got).X > 80 {
		t.Errorf("truncated text %q exceeds max width", got)
	}
	// Markup must stay balanced after the cut
	if strings.Count(got, "<c=#") != strings.Count(got, "</c>") {
		t.Errorf("unbalanced markup after truncation: %q", got)
	}
}

func TestTextWidthEllipsis(t *testing.T) {
	ctx := NewContext()
	ctx.SetStyle(DefaultStyle())

	if got := TextWidthEllipsis(ctx, "anything", 0); got != "" {
		t.Errorf("zero width should yield empty string, got %q", got)
	}
	if got := TextWidthEllipsis(ctx, "abc", 100); got != "abc" {
		t.Errorf("fitting text should pass through, got %q", got)
	}

	got := TextWidthEllipsis(ctx, "longer than it looks", 40)
	if ctx.MeasureText(got).X > 40 {
		t.Errorf("result %q exceeds max width", got)
	}
}
