package floatmenu_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-theft-auto/floatmenu"
)

func TestPayloadAs(t *testing.T) {
	item := &floatmenu.TextItem{
		Label: "Banshee",
		Data:  floatmenu.NewPayload(42),
	}

	v, err := floatmenu.PayloadAs[int](item)
	if err != nil {
		t.Fatalf("PayloadAs[int] returned error: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
}

func TestPayloadAsTypeMismatch(t *testing.T) {
	item := &floatmenu.TextItem{
		Label: "Banshee",
		Data:  floatmenu.NewPayload("a string"),
	}

	_, err := floatmenu.PayloadAs[int](item)
	if err == nil {
		t.Fatal("expected an error for mismatched payload type")
	}
	if !errors.Is(err, floatmenu.ErrPayloadType) {
		t.Error("error should match ErrPayloadType via errors.Is")
	}

	var typeErr *floatmenu.PayloadTypeError
	if !errors.As(err, &typeErr) {
		t.Fatal("error should be a *PayloadTypeError")
	}
	if typeErr.Want != "int" || typeErr.Got != "string" {
		t.Errorf("PayloadTypeError = want %q got %q", typeErr.Want, typeErr.Got)
	}
}

func TestPayloadAsEmptyPayload(t *testing.T) {
	item := &floatmenu.TextItem{Label: "no payload"}

	_, err := floatmenu.PayloadAs[int](item)
	if err == nil {
		t.Fatal("expected an error for an empty payload")
	}
	if !errors.Is(err, floatmenu.ErrPayloadType) {
		t.Error("error should match ErrPayloadType via errors.Is")
	}
}

func TestTextItemCompare(t *testing.T) {
	a := &floatmenu.TextItem{Label: "Alpha"}
	b := &floatmenu.TextItem{Label: "Beta"}

	if a.Compare(b) >= 0 {
		t.Error("Alpha should sort before Beta")
	}
	if b.Compare(a) <= 0 {
		t.Error("Beta should sort after Alpha")
	}
	if a.Compare(a) != 0 {
		t.Error("item should compare equal to itself")
	}

	// Items of a different kind compare equal
	icon := &floatmenu.IconItem{Icon: 1}
	if a.Compare(icon) != 0 {
		t.Error("text vs icon should compare equal")
	}
}

func TestTextItemMatch(t *testing.T) {
	item := &floatmenu.TextItem{Label: "Banshee"}

	display, ok := item.Match("ban")
	if !ok {
		t.Fatal("expected a match")
	}
	if !strings.Contains(display, "<c=#") || !strings.Contains(display, "</c>") {
		t.Errorf("display should carry highlight markup, got %q", display)
	}
	if !strings.Contains(display, "Ban") {
		t.Errorf("display should preserve label casing, got %q", display)
	}

	if _, ok := item.Match("xyz"); ok {
		t.Error("expected a miss")
	}
}

func TestIconItemCompare(t *testing.T) {
	a := &floatmenu.IconItem{Icon: 1}
	b := &floatmenu.IconItem{Icon: 2}

	if a.Compare(b) != 0 || b.Compare(a) != 0 {
		t.Error("icon items should always compare equal")
	}
}

func TestIconItemMatch(t *testing.T) {
	// Without a tooltip there is nothing to search, so the item stays visible
	plain := &floatmenu.IconItem{Icon: 1}
	if _, ok := plain.Match("anything"); !ok {
		t.Error("icon item without tooltip should survive any filter")
	}

	// With a tooltip the tooltip text is matched, without highlight markup
	tipped := &floatmenu.IconItem{Icon: 1, Tooltip: "Rocket Launcher"}
	display, ok := tipped.Match("rocket")
	if !ok {
		t.Error("tooltip should match case-insensitively")
	}
	if display != "" {
		t.Errorf("icon items have no display string, got %q", display)
	}
	if _, ok := tipped.Match("pistol"); ok {
		t.Error("non-matching tooltip should filter the item out")
	}
}

func TestItemSize(t *testing.T) {
	item := &floatmenu.TextItem{ItemSize: floatmenu.Vec2{X: 180, Y: 22}}
	if item.Size() != (floatmenu.Vec2{X: 180, Y: 22}) {
		t.Errorf("Size = %v", item.Size())
	}
}

func TestItemBox(t *testing.T) {
	item := &floatmenu.TextItem{BoxColor: floatmenu.ColorRed, BoxThickness: 2}
	color, thickness := item.Box()
	if color != floatmenu.ColorRed || thickness != 2 {
		t.Errorf("Box = %v, %v", color, thickness)
	}

	bare := &floatmenu.TextItem{}
	if _, thickness := bare.Box(); thickness != 0 {
		t.Error("default box thickness should be 0")
	}
}
