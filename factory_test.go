package floatmenu_test

import (
	"testing"

	"github.com/go-theft-auto/floatmenu"
)

func TestBuildItemsSortsByLabel(t *testing.T) {
	raw := []string{"Taxi", "Banshee", "Infernus"}

	items := floatmenu.BuildItems(raw, func(name string) floatmenu.Item {
		return &floatmenu.TextItem{Label: name, ItemSize: floatmenu.Vec2{X: 100, Y: 20}}
	})

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := []string{"Banshee", "Infernus", "Taxi"}
	for i, w := range want {
		if got := items[i].(*floatmenu.TextItem).Label; got != w {
			t.Errorf("items[%d].Label = %q, want %q", i, got, w)
		}
	}
}

func TestBuildItemsOrdinalSort(t *testing.T) {
	// Byte-wise ordering: uppercase sorts before lowercase
	raw := []string{"apple", "Zebra"}

	items := floatmenu.BuildItems(raw, func(name string) floatmenu.Item {
		return &floatmenu.TextItem{Label: name, ItemSize: floatmenu.Vec2{X: 100, Y: 20}}
	})

	if got := items[0].(*floatmenu.TextItem).Label; got != "Zebra" {
		t.Errorf("expected ordinal order with %q first, got %q", "Zebra", got)
	}
}

func TestBuildItemsDropsNil(t *testing.T) {
	raw := []string{"keep", "drop", "keep too"}

	items := floatmenu.BuildItems(raw, func(name string) floatmenu.Item {
		if name == "drop" {
			return nil
		}
		return &floatmenu.TextItem{Label: name, ItemSize: floatmenu.Vec2{X: 100, Y: 20}}
	})

	if len(items) != 2 {
		t.Fatalf("expected nil entries dropped, got %d items", len(items))
	}
	for _, it := range items {
		if it.(*floatmenu.TextItem).Label == "drop" {
			t.Error("dropped entry survived the build")
		}
	}
}

func TestBuildItemsStableForEqualItems(t *testing.T) {
	// Icon items all compare equal, so insertion order must survive
	raw := []uint32{10, 20, 30, 40}

	items := floatmenu.BuildItems(raw, func(tex uint32) floatmenu.Item {
		return &floatmenu.IconItem{Icon: tex, ItemSize: floatmenu.Vec2{X: 48, Y: 48}}
	})

	for i, tex := range raw {
		if got := items[i].(*floatmenu.IconItem).Icon; got != tex {
			t.Errorf("items[%d].Icon = %d, want %d (insertion order lost)", i, got, tex)
		}
	}
}

func TestBuildItemsEmptyInput(t *testing.T) {
	items := floatmenu.BuildItems(nil, func(s string) floatmenu.Item {
		t.Fatal("build should not be called for empty input")
		return nil
	})
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}
