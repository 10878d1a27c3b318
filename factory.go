package floatmenu

import "sort"

// BuildItems maps raw values through build and returns the resulting items
// sorted for display. Entries for which build returns nil are dropped. The
// sort is stable: items that compare equal keep their input order, which is
// what keeps icon grids (whose items all compare equal) in insertion order.
func BuildItems[T any](raw []T, build func(T) Item) []Item {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		if item := build(r); item != nil {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Compare(items[j]) < 0
	})
	return items
}
