package store

// Array is an ordered, mutable sequence of node references. Entries may be
// nil, representing dangling references that traversals drop silently.
// Views handed out by the tree layer keep pointing at the same Array, so a
// Set performed through any view is observed by every other holder.
type Array struct {
	items []Node
}

// NewArray builds an array over the given entries. Nil entries are kept as
// dangling slots.
func NewArray(nodes ...Node) *Array {
	items := make([]Node, len(nodes))
	copy(items, nodes)
	return &Array{items: items}
}

// Len reports the number of slots, dangling ones included.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// At returns the node at position i. The boolean is false for out-of-range
// indexes and for dangling slots.
func (a *Array) At(i int) (Node, bool) {
	if a == nil || i < 0 || i >= len(a.items) {
		return nil, false
	}
	if a.items[i] == nil {
		return nil, false
	}
	return a.items[i], true
}

// Set replaces the slot at position i in place. Out-of-range indexes are
// ignored.
func (a *Array) Set(i int, node Node) {
	if a == nil || i < 0 || i >= len(a.items) {
		return
	}
	a.items[i] = node
}

// Append adds entries at the end of the array.
func (a *Array) Append(nodes ...Node) {
	if a == nil {
		return
	}
	a.items = append(a.items, nodes...)
}
