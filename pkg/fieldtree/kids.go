package fieldtree

import (
	"fmt"

	"github.com/goliatone/go-fieldtree/pkg/store"
)

// kidEntry pairs a classified kid with its slot in the backing array so
// replacements can be written back in place.
type kidEntry struct {
	index int
	kid   Kid
}

// KidList is the classified view over a node's children. It stays attached
// to the backing store array: Set writes through, so edits made through the
// view are reflected in the document and in every other view over the same
// array. Dangling raw entries are not represented.
type KidList struct {
	backing *store.Array
	entries []kidEntry
}

// Len reports the number of resolved children.
func (l *KidList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// At returns the classified child at position i of the resolved sequence.
func (l *KidList) At(i int) (Kid, bool) {
	if l == nil || i < 0 || i >= len(l.entries) {
		return Kid{}, false
	}
	return l.entries[i].kid, true
}

// Set replaces the child at position i, writing the replacement's backing
// node into the original slot of the document array.
func (l *KidList) Set(i int, kid Kid) {
	if l == nil || i < 0 || i >= len(l.entries) {
		return
	}
	l.entries[i].kid = kid
	if l.backing != nil {
		l.backing.Set(l.entries[i].index, kid.Node())
	}
}

// Kids produces the ordered, classified sequence of this node's immediate
// children. A missing kids attribute yields nil (distinct from an empty
// list). Dangling entries are dropped silently; widget children are wrapped
// directly while field children go through the form's factory, whose
// failure is the only error this operation can surface.
func (f *Field) Kids() (*KidList, error) {
	if f == nil || f.node == nil {
		return nil, nil
	}
	raw, ok := f.node.Array(KeyKids)
	if !ok {
		return nil, nil
	}
	list := &KidList{backing: raw}
	for i := 0; i < raw.Len(); i++ {
		child, ok := raw.At(i)
		if !ok {
			continue
		}
		parent, _ := child.Node(KeyParent, KeyParentLegacy)
		switch Classify(child, parent) {
		case KindWidget:
			list.entries = append(list.entries, kidEntry{index: i, kid: WidgetKid(NewWidget(child))})
		default:
			field, err := f.form.createField(child)
			if err != nil {
				return nil, fmt.Errorf("fieldtree: kid %d: %w", i, err)
			}
			list.entries = append(list.entries, kidEntry{index: i, kid: FieldKid(field)})
		}
	}
	return list, nil
}

// Widget returns the single representative widget for this field. A field
// with no kids attribute carries the widget annotation merged into its own
// node, so the node itself is wrapped. With kids present the first entry
// wins, recursing when that entry is itself a field. A present but empty
// kids list yields nil, nil.
func (f *Field) Widget() (*Widget, error) {
	if f == nil || f.node == nil {
		return nil, nil
	}
	kids, err := f.Kids()
	if err != nil {
		return nil, err
	}
	if kids == nil {
		return NewWidget(f.node), nil
	}
	first, ok := kids.At(0)
	if !ok {
		return nil, nil
	}
	if widget, ok := first.Widget(); ok {
		return widget, nil
	}
	if field, ok := first.Field(); ok {
		return field.Widget()
	}
	return nil, nil
}
