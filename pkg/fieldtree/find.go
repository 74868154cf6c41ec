package fieldtree

import "fmt"

// FindKid descends the tree along the given name segments, starting at
// nameIndex. Each level scans the raw kids array for the first child whose
// own name equals the current segment; classification is bypassed and the
// match always materializes through the factory as a field. Sibling names
// are assumed unique per level, not enforced. A missing segment anywhere
// yields nil, nil; only factory failure is an error.
func (f *Field) FindKid(names []string, nameIndex int) (*Field, error) {
	if f == nil || f.node == nil {
		return nil, nil
	}
	if nameIndex < 0 || nameIndex >= len(names) {
		return nil, nil
	}
	raw, ok := f.node.Array(KeyKids)
	if !ok {
		return nil, nil
	}
	for i := 0; i < raw.Len(); i++ {
		child, ok := raw.At(i)
		if !ok {
			continue
		}
		name, ok := child.String(KeyPartialName)
		if !ok || name != names[nameIndex] {
			continue
		}
		field, err := f.form.createField(child)
		if err != nil {
			return nil, fmt.Errorf("fieldtree: find kid %q: %w", names[nameIndex], err)
		}
		if nameIndex+1 < len(names) {
			return field.FindKid(names, nameIndex+1)
		}
		return field, nil
	}
	return nil, nil
}
