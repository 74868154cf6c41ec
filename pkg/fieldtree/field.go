package fieldtree

import "github.com/goliatone/go-fieldtree/pkg/store"

// Field wraps one node of the form hierarchy. It does not own the backing
// node; the store outlives every wrapper constructed over it, and repeated
// traversals rebuild wrappers over the same node.
type Field struct {
	form *Form
	node store.Node
}

// Node returns the backing store node.
func (f *Field) Node() store.Node {
	if f == nil {
		return nil
	}
	return f.node
}

// Form returns the owning form context the field was bound to at
// construction.
func (f *Field) Form() *Form {
	if f == nil {
		return nil
	}
	return f.form
}

// PartialName reads the node's own name segment. Never inherited.
func (f *Field) PartialName() (string, bool) {
	if f == nil || f.node == nil {
		return "", false
	}
	return f.node.String(KeyPartialName)
}

// SetPartialName writes the name segment directly. No validation is
// performed; the empty string is a legal name.
func (f *Field) SetPartialName(name string) {
	if f == nil || f.node == nil {
		return
	}
	f.node.SetString(KeyPartialName, name)
}

// FieldType resolves the declared field type, walking strictly upward
// through parent references when the node itself does not declare one.
// A chain with no declaration anywhere reports false, not an error.
func (f *Field) FieldType() (string, bool) {
	if f == nil || f.node == nil {
		return "", false
	}
	return inheritedName(f.node, KeyFieldType)
}

// Flags reads the node's own flag bits. Absent flags read as 0; flags are
// never inherited from a parent.
func (f *Field) Flags() int {
	if f == nil || f.node == nil {
		return 0
	}
	flags, _ := f.node.Integer(KeyFlags)
	return flags
}

// SetFlags writes the flag bits on the node itself.
func (f *Field) SetFlags(flags int) {
	if f == nil || f.node == nil {
		return
	}
	f.node.SetInteger(KeyFlags, flags)
}

// IsReadOnly reports whether the read-only flag bit is set.
func (f *Field) IsReadOnly() bool {
	return f.Flags()&FlagReadOnly != 0
}

// IsRequired reports whether the required flag bit is set.
func (f *Field) IsRequired() bool {
	return f.Flags()&FlagRequired != 0
}

// IsNoExport reports whether the no-export flag bit is set.
func (f *Field) IsNoExport() bool {
	return f.Flags()&FlagNoExport != 0
}

// Parent resolves the weak parent back-reference on demand, trying the
// primary key and then the legacy key. The result is a fresh wrapper; no
// parent handle is ever cached.
func (f *Field) Parent() (*Field, bool) {
	if f == nil || f.node == nil {
		return nil, false
	}
	parent, ok := f.node.Node(KeyParent, KeyParentLegacy)
	if !ok {
		return nil, false
	}
	return f.form.NewField(parent), true
}
