package fieldtree

import "github.com/goliatone/go-fieldtree/pkg/store"

// maxInheritDepth bounds the upward walk so a document with a parent cycle
// terminates as not-found instead of looping. Well-formed documents are
// nowhere near this deep.
const maxInheritDepth = 1 << 12

// inheritedName resolves a name attribute that may be declared at any
// ancestor level: read the node itself, then follow the parent reference
// (primary key first, legacy key as fallback) until the attribute is found
// or the root is reached. Absence anywhere in the chain reports false.
func inheritedName(node store.Node, key store.Key) (string, bool) {
	for depth := 0; node != nil && depth < maxInheritDepth; depth++ {
		if value, ok := node.Name(key); ok {
			return value, true
		}
		parent, ok := node.Node(KeyParent, KeyParentLegacy)
		if !ok {
			return "", false
		}
		node = parent
	}
	return "", false
}
