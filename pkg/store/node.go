package store

// Key identifies a named attribute on a node.
type Key string

// Node is the minimum attribute surface the tree layer consumes. Getters
// report absence through the boolean result; absence is never an error.
// Names live in a separate namespace from generic strings so a type tag can
// never be confused with user-entered text.
type Node interface {
	String(key Key) (string, bool)
	SetString(key Key, value string)

	Name(key Key) (string, bool)
	SetName(key Key, value string)

	Integer(key Key) (int, bool)
	SetInteger(key Key, value int)

	// Node resolves a node-valued attribute, trying primary first and then
	// the fallback key. Pass an empty fallback to probe a single key.
	Node(primary, fallback Key) (Node, bool)
	SetNode(key Key, node Node)

	Array(key Key) (*Array, bool)
	SetArray(key Key, array *Array)
}
