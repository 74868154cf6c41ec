package store

// value is the closed set of slot types a Dict can hold. Each getter only
// observes its own slot type, mirroring the typed attribute namespaces of
// the underlying document model.
type value interface {
	isValue()
}

type stringValue string
type nameValue string
type integerValue int
type nodeValue struct{ node Node }
type arrayValue struct{ array *Array }

func (stringValue) isValue()  {}
func (nameValue) isValue()    {}
func (integerValue) isValue() {}
func (nodeValue) isValue()    {}
func (arrayValue) isValue()   {}

// Dict is the map-backed Node implementation. The zero value is not usable;
// construct with NewDict.
type Dict struct {
	items map[Key]value
}

// Ensure the implementation satisfies the consumed surface.
var _ Node = (*Dict)(nil)

// NewDict returns an empty attribute dictionary.
func NewDict() *Dict {
	return &Dict{items: make(map[Key]value)}
}

// String reads a generic string attribute.
func (d *Dict) String(key Key) (string, bool) {
	if d == nil {
		return "", false
	}
	if v, ok := d.items[key].(stringValue); ok {
		return string(v), true
	}
	return "", false
}

// SetString writes a generic string attribute, replacing any previous slot.
func (d *Dict) SetString(key Key, val string) {
	if d == nil {
		return
	}
	d.items[key] = stringValue(val)
}

// Name reads a name-typed attribute. A string stored under the same key is
// not visible here.
func (d *Dict) Name(key Key) (string, bool) {
	if d == nil {
		return "", false
	}
	if v, ok := d.items[key].(nameValue); ok {
		return string(v), true
	}
	return "", false
}

// SetName writes a name-typed attribute.
func (d *Dict) SetName(key Key, val string) {
	if d == nil {
		return
	}
	d.items[key] = nameValue(val)
}

// Integer reads an integer attribute.
func (d *Dict) Integer(key Key) (int, bool) {
	if d == nil {
		return 0, false
	}
	if v, ok := d.items[key].(integerValue); ok {
		return int(v), true
	}
	return 0, false
}

// SetInteger writes an integer attribute.
func (d *Dict) SetInteger(key Key, val int) {
	if d == nil {
		return
	}
	d.items[key] = integerValue(val)
}

// Node resolves a node-valued attribute, trying primary then fallback.
func (d *Dict) Node(primary, fallback Key) (Node, bool) {
	if d == nil {
		return nil, false
	}
	if v, ok := d.items[primary].(nodeValue); ok && v.node != nil {
		return v.node, true
	}
	if fallback == "" {
		return nil, false
	}
	if v, ok := d.items[fallback].(nodeValue); ok && v.node != nil {
		return v.node, true
	}
	return nil, false
}

// SetNode writes a node-valued attribute. Storing nil clears the slot.
func (d *Dict) SetNode(key Key, node Node) {
	if d == nil {
		return
	}
	if node == nil {
		delete(d.items, key)
		return
	}
	d.items[key] = nodeValue{node: node}
}

// Array reads an array attribute.
func (d *Dict) Array(key Key) (*Array, bool) {
	if d == nil {
		return nil, false
	}
	if v, ok := d.items[key].(arrayValue); ok && v.array != nil {
		return v.array, true
	}
	return nil, false
}

// SetArray writes an array attribute. Storing nil clears the slot.
func (d *Dict) SetArray(key Key, array *Array) {
	if d == nil {
		return
	}
	if array == nil {
		delete(d.items, key)
		return
	}
	d.items[key] = arrayValue{array: array}
}
