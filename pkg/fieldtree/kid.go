package fieldtree

import "github.com/goliatone/go-fieldtree/pkg/store"

// Kind is the role a raw child node resolves to.
type Kind int

const (
	// KindField marks a non-terminal grouping field.
	KindField Kind = iota
	// KindWidget marks a terminal widget annotation.
	KindWidget
)

// String returns the role name for diagnostics.
func (k Kind) String() string {
	if k == KindWidget {
		return "widget"
	}
	return "field"
}

// Classify decides the role of a raw child node. Rules, first match wins:
//
//  1. the node declares a field type -> field
//  2. the resolved parent declares a field type -> field (inherited)
//  3. the node's subtype is the widget marker -> widget
//  4. fallback -> field
//
// Pure function of the two nodes; absence of information resolves through
// the fallback, never through failure.
func Classify(node, parent store.Node) Kind {
	if node == nil {
		return KindField
	}
	if _, ok := node.Name(KeyFieldType); ok {
		return KindField
	}
	if parent != nil {
		if _, ok := parent.Name(KeyFieldType); ok {
			return KindField
		}
	}
	if subtype, ok := node.Name(KeySubtype); ok && subtype == SubtypeWidget {
		return KindWidget
	}
	return KindField
}

// Widget wraps a terminal widget annotation node. Rendering and interaction
// behavior live in the annotation subsystem; the tree layer only carries
// the reference.
type Widget struct {
	node store.Node
}

// NewWidget wraps a store node as a widget.
func NewWidget(node store.Node) *Widget {
	return &Widget{node: node}
}

// Node returns the backing annotation node.
func (w *Widget) Node() store.Node {
	if w == nil {
		return nil
	}
	return w.node
}

// Kid is the closed union a classified child resolves to: exactly one of
// field or widget is set. Classification during enumeration is the single
// construction path.
type Kid struct {
	field  *Field
	widget *Widget
}

// FieldKid wraps a materialized field as a kid entry.
func FieldKid(field *Field) Kid {
	return Kid{field: field}
}

// WidgetKid wraps a widget as a kid entry.
func WidgetKid(widget *Widget) Kid {
	return Kid{widget: widget}
}

// Kind reports which variant the kid carries.
func (k Kid) Kind() Kind {
	if k.widget != nil {
		return KindWidget
	}
	return KindField
}

// Field returns the field variant when present.
func (k Kid) Field() (*Field, bool) {
	return k.field, k.field != nil
}

// Widget returns the widget variant when present.
func (k Kid) Widget() (*Widget, bool) {
	return k.widget, k.widget != nil
}

// Node returns the backing store node of whichever variant is carried.
func (k Kid) Node() store.Node {
	if k.widget != nil {
		return k.widget.Node()
	}
	if k.field != nil {
		return k.field.Node()
	}
	return nil
}
