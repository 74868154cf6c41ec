package fields

import "github.com/goliatone/go-fieldtree/pkg/fieldtree"

// Variant is the typed view over a field's declared type. Value and
// validation semantics of the concrete types live downstream; the wrappers
// only carry the classification.
type Variant interface {
	Base() *fieldtree.Field
	TypeName() string
}

// Text is a text input field ("Tx").
type Text struct{ *fieldtree.Field }

// Choice is a list or combo field ("Ch").
type Choice struct{ *fieldtree.Field }

// Button is a pushbutton, checkbox, or radio group field ("Btn").
type Button struct{ *fieldtree.Field }

// Signature is a digital signature field ("Sig").
type Signature struct{ *fieldtree.Field }

// Group is a field with no resolvable type: a pure organizational node.
type Group struct{ *fieldtree.Field }

func (t Text) Base() *fieldtree.Field      { return t.Field }
func (t Text) TypeName() string            { return fieldtree.TypeText }
func (c Choice) Base() *fieldtree.Field    { return c.Field }
func (c Choice) TypeName() string          { return fieldtree.TypeChoice }
func (b Button) Base() *fieldtree.Field    { return b.Field }
func (b Button) TypeName() string          { return fieldtree.TypeButton }
func (s Signature) Base() *fieldtree.Field { return s.Field }
func (s Signature) TypeName() string       { return fieldtree.TypeSignature }
func (g Group) Base() *fieldtree.Field     { return g.Field }
func (g Group) TypeName() string           { return "" }

// Wrap returns the typed view for a field based on its resolved type.
// Unknown declarations wrap as Group.
func Wrap(field *fieldtree.Field) Variant {
	typeName, ok := field.FieldType()
	if !ok {
		return Group{field}
	}
	switch typeName {
	case fieldtree.TypeText:
		return Text{field}
	case fieldtree.TypeChoice:
		return Choice{field}
	case fieldtree.TypeButton:
		return Button{field}
	case fieldtree.TypeSignature:
		return Signature{field}
	default:
		return Group{field}
	}
}
