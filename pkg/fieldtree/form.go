package fieldtree

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-fieldtree/pkg/store"
)

// Factory maps a raw store node to the concrete field wrapper for its
// declared type. Implementations may fail when the backing node cannot be
// materialized; that failure surfaces wrapped in ErrMaterialize.
type Factory interface {
	CreateField(form *Form, node store.Node) (*Field, error)
}

// FactoryFunc adapts a plain function to the Factory interface.
type FactoryFunc func(form *Form, node store.Node) (*Field, error)

// CreateField calls the wrapped function.
func (fn FactoryFunc) CreateField(form *Form, node store.Node) (*Field, error) {
	return fn(form, node)
}

// defaultFactory materializes every node as a plain Field.
func defaultFactory(form *Form, node store.Node) (*Field, error) {
	return &Field{form: form, node: node}, nil
}

// Option configures a Form before construction.
type Option func(*Form)

// WithFactory injects the field factory used whenever a traversal needs to
// materialize a child node.
func WithFactory(factory Factory) Option {
	return func(f *Form) {
		if factory != nil {
			f.factory = factory
		}
	}
}

// WithNode binds the form to an existing backing node instead of a fresh
// empty dictionary.
func WithNode(node store.Node) Option {
	return func(f *Form) {
		if node != nil {
			f.node = node
		}
	}
}

// Form is the owning context every field in one tree is bound to. It wraps
// the form-level store node and carries the factory used to materialize
// child fields during traversal. Fields never outlive their form.
type Form struct {
	node    store.Node
	factory Factory
}

// New constructs a Form over a fresh empty node unless WithNode overrides
// it. Without WithFactory every materialized child is a plain Field.
func New(options ...Option) *Form {
	form := &Form{
		node:    store.NewDict(),
		factory: FactoryFunc(defaultFactory),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(form)
	}
	return form
}

// Node returns the form-level backing node.
func (f *Form) Node() store.Node {
	if f == nil {
		return nil
	}
	return f.node
}

// NewField wraps an existing store node as a Field bound to this form.
func (f *Form) NewField(node store.Node) *Field {
	return &Field{form: f, node: node}
}

// NewEmptyField constructs a Field over a freshly created empty node.
func (f *Form) NewEmptyField() *Field {
	return &Field{form: f, node: store.NewDict()}
}

// Fields materializes the root fields of the form, in document order.
// A missing root array yields nil; dangling entries are dropped.
func (f *Form) Fields() ([]*Field, error) {
	if f == nil || f.node == nil {
		return nil, nil
	}
	raw, ok := f.node.Array(KeyFields)
	if !ok {
		return nil, nil
	}
	var fields []*Field
	for i := 0; i < raw.Len(); i++ {
		node, ok := raw.At(i)
		if !ok {
			continue
		}
		field, err := f.createField(node)
		if err != nil {
			return nil, fmt.Errorf("fieldtree: root field %d: %w", i, err)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// Field resolves a fully qualified dotted name ("parent.child.leaf")
// against the form's root fields. An unmatched name yields nil, nil.
func (f *Form) Field(fullyQualified string) (*Field, error) {
	segments := strings.Split(fullyQualified, ".")
	if segments[0] == "" {
		return nil, nil
	}
	roots, err := f.Fields()
	if err != nil {
		return nil, err
	}
	for _, root := range roots {
		name, _ := root.PartialName()
		if name != segments[0] {
			continue
		}
		if len(segments) == 1 {
			return root, nil
		}
		return root.FindKid(segments, 1)
	}
	return nil, nil
}

// createField runs the injected factory, tagging failures with the
// materialization error kind.
func (f *Form) createField(node store.Node) (*Field, error) {
	factory := f.factory
	if factory == nil {
		factory = FactoryFunc(defaultFactory)
	}
	field, err := factory.CreateField(f, node)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMaterialize, err)
	}
	if field == nil {
		return nil, fmt.Errorf("%w: factory returned no field", ErrMaterialize)
	}
	return field, nil
}
