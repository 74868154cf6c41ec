// Package fields maps declared field types to concrete field constructors
// and typed wrappers. The registry satisfies fieldtree.Factory so it can be
// injected into a form as the materialization dependency.
package fields

import (
	"strings"
	"sync"

	"github.com/goliatone/go-fieldtree/pkg/fieldtree"
	"github.com/goliatone/go-fieldtree/pkg/store"
)

// Constructor materializes a field wrapper for a node whose resolved type
// matched the registration.
type Constructor func(form *fieldtree.Form, node store.Node) (*fieldtree.Field, error)

// Registry resolves declared field-type names to constructors. Unknown or
// absent types fall back to a plain field, never to failure. The latest
// registration for a name wins.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// Ensure the registry can serve as the injected field factory.
var _ fieldtree.Factory = (*Registry)(nil)

// NewRegistry constructs a registry with the standard type names
// registered.
func NewRegistry() *Registry {
	reg := &Registry{ctors: make(map[string]Constructor)}
	reg.registerBuiltins()
	return reg
}

// Register adds a constructor for a declared type name.
func (r *Registry) Register(typeName string, ctor Constructor) {
	if r == nil || ctor == nil {
		return
	}
	trimmed := strings.TrimSpace(typeName)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[trimmed] = ctor
}

// CreateField implements fieldtree.Factory. The declared type is resolved
// through the inherited-attribute walk, so a child inherits its
// constructor from an ancestor's declaration.
func (r *Registry) CreateField(form *fieldtree.Form, node store.Node) (*fieldtree.Field, error) {
	field := form.NewField(node)
	if r == nil {
		return field, nil
	}
	typeName, ok := field.FieldType()
	if !ok {
		return field, nil
	}
	r.mu.RLock()
	ctor := r.ctors[typeName]
	r.mu.RUnlock()
	if ctor == nil {
		return field, nil
	}
	return ctor(form, node)
}

func (r *Registry) registerBuiltins() {
	plain := func(form *fieldtree.Form, node store.Node) (*fieldtree.Field, error) {
		return form.NewField(node), nil
	}
	for _, name := range []string{
		fieldtree.TypeText,
		fieldtree.TypeChoice,
		fieldtree.TypeButton,
		fieldtree.TypeSignature,
	} {
		r.ctors[name] = plain
	}
}
