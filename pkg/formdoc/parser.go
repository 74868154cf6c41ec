package formdoc

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldtree/pkg/fieldtree"
	"github.com/goliatone/go-fieldtree/pkg/store"
)

// Options configures document parsing.
type Options struct {
	// Factory is injected into the constructed form and used for every
	// field materialized during later traversals. Nil keeps the plain
	// field default.
	Factory fieldtree.Factory
}

// Parser converts form documents into attribute-store node trees. YAML is a
// superset of JSON, so JSON fixtures parse through the same path.
type Parser struct {
	opts Options
}

// NewParser constructs a Parser with the given options.
func NewParser(options Options) *Parser {
	return &Parser{opts: options}
}

// documentDef is the fixture shape: a list of root field definitions.
type documentDef struct {
	Fields []*nodeDef `yaml:"fields" json:"fields"`
}

// nodeDef describes one node. A literal null entry inside kids becomes a
// dangling slot in the backing array. Name is a pointer so an explicitly
// empty name stays distinguishable from an absent one.
type nodeDef struct {
	Name    *string    `yaml:"name" json:"name"`
	Type    string     `yaml:"type" json:"type"`
	Subtype string     `yaml:"subtype" json:"subtype"`
	Flags   *int       `yaml:"flags" json:"flags"`
	Kids    []*nodeDef `yaml:"kids" json:"kids"`
}

// Parse decodes the document and builds the store tree, returning a form
// whose root field array holds the top-level definitions. Parent references
// are wired on every materialized kid so inherited-attribute walks work.
func (p *Parser) Parse(ctx context.Context, doc Document) (*fieldtree.Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("formdoc: document payload is empty")
	}

	var def documentDef
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("formdoc: decode document: %w", err)
	}
	if len(def.Fields) == 0 {
		return nil, errors.New("formdoc: document declares no fields")
	}

	form := fieldtree.New(fieldtree.WithFactory(p.opts.Factory))
	roots := store.NewArray()
	for _, field := range def.Fields {
		if field == nil {
			roots.Append(nil)
			continue
		}
		roots.Append(buildNode(field, nil))
	}
	form.Node().SetArray(fieldtree.KeyFields, roots)
	return form, nil
}

// buildNode materializes one definition as a Dict, recursing into kids and
// wiring the weak parent back-reference.
func buildNode(def *nodeDef, parent store.Node) store.Node {
	node := store.NewDict()
	if def.Name != nil {
		node.SetString(fieldtree.KeyPartialName, *def.Name)
	}
	if def.Type != "" {
		node.SetName(fieldtree.KeyFieldType, def.Type)
	}
	if def.Subtype != "" {
		node.SetName(fieldtree.KeySubtype, def.Subtype)
	}
	if def.Flags != nil {
		node.SetInteger(fieldtree.KeyFlags, *def.Flags)
	}
	if parent != nil {
		node.SetNode(fieldtree.KeyParent, parent)
	}
	if def.Kids != nil {
		kids := store.NewArray()
		for _, kid := range def.Kids {
			if kid == nil {
				kids.Append(nil)
				continue
			}
			kids.Append(buildNode(kid, node))
		}
		node.SetArray(fieldtree.KeyKids, kids)
	}
	return node
}
