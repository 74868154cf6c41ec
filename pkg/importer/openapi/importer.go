// Package openapi builds a field tree from the request schema of an
// OpenAPI operation: object properties become grouping fields with kids,
// scalar properties become terminal nodes carrying the widget marker.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldtree/pkg/fieldtree"
	"github.com/goliatone/go-fieldtree/pkg/store"
)

// Options configures the importer.
type Options struct {
	// OperationID selects the operation whose request body seeds the tree.
	OperationID string
	// AllowPartialDocuments skips full document validation.
	AllowPartialDocuments bool
	// Factory is injected into the constructed form. Nil keeps the plain
	// field default.
	Factory fieldtree.Factory
}

// Importer converts OpenAPI documents into field trees.
type Importer struct {
	opts Options
}

// New constructs an Importer with the given options.
func New(options Options) *Importer {
	return &Importer{opts: options}
}

// Import loads the document, locates the configured operation, and builds a
// form whose root fields mirror the request body's top-level properties.
func (im *Importer) Import(ctx context.Context, raw []byte) (*fieldtree.Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi importer: document payload is empty")
	}
	if im.opts.OperationID == "" {
		return nil, errors.New("openapi importer: operation ID is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi importer: load document: %w", err)
	}
	if !im.opts.AllowPartialDocuments {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi importer: validate: %w", err)
		}
	}

	schema := im.findRequestSchema(spec)
	if schema == nil {
		return nil, fmt.Errorf("openapi importer: operation %q has no request schema", im.opts.OperationID)
	}

	form := fieldtree.New(fieldtree.WithFactory(im.opts.Factory))
	roots := store.NewArray()
	required := requiredSet(schema)
	for _, name := range sortedProperties(schema) {
		property := schema.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		_, isRequired := required[name]
		roots.Append(buildNode(name, property.Value, isRequired, nil))
	}
	if roots.Len() == 0 {
		return nil, fmt.Errorf("openapi importer: operation %q request schema has no properties", im.opts.OperationID)
	}
	form.Node().SetArray(fieldtree.KeyFields, roots)
	return form, nil
}

func (im *Importer) findRequestSchema(spec *openapi3.T) *openapi3.Schema {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation == nil || operation.OperationID != im.opts.OperationID {
				continue
			}
			return requestSchema(operation.RequestBody)
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// buildNode converts one schema property into a store node. Objects with
// properties become grouping nodes holding kids; everything else becomes a
// terminal node with the widget annotation merged in.
func buildNode(name string, schema *openapi3.Schema, isRequired bool, parent store.Node) store.Node {
	node := store.NewDict()
	node.SetString(fieldtree.KeyPartialName, name)
	if parent != nil {
		node.SetNode(fieldtree.KeyParent, parent)
	}

	var flags int
	if isRequired {
		flags |= fieldtree.FlagRequired
	}
	if schema.ReadOnly {
		flags |= fieldtree.FlagReadOnly
	}
	if flags != 0 {
		node.SetInteger(fieldtree.KeyFlags, flags)
	}

	if isObject(schema) && len(schema.Properties) > 0 {
		required := requiredSet(schema)
		kids := store.NewArray()
		for _, propName := range sortedProperties(schema) {
			property := schema.Properties[propName]
			if property == nil || property.Value == nil {
				continue
			}
			_, req := required[propName]
			kids.Append(buildNode(propName, property.Value, req, node))
		}
		node.SetArray(fieldtree.KeyKids, kids)
		return node
	}

	node.SetName(fieldtree.KeyFieldType, fieldTypeFor(schema))
	node.SetName(fieldtree.KeySubtype, fieldtree.SubtypeWidget)
	return node
}

// fieldTypeFor maps schema shapes onto declared field types: enumerations
// become choice fields, booleans become button groups, everything else is a
// text input.
func fieldTypeFor(schema *openapi3.Schema) string {
	if len(schema.Enum) > 0 {
		return fieldtree.TypeChoice
	}
	if hasType(schema, "boolean") {
		return fieldtree.TypeButton
	}
	return fieldtree.TypeText
}

func isObject(schema *openapi3.Schema) bool {
	return hasType(schema, "object") || (schema.Type == nil && len(schema.Properties) > 0)
}

func hasType(schema *openapi3.Schema, name string) bool {
	if schema.Type == nil {
		return false
	}
	for _, value := range schema.Type.Slice() {
		if strings.EqualFold(value, name) {
			return true
		}
	}
	return false
}

func requiredSet(schema *openapi3.Schema) map[string]struct{} {
	set := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		set[name] = struct{}{}
	}
	return set
}

func sortedProperties(schema *openapi3.Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
