// Package formdoc loads form-document fixtures (YAML or JSON) into an
// attribute-store node tree ready for field-tree traversal.
package formdoc
