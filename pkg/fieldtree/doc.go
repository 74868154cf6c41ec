// Package fieldtree models the field hierarchy of an interactive document
// form: named nodes wrapping attribute-store dictionaries, where terminal
// entries are input widgets and non-terminal entries are grouping fields
// that may carry inheritable attributes such as the field type.
package fieldtree
