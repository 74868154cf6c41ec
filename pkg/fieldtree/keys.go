package fieldtree

import "github.com/goliatone/go-fieldtree/pkg/store"

// Canonical attribute keys used by the tree layer.
const (
	// KeyPartialName holds the node's own name segment.
	KeyPartialName store.Key = "T"
	// KeyFieldType holds the declared field type (name namespace). It may
	// be declared on an ancestor instead of the node itself.
	KeyFieldType store.Key = "FT"
	// KeyFlags holds the field flag bits. Never inherited.
	KeyFlags store.Key = "Ff"
	// KeyParent and KeyParentLegacy are the two legal parent reference
	// keys; the legacy key exists for backward compatibility with older
	// documents.
	KeyParent       store.Key = "Parent"
	KeyParentLegacy store.Key = "P"
	// KeyKids holds the ordered children array.
	KeyKids store.Key = "Kids"
	// KeySubtype holds the annotation subtype tag (name namespace).
	KeySubtype store.Key = "Subtype"
	// KeyFields holds the root field array on the owning form node.
	KeyFields store.Key = "Fields"
)

// SubtypeWidget is the subtype marker identifying an interactive widget
// annotation.
const SubtypeWidget = "Widget"

// Declared field type names understood by the variant registry.
const (
	TypeText      = "Tx"
	TypeChoice    = "Ch"
	TypeButton    = "Btn"
	TypeSignature = "Sig"
)

// Field flag bits.
const (
	FlagReadOnly = 1
	FlagRequired = 1 << 1
	FlagNoExport = 1 << 2
)
