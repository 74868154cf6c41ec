package fieldtree

import (
	"testing"

	"github.com/goliatone/go-fieldtree/pkg/store"
)

func TestPartialNameRoundTrip(t *testing.T) {
	form := New()
	for _, name := range []string{"surname", "", "with.dots", "ünïcode"} {
		field := form.NewEmptyField()
		field.SetPartialName(name)
		got, ok := field.PartialName()
		if !ok || got != name {
			t.Fatalf("partial name round trip %q -> %q, %t", name, got, ok)
		}
	}
}

func TestPartialNameAbsent(t *testing.T) {
	field := New().NewEmptyField()
	if _, ok := field.PartialName(); ok {
		t.Fatal("absent partial name should report false")
	}
}

func TestFieldTypeDirect(t *testing.T) {
	form := New()
	node := store.NewDict()
	node.SetName(KeyFieldType, TypeText)

	// An ancestor declaration must not shadow the node's own.
	parent := store.NewDict()
	parent.SetName(KeyFieldType, TypeButton)
	node.SetNode(KeyParent, parent)

	got, ok := form.NewField(node).FieldType()
	if !ok || got != TypeText {
		t.Fatalf("field type = %q, %t; want %q, true", got, ok, TypeText)
	}
}

func TestFieldTypeInheritedFromAncestor(t *testing.T) {
	form := New()
	grandparent := store.NewDict()
	grandparent.SetName(KeyFieldType, TypeChoice)
	parent := store.NewDict()
	parent.SetNode(KeyParent, grandparent)
	node := store.NewDict()
	node.SetNode(KeyParent, parent)

	got, ok := form.NewField(node).FieldType()
	if !ok || got != TypeChoice {
		t.Fatalf("field type = %q, %t; want %q, true", got, ok, TypeChoice)
	}
}

func TestFieldTypeInheritedThroughLegacyParentKey(t *testing.T) {
	form := New()
	parent := store.NewDict()
	parent.SetName(KeyFieldType, TypeSignature)
	node := store.NewDict()
	node.SetNode(KeyParentLegacy, parent)

	got, ok := form.NewField(node).FieldType()
	if !ok || got != TypeSignature {
		t.Fatalf("field type = %q, %t; want %q, true", got, ok, TypeSignature)
	}
}

func TestFieldTypeAbsentEverywhere(t *testing.T) {
	field := New().NewEmptyField()
	if _, ok := field.FieldType(); ok {
		t.Fatal("chain without a declaration should report false")
	}
}

func TestFieldTypeParentCycleTerminates(t *testing.T) {
	form := New()
	a := store.NewDict()
	b := store.NewDict()
	a.SetNode(KeyParent, b)
	b.SetNode(KeyParent, a)

	if _, ok := form.NewField(a).FieldType(); ok {
		t.Fatal("cyclic chain should resolve as not found")
	}
}

func TestFlagsDefaultZero(t *testing.T) {
	field := New().NewEmptyField()
	if got := field.Flags(); got != 0 {
		t.Fatalf("flags = %d; want 0", got)
	}
}

func TestFlagsNeverInherited(t *testing.T) {
	form := New()
	parent := store.NewDict()
	parent.SetInteger(KeyFlags, FlagReadOnly|FlagRequired)
	node := store.NewDict()
	node.SetNode(KeyParent, parent)

	if got := form.NewField(node).Flags(); got != 0 {
		t.Fatalf("flags = %d; want 0 (no inheritance)", got)
	}
}

func TestFlagBitHelpers(t *testing.T) {
	field := New().NewEmptyField()
	field.SetFlags(FlagReadOnly | FlagNoExport)
	if !field.IsReadOnly() || field.IsRequired() || !field.IsNoExport() {
		t.Fatalf("flag helpers mismatch for %d", field.Flags())
	}
}

func TestParentResolvedOnDemand(t *testing.T) {
	form := New()
	parentNode := store.NewDict()
	parentNode.SetString(KeyPartialName, "group")
	node := store.NewDict()
	node.SetNode(KeyParent, parentNode)
	field := form.NewField(node)

	parent, ok := field.Parent()
	if !ok {
		t.Fatal("parent should resolve")
	}
	if name, _ := parent.PartialName(); name != "group" {
		t.Fatalf("parent name = %q; want group", name)
	}

	// The back-reference is a lookup, not a cached handle: re-pointing the
	// attribute changes what the next resolution sees.
	other := store.NewDict()
	other.SetString(KeyPartialName, "moved")
	node.SetNode(KeyParent, other)
	parent, _ = field.Parent()
	if name, _ := parent.PartialName(); name != "moved" {
		t.Fatalf("parent name after edit = %q; want moved", name)
	}
}
