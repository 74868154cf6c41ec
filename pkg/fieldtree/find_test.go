package fieldtree

import (
	"errors"
	"testing"

	"github.com/goliatone/go-fieldtree/pkg/store"
)

// buildTwoLevelTree returns a root whose kid "Name1" has a kid "Name2".
func buildTwoLevelTree() *store.Dict {
	leaf := store.NewDict()
	leaf.SetString(KeyPartialName, "Name2")

	mid := store.NewDict()
	mid.SetString(KeyPartialName, "Name1")
	mid.SetArray(KeyKids, store.NewArray(leaf))

	root := store.NewDict()
	root.SetArray(KeyKids, store.NewArray(mid))
	return root
}

func TestFindKidDescendsByPath(t *testing.T) {
	form := New()
	root := form.NewField(buildTwoLevelTree())

	got, err := root.FindKid([]string{"Name1", "Name2"}, 0)
	if err != nil {
		t.Fatalf("find kid: %v", err)
	}
	if got == nil {
		t.Fatal("path should resolve")
	}
	if name, _ := got.PartialName(); name != "Name2" {
		t.Fatalf("resolved name = %q; want Name2", name)
	}
}

func TestFindKidSingleSegment(t *testing.T) {
	form := New()
	root := form.NewField(buildTwoLevelTree())

	got, err := root.FindKid([]string{"Name1"}, 0)
	if err != nil {
		t.Fatalf("find kid: %v", err)
	}
	if got == nil {
		t.Fatal("single segment should resolve")
	}
	if name, _ := got.PartialName(); name != "Name1" {
		t.Fatalf("resolved name = %q; want Name1", name)
	}
}

func TestFindKidMissingSegment(t *testing.T) {
	form := New()
	root := form.NewField(buildTwoLevelTree())

	for _, path := range [][]string{{"Missing"}, {"Name1", "Missing"}} {
		got, err := root.FindKid(path, 0)
		if err != nil {
			t.Fatalf("find kid %v: %v", path, err)
		}
		if got != nil {
			t.Fatalf("path %v should not resolve", path)
		}
	}
}

func TestFindKidStartIndexSkipsLeadingSegments(t *testing.T) {
	form := New()
	root := form.NewField(buildTwoLevelTree())

	got, err := root.FindKid([]string{"ignored", "Name1", "Name2"}, 1)
	if err != nil {
		t.Fatalf("find kid: %v", err)
	}
	if got == nil {
		t.Fatal("descent starting at index 1 should resolve")
	}
	if name, _ := got.PartialName(); name != "Name2" {
		t.Fatalf("resolved name = %q; want Name2", name)
	}
}

func TestFindKidSkipsDanglingEntries(t *testing.T) {
	form := New()
	target := store.NewDict()
	target.SetString(KeyPartialName, "x")
	root := store.NewDict()
	root.SetArray(KeyKids, store.NewArray(nil, target))

	got, err := form.NewField(root).FindKid([]string{"x"}, 0)
	if err != nil {
		t.Fatalf("find kid: %v", err)
	}
	if got == nil {
		t.Fatal("dangling entry should be skipped, not fatal")
	}
}

func TestFindKidMaterializesWidgetShapedNodeAsField(t *testing.T) {
	// Path descent bypasses classification: a node that would classify as a
	// widget still comes back as a field.
	form := New()
	kid := store.NewDict()
	kid.SetString(KeyPartialName, "w")
	kid.SetName(KeySubtype, SubtypeWidget)
	root := store.NewDict()
	root.SetArray(KeyKids, store.NewArray(kid))

	got, err := form.NewField(root).FindKid([]string{"w"}, 0)
	if err != nil {
		t.Fatalf("find kid: %v", err)
	}
	if got == nil {
		t.Fatal("widget-shaped node should materialize as a field")
	}
}

func TestFindKidFactoryFailurePropagates(t *testing.T) {
	broken := errors.New("backing node unreadable")
	form := New(WithFactory(FactoryFunc(func(*Form, store.Node) (*Field, error) {
		return nil, broken
	})))
	root := form.NewField(buildTwoLevelTree())

	_, err := root.FindKid([]string{"Name1"}, 0)
	if err == nil {
		t.Fatal("factory failure should propagate")
	}
	if !errors.Is(err, ErrMaterialize) {
		t.Fatalf("error should carry the materialization kind: %v", err)
	}
	if !errors.Is(err, broken) {
		t.Fatalf("error should wrap the factory cause: %v", err)
	}
}
