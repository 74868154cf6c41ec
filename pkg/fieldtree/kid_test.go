package fieldtree

import (
	"testing"

	"github.com/goliatone/go-fieldtree/pkg/store"
)

func TestClassifyOwnTypeWins(t *testing.T) {
	node := store.NewDict()
	node.SetName(KeyFieldType, TypeText)
	node.SetName(KeySubtype, SubtypeWidget)

	if got := Classify(node, nil); got != KindField {
		t.Fatalf("classify = %v; want field (own declaration wins)", got)
	}
}

func TestClassifyParentTypeInherited(t *testing.T) {
	parent := store.NewDict()
	parent.SetName(KeyFieldType, TypeButton)
	node := store.NewDict()
	node.SetName(KeySubtype, SubtypeWidget)

	if got := Classify(node, parent); got != KindField {
		t.Fatalf("classify = %v; want field (parent declaration)", got)
	}
}

func TestClassifyWidgetMarker(t *testing.T) {
	node := store.NewDict()
	node.SetName(KeySubtype, SubtypeWidget)

	if got := Classify(node, nil); got != KindWidget {
		t.Fatalf("classify = %v; want widget", got)
	}

	untyped := store.NewDict()
	if got := Classify(node, untyped); got != KindWidget {
		t.Fatalf("classify with untyped parent = %v; want widget", got)
	}
}

func TestClassifyFallbackIsField(t *testing.T) {
	node := store.NewDict()
	node.SetName(KeySubtype, "Link")

	if got := Classify(node, nil); got != KindField {
		t.Fatalf("classify = %v; want field fallback", got)
	}
	if got := Classify(store.NewDict(), nil); got != KindField {
		t.Fatalf("classify empty node = %v; want field fallback", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	parent := store.NewDict()
	node := store.NewDict()
	node.SetName(KeySubtype, SubtypeWidget)

	first := Classify(node, parent)
	for i := 0; i < 10; i++ {
		if got := Classify(node, parent); got != first {
			t.Fatalf("classification changed between calls: %v then %v", first, got)
		}
	}
}

func TestKidUnionVariants(t *testing.T) {
	form := New()
	field := form.NewEmptyField()
	kid := FieldKid(field)
	if kid.Kind() != KindField {
		t.Fatalf("kind = %v; want field", kid.Kind())
	}
	if _, ok := kid.Widget(); ok {
		t.Fatal("field kid should not expose a widget")
	}
	if got, ok := kid.Field(); !ok || got != field {
		t.Fatal("field kid should expose its field")
	}

	widget := NewWidget(store.NewDict())
	kid = WidgetKid(widget)
	if kid.Kind() != KindWidget {
		t.Fatalf("kind = %v; want widget", kid.Kind())
	}
	if _, ok := kid.Field(); ok {
		t.Fatal("widget kid should not expose a field")
	}
	if kid.Node() != widget.Node() {
		t.Fatal("widget kid should expose the widget's node")
	}
}
