package heraldry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleOrdinaries() []Ordinary {
	return []Ordinary{
		{Type: "fess", Tincture: "gules", Thickness: ThicknessNormal, Count: 1, Visible: true},
		{Type: "bend", Tincture: "or", Thickness: ThicknessNarrow, Count: 2, Visible: true},
		{Type: "chief", Tincture: "sable", Thickness: ThicknessWide, Count: 1, Visible: false},
	}
}

func TestMoveLayerUpThenDownIsIdentity(t *testing.T) {
	original := sampleOrdinaries()
	for index := 0; index < len(original)-1; index++ {
		moved := MoveLayerUp(original, index)
		restored := MoveLayerDown(moved, index+1)
		if diff := cmp.Diff(original, restored); diff != "" {
			t.Fatalf("index %d: up-then-down changed the stack (-want +got):\n%s", index, diff)
		}
	}
}

func TestMoveLayerUp_PreservesUntouchedFields(t *testing.T) {
	original := sampleOrdinaries()
	moved := MoveLayerUp(original, 0)

	if diff := cmp.Diff(original[2], moved[2]); diff != "" {
		t.Fatalf("unrelated layer changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original[0], moved[1]); diff != "" {
		t.Fatalf("moved layer changed beyond position (-want +got):\n%s", diff)
	}
	// Input slice must be untouched.
	if diff := cmp.Diff(sampleOrdinaries(), original); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestMoveLayer_OutOfRangeIsNoOp(t *testing.T) {
	original := sampleOrdinaries()
	for _, idx := range []int{-1, len(original) - 1, len(original)} {
		if diff := cmp.Diff(original, MoveLayerUp(original, idx)); diff != "" {
			t.Fatalf("MoveLayerUp(%d) changed order:\n%s", idx, diff)
		}
	}
	for _, idx := range []int{-1, 0, len(original)} {
		if diff := cmp.Diff(original, MoveLayerDown(original, idx)); diff != "" {
			t.Fatalf("MoveLayerDown(%d) changed order:\n%s", idx, diff)
		}
	}
}

func TestDuplicateLayer(t *testing.T) {
	layers := sampleOrdinaries()[:2]
	out := DuplicateLayer(layers, 0)
	if len(out) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(out))
	}
	if diff := cmp.Diff(out[0], out[1]); diff != "" {
		t.Fatalf("duplicate differs from source (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(layers[1], out[2]); diff != "" {
		t.Fatalf("following layer not shifted intact (-want +got):\n%s", diff)
	}
}

func TestDuplicateLayer_RespectsCap(t *testing.T) {
	layers := sampleOrdinaries() // already MaxLayers
	out := DuplicateLayer(layers, 1)
	if diff := cmp.Diff(layers, out); diff != "" {
		t.Fatalf("duplicate past cap changed stack:\n%s", diff)
	}
}

func TestRemoveLayer(t *testing.T) {
	layers := sampleOrdinaries()
	out := RemoveLayer(layers, 1)
	want := []Ordinary{layers[0], layers[2]}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("remove mismatch (-want +got):\n%s", diff)
	}
}

func TestSetOrdinaryVisibility(t *testing.T) {
	layers := sampleOrdinaries()
	out := SetOrdinaryVisibility(layers, 2, true)
	if !out[2].Visible {
		t.Fatal("visibility not set")
	}
	if layers[2].Visible {
		t.Fatal("input mutated")
	}
	out[2].Visible = false
	if diff := cmp.Diff(layers, out); diff != "" {
		t.Fatalf("other fields changed (-want +got):\n%s", diff)
	}
}
