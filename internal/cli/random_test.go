package cli

import (
	"reflect"
	"testing"
)

func TestRandomDataReproducible(t *testing.T) {
	a := randomData(6, 42)
	b := randomData(6, 42)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce identical datasets")
	}
}

func TestRandomDataSeedChangesValues(t *testing.T) {
	a := randomData(6, 1)
	b := randomData(6, 2)

	same := true
	for i := range a.Items {
		if a.Items[i].Value != b.Items[i].Value {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should produce different values")
	}
}

func TestRandomDataShape(t *testing.T) {
	data := randomData(15, 7)

	if len(data.Items) != 15 {
		t.Fatalf("len(Items) = %d, want 15", len(data.Items))
	}
	if data.Title == "" {
		t.Error("generated dataset should have a title")
	}

	for i, item := range data.Items {
		if item.Name == "" {
			t.Errorf("item %d has empty name", i)
		}
		if item.Color == "" {
			t.Errorf("item %d has empty color", i)
		}
		if item.Value < minSampleValue || item.Value >= maxSampleValue {
			t.Errorf("item %d value %v outside [%d, %d)", i, item.Value, minSampleValue, maxSampleValue)
		}
		if item.Key != "" {
			t.Errorf("item %d should not have a key by default, got %q", i, item.Key)
		}
	}

	// Names and colors cycle past the palette length.
	if data.Items[12].Name != data.Items[0].Name {
		t.Errorf("item 12 name = %q, want cycled %q", data.Items[12].Name, data.Items[0].Name)
	}
	if data.Items[12].Color != data.Items[0].Color {
		t.Errorf("item 12 color = %q, want cycled %q", data.Items[12].Color, data.Items[0].Color)
	}
}
