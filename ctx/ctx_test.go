package ctx

import (
	"testing"

	"awali.dev/awali/label"
	"awali.dev/awali/weightset"
)

func TestNewContext(t *testing.T) {
	labels := label.NewLetterSet([]rune("ab"))
	c, err := New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Name() != "lal_char_b" {
		t.Errorf("Name() = %q, want lal_char_b", c.Name())
	}
}

func TestContextIsFree(t *testing.T) {
	lal, _ := New[rune, bool](label.NewLetterSet([]rune("ab")), weightset.BSemiring{})
	if !lal.IsFree() {
		t.Error("letterset context should be free")
	}
	if lal.HasOne() {
		t.Error("letterset has no epsilon label")
	}

	lan, _ := New[label.Nullable, bool](label.NewNullableSet([]rune("ab")), weightset.BSemiring{})
	if !lan.IsFree() {
		t.Error("nullableset context should be free")
	}
	if !lan.HasOne() {
		t.Error("nullableset has an epsilon label")
	}

	var one label.OneSet
	lao, _ := New[label.Unit, bool](one, weightset.BSemiring{})
	if lao.IsFree() {
		t.Error("oneset context is not free")
	}
	if !lao.HasOne() {
		t.Error("oneset's single label is the epsilon label")
	}
}

func TestContextKind(t *testing.T) {
	c, _ := New[rune, bool](label.NewLetterSet([]rune("a")), weightset.BSemiring{})
	if c.Kind() != label.LetterKind {
		t.Errorf("Kind() = %v, want LetterKind", c.Kind())
	}
}
