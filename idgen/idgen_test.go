package idgen

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUID(t *testing.T) {
	gen := UUID()
	a, b := gen(), gen()
	if a == b {
		t.Fatalf("UUID produced duplicate ids: %s", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("UUID produced an invalid uuid %q: %v", a, err)
	}
}

func TestSequence(t *testing.T) {
	gen := Sequence("slide")
	for _, want := range []string{"slide-1", "slide-2", "slide-3"} {
		if got := gen(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
	if got := Sequence("slide")(); got != "slide-1" {
		t.Errorf("a new sequence must restart, got %q", got)
	}
}
