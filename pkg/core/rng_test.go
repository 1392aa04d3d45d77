package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]bool, 256)
	b := make([]bool, 256)
	NewRNG(99).FillBinary(a, 0.5)
	NewRNG(99).FillBinary(b, 0.5)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}

	c := make([]bool, 256)
	NewRNG(100).FillBinary(c, 0.5)
	if slices.Equal(a, c) {
		t.Fatal("different seeds produced identical fills")
	}
}

func TestChanceClamps(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		if r.Chance(-0.5) || r.Chance(0) {
			t.Fatal("non-positive probability returned true")
		}
		if !r.Chance(1) || !r.Chance(2) {
			t.Fatal("probability >= 1 returned false")
		}
	}
}
