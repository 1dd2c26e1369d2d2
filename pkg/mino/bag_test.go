package mino

import (
	"testing"
)

func TestBag(t *testing.T) {
	b, err := NewBag(0, AllPieceTypes)
	if err != nil {
		t.Fatalf("failed to create bag: %s", err)
	}

	taken := make(map[PieceType]int)
	for i := 1; i < 4; i++ {
		for j := 0; j < len(AllPieceTypes); j++ {
			taken[b.Take()]++
		}

		if len(taken) != len(AllPieceTypes) {
			t.Errorf("pieces placed in bag do not match pieces taken - taken: %v", taken)
		}

		for _, pt := range AllPieceTypes {
			if taken[pt] != i {
				t.Fatalf("piece %s taken %d times after %d rounds - taken: %v", pt, taken[pt], i, taken)
			}
		}
	}
}

func TestNewBagEmpty(t *testing.T) {
	if _, err := NewBag(0, nil); err == nil {
		t.Error("expected an error when creating a bag without piece types")
	}
}

func TestNewSource(t *testing.T) {
	for _, name := range []string{"", "uniform", "bag"} {
		src, err := NewSource(name, 1)
		if err != nil {
			t.Errorf("failed to create source %q: %s", name, err)
			continue
		}

		for i := 0; i < 50; i++ {
			pt := src.Take()
			if pt < PieceI || pt > PieceL {
				t.Fatalf("source %q returned unknown piece type %d", name, pt)
			}
		}
	}

	if _, err := NewSource("tgm", 1); err == nil {
		t.Error("expected an error for an unknown randomizer")
	}
}

func TestUniformSourceCoversCatalog(t *testing.T) {
	src := NewUniformSource(42)

	seen := make(map[PieceType]bool)
	for i := 0; i < 1000; i++ {
		seen[src.Take()] = true
	}

	if len(seen) != len(AllPieceTypes) {
		t.Errorf("expected every piece type to be drawn, got %v", seen)
	}
}
