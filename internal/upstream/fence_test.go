package upstream

import "testing"

func TestFenceDropsSupersededGenerations(t *testing.T) {
	var f Fence

	first := f.Begin()
	second := f.Begin()

	if f.Admit(first) {
		t.Fatalf("superseded generation must be dropped")
	}
	if !f.Admit(second) {
		t.Fatalf("latest generation must be admitted")
	}

	third := f.Begin()
	if f.Admit(second) {
		t.Fatalf("second generation should be stale after third began")
	}
	if !f.Admit(third) {
		t.Fatalf("third generation must be admitted")
	}
}

func TestFenceSetKeysAreIndependent(t *testing.T) {
	var set FenceSet

	genA := set.For("a").Begin()
	genB := set.For("b").Begin()

	if !set.For("a").Admit(genA) {
		t.Fatalf("b's refresh must not supersede a's")
	}
	if !set.For("b").Admit(genB) {
		t.Fatalf("a's refresh must not supersede b's")
	}

	set.For("a").Begin()
	if set.For("a").Admit(genA) {
		t.Fatalf("a's earlier generation should be stale")
	}
	if !set.For("b").Admit(genB) {
		t.Fatalf("b must be unaffected by a's new generation")
	}
}
