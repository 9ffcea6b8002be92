package main

import (
	"slices"
	"testing"

	"github.com/g-m-twostay/bintree/Trees"
)

func TestSplitLevels(t *testing.T) {
	tree := Trees.From(5, 3, 8, 1, 4, 0, 2, 9)
	dst := make([]*Trees.Node[int], tree.Size())
	levels := splitLevels(dst[:tree.Levels(dst)])
	want := [][]int{{5}, {3, 8}, {1, 4, 9}, {0, 2}}
	if len(levels) != len(want) {
		t.Fatalf("got %d levels, want %d", len(levels), len(want))
	}
	for i, l := range levels {
		if s := nodeValues(l); !slices.Equal(s, want[i]) {
			t.Errorf("level %d is %v, want %v", i+1, s, want[i])
		}
	}
	if uint(len(levels)) != tree.Height() {
		t.Errorf("got %d levels for height %d", len(levels), tree.Height())
	}
	if l := splitLevels(nil); len(l) != 0 {
		t.Errorf("empty traversal has %d levels", len(l))
	}
}

func TestParseValues(t *testing.T) {
	vs, err := parseValues([]string{"5", "-3", "8"})
	if err != nil || !slices.Equal(vs, []int{5, -3, 8}) {
		t.Errorf("parsed %v, %v", vs, err)
	}
	if _, err := parseValues([]string{"5", "x"}); err == nil {
		t.Errorf("parsed a non integer")
	}
}

func TestJoin(t *testing.T) {
	if s := join([]int{1, 2, 3}); s != "1 2 3" {
		t.Errorf("joined %q", s)
	}
	if s := join([]int(nil)); s != "" {
		t.Errorf("joined %q for nothing", s)
	}
}
