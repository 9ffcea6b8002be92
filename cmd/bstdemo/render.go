package main

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/samber/lo"
)

func join[T any](vs []T) string {
	return strings.Join(lo.Map(vs, func(v T, _ int) string {
		return fmt.Sprint(v)
	}), " ")
}

// nodeValues of the written prefix of a traversal destination.
func nodeValues(nodes []*Trees.Node[int]) []int {
	return lo.Map(nodes, func(n *Trees.Node[int], _ int) int {
		return n.Value()
	})
}

// splitLevels cuts a level-order sequence into its levels: the first level
// is the root alone, and each next level holds the children of the previous
// one.
func splitLevels(nodes []*Trees.Node[int]) (levels [][]*Trees.Node[int]) {
	for width := 1; len(nodes) > 0 && width > 0; {
		width = min(width, len(nodes))
		level := nodes[:width]
		levels, nodes = append(levels, level), nodes[width:]
		width = lo.SumBy(level, func(n *Trees.Node[int]) int {
			return lo.Ternary(n.Left() != nil, 1, 0) + lo.Ternary(n.Right() != nil, 1, 0)
		})
	}
	return
}
