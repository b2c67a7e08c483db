package gen

import (
	"sort"

	"mapping-generator/internal/mapping"
)

// dependencyOrder returns the mappings of set with every mapping placed after
// the mappings its properties refer to.
//
// The result is deterministic: when multiple mappings are available, the one
// earliest in the set wins. Cycles (Order -> Customer -> Order) are broken
// by taking the earliest remaining mapping.
func dependencyOrder(set *mapping.Set) []*mapping.Mapping {
	all := set.All()
	n := len(all)

	index := make(map[string]int, n)
	for i := n - 1; i >= 0; i-- {
		index[all[i].Name] = i
	}

	order, _ := topoSort(n, func(i int) []int {
		var deps []int

		for _, name := range referencedTypes(all[i]) {
			if j, ok := index[name]; ok && j != i {
				deps = append(deps, j)
			}
		}

		return deps
	})

	out := make([]*mapping.Mapping, 0, n)
	for _, i := range order {
		out = append(out, all[i])
	}

	return out
}

func referencedTypes(m *mapping.Mapping) []string {
	var names []string

	for _, p := range m.Mappings {
		if p.IsSquashedType {
			names = append(names, p.SquashedType)
			continue
		}

		names = append(names, p.Type)
		names = append(names, p.DictionaryTypes...)
	}

	return names
}

// topoSort returns indices in dependency order.
//
// Nodes are by index. depsFn(i) yields indices that must come before i;
// duplicates are allowed. The second result reports whether a cycle had to
// be broken.
func topoSort(n int, depsFn func(i int) []int) ([]int, bool) {
	if n <= 0 {
		return nil, false
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		seen := make(map[int]bool)

		for _, d := range depsFn(i) {
			if d < 0 || d >= n || seen[d] {
				continue
			}

			seen[d] = true
			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var (
		ready  []int
		done   = make([]bool, n)
		order  = make([]int, 0, n)
		broken bool
	)

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	release := func(i int) {
		done[i] = true
		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 && !done[j] {
				ready = append(ready, j)
			}
		}

		sort.Ints(ready)
	}

	for len(order) < n {
		if len(ready) == 0 {
			// Cycle: take the earliest node still pending.
			broken = true

			for i := range n {
				if !done[i] {
					ready = append(ready, i)
					break
				}
			}
		}

		i := ready[0]
		ready = ready[1:]

		if done[i] {
			continue
		}

		release(i)
	}

	return order, broken
}
