package profile

import (
	"fmt"
	"slices"
	"strings"
)

// Order returns profile names so that every profile comes after the
// profiles it extends. Among profiles that are ready at the same time, file
// order wins. Extends entries naming unknown profiles are ignored here;
// Validate reports them.
func (f *File) Order() ([]string, error) {
	var names []string

	index := make(map[string]int, len(f.Profiles))
	first := make(map[string]int, len(f.Profiles))

	for pos, p := range f.Profiles {
		if _, dup := index[p.Name]; dup || p.Name == "" {
			continue
		}

		index[p.Name] = len(names)
		first[p.Name] = pos
		names = append(names, p.Name)
	}

	n := len(names)
	indeg := make([]int, n)
	out := make([][]int, n)

	for pos, p := range f.Profiles {
		i, ok := index[p.Name]
		if !ok || first[p.Name] != pos {
			continue
		}

		for _, parent := range p.Extends {
			d, ok := index[parent]
			if !ok || slices.Contains(out[d], i) {
				continue
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]string, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, names[i])
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		var stuck []string

		for i, name := range names {
			if indeg[i] > 0 {
				stuck = append(stuck, name)
			}
		}

		return nil, fmt.Errorf("%w: %s", ErrProfileCycle, strings.Join(stuck, ", "))
	}

	return order, nil
}
