package cluster

import (
	"sort"
	"strconv"
	"strings"
)

// composeEvents derives E' by intersecting whole T' and L' classes. Note
// this is deliberately coarser than requiring both edge predicates per pair:
// when classes partially overlap, an intersection may contain a pair that
// never satisfied both predicates directly. That cluster-level semantics is
// the contract downstream review stages depend on.
func composeEvents(timeClasses, locationClasses [][]int) [][]int {
	seen := make(map[string]bool)
	var events [][]int

	for _, t := range timeClasses {
		for _, l := range locationClasses {
			common := intersectSorted(t, l)
			if len(common) < 2 {
				continue
			}
			fp := fingerprint(common)
			if seen[fp] {
				continue
			}
			seen[fp] = true
			events = append(events, common)
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return lessIntSlice(events[i], events[j])
	})
	return events
}

// intersectSorted intersects two ascending-sorted key slices.
func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// fingerprint builds a dedup key from an ordered member list.
func fingerprint(members []int) string {
	var sb strings.Builder
	for i, m := range members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(m))
	}
	return sb.String()
}

// lessIntSlice orders classes by first member, breaking ties element-wise so
// the output order is fully deterministic.
func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
