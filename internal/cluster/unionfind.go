package cluster

import "sort"

// unionFind is a flat-array disjoint-set structure indexed by file key,
// with path compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range n {
		u.parent[i] = i
	}
	return u
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]] // halve the path
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// classes returns the equivalence classes of size >= 2: members sorted
// ascending within each class, classes sorted by first member.
func (u *unionFind) classes() [][]int {
	groups := make(map[int][]int)
	for key := range u.parent {
		root := u.find(key)
		groups[root] = append(groups[root], key)
	}

	var result [][]int
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		sort.Ints(members)
		result = append(result, members)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i][0] < result[j][0]
	})
	return result
}
