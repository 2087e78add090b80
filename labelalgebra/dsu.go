package labelalgebra

// dsu is a classic disjoint-set-union over the dense integer domain
// [0, n), with path compression and union by rank — the same strategy
// as the teacher's inline find/union closures in
// prim_kruskal/kruskal.go, generalized from map[string]string parent
// pointers (vertex IDs) to a flat []int parent array (MentionIds are
// already dense ints, so no map indirection is needed).
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the representative of x's set, compressing the path
// traversed so that future lookups are faster (amortized O(alpha(n))).
func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // path compression
		x = d.parent[x]
	}

	return x
}

// union merges the sets containing x and y, attaching the lower-rank
// tree under the higher-rank root (union by rank).
func (d *dsu) union(x, y int) {
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
}

// labels renders the DSU's current partition as a dense LabelVector.
// Roots are relabeled in order of first appearance when scanning
// 0..n-1, so the result is deterministic given a fixed union sequence.
// When dropSingletons is true, any group of size 1 is relabeled
// NoiseLabel instead of being assigned a dense id.
func (d *dsu) labels(dropSingletons bool) LabelVector {
	n := len(d.parent)
	size := make(map[int]int, n)
	for i := 0; i < n; i++ {
		size[d.find(i)]++
	}

	relabel := make(map[int]int, n)
	next := 0
	out := make(LabelVector, n)
	for i := 0; i < n; i++ {
		root := d.find(i)
		if dropSingletons && size[root] == 1 {
			out[i] = NoiseLabel

			continue
		}
		lbl, ok := relabel[root]
		if !ok {
			lbl = next
			relabel[root] = lbl
			next++
		}
		out[i] = lbl
	}

	return out
}
