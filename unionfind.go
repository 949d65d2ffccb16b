package vstol

// unionFind is a disjoint-set union over string identifiers, with
// union-by-size and full path compression (spec.md §4.1). The zero value is
// not usable; construct with newUnionFind.
type unionFind struct {
	parent map[string]string
	size   map[string]int
	// order preserves first-seen order so clusters() is deterministic within
	// one run, even though the spec does not require a particular order.
	order []string
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[string]string),
		size:   make(map[string]int),
	}
}

// insert registers x as its own singleton class if it isn't already known.
func (u *unionFind) insert(x string) {
	if _, ok := u.parent[x]; ok {
		return
	}
	u.parent[x] = x
	u.size[x] = 1
	u.order = append(u.order, x)
}

// find returns the canonical representative of x's class, inserting x as a
// new singleton if it is unknown, and compressing the path to the root.
func (u *unionFind) find(x string) string {
	u.insert(x)

	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		next := u.parent[x]
		u.parent[x] = root
		x = next
	}
	return root
}

// union merges the classes containing x and y, attaching the smaller tree
// under the larger root's id.
func (u *unionFind) union(x, y string) {
	rootX := u.find(x)
	rootY := u.find(y)
	if rootX == rootY {
		return
	}
	if u.size[rootX] < u.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	u.parent[rootY] = rootX
	u.size[rootX] += u.size[rootY]
}

// clusters returns one group per class, each a non-empty slice of ids.
func (u *unionFind) clusters() [][]string {
	byRoot := make(map[string][]string)
	var roots []string
	for _, id := range u.order {
		root := u.find(id)
		if _, ok := byRoot[root]; !ok {
			roots = append(roots, root)
		}
		byRoot[root] = append(byRoot[root], id)
	}
	clusters := make([][]string, len(roots))
	for i, root := range roots {
		clusters[i] = byRoot[root]
	}
	return clusters
}
