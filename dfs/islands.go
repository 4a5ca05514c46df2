package dfs

import "github.com/katalvlaran/campusnav/core"

// Islands groups the landmarks of g into connected islands, ignoring
// connection direction. Islands are ordered by their first landmark in
// discovery order and list their landmarks in discovery order, so a fully
// connected map yields a single island equal to g.Keys().
//
// A map with more than one island has landmarks no route can join.
func Islands(g *core.Graph) ([][]string, error) {
	res, err := DFS(g, "", WithFullTraversal(), WithUndirected())
	if err != nil {
		return nil, err
	}

	// Each tree root is the earliest key of its island, so it is seen
	// before any of its members below.
	island := make(map[string]int, len(res.Visited))
	var out [][]string
	for _, k := range g.Keys() {
		root := k
		for {
			p, ok := res.Parent[root]
			if !ok {
				break
			}
			root = p
		}
		if root == k {
			island[k] = len(out)
			out = append(out, []string{k})
			continue
		}
		idx := island[root]
		out[idx] = append(out[idx], k)
	}

	return out, nil
}
