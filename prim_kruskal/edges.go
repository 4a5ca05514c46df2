package prim_kruskal

import "github.com/katalvlaran/campusnav/core"

// walkways returns the connections usable by a spanning tree: self-loops
// and connections touching unknown landmarks are dropped. Order is kept,
// so equal weights tie-break by insertion order.
func walkways(g *core.Graph) []core.Connection {
	all := g.Connections()
	out := make([]core.Connection, 0, len(all))
	for _, c := range all {
		if c.From == c.To || !g.Contains(c.From) || !g.Contains(c.To) {
			continue
		}
		out = append(out, c)
	}

	return out
}

// validate applies the checks shared by Prim and Kruskal. done is true
// when the answer is already known (single landmark).
func validate(g *core.Graph) (done bool, err error) {
	if g == nil {
		return true, ErrGraphNil
	}
	switch g.LandmarkCount() {
	case 0:
		return true, core.ErrNoLandmarks
	case 1:
		return true, nil
	}

	return false, nil
}
