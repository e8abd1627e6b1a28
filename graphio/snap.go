package graphio

import (
	"io"
	"sort"

	"github.com/katalvlaran/dyngraph/core"
)

type temporalEdge struct {
	u, v, t int64
}

// readSnapTemporal reads SNAP temporal edge lines "<u> <v> <t>" and inserts
// them in ascending t, keeping file order among equal timestamps.
func readSnapTemporal(r io.Reader, g *core.Graph) error {
	s := newLineScanner(r, "#%")
	var edges []temporalEdge
	for {
		f, err := s.next()
		if err != nil {
			return err
		}
		if f == nil {
			break
		}
		if len(f) != 3 {
			return s.errorf("temporal edge needs <u> <v> <t>")
		}
		u, err1 := parseID(f[0])
		v, err2 := parseID(f[1])
		t, err3 := parseID(f[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return s.errorf("bad temporal edge %v", f)
		}
		edges = append(edges, temporalEdge{u: u, v: v, t: t})
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].t < edges[j].t })
	for _, e := range edges {
		if err := addEdge(g, e.u, e.v, core.DefaultEdgeWeight); err != nil {
			return err
		}
	}
	return nil
}
