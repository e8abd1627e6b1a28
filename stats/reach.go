// File: reach.go
// Role: Breadth-first reachability over out-edges, used to report diameter
// and degree-bound drift after a batch.
// Determinism:
//   - Sources and neighbors are visited in ascending ID order.

package stats

import "github.com/katalvlaran/dyngraph/core"

// queueItem is one frontier entry of the walker.
type queueItem struct {
	id    int64
	depth int
}

// walker runs one BFS from a single source.
type walker struct {
	g       *core.Graph
	queue   []queueItem
	visited map[int64]int
}

// Depths returns the hop distance from src to every vertex reachable along
// out-edges, src included at depth 0. An unknown src yields an empty map.
//
// Complexity: O(V + E).
func Depths(g *core.Graph, src int64) map[int64]int {
	w := &walker{g: g, visited: make(map[int64]int)}
	if !g.HasVertex(src) {
		return w.visited
	}
	w.enqueue(src, 0)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.g.ForEachEdge(item.id, func(v, _ int64) {
			if _, seen := w.visited[v]; !seen {
				w.enqueue(v, item.depth+1)
			}
		})
	}
	return w.visited
}

func (w *walker) enqueue(id int64, depth int) {
	w.visited[id] = depth
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// Eccentricity is the largest finite distance from src.
func Eccentricity(g *core.Graph, src int64) int {
	ecc := 0
	for _, d := range Depths(g, src) {
		if d > ecc {
			ecc = d
		}
	}
	return ecc
}

// Diameter returns the largest eccentricity over at most maxSources
// sources, spread evenly across the ascending vertex list. maxSources <= 0
// uses every vertex. Unreachable pairs are ignored, so this is the
// diameter of the reachability relation, a lower bound when sampling.
//
// Complexity: O(k·(V + E)) for k sources.
func Diameter(g *core.Graph, maxSources int) int {
	vs := g.Vertices()
	step := 1
	if maxSources > 0 && len(vs) > maxSources {
		step = (len(vs) + maxSources - 1) / maxSources
	}
	diam := 0
	for i := 0; i < len(vs); i += step {
		if e := Eccentricity(g, vs[i]); e > diam {
			diam = e
		}
	}
	return diam
}

// DegreeBounds counts vertices whose total degree falls below min or above
// max. A bound <= 0 is not checked.
func DegreeBounds(g *core.Graph, min, max int) (below, above int) {
	UndirectedDegreeDistribution(g).Each(func(degree int, count float64) {
		if min > 0 && degree < min {
			below += int(count)
		}
		if max > 0 && degree > max {
			above += int(count)
		}
	})
	return below, above
}
