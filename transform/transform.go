// Package transform rewrites a loaded graph before batch updates begin:
// edge direction changes, self-loop padding, and weight resets.
//
// Every transform returns a new graph; the input is never mutated.
package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dyngraph/core"
)

// ErrUnknownInputTransform is returned by Parse for an unrecognized name.
var ErrUnknownInputTransform = errors.New("transform: unknown input transform")

// Kind identifies one transform.
type Kind int

const (
	// None leaves the graph as is; it is what the empty name parses to.
	None Kind = iota
	Transpose
	Symmetrize
	Unsymmetrize
	LoopDeadEnds
	LoopVertices
	ClearWeights
	SetWeights
)

var names = map[Kind]string{
	None:         "",
	Transpose:    "transpose",
	Symmetrize:   "symmetrize",
	Unsymmetrize: "unsymmetrize",
	LoopDeadEnds: "loop-deadends",
	LoopVertices: "loop-vertices",
	ClearWeights: "clear-weights",
	SetWeights:   "set-weights",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parse maps a transform name to its Kind.
func Parse(name string) (Kind, error) {
	for k, n := range names {
		if n == name {
			return k, nil
		}
	}
	return None, fmt.Errorf("Parse: %q: %w", name, ErrUnknownInputTransform)
}

// ParseList parses names in order, failing on the first unknown one.
func ParseList(list []string) ([]Kind, error) {
	out := make([]Kind, 0, len(list))
	for _, name := range list {
		k, err := Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Apply returns the result of transform k on g.
func Apply(k Kind, g *core.Graph) (*core.Graph, error) {
	switch k {
	case None:
		return g, nil
	case Transpose:
		return core.MapEdges(g, func(e core.Edge) (core.Edge, bool) {
			return core.Edge{From: e.To, To: e.From, Weight: e.Weight}, true
		}), nil
	case Symmetrize:
		out := g.Clone()
		for _, e := range g.Edges() {
			if !g.HasEdge(e.To, e.From) && !out.HasEdge(e.To, e.From) {
				if err := out.AddEdge(e.To, e.From, e.Weight); err != nil {
					return nil, fmt.Errorf("Apply(%v): %w", k, err)
				}
			}
		}
		return out, nil
	case Unsymmetrize:
		return core.MapEdges(g, func(e core.Edge) (core.Edge, bool) {
			return e, e.From <= e.To || !g.HasEdge(e.To, e.From)
		}), nil
	case LoopDeadEnds:
		return addLoops(g, func(v int64) bool { return g.OutDegree(v) == 0 })
	case LoopVertices:
		return addLoops(g, func(int64) bool { return true })
	case ClearWeights:
		return reweight(g, 0), nil
	case SetWeights:
		return reweight(g, core.DefaultEdgeWeight), nil
	default:
		return nil, fmt.Errorf("Apply: %v: %w", k, ErrUnknownInputTransform)
	}
}

// ApplyAll applies kinds left to right.
func ApplyAll(kinds []Kind, g *core.Graph) (*core.Graph, error) {
	var err error
	for _, k := range kinds {
		if g, err = Apply(k, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// addLoops copies g with loops enabled and adds v->v for every selected
// vertex that has none yet.
func addLoops(g *core.Graph, want func(v int64) bool) (*core.Graph, error) {
	out := core.MapEdges(g, func(e core.Edge) (core.Edge, bool) { return e, true }, core.WithLoops())
	for _, v := range g.Vertices() {
		if want(v) && !out.HasEdge(v, v) {
			if err := out.AddEdge(v, v, core.DefaultEdgeWeight); err != nil {
				return nil, fmt.Errorf("addLoops: %w", err)
			}
		}
	}
	return out, nil
}

func reweight(g *core.Graph, w int64) *core.Graph {
	return core.MapEdges(g, func(e core.Edge) (core.Edge, bool) {
		e.Weight = w
		return e, true
	})
}
