// SPDX-License-Identifier: MIT
// Package: dyngraph/stats
//
// distribution.go - degree → count buckets on a red-black tree.

package stats

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/dyngraph/core"
)

// Distribution maps a degree to a mass (a vertex count for observed
// distributions, a probability sum for target distributions). Keys are
// unique and iterate in ascending order.
type Distribution struct {
	tree  *redblacktree.Tree
	total float64
}

// NewDistribution returns an empty distribution.
func NewDistribution() *Distribution {
	return &Distribution{tree: redblacktree.NewWith(utils.IntComparator)}
}

// Add increments bucket degree by mass.
func (d *Distribution) Add(degree int, mass float64) {
	cur := 0.0
	if v, found := d.tree.Get(degree); found {
		cur = v.(float64)
	}
	d.tree.Put(degree, cur+mass)
	d.total += mass
}

// Get returns the mass of bucket degree, 0 when absent.
func (d *Distribution) Get(degree int) float64 {
	if v, found := d.tree.Get(degree); found {
		return v.(float64)
	}
	return 0
}

// Len is the number of distinct degrees.
func (d *Distribution) Len() int { return d.tree.Size() }

// Total is the sum of all bucket masses.
func (d *Distribution) Total() float64 { return d.total }

// Keys returns the degrees in ascending order.
func (d *Distribution) Keys() []int {
	keys := make([]int, 0, d.tree.Size())
	for _, k := range d.tree.Keys() {
		keys = append(keys, k.(int))
	}
	return keys
}

// Each calls fn for every bucket in ascending degree order.
func (d *Distribution) Each(fn func(degree int, mass float64)) {
	it := d.tree.Iterator()
	for it.Next() {
		fn(it.Key().(int), it.Value().(float64))
	}
}

// String renders "degree:mass" pairs, e.g. "0:1 1:2 3:1".
func (d *Distribution) String() string {
	var sb strings.Builder
	d.Each(func(k int, m float64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%g", k, m)
	})
	return sb.String()
}

// DegreeDistribution buckets every vertex by out-degree.
func DegreeDistribution(g *core.Graph) *Distribution {
	return bucket(g, func(in, out int) int { return out })
}

// UndirectedDegreeDistribution buckets every vertex by out-degree plus in-degree.
func UndirectedDegreeDistribution(g *core.Graph) *Distribution {
	return bucket(g, func(in, out int) int { return in + out })
}

// InDegreeDistribution buckets every vertex by in-degree.
func InDegreeDistribution(g *core.Graph) *Distribution {
	return bucket(g, func(in, out int) int { return in })
}

func bucket(g *core.Graph, key func(in, out int) int) *Distribution {
	d := NewDistribution()
	for _, v := range g.Vertices() {
		in, out, err := g.Degree(v)
		if err != nil {
			// Vertices are never removed, so this cannot happen.
			continue
		}
		d.Add(key(in, out), 1)
	}
	return d
}

// ToProbabilityVector divides each bucket by the total, in ascending degree
// order. An empty distribution yields an empty, non-nil vector.
func ToProbabilityVector(d *Distribution) []float64 {
	out := make([]float64, 0, d.Len())
	if d.total <= 0 {
		return out
	}
	d.Each(func(_ int, m float64) {
		out = append(out, m/d.total)
	})
	return out
}

// TargetWeight is one sampled insertion target and its probability mass.
type TargetWeight struct {
	Vertex int64
	Weight float64
}

// TargetDistribution buckets sampling weights by each target vertex's
// current in-degree in g, expressing the expected distribution over the same
// key domain as InDegreeDistribution(g).
//
// Every key is the in-degree of a vertex in g, so when g is the graph the
// targets were drawn for, each key is also present in InDegreeDistribution(g)
// and Divergence against it cannot hit a support mismatch. A mismatch means
// the targets refer to another graph or state.
func TargetDistribution(g *core.Graph, target []TargetWeight) *Distribution {
	d := NewDistribution()
	for _, tw := range target {
		d.Add(g.InDegree(tw.Vertex), tw.Weight)
	}
	return d
}
