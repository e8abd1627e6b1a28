package update

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/dyngraph/core"
)

func (s *Sampler) sampleUniform(snap *snapshot, rng *rand.Rand, b *Batch) {
	b.Deletions = uniformDeletions(snap, rng, b.Requested.Deletions)

	n := len(snap.vertices)
	want := b.Requested.Insertions
	if n < 2 || want == 0 {
		return
	}
	f := newPairFilter(snap, s.cfg.AllowDuplicateEdges)
	for tries := budget(want); len(b.Insertions) < want && tries > 0; tries-- {
		u, v := snap.vertices[rng.Intn(n)], snap.vertices[rng.Intn(n)]
		if f.take(u, v) {
			b.Insertions = append(b.Insertions, core.Edge{From: u, To: v, Weight: core.DefaultEdgeWeight})
		}
	}
	if len(b.Insertions) < want {
		b.Insertions = append(b.Insertions, enumerateRemaining(snap, f, rng, want-len(b.Insertions))...)
	}
}

// enumerateRemaining lists every admissible pair and draws up to k of them,
// without replacement unless duplicates are allowed.
func enumerateRemaining(snap *snapshot, f *pairFilter, rng *rand.Rand, k int) []core.Edge {
	var cands []core.EdgeKey
	for _, u := range snap.vertices {
		for _, v := range snap.vertices {
			if f.admissible(u, v) {
				cands = append(cands, core.EdgeKey{From: u, To: v})
			}
		}
	}
	out := make([]core.Edge, 0, k)
	for len(out) < k && len(cands) > 0 {
		i := rng.Intn(len(cands))
		c := cands[i]
		f.take(c.From, c.To)
		out = append(out, core.Edge{From: c.From, To: c.To, Weight: core.DefaultEdgeWeight})
		if !f.allowDup {
			cands[i] = cands[len(cands)-1]
			cands = cands[:len(cands)-1]
		}
	}
	return out
}

// uniformDeletions draws k distinct non-loop edges by partial Fisher–Yates.
func uniformDeletions(snap *snapshot, rng *rand.Rand, k int) []core.EdgeKey {
	cands := snap.nonLoopEdges()
	if k > len(cands) {
		k = len(cands)
	}
	out := make([]core.EdgeKey, 0, k)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(cands)-i)
		cands[i], cands[j] = cands[j], cands[i]
		out = append(out, cands[i].Key())
	}
	return out
}

func (s *Sampler) samplePreferential(snap *snapshot, rng *rand.Rand, b *Batch) {
	b.Deletions = preferentialDeletions(snap, rng, b.Requested.Deletions)

	n := len(snap.vertices)
	want := b.Requested.Insertions
	if n < 2 || want == 0 {
		return
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(snap.in[i]+snap.out[i]) + PreferentialSmoothing
	}
	cum, total := cumulative(w)
	f := newPairFilter(snap, s.cfg.AllowDuplicateEdges)
	for tries := budget(want); len(b.Insertions) < want && tries > 0; tries-- {
		u := snap.vertices[pick(cum, total, rng)]
		ti := pick(cum, total, rng)
		v := snap.vertices[ti]
		if f.take(u, v) {
			b.Insertions = append(b.Insertions, core.Edge{From: u, To: v, Weight: core.DefaultEdgeWeight})
			b.Target = append(b.Target, TargetWeight{Vertex: v, Weight: w[ti] / total})
		}
	}
}

// preferentialDeletions draws k distinct non-loop edges with probability
// proportional to deg(u)+deg(v), using Efraimidis–Spirakis keys ln(U)/w.
func preferentialDeletions(snap *snapshot, rng *rand.Rand, k int) []core.EdgeKey {
	cands := snap.nonLoopEdges()
	if k > len(cands) {
		k = len(cands)
	}
	if k == 0 {
		return []core.EdgeKey{}
	}
	deg := snap.degreeIndex()
	type keyed struct {
		key core.EdgeKey
		es  float64
	}
	ks := make([]keyed, len(cands))
	for i, e := range cands {
		w := float64(deg[e.From] + deg[e.To])
		ks[i] = keyed{key: e.Key(), es: math.Log(1-rng.Float64()) / w}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].es > ks[j].es })
	out := make([]core.EdgeKey, k)
	for i := range out {
		out[i] = ks[i].key
	}
	return out
}

func (s *Sampler) sampleCustom(snap *snapshot, rng *rand.Rand, b *Batch) {
	b.Deletions = uniformDeletions(snap, rng, b.Requested.Deletions)

	n := len(snap.vertices)
	want := b.Requested.Insertions
	if n < 2 || want == 0 {
		return
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = s.cfg.Distribution.weight(snap.in[i], snap.out[i])
	}
	cum, total := cumulative(w)
	if total <= 0 {
		// No target carries mass: nothing can be drawn.
		b.Deletions = b.Deletions[:0]
		return
	}
	f := newPairFilter(snap, s.cfg.AllowDuplicateEdges)
	for tries := budget(want); len(b.Insertions) < want && tries > 0; tries-- {
		u := snap.vertices[rng.Intn(n)]
		ti := pick(cum, total, rng)
		v := snap.vertices[ti]
		if f.take(u, v) {
			b.Insertions = append(b.Insertions, core.Edge{From: u, To: v, Weight: core.DefaultEdgeWeight})
			b.Target = append(b.Target, TargetWeight{Vertex: v, Weight: w[ti] / total})
		}
	}
}

// cumulative returns prefix sums of w and their total.
func cumulative(w []float64) ([]float64, float64) {
	cum := make([]float64, len(w))
	var acc float64
	for i, x := range w {
		acc += x
		cum[i] = acc
	}
	return cum, acc
}

// pick returns an index with probability proportional to its weight.
// Zero-weight entries are never returned.
func pick(cum []float64, total float64, rng *rand.Rand) int {
	x := rng.Float64() * total
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > x })
	if i == len(cum) {
		i = len(cum) - 1
		for i > 0 && cum[i] == cum[i-1] {
			i--
		}
	}
	return i
}
