// SPDX-License-Identifier: MIT
// Package: dyngraph/update
//
// types.go - Nature and Distribution enums, Batch, TargetWeight and sentinel errors.

package update

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dyngraph/core"
	"github.com/katalvlaran/dyngraph/stats"
)

// Sentinel errors.
var (
	// ErrUnknownUpdateNature is returned by ParseNature for an unrecognized name.
	ErrUnknownUpdateNature = errors.New("update: unknown update nature")
	// ErrUnknownDistribution is returned by ParseDistribution for an unrecognized name.
	ErrUnknownDistribution = errors.New("update: unknown probability distribution")
	// ErrInvalidSamplerConfig reports a negative batch size or fraction.
	ErrInvalidSamplerConfig = errors.New("update: invalid sampler configuration")
	// ErrNilGraph is returned when Sample or Apply receives a nil graph.
	ErrNilGraph = errors.New("update: graph is nil")
	// ErrNilRand is returned when Sample receives a nil RNG.
	ErrNilRand = errors.New("update: rng is nil")
)

// Nature selects the edge sampling policy.
type Nature int

const (
	// NatureCustom samples insertion targets from a named Distribution.
	NatureCustom Nature = iota
	// NatureUniform samples pairs uniformly over ordered non-loop pairs.
	NatureUniform
	// NaturePreferential weights endpoints by degree plus PreferentialSmoothing.
	NaturePreferential
	// NaturePlanted is reserved; it yields an empty batch.
	NaturePlanted
	// NatureMatch is reserved; it yields an empty batch.
	NatureMatch
)

var natureNames = map[Nature]string{
	NatureCustom:       "",
	NatureUniform:      "uniform",
	NaturePreferential: "preferential",
	NaturePlanted:      "planted",
	NatureMatch:        "match",
}

// String returns the configuration name; NatureCustom is the empty string.
func (n Nature) String() string {
	if s, ok := natureNames[n]; ok {
		return s
	}
	return fmt.Sprintf("Nature(%d)", int(n))
}

// ParseNature maps a configuration string to a Nature. The empty string and
// "custom" both select NatureCustom.
func ParseNature(s string) (Nature, error) {
	if s == "custom" {
		return NatureCustom, nil
	}
	for n, name := range natureNames {
		if name == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("ParseNature: %q: %w", s, ErrUnknownUpdateNature)
}

// Distribution names the target-vertex weighting of the custom nature.
type Distribution int

const (
	// DistInDegree weights targets by in-degree. It is the default.
	DistInDegree Distribution = iota
	// DistUniform weights every vertex equally.
	DistUniform
	// DistDegree weights targets by in-degree plus out-degree.
	DistDegree
	// DistOutDegree weights targets by out-degree.
	DistOutDegree
)

var distributionNames = map[Distribution]string{
	DistInDegree:  "in-degree",
	DistUniform:   "uniform",
	DistDegree:    "degree",
	DistOutDegree: "out-degree",
}

func (d Distribution) String() string {
	if s, ok := distributionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Distribution(%d)", int(d))
}

// ParseDistribution maps a configuration string to a Distribution.
// The empty string selects DistInDegree.
func ParseDistribution(s string) (Distribution, error) {
	if s == "" {
		return DistInDegree, nil
	}
	for d, name := range distributionNames {
		if name == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("ParseDistribution: %q: %w", s, ErrUnknownDistribution)
}

// weight returns the unnormalized target mass of a vertex with the given degrees.
func (d Distribution) weight(in, out int) float64 {
	switch d {
	case DistUniform:
		return 1
	case DistDegree:
		return float64(in + out)
	case DistOutDegree:
		return float64(out)
	default:
		return float64(in)
	}
}

// TargetWeight is the probability mass a target vertex had when an insertion
// toward it was drawn.
type TargetWeight = stats.TargetWeight

// Counts pairs a deletion and an insertion count.
type Counts struct {
	Deletions  int
	Insertions int
}

// Batch is one round of edge updates. Deletions are applied before insertions.
type Batch struct {
	Deletions  []core.EdgeKey
	Insertions []core.Edge
	// Requested holds the rounded counts the sampler aimed for.
	Requested Counts
	// Target holds one entry per insertion for the custom and preferential
	// natures: the target endpoint and its sampling mass. Other natures leave
	// it empty.
	Target []TargetWeight
}

// Len returns the number of produced updates.
func (b *Batch) Len() int { return len(b.Deletions) + len(b.Insertions) }

// Shortfall returns requested minus produced, per list.
func (b *Batch) Shortfall() Counts {
	return Counts{
		Deletions:  b.Requested.Deletions - len(b.Deletions),
		Insertions: b.Requested.Insertions - len(b.Insertions),
	}
}
