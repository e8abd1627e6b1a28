// Package builder provides reusable “functional-options”-style constructors
// for the seed graphs that the batch-update pipeline evolves: deterministic
// fixtures for tests and the `generate` command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, vertex-ID offset and weight function.
//   - Topologies (Constructor implementations, directed):
//     – Path(n), Cycle(n), Star(n), Complete(n), RandomSparse(n, p).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant core.DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integers in [min,max].
//   - Validation helpers: validateMin, validateProbability.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order produce identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors wrapped with the method name; never panic.
package builder
