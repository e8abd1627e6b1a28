// Package driver runs the batch-update pipeline end to end:
//
//	Init → Load → Transform* → BatchLoop(n) → Done
//
// with every iteration doing Sample → Apply → Analyze → Validate → Write
// against one graph and one RNG. Configuration-class failures abort the
// run; a divergence that cannot be computed is reported and the loop
// continues.
package driver
