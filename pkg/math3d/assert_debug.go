//go:build debug

package math3d

// debug enables invariant checks on unchecked constructors and rotations.
const debug = true
