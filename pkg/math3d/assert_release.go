//go:build !debug

package math3d

const debug = false
