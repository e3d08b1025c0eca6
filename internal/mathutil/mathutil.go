// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package mathutil collects small generic numeric helpers shared by
// the texture and framebuffer packages.
package mathutil

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
