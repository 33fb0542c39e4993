package texlayout

// alignUp rounds x up to the next multiple of a. a must be a power of
// two; alignment units, block dimensions and tile extents all are.
func alignUp(x, a int) int {
	return (x + a - 1) &^ (a - 1)
}

// isPow2 reports whether x is a positive power of two.
func isPow2(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// minify halves v level times, never going below one texel.
func minify(v, level int) int {
	v >>= level
	if v < 1 {
		return 1
	}
	return v
}
