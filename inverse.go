package muhash

// repunitCount is the number of precomputed repunit powers p[i] =
// a^(2^(2^i)-1) built by GetInverse before running the addition chain.
const repunitCount = 12

// chainStep is one (squarings, repunit index) pair in the fixed addition
// chain that composes a^(P-2) out of the repunit table. See GetInverse.
type chainStep struct {
	squarings int
	index     int
}

// inverseChain is the fixed schedule from the Brumley-Järvinen sliding-window
// exponentiation ("Fast Point Decompression for Standard Elliptic Curves",
// 2008) adapted to P-2 for this field's specific prime. It is a constant of
// the algorithm: reproducing it exactly is what makes GetInverse compute
// a^(P-2) rather than some other power.
var inverseChain = [...]chainStep{
	{512, 9}, {256, 8}, {128, 7}, {64, 6}, {32, 5}, {8, 3}, {2, 1}, {1, 0},
	{5, 2}, {3, 0}, {2, 0}, {4, 0}, {4, 1}, {3, 0},
}

// squareNMul sets x <- x^(2^sq) * mul.
func squareNMul(x *Num3072, sq int, mul *Num3072) {
	for i := 0; i < sq; i++ {
		Square(x)
	}
	Multiply(x, mul)
}

// GetInverse returns a^(-1) mod P via Fermat's little theorem, computing
// a^(P-2) mod P by sliding-window exponentiation with repunit precomputation.
// It does not mutate a. The result is meaningless if a is 0 or a multiple of
// P: callers must ensure a is non-zero and coprime to P (see spec.md §7).
func GetInverse(a *Num3072) Num3072 {
	var p [repunitCount]Num3072

	p[0] = *a
	for i := 0; i < repunitCount-1; i++ {
		next := p[i]
		for j := 0; j < (1 << i); j++ {
			Square(&next)
		}
		Multiply(&next, &p[i])
		p[i+1] = next
	}

	out := p[repunitCount-1]
	for _, step := range inverseChain {
		squareNMul(&out, step.squarings, &p[step.index])
	}
	return out
}

// Divide computes x <- x * a^(-1) mod P. a is not mutated.
func Divide(x *Num3072, a *Num3072) {
	if IsOverflow(x) {
		FullReduce(x)
	}

	var inv Num3072
	if IsOverflow(a) {
		b := *a
		FullReduce(&b)
		inv = GetInverse(&b)
	} else {
		inv = GetInverse(a)
	}

	Multiply(x, &inv)
	// Multiply already normalizes; this guards against a future change to
	// Multiply's postcondition rather than a known gap in it.
	if IsOverflow(x) {
		FullReduce(x)
	}
}
