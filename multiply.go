package muhash

// Multiply computes x <- x*a mod P.
//
// The product is formed column by column (schoolbook), but the columns that
// would land at or above limb position Limbs (the "upper half" of the
// 2*Limbs-limb product) are folded in immediately, multiplied by primeDiff,
// instead of being accumulated separately and reduced at the end. That fusion
// is what lets the whole multiply produce only Limbs limbs of intermediate
// state (tmp) plus a small residual carry, rather than a full 2*Limbs-limb
// product.
func Multiply(x *Num3072, a *Num3072) {
	var carryLow, carryHigh, carryHighest uint64
	var tmp Num3072

	// Limbs 0..Limbs-2 of x*a, each column folding in its upper-half
	// contribution (times primeDiff) before its lower-half contribution.
	for j := 0; j < Limbs-1; j++ {
		var low, high, carry uint64
		low, high = mul(x.limbs[1+j], a.limbs[Limbs+j-(1+j)])
		for i := 2 + j; i < Limbs; i++ {
			muladd3(&low, &high, &carry, x.limbs[i], a.limbs[Limbs+j-i])
		}

		mulnadd3(&carryLow, &carryHigh, &carryHighest, low, high, carry, primeDiff)
		for i := 0; i < j+1; i++ {
			muladd3(&carryLow, &carryHigh, &carryHighest, x.limbs[i], a.limbs[j-i])
		}

		tmp.limbs[j] = extract3(&carryLow, &carryHigh, &carryHighest)
	}

	// carryHighest must be 0 here: an upper-half column sum (at most 47
	// products, under 2^134) times primeDiff (under 2^21) plus a lower-half
	// column sum and the carried-in remainder stays under 2^156, so once
	// extract3 has shifted out the lowest limb what is left fits in 2 limbs.
	for i := 0; i < Limbs; i++ {
		muladd3(&carryLow, &carryHigh, &carryHighest, x.limbs[i], a.limbs[Limbs-1-i])
	}
	tmp.limbs[Limbs-1] = extract3(&carryLow, &carryHigh, &carryHighest)

	// The remaining [carryLow,carryHigh] still represents bits at or above
	// position Limbs*LimbBits; fold it back in the same way, one more time.
	muln2(&carryLow, &carryHigh, primeDiff)
	for j := 0; j < Limbs; j++ {
		x.limbs[j] = addnextract2(&carryLow, &carryHigh, tmp.limbs[j])
	}

	// carryHigh is 0 and carryLow is 0 or 1 here: the fold-back above can
	// carry at most one extra bit past the top limb.
	if IsOverflow(x) {
		FullReduce(x)
	}
	if carryLow != 0 {
		FullReduce(x)
	}
}

// Square computes x <- x*x mod P.
//
// Structurally identical to Multiply, but exploits this[i]*this[k-i] ==
// this[k-i]*this[i]: every off-diagonal pair in a column is folded in once,
// doubled, via muldbladd3, and a column's lone central term (when the column
// has odd length) is folded in once via muladd3.
func Square(x *Num3072) {
	var low, high, carry uint64
	var tmp Num3072

	for j := 0; j < Limbs-1; j++ {
		var cLow, cHigh, cHighest uint64

		for i := 0; i < (Limbs-1-j)/2; i++ {
			muldbladd3(&cLow, &cHigh, &cHighest, x.limbs[i+j+1], x.limbs[Limbs-1-i])
		}
		if (j+1)&1 != 0 {
			muladd3(&cLow, &cHigh, &cHighest,
				x.limbs[(Limbs-1-j)/2+j+1], x.limbs[Limbs-1-(Limbs-1-j)/2])
		}
		mulnadd3(&low, &high, &carry, cLow, cHigh, cHighest, primeDiff)

		for i := 0; i < (j+1)/2; i++ {
			muldbladd3(&low, &high, &carry, x.limbs[i], x.limbs[j-i])
		}
		if (j+1)&1 != 0 {
			muladd3(&low, &high, &carry, x.limbs[(j+1)/2], x.limbs[j-(j+1)/2])
		}

		tmp.limbs[j] = extract3(&low, &high, &carry)
	}

	// carry must be 0 here, for the same reason as Multiply's carryHighest.
	for i := 0; i < Limbs/2; i++ {
		muldbladd3(&low, &high, &carry, x.limbs[i], x.limbs[Limbs-1-i])
	}
	tmp.limbs[Limbs-1] = extract3(&low, &high, &carry)

	muln2(&low, &high, primeDiff)
	for j := 0; j < Limbs; j++ {
		x.limbs[j] = addnextract2(&low, &high, tmp.limbs[j])
	}

	if IsOverflow(x) {
		FullReduce(x)
	}
	if low != 0 {
		FullReduce(x)
	}
}
