package muhash

import "encoding/binary"

// Bytes returns x's little-endian limb representation: bytes [8*i, 8*i+8) are
// limbs[i] little-endian. This is a representational encoding, not a
// canonical one — x is not normalized first, matching spec.md §3's
// representational (V < 2^3072) rather than canonical (V < P) invariant.
// Callers that need a canonical encoding should Multiply(x, one) (or call
// FullReduce after checking IsOverflow) before calling Bytes.
func (x *Num3072) Bytes() [byteLen]byte {
	var out [byteLen]byte
	for i := 0; i < Limbs; i++ {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], x.limbs[i])
	}
	return out
}

// Num3072FromBytes decodes the little-endian limb representation produced by
// Bytes. It performs no reduction: the result may be >= P, exactly as
// Bytes's own output may be if the source value was.
func Num3072FromBytes(b [byteLen]byte) Num3072 {
	var x Num3072
	for i := 0; i < Limbs; i++ {
		x.limbs[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
	}
	return x
}

// muhashStateLen is the length of a MuHash's serialized running state: its
// numerator and denominator, each a full Num3072.
const muhashStateLen = 2 * byteLen

// Serialize encodes m's numerator and denominator, in that order, as a
// single byte string — enough to resume a batch Insert/Remove later via
// DeserializeMuHash. It does not include a Finalize digest; it is meant for
// persisting in-progress accumulator state, not the finished hash.
func (m *MuHash) Serialize() [muhashStateLen]byte {
	var out [muhashStateLen]byte
	num := m.numerator.Bytes()
	den := m.denominator.Bytes()
	copy(out[:byteLen], num[:])
	copy(out[byteLen:], den[:])
	return out
}

// DeserializeMuHash reconstructs a MuHash from the byte string produced by
// Serialize.
func DeserializeMuHash(b [muhashStateLen]byte) *MuHash {
	var num, den [byteLen]byte
	copy(num[:], b[:byteLen])
	copy(den[:], b[byteLen:])

	return &MuHash{
		numerator:   Num3072FromBytes(num),
		denominator: Num3072FromBytes(den),
	}
}
