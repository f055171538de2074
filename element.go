package muhash

import (
	"encoding/binary"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/chacha20"
)

// byteLen is the length, in bytes, of a Num3072's little-endian
// representation: Limbs limbs of 8 bytes each.
const byteLen = Limbs * (LimbBits / 8)

// Element is a Num3072 produced by hashing arbitrary data rather than by
// arithmetic; kept as a distinct name at the hashing-layer boundary so the
// core arithmetic types never need to know how an Element was produced.
type Element = Num3072

// HashToElement maps arbitrary data to a field element. Two calls with equal
// data always produce equal elements; this is the "stream cipher/hash
// expansion" layer spec.md names as external to the arithmetic core.
//
// data is first collapsed to a 32-byte SHA-256 digest, then used as a
// ChaCha20 key (with an all-zero nonce, since a fresh key is drawn for every
// call) to generate a byteLen-byte keystream. That keystream, read as Limbs
// little-endian uint64 limbs, is the resulting Num3072 — it is not reduced
// modulo P here, since any value under 2^3072 is a valid representation
// (spec.md §3) and the first Multiply/Square applied to it will normalize.
func HashToElement(data []byte) Element {
	digest := sha256simd.Sum256(data)

	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(digest[:], nonce[:])
	if err != nil {
		// digest is always exactly 32 bytes and nonce exactly 12; the only
		// documented failure modes of NewUnauthenticatedCipher cannot occur.
		panic("muhash: unreachable chacha20 key/nonce size mismatch: " + err.Error())
	}

	var stream [byteLen]byte
	cipher.XORKeyStream(stream[:], stream[:])

	var e Element
	for i := 0; i < Limbs; i++ {
		e.limbs[i] = binary.LittleEndian.Uint64(stream[i*8 : i*8+8])
	}
	return e
}
