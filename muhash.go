package muhash

import (
	"errors"
	"fmt"

	sha256simd "github.com/minio/sha256-simd"
)

// MuHash is a running multiset hash: the order elements are Inserted or
// Removed in does not affect the final Finalize digest, and removing an
// element previously inserted restores the prior digest. It is built
// entirely on Num3072's Multiply/Divide; MuHash itself never touches a limb.
//
// Not safe for concurrent use without external synchronization, exactly
// like Num3072.
type MuHash struct {
	numerator   Num3072
	denominator Num3072
}

// NewMuHash returns an empty accumulator (the multiset with no elements).
func NewMuHash() *MuHash {
	m := &MuHash{}
	SetToOne(&m.numerator)
	SetToOne(&m.denominator)
	return m
}

// Insert adds data to the multiset.
func (m *MuHash) Insert(data []byte) {
	e := HashToElement(data)
	Multiply(&m.numerator, &e)
}

// Remove removes data from the multiset. Removing data that was never
// inserted silently corrupts the accumulator (MuHash has no way to detect
// this, by design: it never stores the inserted elements themselves).
func (m *MuHash) Remove(data []byte) {
	e := HashToElement(data)
	Multiply(&m.denominator, &e)
}

// errEmptyElement is returned by InsertMany/RemoveMany for a nil or empty
// item in the batch.
var errEmptyElement = errors.New("muhash: empty element")

// InsertMany inserts every item in items. All items are validated before any
// are inserted; every invalid item is reported, not just the first.
func (m *MuHash) InsertMany(items [][]byte) error {
	if err := validateElements(items); err != nil {
		return err
	}
	for _, item := range items {
		m.Insert(item)
	}
	return nil
}

// RemoveMany removes every item in items, with the same validate-then-apply
// and aggregated-error behavior as InsertMany.
func (m *MuHash) RemoveMany(items [][]byte) error {
	if err := validateElements(items); err != nil {
		return err
	}
	for _, item := range items {
		m.Remove(item)
	}
	return nil
}

func validateElements(items [][]byte) error {
	var errs []error
	for i, item := range items {
		if len(item) == 0 {
			errs = append(errs, fmt.Errorf("item %d: %w", i, errEmptyElement))
		}
	}
	return errors.Join(errs...)
}

// Combine merges other into m: the resulting multiset is the union (with
// multiplicity) of m's and other's. Combine is commutative and associative
// because Multiply is.
func (m *MuHash) Combine(other *MuHash) {
	Multiply(&m.numerator, &other.numerator)
	Multiply(&m.denominator, &other.denominator)
}

// Clone returns an independent copy of m.
func (m *MuHash) Clone() *MuHash {
	clone := *m
	return &clone
}

// Finalize returns the 32-byte digest of the current multiset. It does not
// mutate m: Insert/Remove/Combine may still be called afterward, and a later
// Finalize call reflects them.
func (m *MuHash) Finalize() [32]byte {
	numerator := m.numerator
	Divide(&numerator, &m.denominator)

	b := numerator.Bytes()
	return sha256simd.Sum256(b[:])
}
