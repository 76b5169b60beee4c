package bitvec

import (
	"encoding/binary"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitVec is an ordered sequence of n bits packed into 64-bit words.
// Its length is fixed at construction; every BitVec value below is
// logically immutable once returned from a constructor or a binary
// operation, even though its internal *bitset.BitSet is heap-shared —
// callers obtain new BitVecs from every combining operation and never
// see a BitVec mutate under them.
type BitVec struct {
	length int
	bits   *bitset.BitSet
}

// New returns the all-zeros BitVec of length n.
func New(n int) BitVec {
	if n < 0 {
		panic("bitvec: negative length")
	}
	return BitVec{length: n, bits: bitset.New(uint(n))}
}

// Len reports the fixed length of v.
func (v BitVec) Len() int {
	return v.length
}

func (v BitVec) checkIndex(i int) {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("bitvec: index %d out of range [0,%d)", i, v.length))
	}
}

func (v BitVec) checkSameLength(other BitVec) {
	if v.length != other.length {
		panic(fmt.Sprintf("bitvec: length mismatch %d != %d", v.length, other.length))
	}
}

// Get reports whether bit i is set.
func (v BitVec) Get(i int) bool {
	v.checkIndex(i)
	return v.bits.Test(uint(i))
}

// Set returns a copy of v with bit i set.
func (v BitVec) Set(i int) BitVec {
	v.checkIndex(i)
	clone := v.Clone()
	clone.bits.Set(uint(i))
	return clone
}

// Clear returns a copy of v with bit i cleared.
func (v BitVec) Clear(i int) BitVec {
	v.checkIndex(i)
	clone := v.Clone()
	clone.bits.Clear(uint(i))
	return clone
}

// SetInPlace sets bit i on v without copying. Reserved for scratch
// BitVecs owned exclusively by a builder or a MonomialMap entry;
// never call on a BitVec a caller outside this module might hold.
func (v BitVec) SetInPlace(i int) {
	v.checkIndex(i)
	v.bits.Set(uint(i))
}

// Clone returns an independent copy of v.
func (v BitVec) Clone() BitVec {
	return BitVec{length: v.length, bits: v.bits.Clone()}
}

// Xor returns v XOR other. Panics if the lengths differ.
func (v BitVec) Xor(other BitVec) BitVec {
	v.checkSameLength(other)
	return BitVec{length: v.length, bits: v.bits.SymmetricDifference(other.bits)}
}

// And returns v AND other. Panics if the lengths differ.
func (v BitVec) And(other BitVec) BitVec {
	v.checkSameLength(other)
	return BitVec{length: v.length, bits: v.bits.Intersection(other.bits)}
}

// Cardinality returns the number of set bits (popcount).
func (v BitVec) Cardinality() int {
	return int(v.bits.Count())
}

// IsZero reports whether no bit is set.
func (v BitVec) IsZero() bool {
	return v.bits.None()
}

// Equal reports whether v and other have the same length and the
// same bits set.
func (v BitVec) Equal(other BitVec) bool {
	return v.length == other.length && v.bits.Equal(other.bits)
}

// Elements returns a read-only view of the packed 64-bit words
// backing v, LSB-first within each word. Callers must not mutate the
// returned slice.
func (v BitVec) Elements() []uint64 {
	return v.bits.Bytes()
}

// EvalMonomial reports whether every bit required by m (the support
// of a Monomial reusing this same packed representation) is set in
// v: (m.words[i] &^ v.words[i]) == 0 for every word i.
func (v BitVec) EvalMonomial(m BitVec) bool {
	mw := m.Elements()
	vw := v.Elements()
	for i, w := range mw {
		var vv uint64
		if i < len(vw) {
			vv = vw[i]
		}
		if w&^vv != 0 {
			return false
		}
	}
	return true
}

// Extend returns a BitVec of length newLen whose low v.Len() bits
// equal v and whose remaining high bits are zero. newLen must be >=
// v.Len().
func (v BitVec) Extend(newLen int) BitVec {
	if newLen < v.length {
		panic("bitvec: Extend to a shorter length")
	}
	out := New(newLen)
	for _, i := range v.SetBits() {
		out.bits.Set(uint(i))
	}
	return out
}

// ShiftedInto returns a BitVec of length newLen with v's bits placed
// starting at offset: bit i of v becomes bit i+offset of the result.
// newLen must be >= offset+v.Len(). Used to relocate one operand's
// variables into the high half of a combined input or output space
// when two Functions of independent widths are concatenated.
func (v BitVec) ShiftedInto(newLen, offset int) BitVec {
	if newLen < offset+v.length {
		panic("bitvec: ShiftedInto out of range")
	}
	out := New(newLen)
	for _, i := range v.SetBits() {
		out.bits.Set(uint(i + offset))
	}
	return out
}

// SetBits returns the indices of the set bits of v in ascending
// order.
func (v BitVec) SetBits() []int {
	out := make([]int, 0, v.Cardinality())
	for i, e := uint(0), uint(v.length); i < e; i++ {
		if v.bits.Test(i) {
			out = append(out, int(i))
		}
	}
	return out
}

// Key returns a representation of v suitable for use as a Go map
// key, packing length and words so that two BitVecs with equal
// content but different declared lengths never collide.
func (v BitVec) Key() string {
	words := v.Elements()
	buf := make([]byte, 8+8*len(words))
	binary.LittleEndian.PutUint64(buf[:8], uint64(v.length))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[8+8*i:16+8*i], w)
	}
	return string(buf)
}

// FromBits returns a BitVec of length n with the given indices set.
func FromBits(n int, indices ...int) BitVec {
	v := New(n)
	for _, i := range indices {
		v.SetInPlace(i)
	}
	return v
}

// FromBitString parses a lsb-first bit string such as "1011" (bit 0
// is the leftmost character) into a BitVec of length len(s).
func FromBitString(s string) BitVec {
	v := New(len(s))
	for i, c := range s {
		switch c {
		case '1':
			v.SetInPlace(i)
		case '0':
		default:
			panic(fmt.Sprintf("bitvec: invalid character %q in bit string", c))
		}
	}
	return v
}

// String renders v as a lsb-first bit string, the inverse of
// FromBitString.
func (v BitVec) String() string {
	buf := make([]byte, v.length)
	for i := 0; i < v.length; i++ {
		if v.Get(i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
