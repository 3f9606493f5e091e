// Package bitset implements a fixed-width set of bits with the boolean and
// shift operators puzzle solutions lean on for row masks and visited sets.
//
// Bits are stored in 128-bit units, each split into two 64-bit limbs with the
// low limb first. A set of width w owns 1+w/128 units. Bits at positions w and
// above are padding: every operation leaves them cleared, so [BitSet.Count],
// [BitSet.Equal] and [BitSet.LeadingZeros] never see stale bits after a [BitSet.Not]
// or a [BitSet.Shl].
//
// Operations between two sets require equal widths and panic with a
// WIDTH_MISMATCH *errors.Error otherwise. Indexing at or past the width panics
// with OUT_OF_RANGE.
package bitset

import (
	"math/bits"
	"strings"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

const (
	limbBits  = 64
	unitBits  = 128
	unitLimbs = unitBits / limbBits
)

// BitSet is a fixed-width set of bits indexed from 0.
type BitSet struct {
	words []uint64
	width int
}

// Zeros returns a set of the given width with every bit cleared.
func Zeros(width int) *BitSet {
	if width < 0 {
		errors.Panicf(errors.ErrCodeOutOfRange, "negative bitset width %d", width)
	}
	return &BitSet{
		words: make([]uint64, unitLimbs*(1+width/unitBits)),
		width: width,
	}
}

// Ones returns a set of the given width with every bit set.
func Ones(width int) *BitSet {
	b := Zeros(width)
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.trim()
	return b
}

// Width returns the number of addressable bits.
func (b *BitSet) Width() int { return b.width }

// Test reports whether bit i is set.
func (b *BitSet) Test(i int) bool {
	b.check(i)
	return b.words[i/limbBits]&(1<<(i%limbBits)) != 0
}

// Set sets bit i to v.
func (b *BitSet) Set(i int, v bool) {
	b.check(i)
	if v {
		b.words[i/limbBits] |= 1 << (i % limbBits)
	} else {
		b.words[i/limbBits] &^= 1 << (i % limbBits)
	}
}

// And returns the intersection of b and o.
func (b *BitSet) And(o *BitSet) *BitSet { return b.Clone().AndWith(o) }

// Or returns the union of b and o.
func (b *BitSet) Or(o *BitSet) *BitSet { return b.Clone().OrWith(o) }

// Xor returns the symmetric difference of b and o.
func (b *BitSet) Xor(o *BitSet) *BitSet { return b.Clone().XorWith(o) }

// AndWith intersects b with o in place and returns b.
func (b *BitSet) AndWith(o *BitSet) *BitSet {
	b.sameWidth(o)
	for i, w := range o.words {
		b.words[i] &= w
	}
	return b
}

// OrWith merges o into b in place and returns b.
func (b *BitSet) OrWith(o *BitSet) *BitSet {
	b.sameWidth(o)
	for i, w := range o.words {
		b.words[i] |= w
	}
	return b
}

// XorWith toggles in b every bit set in o and returns b.
func (b *BitSet) XorWith(o *BitSet) *BitSet {
	b.sameWidth(o)
	for i, w := range o.words {
		b.words[i] ^= w
	}
	return b
}

// Not returns the complement of b within its width.
func (b *BitSet) Not() *BitSet {
	out := b.Clone()
	for i := range out.words {
		out.words[i] = ^out.words[i]
	}
	out.trim()
	return out
}

// Shl returns b shifted toward higher indices by k: bit i moves to i+k, bits
// pushed past the width are lost and the k lowest bits are cleared.
func (b *BitSet) Shl(k int) *BitSet {
	if k < 0 {
		return b.Shr(-k)
	}
	out := Zeros(b.width)
	if k >= b.width {
		return out
	}
	whole, part := k/limbBits, uint(k%limbBits)
	for j := len(out.words) - 1; j >= whole; j-- {
		src := j - whole
		v := b.words[src] << part
		if part != 0 && src > 0 {
			v |= b.words[src-1] >> (limbBits - part)
		}
		out.words[j] = v
	}
	out.trim()
	return out
}

// Shr returns b shifted toward lower indices by k: bit i moves to i-k and the
// k lowest bits are lost.
func (b *BitSet) Shr(k int) *BitSet {
	if k < 0 {
		return b.Shl(-k)
	}
	out := Zeros(b.width)
	if k >= b.width {
		return out
	}
	whole, part := k/limbBits, uint(k%limbBits)
	n := len(out.words)
	for j := 0; j+whole < n; j++ {
		src := j + whole
		v := b.words[src] >> part
		if part != 0 && src+1 < n {
			v |= b.words[src+1] << (limbBits - part)
		}
		out.words[j] = v
	}
	return out
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// CountZeros returns the number of cleared bits within the width.
func (b *BitSet) CountZeros() int { return b.width - b.Count() }

// LeadingZeros returns the number of cleared bits above the highest set bit,
// or the width when no bit is set.
func (b *BitSet) LeadingZeros() int {
	padding := len(b.words)*limbBits - b.width
	for i := len(b.words) - 1; i >= 0; i-- {
		if b.words[i] != 0 {
			return (len(b.words)-1-i)*limbBits + bits.LeadingZeros64(b.words[i]) - padding
		}
	}
	return b.width
}

// TrailingZeros returns the index of the lowest set bit, or the width when no
// bit is set.
func (b *BitSet) TrailingZeros() int {
	for i, w := range b.words {
		if w != 0 {
			return i*limbBits + bits.TrailingZeros64(w)
		}
	}
	return b.width
}

// IsZero reports whether no bit is set.
func (b *BitSet) IsZero() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether b and o have the same width and the same bits.
func (b *BitSet) Equal(o *BitSet) bool {
	if b.width != o.width {
		return false
	}
	for i, w := range b.words {
		if o.words[i] != w {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of b.
func (b *BitSet) Clone() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{words: words, width: b.width}
}

// String renders the bits from the highest index down to 0.
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.Grow(b.width)
	for i := b.width - 1; i >= 0; i-- {
		if b.words[i/limbBits]&(1<<(i%limbBits)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b *BitSet) check(i int) {
	if i < 0 || i >= b.width {
		errors.Panicf(errors.ErrCodeOutOfRange, "bit %d outside width %d", i, b.width)
	}
}

func (b *BitSet) sameWidth(o *BitSet) {
	if b.width != o.width {
		errors.Panicf(errors.ErrCodeWidthMismatch, "bitset widths differ: %d and %d", b.width, o.width)
	}
}

// trim clears the padding bits past the width.
func (b *BitSet) trim() {
	full, rem := b.width/limbBits, b.width%limbBits
	if rem != 0 {
		b.words[full] &= (1 << rem) - 1
		full++
	}
	for i := full; i < len(b.words); i++ {
		b.words[i] = 0
	}
}
