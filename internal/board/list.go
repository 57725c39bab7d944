package board

import (
	"fmt"
	"iter"
	"strings"
)

// List is a bit-packed sequence of up to eight squares.
//
// Squares occupy 7-bit fields starting at the least significant bit. The
// field after the last square holds the sentinel value 64 (NoSquare) and all
// bits above it are zero, so an empty list is exactly 64 and any list holding
// at least one square compares greater than 64.
//
// Add pushes onto the low end, so iteration yields squares newest first.
// Remove, Invert and their bitboard forms rebuild the list in a single pass
// and therefore reverse the order of the squares they keep.
type List uint64

const (
	// MaxListLen is the capacity of a List.
	MaxListLen = 8

	// EmptyList holds no squares.
	EmptyList List = List(NoSquare)

	listFieldBits = 7
	listFieldMask = 1<<listFieldBits - 1
)

// EncodeList builds a List whose iteration order matches the argument order.
func EncodeList(squares ...Square) (List, error) {
	if len(squares) > MaxListLen {
		return EmptyList, fmt.Errorf("%w: %d squares exceed list capacity %d",
			ErrStructuralEncoding, len(squares), MaxListLen)
	}

	var seen Bitboard
	l := EmptyList
	for i := len(squares) - 1; i >= 0; i-- {
		sq := squares[i]
		if !sq.IsValid() {
			return EmptyList, fmt.Errorf("%w: square %d outside 0..63", ErrStructuralEncoding, sq)
		}
		if seen.IsSet(sq) {
			return EmptyList, fmt.Errorf("%w: square %s repeated", ErrStructuralEncoding, sq)
		}
		seen = seen.Set(sq)
		l = l.Add(sq)
	}
	return l, nil
}

// MustEncodeList is like EncodeList but panics on error.
// It is intended for fixed tables such as the starting position.
func MustEncodeList(squares ...Square) List {
	l, err := EncodeList(squares...)
	if err != nil {
		panic(err)
	}
	return l
}

// Squares returns the squares of the list, newest first.
// The sequence can be ranged over any number of times.
func (l List) Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for rest := l; rest > EmptyList; rest >>= listFieldBits {
			if !yield(Square(rest & listFieldMask)) {
				return
			}
		}
	}
}

// Slice returns the squares of the list, newest first.
func (l List) Slice() []Square {
	squares := make([]Square, 0, MaxListLen)
	for sq := range l.Squares() {
		squares = append(squares, sq)
	}
	return squares
}

// Len returns the number of squares in the list.
func (l List) Len() int {
	n := 0
	for ; l > EmptyList; l >>= listFieldBits {
		n++
	}
	return n
}

// Contains reports whether sq is in the list.
func (l List) Contains(sq Square) bool {
	for ; l > EmptyList; l >>= listFieldBits {
		if Square(l&listFieldMask) == sq {
			return true
		}
	}
	return false
}

// Add pushes sq onto the list. The caller guarantees the list holds fewer
// than MaxListLen squares; a full list overflows silently.
func (l List) Add(sq Square) List {
	return l<<listFieldBits | List(sq)
}

// Remove returns the list without sq. The caller guarantees sq is present
// exactly once. The remaining squares come back in reverse order.
func (l List) Remove(sq Square) List {
	r := EmptyList
	for ; l > EmptyList; l >>= listFieldBits {
		if s := l & listFieldMask; Square(s) != sq {
			r = r<<listFieldBits | s
		}
	}
	return r
}

// RemoveWithBitboard is Remove that also returns the bitboard of the result.
func (l List) RemoveWithBitboard(sq Square) (List, Bitboard) {
	r, bb := EmptyList, Empty
	for ; l > EmptyList; l >>= listFieldBits {
		if s := l & listFieldMask; Square(s) != sq {
			r = r<<listFieldBits | s
			bb |= 1 << s
		}
	}
	return r, bb
}

// Bitboard returns the set of squares in the list.
func (l List) Bitboard() Bitboard {
	bb := Empty
	for ; l > EmptyList; l >>= listFieldBits {
		bb |= 1 << (l & listFieldMask)
	}
	return bb
}

// Invert returns the list with every square s replaced by 63-s, in reverse order.
func (l List) Invert() List {
	r := EmptyList
	for ; l > EmptyList; l >>= listFieldBits {
		r = r<<listFieldBits | (63 - l&listFieldMask)
	}
	return r
}

// InvertWithBitboard is Invert that also returns the bitboard of the result.
func (l List) InvertWithBitboard() (List, Bitboard) {
	r, bb := EmptyList, Empty
	for ; l > EmptyList; l >>= listFieldBits {
		s := 63 - l&listFieldMask
		r = r<<listFieldBits | s
		bb |= 1 << s
	}
	return r, bb
}

// validate checks that the list is terminated by the sentinel after at most
// MaxListLen distinct squares in 0..63.
func (l List) validate() error {
	var seen Bitboard
	n := 0
	for ; l > EmptyList; l >>= listFieldBits {
		if n == MaxListLen {
			return fmt.Errorf("%w: more than %d squares", ErrStructuralEncoding, MaxListLen)
		}
		sq := Square(l & listFieldMask)
		if !sq.IsValid() {
			return fmt.Errorf("%w: field %d holds %d", ErrStructuralEncoding, n, sq)
		}
		if seen.IsSet(sq) {
			return fmt.Errorf("%w: square %s repeated", ErrStructuralEncoding, sq)
		}
		seen = seen.Set(sq)
		n++
	}
	if l != EmptyList {
		return fmt.Errorf("%w: missing sentinel after %d squares", ErrStructuralEncoding, n)
	}
	return nil
}

// String returns the squares in iteration order, e.g. "[e2 d2]".
func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for sq := range l.Squares() {
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(sq.String())
		first = false
	}
	sb.WriteByte(']')
	return sb.String()
}
