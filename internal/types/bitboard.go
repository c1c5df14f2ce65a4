//
// chesscore - a bitboard chess engine core in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package types holds the primitive, dependency-free chess types shared by
// every other package of the core: squares, bitboards, pieces, moves and
// values. Nothing in here depends on Position or the move generator.
package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit s represents square s.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// file and rank masks, precomputed once.
var (
	fileBb [FileLength]Bitboard
	rankBb [RankLength]Bitboard
)

func init() {
	for f := FileA; f < FileLength; f++ {
		var b Bitboard
		for r := Rank1; r < RankLength; r++ {
			b |= SquareOf(f, r).Bb()
		}
		fileBb[f] = b
	}
	for r := Rank1; r < RankLength; r++ {
		var b Bitboard
		for f := FileA; f < FileLength; f++ {
			b |= SquareOf(f, r).Bb()
		}
		rankBb[r] = b
	}
}

// Bb returns the bitboard of all squares on the given file.
func (f File) Bb() Bitboard { return fileBb[f] }

// Bb returns the bitboard of all squares on the given rank.
func (r Rank) Bb() Bitboard { return rankBb[r] }

// Has reports whether the square's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Set returns b with the given square's bit set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with the given square's bit cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least significant set bit, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square and clears it from b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &^= sq.Bb()
	}
	return sq
}

// String renders the bitboard as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f < FileLength; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1")
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

// StringHex renders the bitboard as a hex literal, useful for debug logging.
func (b Bitboard) StringHex() string {
	return fmt.Sprintf("0x%016X", uint64(b))
}
