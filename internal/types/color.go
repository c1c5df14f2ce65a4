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

package types

import "fmt"

// Color is White or Black.
type Color uint8

const (
	White Color = iota
	Black
	ColorLength int = 2
)

func (c Color) IsValid() bool {
	return c < 2
}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var directionFactor = [2]int{1, -1}

// Direction returns +1 for White, -1 for Black; useful to flip a
// white-relative score to the mover's point of view.
func (c Color) Direction() int {
	return directionFactor[c]
}

var pawnPushDirection = [2]Direction{North, South}

// PawnPushDirection is the direction a pawn of this color advances in.
func (c Color) PawnPushDirection() Direction {
	return pawnPushDirection[c]
}

var promotionRank = [2]Rank{Rank8, Rank1}

// PromotionRank is the rank on which a pawn of this color promotes.
func (c Color) PromotionRank() Rank {
	return promotionRank[c]
}

var pawnStartRank = [2]Rank{Rank2, Rank7}

// PawnStartRank is the rank on which this color's pawns begin the game
// (and from which a two-square push is possible).
func (c Color) PawnStartRank() Rank {
	return pawnStartRank[c]
}

var pawnDoubleDestRank = [2]Rank{Rank4, Rank5}

// PawnDoubleDestRank is the rank a two-square pawn push lands on.
func (c Color) PawnDoubleDestRank() Rank {
	return pawnDoubleDestRank[c]
}

var epRank = [2]Rank{Rank3, Rank6}

// EpRank is the rank the en-passant square sits on after this color's
// two-square pawn push (rank 3 after White pushes, rank 6 after Black).
func (c Color) EpRank() Rank {
	return epRank[c]
}
