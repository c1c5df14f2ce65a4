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

// Package attacks provides the bitboard attack primitives of spec.md
// §4.1: precomputed leaper tables for knights, kings and pawns, and
// classical ray-walking sliding attacks for bishops, rooks and queens.
//
// Deliberately not used here: magic bitboards or rotated bitboards.
// The teacher codebase this core is adapted from relies on magic
// bitboards (internal/types/magic.go); spec.md §4.1 and §9 call for the
// simpler on-the-fly ray walk instead, so that table is not carried
// forward.
package attacks

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

var (
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	// pawnAttacks[color][square] = squares a pawn of that color on
	// square attacks diagonally.
	pawnAttacks [2][SqLength]Bitboard
)

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := SqA1; sq < SqLength; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		var knight, king Bitboard
		for _, d := range knightDeltas {
			if to := offsetSquare(f, r, d[0], d[1]); to != SqNone {
				knight = knight.Set(to)
			}
		}
		for _, d := range kingDeltas {
			if to := offsetSquare(f, r, d[0], d[1]); to != SqNone {
				king = king.Set(to)
			}
		}
		knightAttacks[sq] = knight
		kingAttacks[sq] = king

		var whitePawn, blackPawn Bitboard
		if to := offsetSquare(f, r, -1, 1); to != SqNone {
			whitePawn = whitePawn.Set(to)
		}
		if to := offsetSquare(f, r, 1, 1); to != SqNone {
			whitePawn = whitePawn.Set(to)
		}
		if to := offsetSquare(f, r, -1, -1); to != SqNone {
			blackPawn = blackPawn.Set(to)
		}
		if to := offsetSquare(f, r, 1, -1); to != SqNone {
			blackPawn = blackPawn.Set(to)
		}
		pawnAttacks[White][sq] = whitePawn
		pawnAttacks[Black][sq] = blackPawn
	}
}

func offsetSquare(f, r, df, dr int) Square {
	nf, nr := f+df, r+dr
	if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
		return SqNone
	}
	return SquareOf(File(nf), Rank(nr))
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the diagonal pawn-capture squares for a pawn of
// color c standing on sq.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// step moves one square in direction d, returning SqNone on board exit
// or file wraparound.
func step(sq Square, d Direction) Square {
	f := sq.FileOf()
	switch d {
	case East, Northeast, Southeast:
		if f == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f == FileA {
			return SqNone
		}
	}
	n := int(sq) + int(d)
	if n < 0 || n >= int(SqLength) {
		return SqNone
	}
	return Square(n)
}

// rayAttacks walks from sq in direction d one square at a time, setting
// every square visited, and stops after the first occupied square
// (inclusive) per spec.md §4.1.
func rayAttacks(sq Square, d Direction, occupied Bitboard) Bitboard {
	var bb Bitboard
	cur := sq
	for {
		cur = step(cur, d)
		if cur == SqNone {
			break
		}
		bb = bb.Set(cur)
		if occupied.Has(cur) {
			break
		}
	}
	return bb
}

// BishopAttacks computes diagonal sliding attacks from sq against the
// given occupancy, on the fly (no magic table).
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	var bb Bitboard
	for _, d := range BishopDirections {
		bb |= rayAttacks(sq, d, occupied)
	}
	return bb
}

// RookAttacks computes orthogonal sliding attacks from sq against the
// given occupancy, on the fly (no magic table).
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	var bb Bitboard
	for _, d := range RookDirections {
		bb |= rayAttacks(sq, d, occupied)
	}
	return bb
}

// QueenAttacks is the union of bishop and rook attacks from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// AttacksFrom returns the attack set of piece type pt from sq against
// the given occupancy. pt must not be Pawn (pawn attacks are color
// dependent; use PawnAttacks).
func AttacksFrom(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case King:
		return KingAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		return BbZero
	}
}
