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

// Package zobrist holds the precomputed random key tables used to
// incrementally fingerprint a Position, per spec.md §6 "Precomputed
// input tables": piece-square keys, castling-rights keys, en-passant
// file keys and a side-to-move key. They are produced once, by a
// seeded PRNG, at package init - never regenerated or reseeded at
// runtime, so two engine instances in the same binary agree on hashes.
package zobrist

import (
	"math/rand"

	. "github.com/frankkopp/chesscore/internal/types"
)

// Key is a 64-bit Zobrist fingerprint.
type Key uint64

const seed = 1070372

var (
	// Piece is indexed [Piece][Square].
	Piece [PieceLength][SqLength]Key
	// Castling is indexed by the 4-bit castling rights mask (0-15).
	Castling [16]Key
	// EnPassant is indexed by file (the EP square's file).
	EnPassant [FileLength]Key
	// SideToMove is XORed in whenever it is Black to move.
	SideToMove Key
)

func init() {
	rnd := rand.New(rand.NewSource(seed))
	for p := WhitePawn; p < PieceLength; p++ {
		for sq := SqA1; sq < SqLength; sq++ {
			Piece[p][sq] = Key(rnd.Uint64())
		}
	}
	for i := range Castling {
		Castling[i] = Key(rnd.Uint64())
	}
	for f := FileA; f < FileLength; f++ {
		EnPassant[f] = Key(rnd.Uint64())
	}
	SideToMove = Key(rnd.Uint64())
}
